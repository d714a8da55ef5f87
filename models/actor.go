package models

// Role constants untuk user dan actor
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleChef     = "chef"
	RoleShipper  = "shipper"
)

// Actor adalah identitas request yang sudah terautentikasi.
// Diisi oleh auth middleware dari claims JWT dan dioper eksplisit
// ke setiap service call (bukan lewat state global).
type Actor struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	BranchID uint   `json:"branch_id"` // 0 = tidak terikat branch (admin/customer)
}

// IsBranchBound -> role yang selalu bekerja dalam lingkup satu branch
func (a Actor) IsBranchBound() bool {
	return a.Role == RoleStaff || a.Role == RoleChef || a.Role == RoleShipper
}
