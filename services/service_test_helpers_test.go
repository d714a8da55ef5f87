package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// openTestDB membuka sqlite in-memory terisolasi per test dan
// memigrasi semua model.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.OptionGroup{},
		&models.OptionChoice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Promotion{},
		&models.ImportReceipt{},
		&models.ImportItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type fixture struct {
	Branch      models.Branch
	OtherBranch models.Branch
	Category    models.MenuCategory

	// PlainItem: 50.000, stok 100, tanpa option
	PlainItem models.MenuItem
	// OptionItem: 40.000, stok 10, Size (SINGLE, required) + Topping (MULTI)
	OptionItem models.MenuItem

	SizeGroup    models.OptionGroup
	SizeSmall    models.OptionChoice
	SizeLarge    models.OptionChoice
	ToppingGroup models.OptionGroup
	Cheese       models.OptionChoice
	Chili        models.OptionChoice

	Customer models.Actor
	Staff    models.Actor
	Chef     models.Actor
	Shipper  models.Actor
}

func seedCatalog(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.Branch = models.Branch{Name: "Central", IsActive: true}
	f.OtherBranch = models.Branch{Name: "Harbor", IsActive: true}
	db.Create(&f.Branch)
	db.Create(&f.OtherBranch)

	f.Category = models.MenuCategory{Name: "Mains"}
	db.Create(&f.Category)

	f.PlainItem = models.MenuItem{
		BranchID:      f.Branch.ID,
		CategoryID:    f.Category.ID,
		Name:          "Fried Rice",
		Price:         50000,
		StockQuantity: 100,
		IsAvailable:   true,
	}
	db.Create(&f.PlainItem)

	f.OptionItem = models.MenuItem{
		BranchID:      f.Branch.ID,
		CategoryID:    f.Category.ID,
		Name:          "Milk Tea",
		Price:         40000,
		StockQuantity: 10,
		IsAvailable:   true,
	}
	db.Create(&f.OptionItem)

	f.SizeGroup = models.OptionGroup{
		MenuItemID:    f.OptionItem.ID,
		Name:          "Size",
		SelectionType: models.SelectionSingle,
		IsRequired:    true,
		SortOrder:     1,
	}
	db.Create(&f.SizeGroup)
	f.SizeSmall = models.OptionChoice{GroupID: f.SizeGroup.ID, Name: "Small", PriceDelta: 0, SortOrder: 1}
	f.SizeLarge = models.OptionChoice{GroupID: f.SizeGroup.ID, Name: "Large", PriceDelta: 5000, SortOrder: 2}
	db.Create(&f.SizeSmall)
	db.Create(&f.SizeLarge)

	f.ToppingGroup = models.OptionGroup{
		MenuItemID:    f.OptionItem.ID,
		Name:          "Topping",
		SelectionType: models.SelectionMulti,
		SortOrder:     2,
	}
	db.Create(&f.ToppingGroup)
	f.Cheese = models.OptionChoice{GroupID: f.ToppingGroup.ID, Name: "Cheese", PriceDelta: 3000, SortOrder: 1}
	f.Chili = models.OptionChoice{GroupID: f.ToppingGroup.ID, Name: "Chili", PriceDelta: 2000, SortOrder: 2}
	db.Create(&f.Cheese)
	db.Create(&f.Chili)

	customer := models.User{Name: "Customer", Email: "cust@example.com", Password: "x", Role: models.RoleCustomer}
	db.Create(&customer)
	staff := models.User{Name: "Staff", Email: "staff@example.com", Password: "x", Role: models.RoleStaff, BranchID: &f.Branch.ID}
	db.Create(&staff)
	chef := models.User{Name: "Chef", Email: "chef@example.com", Password: "x", Role: models.RoleChef, BranchID: &f.Branch.ID}
	db.Create(&chef)
	shipper := models.User{Name: "Shipper", Email: "shipper@example.com", Password: "x", Role: models.RoleShipper, BranchID: &f.Branch.ID}
	db.Create(&shipper)

	f.Customer = models.Actor{UserID: customer.ID, Role: models.RoleCustomer}
	f.Staff = models.Actor{UserID: staff.ID, Role: models.RoleStaff, BranchID: f.Branch.ID}
	f.Chef = models.Actor{UserID: chef.ID, Role: models.RoleChef, BranchID: f.Branch.ID}
	f.Shipper = models.Actor{UserID: shipper.ID, Role: models.RoleShipper, BranchID: f.Branch.ID}

	return f
}

// newDraftWithItem membuat order DRAFT berisi satu baris PlainItem.
func newDraftWithItem(t *testing.T, db *gorm.DB, f fixture, quantity int) *models.Order {
	t.Helper()
	svc := NewCartService(db)

	order, _, err := svc.FindOrCreateDraft(f.Customer, f.Branch.ID)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	order, err = svc.AddItem(f.Customer, AddItemInput{
		OrderID:    order.ID,
		MenuItemID: f.PlainItem.ID,
		Quantity:   quantity,
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return order
}

// submitOrder mendorong DRAFT ke PENDING lewat checkout.
func submitOrder(t *testing.T, db *gorm.DB, f fixture, orderID uint) {
	t.Helper()
	svc := NewCartService(db)
	_, err := svc.Checkout(f.Customer, orderID, CheckoutInput{
		PaymentMethod: models.PaymentCash,
		OrderType:     models.OrderTypeDineIn,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
}

func futureWindow() (time.Time, time.Time) {
	return time.Now().Add(-time.Hour), time.Now().Add(time.Hour)
}
