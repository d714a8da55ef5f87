package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/router"
	"github.com/foodcourt-app/backend/utils"
)

type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine

	Branch models.Branch
	Item   models.MenuItem

	CustomerToken string
	StaffToken    string
	ChefToken     string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
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

	env := &testEnv{DB: db, Router: router.SetupRouter(db)}

	env.Branch = models.Branch{Name: "Central", IsActive: true}
	db.Create(&env.Branch)

	category := models.MenuCategory{Name: "Mains"}
	db.Create(&category)

	env.Item = models.MenuItem{
		BranchID:      env.Branch.ID,
		CategoryID:    category.ID,
		Name:          "Fried Rice",
		Price:         50000,
		StockQuantity: 3,
		IsAvailable:   true,
	}
	db.Create(&env.Item)

	customer := models.User{Name: "Cust", Email: "cust@example.com", Password: "x", Role: models.RoleCustomer}
	db.Create(&customer)
	staff := models.User{Name: "Staff", Email: "staff@example.com", Password: "x", Role: models.RoleStaff, BranchID: &env.Branch.ID}
	db.Create(&staff)
	chef := models.User{Name: "Chef", Email: "chef@example.com", Password: "x", Role: models.RoleChef, BranchID: &env.Branch.ID}
	db.Create(&chef)

	env.CustomerToken = mustToken(t, customer.ID, models.RoleCustomer, 0)
	env.StaffToken = mustToken(t, staff.ID, models.RoleStaff, env.Branch.ID)
	env.ChefToken = mustToken(t, chef.ID, models.RoleChef, env.Branch.ID)

	return env
}

func mustToken(t *testing.T, userID uint, role string, branchID uint) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, branchID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON mengirim request JSON dengan bearer token dan mengembalikan recorder.
func (env *testEnv) doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return resp
}
