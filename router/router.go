package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/controllers"
	"github.com/foodcourt-app/backend/middlewares"
	"github.com/foodcourt-app/backend/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	branchCtrl := controllers.NewBranchController(db)
	catalogCtrl := controllers.NewCatalogController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)
	promoCtrl := controllers.NewPromoController(db)
	importCtrl := controllers.NewImportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/branches", branchCtrl.GetAllBranches)

	// Websocket display dapur/staff (token via query)
	r.GET("/kds/ws", controllers.KDSHandler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Catalog (read-only)
		auth.GET("/menus", catalogCtrl.GetAllMenuItems)
		auth.GET("/menus/:menu_id", catalogCtrl.GetMenuItemByID)

		// Cart (customer)
		auth.POST("/cart", cartCtrl.CreateCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PUT("/cart/items/:item_id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		auth.GET("/cart/:order_id", cartCtrl.GetCart)
		auth.POST("/cart/:order_id/checkout", cartCtrl.Checkout)

		// Promo
		auth.POST("/orders/:order_id/apply-promo", promoCtrl.ApplyPromo)

		// Staff: approval (dengan reservasi stok), cancel, antrean
		staff := auth.Group("/staff", middlewares.RequireRoles(models.RoleStaff))
		{
			staff.GET("/orders", orderCtrl.StaffOrders)
			staff.POST("/orders/approve", orderCtrl.StaffApprove)
			staff.POST("/orders/cancel", orderCtrl.StaffCancel)
		}

		// Chef: dapur
		chef := auth.Group("/chef", middlewares.RequireRoles(models.RoleChef))
		{
			chef.GET("/orders", orderCtrl.ChefOrders)
			chef.POST("/orders/approve", orderCtrl.ChefApprove)
			chef.POST("/orders/cancel", orderCtrl.ChefCancel)
		}

		// Shipper: pengantaran
		shipper := auth.Group("/shipper", middlewares.RequireRoles(models.RoleShipper))
		{
			shipper.GET("/orders", orderCtrl.ShipperOrders)
			shipper.POST("/orders/complete", orderCtrl.ShipperComplete)
			shipper.POST("/orders/cancel", orderCtrl.ShipperCancel)
		}

		// Replenishment (staff)
		importGroup := auth.Group("/import", middlewares.RequireRoles(models.RoleStaff))
		{
			importGroup.POST("", importCtrl.CreateReceipt)
			importGroup.POST("/add", importCtrl.AddItems)
			importGroup.PUT("/confirm/:import_id", importCtrl.ConfirmReceipt)
			importGroup.GET("/:import_id", importCtrl.GetReceipt)
		}
	}

	return r
}
