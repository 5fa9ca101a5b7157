package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/controllers"
	"github.com/yeremiapane/qr-menu-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Uploaded images are served statically
	r.Static("/static/uploads", "static/uploads")

	authCtrl := controllers.NewAuthController(db)
	publicCtrl := controllers.NewPublicController(db)
	orderCtrl := controllers.NewOrderController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewItemController(db)
	tableCtrl := controllers.NewTableController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	uploadCtrl := controllers.NewUploadController()
	adminCtrl := controllers.NewAdminController(db)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "qr-menu-backend"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	authGroup := api.Group("/auth")
	authGroup.Use(middlewares.NewStrictRateLimiter())
	{
		authGroup.POST("/login", authCtrl.Login)
	}

	public := api.Group("/public")
	{
		public.GET("/restaurants/:slug/menu", publicCtrl.GetMenu)
		public.POST("/orders", orderCtrl.CreateOrder)
		public.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(db))

	admin.GET("/ping", adminCtrl.Ping)

	// MENU CATEGORIES (writes are owner-gated)
	admin.GET("/categories", categoryCtrl.GetAllCategories)
	admin.POST("/categories", middlewares.OwnerOnly(), categoryCtrl.CreateCategory)
	admin.PUT("/categories/:cat_id", middlewares.OwnerOnly(), categoryCtrl.UpdateCategory)
	admin.DELETE("/categories/:cat_id", middlewares.OwnerOnly(), categoryCtrl.DeleteCategory)

	// MENU ITEMS
	admin.GET("/items", itemCtrl.GetAllItems)
	admin.POST("/items", middlewares.OwnerOnly(), itemCtrl.CreateItem)
	admin.PUT("/items/:item_id", middlewares.OwnerOnly(), itemCtrl.UpdateItem)
	admin.DELETE("/items/:item_id", middlewares.OwnerOnly(), itemCtrl.DeleteItem)

	// IMAGE UPLOAD (owner)
	admin.POST("/upload", middlewares.OwnerOnly(), uploadCtrl.UploadFile)

	// SETTINGS / BRANDING
	admin.GET("/settings", settingsCtrl.GetSettings)
	admin.PUT("/settings", settingsCtrl.UpdateSettings)

	// TABLES
	admin.GET("/tables", tableCtrl.GetAllTables)
	admin.POST("/tables", tableCtrl.CreateTable)
	admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	admin.GET("/tables/:table_id/qrcode", tableCtrl.GetTableQRCode)

	// ORDERS (any valid staff session)
	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	// DEMO SEED
	admin.POST("/seed-demo", adminCtrl.SeedDemo)

	return r
}
