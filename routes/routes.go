package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/configs"
	"github.com/Renison-Gohel/food-orderly/controllers"
	"github.com/Renison-Gohel/food-orderly/middlewares"
	"github.com/Renison-Gohel/food-orderly/pkg/cache"
	"github.com/Renison-Gohel/food-orderly/pkg/events"
	"github.com/Renison-Gohel/food-orderly/repository"
	"github.com/Renison-Gohel/food-orderly/services"
	"github.com/Renison-Gohel/food-orderly/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.OrderHub, orderCache *cache.OrderCache, publisher *events.Publisher) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	outletRepo := repository.NewOutletRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, customerRepo)
	orderSvc.Cache = orderCache
	orderSvc.Events = publisher
	orderSvc.Notifier = hub
	reportSvc := services.NewReportService(orderRepo)
	outletSvc := services.NewOutletService(outletRepo, orderRepo)
	loyaltySvc := services.NewLoyaltyService(loyaltyRepo)
	billSvc := services.NewBillService(orderSvc, cfg.BillTitle)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, billSvc)
	outletCtrl := controllers.NewOutletController(outletSvc, reportSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.RequireRole("admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
	}
	a.POST("/register", auth, adminOnly, authCtrl.Register)

	// POS surface (staff + admin)
	pos := r.Group("/", auth)
	{
		pos.GET("/menu-items", menuCtrl.List)
		pos.GET("/menu-items/:id", menuCtrl.Get)
		pos.POST("/menu-items", menuCtrl.Create)
		pos.PATCH("/menu-items/:id", menuCtrl.Update)
		pos.DELETE("/menu-items/:id", menuCtrl.Delete)

		pos.GET("/customers", customerCtrl.List)
		pos.POST("/customers", customerCtrl.Create)
		pos.PATCH("/customers/:id", customerCtrl.Update)
		pos.DELETE("/customers/:id", customerCtrl.Delete)

		pos.GET("/orders", orderCtrl.List)
		pos.POST("/orders", orderCtrl.Create)
		pos.GET("/orders/:id", orderCtrl.Detail)
		pos.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		pos.DELETE("/orders/:id", orderCtrl.Delete)
		pos.GET("/orders/:id/bill", orderCtrl.Bill)

	}

	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin (admin only)
	admin := r.Group("/admin", auth, adminOnly)
	{
		admin.GET("/outlets", outletCtrl.List)
		admin.POST("/outlets", outletCtrl.Create)
		admin.PATCH("/outlets/:id", outletCtrl.Update)
		admin.DELETE("/outlets/:id", outletCtrl.Delete)
		admin.GET("/outlets/:id/orders", outletCtrl.Orders)
		admin.GET("/outlets/:id/stats", outletCtrl.Stats)

		admin.GET("/reports/daily", reportCtrl.Daily)
		admin.GET("/reports/monthly", reportCtrl.Monthly)

		admin.GET("/loyalty-settings", loyaltyCtrl.Get)
		admin.PUT("/loyalty-settings", loyaltyCtrl.Update)
	}
}
