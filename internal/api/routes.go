package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petrolife-backend-go/internal/config"
	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/middleware"
	"petrolife-backend-go/internal/models"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (Logging, Recovery, CORS) is applied to the
// router before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	roleService core.RoleService,
	subscriptionService core.SubscriptionService,
	walletService core.WalletService,
	carService core.CarService,
	stationService core.StationService,
	catalogService core.CatalogService,
	tenantService core.TenantService,
	reportService core.ReportService,
	notificationService core.NotificationService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirestore() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, roleService, logger)

	authHandler := NewAuthHandler()
	subscriptionHandler := NewSubscriptionHandler(subscriptionService, catalogService)
	walletHandler := NewWalletHandler(walletService)
	carHandler := NewCarHandler(carService)
	stationHandler := NewStationHandler(stationService)
	catalogHandler := NewCatalogHandler(catalogService)
	tenantHandler := NewTenantHandler(tenantService)
	reportHandler := NewReportHandler(reportService)
	notificationHandler := NewNotificationHandler(notificationService)

	apiV1 := router.Group("/api/v1")
	{
		// --- Session Resolution ---
		// Called after client-side Firebase login to learn the caller's role
		// and dashboard redirect path.
		apiV1.POST("/auth/session", authMW.Authenticate(), authHandler.ResolveSession)

		// --- Shared Authenticated Endpoints ---
		sharedGroup := apiV1.Group("", authMW.Authenticate())
		{
			sharedGroup.GET("/notifications", notificationHandler.ListNotifications)
			sharedGroup.POST("/notifications/:notificationId/read", notificationHandler.MarkNotificationRead)
		}

		// --- Company Endpoints ---
		companyGroup := apiV1.Group("", authMW.Authenticate(), authMW.RequireRoles(models.UserTypeCompany))
		{
			companyGroup.GET("/companies/me", tenantHandler.GetOwnCompany)

			companyGroup.GET("/plans", subscriptionHandler.ListPlans)
			companyGroup.GET("/subscriptions/quote", subscriptionHandler.Quote)
			companyGroup.GET("/coupons/:code/validate", subscriptionHandler.ValidateCoupon)
			companyGroup.POST("/subscriptions/purchase", subscriptionHandler.Purchase)

			companyGroup.POST("/wallet/requests", walletHandler.CreateRequest)
			companyGroup.GET("/wallet/requests", walletHandler.ListOwnRequests)
			companyGroup.GET("/wallet/bank-accounts", walletHandler.ListActiveBankAccounts)

			companyGroup.POST("/cars", carHandler.CreateCar)
			companyGroup.GET("/cars", carHandler.ListCars)
			companyGroup.PUT("/cars/:carId", carHandler.UpdateCar)
			companyGroup.DELETE("/cars/:carId", carHandler.DeleteCar)
		}

		// --- Service Distributer Endpoints ---
		distributorGroup := apiV1.Group("", authMW.Authenticate(), authMW.RequireRoles(models.UserTypeDistributor))
		{
			distributorGroup.POST("/stations", stationHandler.CreateStation)
			distributorGroup.GET("/stations", stationHandler.ListStations)
			distributorGroup.PUT("/stations/:stationId", stationHandler.UpdateStation)
			distributorGroup.DELETE("/stations/:stationId", stationHandler.DeleteStation)
		}

		// --- Admin Endpoints ---
		adminGroup := apiV1.Group("/admin", authMW.Authenticate(), authMW.RequireRoles(models.UserTypeAdmin))
		{
			adminGroup.GET("/companies", tenantHandler.ListCompanies)
			adminGroup.GET("/service-distributers", tenantHandler.ListDistributors)
			adminGroup.GET("/stations", stationHandler.ListAllStations)

			adminGroup.POST("/plans", catalogHandler.CreatePlan)
			adminGroup.GET("/plans", subscriptionHandler.ListPlans)
			adminGroup.GET("/plans/:planId", catalogHandler.GetPlan)
			adminGroup.PUT("/plans/:planId", catalogHandler.UpdatePlan)
			adminGroup.DELETE("/plans/:planId", catalogHandler.DeletePlan)

			adminGroup.POST("/coupons", catalogHandler.CreateCoupon)
			adminGroup.GET("/coupons", catalogHandler.ListCoupons)
			adminGroup.DELETE("/coupons/:couponId", catalogHandler.DeleteCoupon)

			adminGroup.GET("/wallet/requests/pending", walletHandler.ListPendingRequests)
			adminGroup.POST("/wallet/requests/:requestId/decision", walletHandler.DecideRequest)
			adminGroup.GET("/bank-accounts", walletHandler.ListAllBankAccounts)
			adminGroup.POST("/bank-accounts", walletHandler.CreateBankAccount)
			adminGroup.PUT("/bank-accounts/:accountId", walletHandler.UpdateBankAccount)
			adminGroup.DELETE("/bank-accounts/:accountId", walletHandler.DeleteBankAccount)

			adminGroup.GET("/reports/sales", reportHandler.SalesSummary)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "PetroLife backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
