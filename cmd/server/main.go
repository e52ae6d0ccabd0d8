package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petrolife-backend-go/internal/api"
	"petrolife-backend-go/internal/config"
	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	// Using NewDevelopment for more verbose, human-readable output during development.
	// For production, consider zap.NewProduction() or a custom configuration.
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	// A local .env file is optional; real deployments set environment variables.
	if err := godotenv.Load(); err != nil {
		zapLogger.Info("No .env file found, relying on environment variables.")
	}
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (includes Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	// --- 4. Retrieve initialized clients ---
	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()

	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}
	zapLogger.Info("Firestore and Firebase Auth clients retrieved successfully.")

	// --- 5. Initialize Repositories ---
	adminRepo := db.NewFirestoreAdminRepository(firestoreClient)
	companyRepo := db.NewFirestoreCompanyRepository(firestoreClient)
	distributorRepo := db.NewFirestoreDistributorRepository(firestoreClient)
	planRepo := db.NewFirestorePlanRepository(firestoreClient)
	couponRepo := db.NewFirestoreCouponRepository(firestoreClient)
	carRepo := db.NewFirestoreCarRepository(firestoreClient)
	stationRepo := db.NewFirestoreStationRepository(firestoreClient)
	walletRequestRepo := db.NewFirestoreWalletRequestRepository(firestoreClient)
	bankAccountRepo := db.NewFirestoreBankAccountRepository(firestoreClient)
	transactionRepo := db.NewFirestoreTransactionRepository(firestoreClient)
	notificationRepo := db.NewFirestoreNotificationRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 6. Initialize Services ---
	roleService := core.NewRoleService(adminRepo, companyRepo, distributorRepo)
	notificationService := core.NewNotificationService(notificationRepo)
	subscriptionService := core.NewSubscriptionService(
		companyRepo,
		planRepo,
		couponRepo,
		transactionRepo,
		notificationService,
		appConfig.FreeYearCouponCode,
	)
	walletService := core.NewWalletService(
		walletRequestRepo,
		companyRepo,
		bankAccountRepo,
		transactionRepo,
		notificationService,
	)
	carService := core.NewCarService(carRepo, companyRepo)
	stationService := core.NewStationService(stationRepo)
	catalogService := core.NewCatalogService(planRepo, couponRepo)
	tenantService := core.NewTenantService(companyRepo, distributorRepo)
	reportService := core.NewReportService(transactionRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- 7. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Gin mode set to 'release'.")
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Gin mode set to 'debug'.")
	}
	router := gin.New()
	zapLogger.Info("Gin engine created.")

	// --- 8. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 9. Setup API Routes ---
	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		roleService,
		subscriptionService,
		walletService,
		carService,
		stationService,
		catalogService,
		tenantService,
		reportService,
		notificationService,
	)

	// --- 10. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 11. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
