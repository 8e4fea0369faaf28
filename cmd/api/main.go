package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	domaincontract "github.com/natnael-haile/hireflow/internal/domain/contract"
	handlerHttp "github.com/natnael-haile/hireflow/internal/handler/http"
	"github.com/natnael-haile/hireflow/internal/infrastructure/config"
	database "github.com/natnael-haile/hireflow/internal/infrastructure/database"
	"github.com/natnael-haile/hireflow/internal/infrastructure/jwt"
	"github.com/natnael-haile/hireflow/internal/infrastructure/logger"
	"github.com/natnael-haile/hireflow/internal/infrastructure/metrics"
	passwordservice "github.com/natnael-haile/hireflow/internal/infrastructure/password_service"
	randomgenerator "github.com/natnael-haile/hireflow/internal/infrastructure/random_generator"
	"github.com/natnael-haile/hireflow/internal/infrastructure/repository/memory"
	"github.com/natnael-haile/hireflow/internal/infrastructure/repository/mongodb"
	"github.com/natnael-haile/hireflow/internal/infrastructure/store"
	"github.com/natnael-haile/hireflow/internal/infrastructure/uuidgen"
	"github.com/natnael-haile/hireflow/internal/infrastructure/validator"
	"github.com/natnael-haile/hireflow/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appLogger := logger.NewStdLogger()
	appConfig := config.NewConfig()

	// Datastore: MongoDB when configured, in-memory otherwise (dev mode)
	var datastore domaincontract.IDatastore
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		dbName := os.Getenv("MONGODB_DB_NAME")
		if dbName == "" {
			log.Fatal("MONGODB_DB_NAME environment variable not set")
		}
		mongoClient, err := database.NewMongoDBClient(mongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		mongoStore := mongodb.NewStore(mongoClient.Client.Database(dbName))
		if err := mongoStore.EnsureIndexes(context.Background()); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
		datastore = mongoStore
	} else {
		appLogger.Warnf("MONGODB_URI not set, running with in-memory datastore")
		datastore = memory.NewStore()
	}

	// Session token store: Redis when configured, in-memory otherwise
	var tokenStore domaincontract.ITokenStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := store.NewRedisFromURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		tokenStore = store.NewRedisTokenStore(rdb)
	} else {
		tokenStore = store.NewMemoryTokenStore()
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	tokenService := jwt.NewTokenService(jwtManager)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: data-access client
	dataClient := dataclient.New(datastore, dataclient.DefaultRegistry(), dataclient.Options{
		TokenService:        tokenService,
		TokenStore:          tokenStore,
		Hasher:              hasher,
		UUIDGen:             uuidGenerator,
		Validator:           appValidator,
		Logger:              appLogger,
		AuthPollInterval:    appConfig.GetAuthPollInterval(),
		ChannelPollInterval: appConfig.GetChannelPollInterval(),
	})
	defer dataClient.Close()

	appMetrics := metrics.New()
	dataClient.SetMetrics(appMetrics)

	// Dependency Injection: Usecases
	analyticsUsecase := usecase.NewAnalyticsUsecase(dataClient)
	onboardingUsecase := usecase.NewOnboardingUsecase(dataClient, randomGenerator, appLogger, analyticsUsecase)
	projectUsecase := usecase.NewProjectUsecase(dataClient, randomGenerator, appLogger, analyticsUsecase)
	adminUsecase := usecase.NewAdminUsecase(dataClient, appLogger)

	// Initialize Gin router
	router := gin.Default()

	appRouter := handlerHttp.NewRouter(
		onboardingUsecase, projectUsecase, adminUsecase, analyticsUsecase,
		tokenService, appConfig, appMetrics,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
