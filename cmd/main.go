package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-diet-tracker/internal/facades"
	"github.com/sbilibin2017/gw-diet-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-diet-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-diet-tracker/internal/services"

	"github.com/sbilibin2017/gw-diet-tracker/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sbilibin2017/gw-diet-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-diet-tracker API
// @version 1.0.0
// @description Barcode scanning diet tracker with a per-user virtual fridge
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbDriver, dbDSN, dbMaxOpenConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExp,
		kafkaBrokers, kafkaTopic,
		foodAPIURL, foodAPITimeout,
		jwtSecret, jwtExp, sessionSecure,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbDriver, dbDSN, dbMaxOpenConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExp,
		kafkaBrokers, kafkaTopic,
		foodAPIURL, foodAPITimeout,
		jwtSecret, jwtExp, sessionSecure,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, food API and JWT configuration.
// An empty Redis host or Kafka broker list disables that component.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string, dbMaxOpenConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	foodAPIURL string, foodAPITimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int, sessionCookieSecure bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	dbDriver = getEnv("DB_DRIVER", "sqlite3")
	dbDSN = getEnv("DB_DSN", "diet.db?_foreign_keys=on")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "1")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "fridge-events")

	// Food API config
	foodAPIURL = getEnv("FOOD_API_URL", "https://world.openfoodfacts.org")
	if foodAPITimeoutSecond, err = strconv.Atoi(getEnv("FOOD_API_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	if sessionCookieSecure, err = strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string, dbMaxOpenConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	foodAPIURL string, foodAPITimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int, sessionCookieSecure bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the database
	logger.Log.Infow("connecting to database", "driver", dbDriver)
	db, err := sqlx.ConnectContext(ctx, dbDriver, dbDSN)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(dbMaxOpenConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("database migration error: %w", err)
	}

	// Connect to Redis
	var lookupCache services.LookupCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		lookupCache = repositories.NewProductLookupCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	} else {
		logger.Log.Info("Redis host not set, lookup cache disabled")
	}

	// Kafka writer for fridge events
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka brokers not set, fridge events disabled")
	}

	foodLookup := facades.NewFoodLookupHTTPFacade(foodAPIURL, time.Duration(foodAPITimeoutSecond)*time.Second)

	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
		jwt.WithSecureCookie(sessionCookieSecure),
	)

	r := newRouter(db, lookupCache, kafkaWriter, foodLookup, jwtService,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// lookupCache and kafkaWriter may be nil.
func newRouter(
	db *sqlx.DB,
	lookupCache services.LookupCache,
	kafkaWriter services.KafkaWriter,
	foodLookup services.FoodLookup,
	jwtService *jwt.JWT,
	swaggerURL string,
) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	productReadRepo := repositories.NewProductReadRepository(db, middlewares.GetTxFromContext)
	productWriteRepo := repositories.NewProductWriteRepository(db, middlewares.GetTxFromContext)
	fridgeReadRepo := repositories.NewFridgeReadRepository(db, middlewares.GetTxFromContext)
	fridgeWriteRepo := repositories.NewFridgeWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, fridgeWriteRepo, jwtService)
	productService := services.NewProductService(productReadRepo, productWriteRepo, lookupCache, foodLookup)
	fridgeService := services.NewFridgeService(fridgeReadRepo, fridgeWriteRepo, productReadRepo, kafkaWriter)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(fridgeService, jwtService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes
	r.Get("/register", handlers.NewRegisterPageHandler())
	r.With(txMiddleware).Post("/register", handlers.NewRegisterHandler(authService))
	r.Get("/login", handlers.NewLoginPageHandler())
	r.Post("/login", handlers.NewLoginHandler(authService, jwtService))
	r.Get("/logout", handlers.NewLogoutHandler(jwtService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService))

		r.Get("/", indexHandler)
		r.Post("/", indexHandler)
		r.Get("/scan", handlers.NewScanPageHandler(jwtService))
		r.Get("/fridge", handlers.NewFridgeHandler(fridgeService, jwtService))
		r.Post("/get-meal-plan", handlers.NewMealPlanHandler(fridgeService, jwtService))

		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/scan", handlers.NewScanSubmitHandler(productService, jwtService))
			r.Post("/scan-barcode", handlers.NewScanBarcodeHandler(productService))
			r.Post("/add-to-fridge", handlers.NewAddToFridgeHandler(fridgeService, jwtService))
			r.Post("/update-fridge", handlers.NewUpdateFridgeHandler(fridgeService, jwtService))
			r.Post("/delete-product", handlers.NewDeleteProductHandler(fridgeService, jwtService))
		})
	})

	return r
}
