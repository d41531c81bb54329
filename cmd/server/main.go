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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/reginayiwang/movement-breaks/internal/handlers"
	"github.com/reginayiwang/movement-breaks/internal/jwt"
	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/repositories"
	"github.com/reginayiwang/movement-breaks/internal/services"
	"github.com/reginayiwang/movement-breaks/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// bodyweightEquipment is the universal default equipment; the catalog must
// contain it after seeding.
const bodyweightEquipment = "body weight"

// @title movement-breaks API
// @version 1.0.0
// @description Work/break timer with guided exercise suggestions filtered by user preferences
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, sessionExpSecond, bcryptCost,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, sessionExpSecond, bcryptCost,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and session configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecret string, sessionExpSecond int, bcryptCost int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "movement_breaks")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "movement-breaks-events")

	// Session config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecret string, sessionExpSecond int, bcryptCost int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Run schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		logger.Log.Fatal("goose dialect error:", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events; optional, disabled when no brokers
	// are configured
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	sessionExp := time.Duration(sessionExpSecond) * time.Second

	// Initialize session token codec
	tokens := jwt.New(jwt.WithSecretKey(jwtSecret), jwt.WithExpiration(sessionExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	equipmentReadRepo := repositories.NewEquipmentReadRepository(db)
	targetReadRepo := repositories.NewTargetReadRepository(db)
	exerciseReadRepo := repositories.NewExerciseReadRepository(db)
	prefReadRepo := repositories.NewPreferenceReadRepository(db)
	prefWriteRepo := repositories.NewPreferenceWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb, sessionExp)

	// Resolve the universal default equipment. A catalog without it is a
	// seed-data error, not something to handle per request.
	bodyweight, err := equipmentReadRepo.GetByName(ctx, bodyweightEquipment)
	if err != nil {
		logger.Log.Fatal("failed to resolve body weight equipment:", err)
	}
	if bodyweight == nil {
		logger.Log.Fatalf("catalog has no %q equipment; run the seed import first", bodyweightEquipment)
	}

	// Initialize services
	events := services.NewKafkaEventPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, tokens, events, bcryptCost)
	selectorService := services.NewSelectorService(exerciseReadRepo, userReadRepo, prefReadRepo, bodyweight.EquipmentID)
	settingsService := services.NewSettingsService(userReadRepo, userWriteRepo, prefReadRepo, prefWriteRepo, equipmentReadRepo, targetReadRepo, events)
	blockService := services.NewBlockService(exerciseReadRepo, prefWriteRepo, events)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, sessionExp)
	loginHandler := handlers.NewLoginHandler(authService, sessionExp)
	logoutHandler := handlers.NewLogoutHandler(authService, tokens)
	timerHandler := handlers.NewTimerHandler(userReadRepo)
	catalogHandler := handlers.NewCatalogHandler(equipmentReadRepo, targetReadRepo)
	exercisesHandler := handlers.NewExercisesHandler(selectorService)
	getSettingsHandler := handlers.NewGetSettingsHandler(settingsService)
	updateSettingsHandler := handlers.NewUpdateSettingsHandler(settingsService)
	blockHandler := handlers.NewBlockHandler(blockService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens, sessionRepo)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(tokens, sessionRepo)

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/catalog", catalogHandler)

	// Routes with optional caller identity
	r.Group(func(r chi.Router) {
		r.Use(optionalAuthMiddleware)
		r.Get("/", timerHandler)
		r.Get("/exercises", exercisesHandler)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/logout", logoutHandler)
		r.Get("/settings", getSettingsHandler)
		r.With(middlewares.TxMiddleware(db)).Post("/settings", updateSettingsHandler)
		r.Post("/users/{id}/block", blockHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
