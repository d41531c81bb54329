package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/reginayiwang/movement-breaks/internal/facades"
	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/repositories"
	"github.com/reginayiwang/movement-breaks/internal/services"
	"github.com/reginayiwang/movement-breaks/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Seed drops the whole schema and re-imports the exercise catalog from the
// external exercise provider. Everything in the database is lost, including
// user accounts.
func main() {
	configPath := parseFlags()

	pgHost, pgPort, pgUser, pgPassword, pgDB,
		providerURL, providerKey, providerHost,
		logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		providerURL, providerKey, providerHost,
		logLevel,
	); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns database,
// exercise provider, and logging configuration.
func parseConfig(path string) (
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	providerURL, providerKey, providerHost string,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "movement_breaks")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}

	// Exercise provider config
	providerURL = getEnv("EXERCISEDB_URL", "https://exercisedb.p.rapidapi.com/exercises")
	providerKey = getEnv("EXERCISEDB_API_KEY", "")
	providerHost = getEnv("EXERCISEDB_API_HOST", "exercisedb.p.rapidapi.com")

	logLevel = getEnv("APP_LOG_LEVEL", "info")

	return
}

// run recreates the schema and imports equipment, targets, and exercises
// from the provider.
func run(ctx context.Context,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	providerURL, providerKey, providerHost string,
	logLevel string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()

	if providerKey == "" {
		return fmt.Errorf("EXERCISEDB_API_KEY is required")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	// Drop everything and rebuild the schema from scratch
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect error: %w", err)
	}
	logger.Log.Warn("Resetting database schema, all existing data will be lost")
	if err := goose.ResetContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("schema reset failed: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	provider := facades.NewExerciseProviderFacade(providerURL, providerKey, providerHost)
	catalogRepo := repositories.NewCatalogWriteRepository(db)
	exerciseRepo := repositories.NewExerciseWriteRepository(db)

	seedService := services.NewSeedService(provider, catalogRepo, exerciseRepo)
	if err := seedService.Run(ctx); err != nil {
		return err
	}

	logger.Log.Info("Seed import completed")
	return nil
}
