package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"deliveryapp/cmd"
	httpin "deliveryapp/internal/adapters/in/http"
	"deliveryapp/internal/adapters/out/postgres/accountrepo"
	"deliveryapp/internal/adapters/out/postgres/categoryrepo"
	"deliveryapp/internal/adapters/out/postgres/customerrepo"
	"deliveryapp/internal/adapters/out/postgres/driverrepo"
	"deliveryapp/internal/adapters/out/postgres/orderrepo"
	"deliveryapp/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	tokens, err := root.NewTokenService(configs)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := root.NewJobManager(configs, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     mustEnv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     mustEnv("DB_USER"),
		DBPassword: mustEnv("DB_PASSWORD"),
		DBName:     mustEnv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		JWTSigningKey: mustEnv("JWT_SIGNING_KEY"),
		JWTIssuer:     envOr("JWT_ISSUER", "deliveryapp"),
		JWTAudience:   envOr("JWT_AUDIENCE", "deliveryapp-api"),
		JWTTokenTTL:   time.Duration(envIntOr("JWT_TOKEN_TTL_HOURS", 24)) * time.Hour,

		StaleOrderThreshold: time.Duration(envIntOr("STALE_ORDER_THRESHOLD_MINUTES", 30)) * time.Minute,
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("init gorm: %v", err)
	}

	err = gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&customerrepo.CustomerDTO{},
		&categoryrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	return gormDB
}

func startWebServer(root cmd.CompositionRoot, tokens *httpin.TokenService, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpin.NewServer(root.NewServerParams(tokens))
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
