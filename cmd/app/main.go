package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/returnrepo"
	"fulfillment/internal/adapters/out/postgres/sessionrepo"
	"fulfillment/internal/adapters/out/postgres/userdir"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDatabase(configs)
	mustMigrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetOpenSessionsQueryHandler(),
		configs.StaleSessionMonitorSpec,
		configs.StaleSessionThreshold,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		StaleSessionMonitorSpec: goDotEnvVariable("STALE_SESSION_MONITOR_SPEC"),
		StaleSessionThreshold:   mustParseDuration(goDotEnvVariable("STALE_SESSION_THRESHOLD")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustParseDuration(raw string) time.Duration {
	duration, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", raw, err)
	}
	return duration
}

func mustConnectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceItemDTO{},
		&sessionrepo.PickingSessionDTO{},
		&sessionrepo.PackingSessionDTO{},
		&sessionrepo.DeliverySessionDTO{},
		&sessionrepo.BoxDTO{},
		&sessionrepo.BoxItemDTO{},
		&returnrepo.InvoiceReturnDTO{},
		&userdir.UserDTO{},
		&userdir.MenuAccessDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateImportInvoiceCommandHandler(),
		app.CreateStartPickingCommandHandler(),
		app.CreateCompletePickingCommandHandler(),
		app.CreateStartPackingCommandHandler(),
		app.CreateCompletePackingCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateReturnToBillingCommandHandler(),
		app.CreateResolveInvoiceCommandHandler(),
		app.CreateGetInvoicesQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
		app.CreateGetOpenSessionsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
