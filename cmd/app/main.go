package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/cmd"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/postgres/journalrepo"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/postgres/markrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cast"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := gorm.Open(postgresdriver.Open(dsn(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to local state database: %v", err)
	}
	if err = db.AutoMigrate(migrations()...); err != nil {
		log.Fatalf("Error migrating local state schema: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	controller, err := root.CreateTrackingController()
	if err != nil {
		log.Fatalf("Error building tracking controller: %v", err)
	}
	if err = controller.RestoreLastObserved(context.Background()); err != nil {
		logger.Warn("Restoring last sent position failed", "error", err)
	}

	jobManager := root.CreateJobManager()

	bus := root.Bus()
	bus.Subscribe(controller.HandleEvent)
	bus.Subscribe(jobManager.DriverLocationPoll().HandleEvent)

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateServer().RegisterRoutes(e)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil && serveErr != http.ErrServerClosed {
			e.Logger.Fatal(serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobManager.StopAll()
	controller.Stop()
	bus.Close()

	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

func getConfigs() cmd.Config {
	// Best-effort: environment variables win over .env, which may be absent
	// in container deployments.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:              envOr("HTTP_PORT", "8082"),
		BackendBaseURL:        envOr("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
		BackendToken:          envOr("BACKEND_TOKEN", ""),
		TenantID:              envOr("BACKEND_TENANT_ID", ""),
		SessionRole:           envOr("SESSION_ROLE", "driver"),
		DBHost:                envOr("DB_HOST", "localhost"),
		DBPort:                envOr("DB_PORT", "5432"),
		DBUser:                envOr("DB_USER", "postgres"),
		DBPassword:            envOr("DB_PASSWORD", "postgres"),
		DBName:                envOr("DB_NAME", "opsflow_mobile"),
		DBSslMode:             envOr("DB_SSLMODE", "disable"),
		ReportIntervalSeconds: cast.ToInt(envOr("REPORT_INTERVAL_SECONDS", "5")),
		ReportDistanceMeters:  cast.ToFloat64(envOr("REPORT_DISTANCE_METERS", "20")),
		SimStartLat:           cast.ToFloat64(envOr("SIM_START_LAT", "1.3521")),
		SimStartLng:           cast.ToFloat64(envOr("SIM_START_LNG", "103.8198")),
	}
}

func migrations() []any {
	return []any{
		&markrepo.MarkDTO{},
		&journalrepo.SampleDTO{},
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func dsn(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
}
