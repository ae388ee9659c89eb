package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artmarket/cmd"
	"artmarket/internal/adapters/out/kafka"
	"artmarket/internal/adapters/out/postgres/auditrepo"
	"artmarket/internal/adapters/out/postgres/catalogorderrepo"
	"artmarket/internal/adapters/out/postgres/commissionorderrepo"
	"artmarket/internal/adapters/out/postgres/partnerrepo"
	"artmarket/internal/adapters/out/postgres/profilerepo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	publisher, err := kafka.NewPublisher(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaDeliveryTopic,
		logger,
	)
	if err != nil {
		log.Fatalf("Error connecting to Kafka: %v", err)
	}
	defer publisher.Close()

	threshold, err := time.ParseDuration(configs.StalePendingThreshold)
	if err != nil {
		log.Fatalf("Invalid STALE_PENDING_THRESHOLD: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := root.CreateJobManager(threshold)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaDeliveryTopic:    goDotEnvVariable("KAFKA_DELIVERY_TOPIC"),
		IdentityServiceURL:    goDotEnvVariable("IDENTITY_SERVICE_URL"),
		StaleReminderSchedule: goDotEnvVariable("STALE_REMINDER_SCHEDULE"),
		StalePendingThreshold: goDotEnvVariable("STALE_PENDING_THRESHOLD"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&catalogorderrepo.CatalogOrderDTO{},
		&catalogorderrepo.OrderItemDTO{},
		&commissionorderrepo.CommissionOrderDTO{},
		&auditrepo.AuditRecordDTO{},
		&profilerepo.ArtistProfileDTO{},
		&partnerrepo.DeliveryPartnerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
