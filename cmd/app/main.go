package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/cmd"
	httpadapter "github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/in/http"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/notification"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := cmd.LoadConfig()

	appLogger := logger.New(cmd.ServiceName, configs.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	appLogger.Info("connected to database", zap.String("host", configs.DBHost), zap.String("db", configs.DBName))

	sink, closeSink := notificationSink(configs, appLogger.Logger)
	defer closeSink()

	app := cmd.NewCompositionRoot(configs, gormDB, sink, appLogger.Logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, appLogger.Logger)
}

func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, configs.DBTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, nil
}

// notificationSink always logs; it also publishes to RabbitMQ when a broker
// is configured and reachable.
func notificationSink(configs cmd.Config, appLogger *zap.Logger) (ports.NotificationSink, func()) {
	logSink := notification.NewLogSink(appLogger)
	if configs.RabbitMQURL == "" {
		return logSink, func() {}
	}

	conn, err := notification.Dial(configs.RabbitMQURL)
	if err != nil {
		appLogger.Warn("RabbitMQ unavailable, notifications will only be logged", zap.Error(err))
		return logSink, func() {}
	}

	rabbitSink, err := notification.NewRabbitMQSink(conn.Channel(), configs.RabbitMQExchange, appLogger)
	if err != nil {
		appLogger.Warn("RabbitMQ exchange unavailable, notifications will only be logged", zap.Error(err))
		_ = conn.Close()
		return logSink, func() {}
	}

	appLogger.Info("publishing notifications to RabbitMQ", zap.String("exchange", configs.RabbitMQExchange))
	return notification.NewFanOut(logSink, rabbitSink), func() { _ = conn.Close() }
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, appLogger *zap.Logger) {
	e, err := httpadapter.NewEcho(ctx, app.CreateHTTPServer())
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("HTTP shutdown error", zap.Error(err))
		}
	}()

	appLogger.Info("HTTP server listening", zap.String("port", port))
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
	appLogger.Info("HTTP server stopped")
}
