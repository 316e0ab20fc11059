package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/api"
	"github.com/FIT-dev-AI/Delivery-app/cmd"
	httpin "github.com/FIT-dev-AI/Delivery-app/internal/adapters/in/http"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := newLogger(configs.LogLevel)

	db, err := postgres.Open(configs.Database().DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(db.Gorm); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	registerSwagger(logger)

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close application resources")
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logrus.NewEntry(logger).WithField("service", "delivery")
}

func registerSwagger(logger *logrus.Entry) {
	doc, err := api.Load(context.Background())
	if doc == nil {
		logger.WithError(err).Warn("OpenAPI document unavailable, swagger UI disabled")
		return
	}
	if err != nil {
		logger.WithError(err).Warn("OpenAPI document failed validation")
	}
	if err := api.RegisterSwagger(doc); err != nil {
		logger.WithError(err).Warn("Failed to register swagger document")
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *logrus.Entry) {
	e := httpin.NewRouter(app.CreateHTTPServer(), app.TokenIssuer(), httpin.RouterConfig{
		RequestTimeout: configs.DBQueryTimeout,
	}, logger.WithField("component", "http"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithField("port", configs.HTTPPort).Info("HTTP server started")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
}
