package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/events"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/telemetry"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/webevents"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/cache"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/mail"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/mqtt"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/presentation/api"
)

const serviceName string = "iot-landslide-monitor"

func main() {
	serviceVersion := version()

	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded environment from .env")
	}

	var configFile, devicesFile string

	flag.StringVar(&configFile, "config", "/opt/diwise/config/config.yaml", "path to the service configuration")
	flag.StringVar(&devicesFile, "devices", "", "optional file with provinces, devices and sensors to seed")
	flag.Parse()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	cfg, err := loadConfiguration(configFile)
	exitIf(err, logger, "failed to load configuration")

	catalog, err := database.NewCatalog(ctx, newConnector(ctx))
	exitIf(err, logger, "failed to connect to database")

	if devicesFile != "" {
		err = seedCatalog(ctx, catalog, devicesFile)
		exitIf(err, logger, "failed to seed devices")
	}

	// the interface must stay nil when no cache is configured
	var sensorCache telemetry.SensorCache
	if addr := env.GetVariableOrDefault(logger, "REDIS_ADDR", ""); addr != "" {
		c, err := cache.New(ctx, addr, os.Getenv("REDIS_PASSWORD"), cfg.Cache.TTL)
		exitIf(err, logger, "failed to connect to redis")
		defer c.Close()

		sensorCache = c
	}

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	sender, err := events.New(cfg.Notifications.Subscribers)
	exitIf(err, logger, "failed to create event sender")

	mailer := mail.New(mail.LoadConfigFromEnv(ctx, cfg.Notifications.From))
	webEvents := webevents.New(ctx)

	app := application.New(cfg, catalog, sensorCache, mailer, sender, webEvents, messenger)

	subscriber, err := mqtt.NewSubscriber(ctx, mqtt.LoadConfigFromEnv(ctx, cfg.Ingest.Topic), cfg.Ingest.QueueSize)
	exitIf(err, logger, "failed to subscribe to telemetry")

	app.Start(ctx, subscriber.Messages())

	servicePort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	server := &http.Server{
		Addr:              ":" + servicePort,
		Handler:           setupRouter(ctx, serviceName, webEvents.Handler(), catalog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", servicePort).Msg("starting to listen for connections")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start request router")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutting down ...")

	subscriber.Close()
	app.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	webEvents.Shutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server")
	}

	logger.Info().Msg("shutdown complete")
}

func newConnector(ctx context.Context) database.ConnectorFunc {
	cfg := database.LoadConfigFromEnv(ctx)

	if cfg.Host == "" {
		log := logging.GetFromContext(ctx)
		log.Warn().Msg("POSTGRES_HOST is not set, using an in-memory database")
		return database.NewSQLiteConnector(ctx)
	}

	return database.NewPostgreSQLConnector(ctx, cfg)
}

func loadConfiguration(path string) (*application.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := application.DefaultConfig()
		return &cfg, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return application.LoadConfiguration(f)
}

func seedCatalog(ctx context.Context, catalog *database.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return catalog.Seed(ctx, f)
}

func setupRouter(ctx context.Context, serviceName string, events http.Handler, catalog api.Catalog) *chi.Mux {
	return api.RegisterHandlers(ctx, router.New(serviceName), events, catalog)
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
