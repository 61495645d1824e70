package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "listings-gateway/internal/adapters/logger"
	postgres_adapter "listings-gateway/internal/adapters/postgres"
	rabbitmq_adapter "listings-gateway/internal/adapters/rabbitmq"
	"listings-gateway/internal/adapters/renetfetcher"
	"listings-gateway/internal/adapters/rest"
	"listings-gateway/internal/configs"
	"listings-gateway/internal/core/port"
	"listings-gateway/internal/core/usecase"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	enquiryQueue *rabbitmq_adapter.RabbitMQEnquiryQueueAdapter
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so everything after can report failures properly.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentClientConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Persistence.
	dbPool, err := postgres_adapter.NewClient(context.Background(), postgres_adapter.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	enquiryRepo, err := postgres_adapter.NewPostgresEnquiryRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres enquiry repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres enquiry repository: %w", err)
	}

	// Messaging is optional: without a broker, enquiries are persisted but
	// no events are published.
	var enquiryQueue *rabbitmq_adapter.RabbitMQEnquiryQueueAdapter
	var queuePort port.EnquiryQueuePort
	if appConfig.RabbitMQ.Enabled {
		enquiryQueue, err = rabbitmq_adapter.NewRabbitMQEnquiryQueueAdapter(appConfig.RabbitMQ.URL, appConfig.RabbitMQ.Exchange)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		queuePort = enquiryQueue
		appLogger.Info("RabbitMQ enquiry publisher initialized.", nil)
	}

	// Upstream listings source.
	fetcher, err := renetfetcher.NewRenetFetcherAdapter(appConfig.Upstream.BaseURL, appConfig.Upstream.Token, renetfetcher.Options{
		UserAgent:     appConfig.Upstream.UserAgent,
		Timeout:       time.Duration(appConfig.Upstream.TimeoutSeconds) * time.Second,
		RetryAttempts: appConfig.Upstream.RetryAttempts,
		RetryBackoff:  time.Duration(appConfig.Upstream.RetryBackoffMs) * time.Millisecond,
		BrandNames:    appConfig.Upstream.BrandNames,
	})
	if err != nil {
		appLogger.Error("Failed to create upstream fetcher", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create upstream fetcher: %w", err)
	}

	heuristics, err := configs.LoadHeuristics(appConfig.HeuristicsFile)
	if err != nil {
		appLogger.Error("Failed to load keyword heuristics", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to load keyword heuristics: %w", err)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// Use cases.
	fetchIndexUC := usecase.NewFetchListingsIndexUseCase(fetcher, heuristics, usecase.GatewayOptions{
		AgencyID:        appConfig.Upstream.AgencyID,
		AgencyAgents:    appConfig.Upstream.AgencyAgents,
		DefaultPageSize: appConfig.Upstream.DefaultPageSize,
		MaxPageSize:     appConfig.Upstream.MaxPageSize,
		MaxFetchPages:   appConfig.Upstream.MaxFetchPages,
	})
	fetchByIDUC := usecase.NewFetchListingByIDUseCase(fetcher)
	fetchAuctionsUC := usecase.NewFetchAuctionListingsUseCase(fetchIndexUC, heuristics)
	fetchAuctionByIDUC := usecase.NewFetchAuctionByIDUseCase(fetchIndexUC, heuristics)
	fetchOpenHomesUC := usecase.NewFetchOpenHomesUseCase(fetchIndexUC)
	fetchAgentsUC := usecase.NewFetchAgentsUseCase(fetcher)
	fetchAgentByIDUC := usecase.NewFetchAgentByIDUseCase(fetcher)
	submitEnquiryUC := usecase.NewSubmitEnquiryUseCase(enquiryRepo, queuePort)

	// REST API server.
	listingsHandler := rest.NewListingsHandler(fetchIndexUC, fetchByIDUC, appConfig.Upstream.DefaultPageSize, appConfig.Upstream.MaxPageSize)
	auctionsHandler := rest.NewAuctionsHandler(fetchAuctionsUC, fetchAuctionByIDUC, appConfig.Upstream.MaxPageSize)
	openHomesHandler := rest.NewOpenHomesHandler(fetchOpenHomesUC, appConfig.Upstream.DefaultPageSize, appConfig.Upstream.MaxPageSize)
	agentsHandler := rest.NewAgentsHandler(fetchAgentsUC, fetchAgentByIDUC, fetchIndexUC, appConfig.Upstream.DefaultPageSize, appConfig.Upstream.MaxPageSize)
	categoriesHandler := rest.NewCategoriesHandler()
	enquiriesHandler := rest.NewEnquiriesHandler(submitEnquiryUC)

	apiServer := rest.NewServer(appConfig.Rest.PORT,
		listingsHandler, auctionsHandler, openHomesHandler,
		agentsHandler, categoriesHandler, enquiriesHandler,
		appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		enquiryQueue: enquiryQueue,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts all application components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.enquiryQueue != nil {
			if err := a.enquiryQueue.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout, fluent may already be unreachable.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
