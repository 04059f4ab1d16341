package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homenest/internal/adapters/identity_client"
	token_adapter "homenest/internal/adapters/jwt"
	"homenest/internal/adapters/listing_api_client"
	rabbitmq_adapter "homenest/internal/adapters/rabbitmq"
	"homenest/internal/adapters/web"
	"homenest/internal/configs"
	"homenest/internal/core/port"
	"homenest/internal/core/usecase"
	"homenest/pkg/rabbitmq/rabbitmq_common"
	"homenest/pkg/rabbitmq/rabbitmq_producer"
)

const shutdownTimeout = 15 * time.Second

// App is the HomeNest web server.
type App struct {
	config      *configs.AppConfig
	webServer   *web.Server
	loggers     *loggers
	logger      port.LoggerPort
	connManager *rabbitmq_common.ConnectionManager
	publisher   *rabbitmq_producer.Publisher
}

// NewApp is the composition root of the web server.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	if err := appConfig.ValidateWeb(); err != nil {
		return nil, fmt.Errorf("invalid web configuration: %w", err)
	}

	lg, err := buildLoggers(appConfig, os.Stdout, !appConfig.StdoutLogger.IsJSON)
	if err != nil {
		return nil, err
	}
	baseLogger := lg.base

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": lg.active, "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Outgoing adapters
	listingClient := listing_api_client.NewClient(appConfig.ApiClient.ListingServiceURL, appConfig.ApiClient.Timeout)

	identityClient, err := identity_client.NewClient(appConfig.ApiClient.IdentityServiceURL, appConfig.ApiClient.IdentityAPIKey, appConfig.ApiClient.Timeout)
	if err != nil {
		appLogger.Error("Failed to create identity client", err, nil)
		lg.close()
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	tokenService, err := token_adapter.NewSessionTokenService(appConfig.Session.Secret)
	if err != nil {
		appLogger.Error("Failed to create session token service", err, nil)
		lg.close()
		return nil, fmt.Errorf("failed to create session token service: %w", err)
	}

	application := &App{config: appConfig, loggers: lg, logger: appLogger}

	var activityPublisher port.ActivityPublisherPort = rabbitmq_adapter.NoopActivityPublisher{}
	if appConfig.RabbitMQ.Enabled {
		activityPublisher, err = application.initActivityPublisher(baseLogger)
		if err != nil {
			lg.close()
			return nil, err
		}
	}
	appLogger.Info("All outgoing adapters initialized.", port.Fields{"activity_events": appConfig.RabbitMQ.Enabled})

	ttl := appConfig.Session.TTL
	uc := web.UseCases{
		Browse:          usecase.NewBrowsePropertiesUseCase(listingClient, appConfig.Browse.PageSize),
		Featured:        usecase.NewGetFeaturedPropertiesUseCase(listingClient),
		Details:         usecase.NewGetPropertyDetailsUseCase(listingClient, listingClient),
		AddProperty:     usecase.NewAddPropertyUseCase(listingClient, activityPublisher),
		UpdateProperty:  usecase.NewUpdatePropertyUseCase(listingClient, activityPublisher),
		DeleteProperty:  usecase.NewDeletePropertyUseCase(listingClient, activityPublisher),
		MyProperties:    usecase.NewGetMyPropertiesUseCase(listingClient),
		PostReview:      usecase.NewPostReviewUseCase(listingClient, listingClient, activityPublisher),
		MyReviews:       usecase.NewGetMyReviewsUseCase(listingClient),
		Dashboard:       usecase.NewGetDashboardUseCase(listingClient, listingClient),
		Register:        usecase.NewRegisterUserUseCase(identityClient, tokenService, ttl),
		Login:           usecase.NewLoginUserUseCase(identityClient, tokenService, ttl),
		FederatedLogin:  usecase.NewFederatedLoginUseCase(identityClient, tokenService, ttl),
		ValidateSession: usecase.NewValidateSessionUseCase(tokenService),
	}
	appLogger.Info("All use cases initialized.", nil)

	renderer, err := web.NewRenderer()
	if err != nil {
		appLogger.Error("Failed to parse page templates", err, nil)
		application.closeResources()
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	handlers := web.NewHandlers(uc, renderer, web.HandlersConfig{
		Cookie: web.SessionCookie{
			Name:   appConfig.Session.CookieName,
			Secure: appConfig.Session.CookieSecure,
			TTL:    ttl,
		},
		GoogleClientID: appConfig.Google.ClientID,
		PublicURL:      appConfig.Rest.PublicURL,
	})
	application.webServer = web.NewServer(web.ServerConfig{
		Port:               appConfig.Rest.PORT,
		CORSAllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
	}, handlers, baseLogger)
	appLogger.Info("Web server configured.", nil)

	return application, nil
}

func (a *App) initActivityPublisher(baseLogger port.LoggerPort) (port.ActivityPublisherPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerCfg := rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}
	publisher, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		a.logger.Error("Failed to create activity producer", err, nil)
		connManager.Close()
		a.connManager = nil
		return nil, fmt.Errorf("failed to create activity producer: %w", err)
	}
	a.publisher = publisher

	adapter, err := rabbitmq_adapter.NewActivityQueueAdapter(publisher)
	if err != nil {
		a.closeResources()
		return nil, err
	}
	return adapter, nil
}

func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing activity producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
	}
}

// Run serves until SIGINT/SIGTERM or a server failure, then shuts down gracefully.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.webServer.Stop(ctx); err != nil {
			a.logger.Error("Error during web server shutdown", err, nil)
		}

		a.closeResources()
		a.logger.Info("Application shut down gracefully.", nil)
		a.loggers.close()
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.webServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.PORT})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}
