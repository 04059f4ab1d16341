package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"homenest/internal/adapters/listing_api_client"
	"homenest/internal/adapters/tui"
	"homenest/internal/configs"
	"homenest/internal/contextkeys"
	"homenest/internal/core/browse"
	"homenest/internal/core/port"
	"homenest/internal/core/usecase"
)

// BrowserOptions are the command-line options of the terminal browser.
type BrowserOptions struct {
	Plain   bool
	Initial browse.State
}

// BrowserApp is the terminal listing browser.
type BrowserApp struct {
	config  *configs.AppConfig
	opts    BrowserOptions
	loggers *loggers
	logger  port.LoggerPort
	logFile *os.File
	client  *listing_api_client.Client
}

// NewBrowserApp logs to a file so log lines never draw over the UI.
func NewBrowserApp(opts BrowserOptions) (*BrowserApp, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	if os.Getenv("APP_NAME") == "" {
		appConfig.AppName = "homenest-tui"
	}

	var logOut io.Writer = io.Discard
	var logFile *os.File
	if appConfig.TUI.LogFile != "" {
		logFile, err = os.OpenFile(appConfig.TUI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", appConfig.TUI.LogFile, err)
		}
		logOut = logFile
	}

	lg, err := buildLoggers(appConfig, logOut, false)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	appLogger := lg.base.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": lg.active, "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	return &BrowserApp{
		config:  appConfig,
		opts:    opts,
		loggers: lg,
		logger:  appLogger,
		logFile: logFile,
		client:  listing_api_client.NewClient(appConfig.ApiClient.ListingServiceURL, appConfig.ApiClient.Timeout),
	}, nil
}

// Run shows the interactive browser, or prints one page when stdout is not a terminal or plain mode is requested.
func (a *BrowserApp) Run() error {
	defer func() {
		a.logger.Info("Terminal browser stopped.", nil)
		a.loggers.close()
		if a.logFile != nil {
			a.logFile.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = contextkeys.ContextWithLogger(ctx, a.loggers.base)

	stdoutFd := int(os.Stdout.Fd())
	if a.opts.Plain || !tui.IsInteractive(stdoutFd) {
		a.logger.Info("Printing one page in plain mode", port.Fields{"query": a.opts.Initial.Query().Encode()})
		browseUC := usecase.NewBrowsePropertiesUseCase(a.client, a.config.Browse.PageSize)
		return tui.PrintPage(ctx, os.Stdout, browseUC, a.opts.Initial, tui.TerminalWidth(stdoutFd))
	}

	a.logger.Info("Starting interactive browser", nil)
	return tui.Run(ctx, tui.Options{
		Searcher: a.client,
		Details:  usecase.NewGetPropertyDetailsUseCase(a.client, a.client),
		PageSize: a.config.Browse.PageSize,
		Initial:  a.opts.Initial,
	}, os.Stdin, os.Stdout)
}
