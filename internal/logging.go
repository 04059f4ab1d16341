package internal

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	logger_adapter "homenest/internal/adapters/logger"
	"homenest/internal/configs"
	"homenest/internal/core/port"
	fluentlogger "homenest/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// loggers is the logger stack shared by both binaries.
type loggers struct {
	base         port.LoggerPort
	fluentClient *fluent.Fluent
	active       int
}

func parseLogLevel(levelStr string) slog.Level {
	level, ok := logger_adapter.ParseLevel(levelStr)
	if !ok {
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
	}
	return level
}

// buildLoggers creates the slog writer logger, the optional Fluent Bit logger and the multilogger over them.
func buildLoggers(cfg *configs.AppConfig, out io.Writer, useColor bool) (*loggers, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   out,
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.IsJSON,
		UseColor: useColor,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if cfg.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	return &loggers{
		base:         multiLogger.WithFields(port.Fields{"service_name": cfg.AppName}),
		fluentClient: fluentClient,
		active:       len(activeLoggers),
	}, nil
}

func (l *loggers) close() {
	if l.fluentClient != nil {
		if err := l.fluentClient.Close(); err != nil {
			// fluent may already be unreachable
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
