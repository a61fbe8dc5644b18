package logger

import (
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-checksum/internal/common/fsutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger with map-based field helpers
type Logger struct {
	*zap.SugaredLogger
}

// LoggerConfig contains configuration for the logger
type LoggerConfig struct {
	Debug     bool   // Enable debug level logging
	LogFormat string // "json" or "human"
	LogLevel  string // Minimum level when Debug is off
	LogFile   string // Path to log file (optional)
}

// InitLogger builds a logger from the provided configuration. Logs go to
// stderr so that stdout only carries checksum output.
func InitLogger(config LoggerConfig) (*Logger, error) {
	var zapConfig zap.Config

	// Configure log format
	if config.LogFormat == "json" {
		zapConfig = zap.NewProductionConfig() // JSON logs for structured logging
	} else {
		zapConfig = zap.NewDevelopmentConfig()                                 // Human-readable logs with color
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder // Enables colored log levels
	}

	// Configure output paths
	outputPaths := []string{"stderr"}
	if config.LogFile != "" {
		logDir := filepath.Dir(config.LogFile)
		if err := fsutil.CreateDirIfNotExists(logDir); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		outputPaths = append(outputPaths, config.LogFile)
	}
	zapConfig.OutputPaths = outputPaths
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	// Set log level
	level := zap.WarnLevel
	if config.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
		}
		level = parsed
	}
	if config.Debug {
		level = zap.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &Logger{logger.Sugar()}, nil
}

// Log functions
func (l *Logger) LogInfo(message string, fields map[string]interface{}) {
	l.Infow(message, flattenFields(fields)...)
}

func (l *Logger) LogError(message string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["error"] = err.Error()
	l.Errorw(message, flattenFields(fields)...)
}

func (l *Logger) LogDebug(message string, fields map[string]interface{}) {
	l.Debugw(message, flattenFields(fields)...)
}

// WithFields returns a logger with multiple fields added to every log
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{l.With(flattenFields(fields)...)}
}

// Helper function to format key-value pairs for logging
func flattenFields(fields map[string]interface{}) []interface{} {
	var flat []interface{}
	for k, v := range fields {
		flat = append(flat, k, v)
	}
	return flat
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
