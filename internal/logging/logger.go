package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PROFILEFORM_LOG_LEVEL"

// LogFileEnvVar names a file to write logs to instead of stderr.
const LogFileEnvVar = "PROFILEFORM_LOG_FILE"

// Initialize creates a new logger with the specified level, writing to stderr.
// If level is empty, it checks PROFILEFORM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithFile(level, "")
}

// InitializeWithFile is Initialize with an explicit output file. The
// interactive form uses this so log lines do not land on the alternate screen.
// An empty path falls back to PROFILEFORM_LOG_FILE, then stderr. Stdout is
// left to command output such as check --format json.
func InitializeWithFile(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No ANSI escapes in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the PROFILEFORM_LOG_LEVEL
// and PROFILEFORM_LOG_FILE environment variables.
func InitializeFromEnv() error {
	return InitializeWithFile("", "")
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFieldChange logs the live validation result for a keystroke
func LogFieldChange(field, status, reason string) {
	fields := []zap.Field{
		zap.String("field", field),
		zap.String("status", status),
	}
	if reason != "" {
		fields = append(fields, zap.String("reason", reason))
	}
	GetLogger().Debug("Field changed", fields...)
}

// LogSubmission logs the outcome of a form submission
func LogSubmission(accepted bool, reason string, extra ...zap.Field) {
	fields := append([]zap.Field{zap.Bool("accepted", accepted)}, extra...)
	if accepted {
		GetLogger().Info("Submission accepted", fields...)
		return
	}
	GetLogger().Info("Submission rejected", append(fields, zap.String("reason", reason))...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
