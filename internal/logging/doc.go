// Package logging provides structured logging for profileform.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent by default so the terminal form and the check command own the
// screen; set PROFILEFORM_LOG_LEVEL (or pass --log-level) to turn it on.
//
// # Log Levels
//
//   - Debug: Keystroke validation results, dropped highlight callbacks
//   - Info: Submissions, program start and exit
//   - Warn: Recoverable problems (unreadable .env, config fallbacks)
//   - Error: Failures returned to the CLI
//
// # Structured Logging
//
//	logging.Info("Config loaded",
//	    zap.String("path", path),
//	    zap.Duration("highlight_delay", cfg.HighlightDelay()),
//	)
//
// # Domain Helpers
//
//	logging.LogFieldChange("age", "Invalid", "Please enter a valid number")
//	logging.LogSubmission(true, "", zap.String("category", "Adult"))
//
// # Configuration
//
//	if err := logging.InitializeWithFile("debug", "/tmp/profileform.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive form runs on the alternate screen, so give it a log file
// (--log-file or PROFILEFORM_LOG_FILE) when logging is enabled.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are not; call them once at startup.
package logging
