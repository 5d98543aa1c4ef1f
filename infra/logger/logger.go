package logger

import (
	corelogger "github.com/gridfit/gridfit/core/logger"

	"github.com/gridfit/gridfit/config"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The environment is detected via
// the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewWithConfig returns a Logger honouring the configured level and format.
func NewWithConfig(component string, cfg config.LoggingConfig) Logger {
	return NewZerologLoggerWithConfig(component, cfg)
}
