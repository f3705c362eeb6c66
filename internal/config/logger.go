package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the level named by
// PONG_LOG_LEVEL. An unknown level falls back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(LogLevel())
	if err != nil {
		logger.Warn("unknown log level, using info", "level", LogLevel())
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
