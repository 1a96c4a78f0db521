// Package logging sets up spindle's file-based structured logger. Output
// never goes to stdout/stderr: the TUI owns the terminal, so log lines
// would otherwise corrupt the alternate screen buffer.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Setup opens (creating if needed) today's log file under the XDG state
// directory and returns a logger writing to it at level. This mirrors
// the daily-rolling file appender the original player used, one file per
// calendar day, reopened fresh on the first run of a new day.
func Setup(level string) (*log.Logger, func() error, error) {
	name := time.Now().Format("2006-01-02") + ".log"
	path, err := xdg.StateFile(filepath.Join("spindle", "logs", name))
	if err != nil {
		return nil, nil, fmt.Errorf("logging: resolve log path: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	logger.SetLevel(parseLevel(level))

	return logger, f.Close, nil
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
