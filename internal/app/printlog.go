package app

import (
	"fmt"
	"io"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logtail"
)

// PrintLog writes the last lines of roster's log file to w in the same
// compact form the activity view uses.
func PrintLog(w io.Writer, configPath string, lines int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	raw, err := logtail.Read(cfg.LogFile, lines)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	if len(raw) == 0 {
		_, err := fmt.Fprintf(w, "no log entries in %s\n", cfg.LogFile)
		return err
	}
	for _, line := range logtail.FormatLines(raw) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
