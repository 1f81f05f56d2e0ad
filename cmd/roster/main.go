package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/roster/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override roster config path (optional)")
	recordsPath := flag.String("records", "", "patient file to show: .yaml, .toml, .json or .vcf (optional, defaults to the sample roster)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	reloadSeconds := flag.Int("reload", 0, "records reload interval in seconds (optional, defaults to 2s)")
	logLines := flag.Int("log", 0, "print the last N lines of the roster log and exit")
	flag.Parse()

	if *logLines > 0 {
		if err := app.PrintLog(os.Stdout, *configPath, *logLines); err != nil {
			fmt.Fprintf(os.Stderr, "roster: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		RecordsPath: *recordsPath,
		PrefsPath:   *prefsPath,
	}
	if reload := *reloadSeconds; reload > 0 {
		opts.ReloadEvery = reload
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}
