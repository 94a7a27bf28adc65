package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vectorprime/pkg/analysis"
	"vectorprime/pkg/chat"
	"vectorprime/pkg/config"
	"vectorprime/pkg/logging"
	"vectorprime/pkg/ui"
	"vectorprime/pkg/version"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "path to config.json")
	plain := flag.Bool("plain", false, "line-based chat instead of the dashboard")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info("vectorprime"))
		return
	}

	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The dashboard owns the terminal, so logs only go to the file.
	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	slog.Info("dashboard_started", "version", version.Summary(), "analyzer", cfg.Analyzer.Endpoint)

	client := analysis.NewClient(cfg.Analyzer.Endpoint)
	client.SetTimeout(time.Duration(cfg.Analyzer.TimeoutSeconds) * time.Second)

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runLineMode(cfg, client, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	wd, _ := os.Getwd()
	model := ui.NewModel(ui.Options{
		Config:       cfg,
		Analyzer:     client,
		Clock:        chat.SystemClock(),
		WorkDir:      wd,
		ClipboardOut: os.Stdout,
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		slog.Error("dashboard_exit", "error", err)
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
