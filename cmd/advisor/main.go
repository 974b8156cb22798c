package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
	"github.com/mkrsna/nse-advisor/internal/recommend"
	"github.com/mkrsna/nse-advisor/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	logPath := flag.String("log", "advisor.log", "path to log file (stdout belongs to the UI)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logger.NewWithWriter(logFile, cfg.Logging.Level)
	log.Info("starting advisor", "backend", cfg.Backend.URL)

	client := recommend.NewClient(cfg, log)
	ctrl := recommend.NewController(client, log)

	p := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("ui error", "error", err)
		fmt.Fprintf(os.Stderr, "ui error: %v\n", err)
		os.Exit(1)
	}

	log.Info("advisor stopped")
}
