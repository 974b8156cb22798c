package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkrsna/nse-advisor/internal/agents"
	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
	"github.com/mkrsna/nse-advisor/internal/market"
	"github.com/mkrsna/nse-advisor/internal/server"
	"github.com/mkrsna/nse-advisor/internal/telegram"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateServer(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("starting advisord", "model", cfg.Groq.Model)

	llm := agents.NewGroqClient(cfg, log)

	var quotes agents.QuoteSource
	if cfg.Market.Enabled {
		quotes = market.NewClient(cfg, log)
		log.Info("live quotes enabled")
	}

	pipeline := agents.NewPipeline(llm, quotes, log)
	notifier := telegram.NewNotifier(cfg, log)
	srv := server.NewServer(pipeline, notifier, cfg, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	notifier.NotifyStatus("🤖 advisord started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}

	notifier.NotifyStatus("🛑 advisord stopped")
	log.Info("advisord stopped")
}
