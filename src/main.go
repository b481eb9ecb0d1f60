// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the chatbot application. Loads configuration,
// then hands stdin and stdout to a console session backed by the chatbot package.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/gochat/src/chatbot"
	"github.com/christimahu/dev/blueprints/gochat/src/config"
	"github.com/christimahu/dev/blueprints/gochat/src/console"
	"github.com/christimahu/dev/blueprints/gochat/src/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run wires config, logger, bot and console together and returns the exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	name := flag.String("name", "", "Bot name (overrides bot.name from config; -name= gives an empty name)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		return 1
	}
	if flagSet("name") {
		cfg.Bot.Name = *name
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		return 1
	}
	defer log.Sync() //nolint: errcheck

	log.Debug("configuration loaded",
		zap.String("path", *configPath),
		zap.String("bot_name", cfg.Bot.Name),
		zap.String("log_level", cfg.Log.Level))

	bot := chatbot.NewBot(cfg.Bot.Name)
	session := console.NewSession(bot, os.Stdin, os.Stdout, log)

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("chat session failed", zap.Error(err))
		return 1
	}
	return 0
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
