package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/termlife/game"
	"github.com/sheikhrachel/termlife/model"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, fromFile, err := loadOptions(args)
	if err != nil {
		return err
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.Color)
	runner, err := game.NewRunner(config, renderer)
	if err != nil {
		return err
	}
	displayGameInfo(renderer, config, runner, fromFile)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := runGame(ctx, runner, renderer)
	if err != nil {
		return err
	}

	displayFinalStats(renderer, result, runner.Stats())
	return nil
}
