// Package main is the entry point for the libpack CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/libpack/cmd/libpack/commands"
	"go.trai.ch/libpack/internal/adapters/logger"
	"go.trai.ch/libpack/internal/app"
	"go.trai.ch/libpack/internal/core/domain"
	_ "go.trai.ch/libpack/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], app.NewApp))
}

func run(args []string, factory commands.Factory) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Interface - CLI; components are built once flags are parsed
	cli := commands.New(factory)
	cli.SetArgs(args)

	// 2. Execution
	err := cli.Execute(ctx)
	if err == nil {
		return 0
	}

	code := commands.ExitCode(err)
	if code == commands.ExitInterrupted {
		_, _ = os.Stderr.WriteString("\nInterrupted.\n")
		return code
	}

	if components := cli.Components(); components != nil {
		components.Logger.Error(err)
	} else {
		// Logger is not available yet if initialization failed
		logger.New(domain.LogLevelInfo).Error(err)
	}
	return code
}
