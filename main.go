package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"commitkit.dev/cli/internal/core/config"
	"commitkit.dev/cli/internal/interfaces/cli"
)

func main() {
	container := cli.NewCLIContainer("", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	rootCmd := cli.NewRootCommand(container)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ck: %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}
}

// errorKind labels the failure for the structured kind+message contract.
func errorKind(err error) string {
	var (
		validationErr *config.ValidationError
		parseErr      *config.ParseError
		pathErr       *config.PathError
		ioErr         *config.IOError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation error"
	case errors.As(err, &parseErr):
		return "parse error"
	case errors.As(err, &pathErr):
		return "path error"
	case errors.As(err, &ioErr):
		return "io error"
	default:
		return "error"
	}
}
