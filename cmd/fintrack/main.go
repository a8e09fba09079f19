package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/logging"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	// Load .env for local use; variables already set win
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	logger := logging.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithRequestID(ctx, uuid.NewString())

	a, err := newApp(cfg, logger, stdout)
	if err != nil {
		logger.Error("failed to start", logging.FieldError, err)
		return 1
	}
	defer a.Close()

	if err := a.run(ctx, args); err != nil {
		logger.Error("command failed", "command", args[0], logging.FieldError, err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "fintrack - personal finance reports")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  fintrack <command> [options]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  sync        Refresh the local snapshot from the backend")
	fmt.Fprintln(w, "  report      Print a report as JSON")
	fmt.Fprintln(w, "  dashboard   Print the all-time overview as JSON")
	fmt.Fprintln(w, "  download    Save the spreadsheet export")
	fmt.Fprintln(w, "  categories  List categories or resolve one by name")
	fmt.Fprintln(w, "  goals       Print the savings goals overview")
	fmt.Fprintln(w, "  portfolio   Print the investment portfolio")
	fmt.Fprintln(w, "  purge       Clear the local cache")
	fmt.Fprintln(w, "  help        Show this help message")
	fmt.Fprintln(w, "\nRun 'fintrack <command> -h' for the options of a command.")
}
