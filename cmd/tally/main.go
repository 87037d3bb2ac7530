package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/five82/tally/internal/app"
	"github.com/five82/tally/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/tally/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	logFile := flag.String("log", "", "log file path (optional, overrides log_file in config)")
	flag.Usage = usage
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogFile:    *logFile,
	}

	var err error
	switch args := flag.Args(); {
	case len(args) == 0:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = errors.New("stdout is not a terminal; use a subcommand (greet, fact) for non-interactive use")
			break
		}
		err = app.Run(ctx, opts)
	case args[0] == "greet":
		err = app.RunCommand(ctx, opts, commands.CommandGreet, args[1:], os.Stdout)
	case args[0] == "fact":
		err = app.RunCommand(ctx, opts, commands.CommandGetRandomData, args[1:], os.Stdout)
	default:
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: tally [flags] [greet <name> | fact]\n\n")
	fmt.Fprintf(out, "Without a subcommand, tally starts the interactive UI.\n\nFlags:\n")
	flag.PrintDefaults()
}
