package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tally/internal/commands"
	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/facts"
	"github.com/five82/tally/internal/prefs"
	"github.com/five82/tally/internal/ui"
)

// Options configure the Tally application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tally/prefs.toml
	LogFile    string // overrides the config's log_file when set
}

// Run boots the Tally TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, svc, closeLog, err := setup(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs: %v (using defaults)", err)
	}

	log.Printf("tally starting, cat facts from %s, advice from %s", cfg.CatFactURL, cfg.AdviceURL)
	defer log.Printf("tally stopped")

	return ui.Run(ui.Options{
		Context:   ctx,
		Service:   svc,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
	})
}

// RunCommand invokes one command by name without starting the UI and writes
// its result to w. args are the positional CLI arguments.
func RunCommand(ctx context.Context, opts Options, name string, args []string, w io.Writer) error {
	_, svc, closeLog, err := setup(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	raw, err := commandArgs(name, args)
	if err != nil {
		return err
	}
	out, err := svc.Invoke(ctx, name, raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// commandArgs turns positional arguments into the JSON arguments a command
// expects. Unknown names pass through so Invoke can report them.
func commandArgs(name string, args []string) (json.RawMessage, error) {
	switch name {
	case commands.CommandGreet:
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: tally greet <name>")
		}
		return json.Marshal(map[string]string{"name": args[0]})
	case commands.CommandGetRandomData:
		if len(args) != 0 {
			return nil, fmt.Errorf("usage: tally fact")
		}
		return nil, nil
	default:
		return nil, nil
	}
}

// setup loads configuration, redirects the standard logger to the log file
// and builds the command layer.
func setup(opts Options) (config.Config, *commands.Service, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithLogFile(opts.LogFile)

	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	client, err := facts.NewClient(cfg.CatFactURL, cfg.AdviceURL)
	if err != nil {
		closeLog()
		return config.Config{}, nil, nil, fmt.Errorf("init facts client: %w", err)
	}
	return cfg, commands.New(client), closeLog, nil
}

// openLog sends the standard logger to path so log output never lands on the
// terminal the UI is drawing on.
func openLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
