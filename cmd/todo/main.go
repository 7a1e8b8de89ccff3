package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/cli"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/idgen"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/service"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "Interactive todo list backed by a JSON file",
		Long: `todo keeps a personal task list in a single JSON document.

Settings come from, in increasing priority: built-in defaults, the TOML
config file (todo.toml), TODO_* environment variables, and flags.

Environment:
  TODO_DATA_FILE   path of the JSON document
  TODO_LOG_LEVEL   debug, info, warn or error
  TODO_LOG_FILE    log file path, "-" for stderr
  TODO_THEME       classic, neon or mono
  NO_COLOR         disable colored table output`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := root.Flags()
	f.String("config", "", "config file (default todo.toml if present)")
	f.String("data", "", "path of the JSON data file")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.String("log-file", "", `log file path, "-" for stderr`)
	f.String("theme", "", "color theme: classic, neon, mono")
	return root
}

// loadConfig resolves the config and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for name, dst := range map[string]*string{
		"data":      &cfg.DataFile,
		"log-level": &cfg.LogLevel,
		"log-file":  &cfg.LogFile,
		"theme":     &cfg.Theme,
	} {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	if !slices.Contains(ui.Themes(), strings.ToLower(cfg.Theme)) {
		logger.Warn("unknown theme, using classic", "theme", cfg.Theme)
	}
	ui.SetTheme(cfg.Theme)
	if os.Getenv("NO_COLOR") != "" {
		ui.SetColorForcing(false, true)
	}
	logger.Info("starting", "data", cfg.DataFile, "config", cfg.ConfigFile, "theme", ui.Current().Name)

	store := jsonstore.New(jsonstore.Config{
		Path:   cfg.DataFile,
		Logger: logger.WithPrefix("store"),
	})
	svc := service.New(store, idgen.UUID{}, logger.WithPrefix("service"))
	app := cli.New(svc, ui.NewTerminal(), logger.WithPrefix("cli"))

	err = app.Start(ctx)
	logger.Info("stopped", "err", err)
	return err
}
