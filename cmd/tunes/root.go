package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/tunes/internal/adapter"
	"github.com/mmcdole/tunes/internal/adapter/source"
	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/service"
	"github.com/mmcdole/tunes/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app holds what every command needs once configuration is loaded
type app struct {
	v       *viper.Viper
	cfg     *adapter.Config
	logger  *slog.Logger
	logFile io.Closer
}

var (
	cfgFile string
	state   = &app{v: viper.New()}
)

var rootCmd = &cobra.Command{
	Use:   "tunes",
	Short: "tunes is a search-as-you-type client for the iTunes search API.",
	Long: `tunes opens a search box that queries the iTunes search API as you type.
Keystrokes are debounced: a request is only sent once the input has been
quiet for the configured window.

When stdin is not a terminal every input line is treated as a keystroke
and results are written to stdout as JSON lines.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if state.logFile != nil {
			_ = state.logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSearchService(cmd.Context())
		if err != nil {
			return err
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return runTUI(cmd.Context(), svc)
		}
		return runLines(cmd.Context(), svc, os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tunes/config.yaml)")
	flags.String("source", "", `search source: "itunes" or "catalog"`)
	flags.String("catalog", "", "catalog file for the catalog source")
	flags.Duration("quiet-window", 0, "delay after the last keystroke before searching")
	flags.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-file", "", "log file path")

	for key, flag := range map[string]string{
		"search.source":       "source",
		"catalog.file":        "catalog",
		"search.quiet_window": "quiet-window",
		"logging.level":       "log-level",
		"logging.file":        "log-file",
	} {
		if err := state.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// ExecuteContext runs the root command and exits on failure
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadApp(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if cmd == configInitCmd {
		// init may be asked to create the file it is pointed at
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := adapter.LoadConfig(state.v, path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	state.cfg = cfg

	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	state.logger = logger
	state.logFile = logFile
	slog.SetDefault(logger)

	logger.Info("starting tunes", "version", Version, "command", cmd.Name(), "source", cfg.Search.Source)
	return nil
}

// newSearchService wires the configured strategy behind a debouncer.
// Abandoned searches are rejected so callers waiting on them return.
func newSearchService(ctx context.Context) (*service.SearchService, error) {
	strategy, err := source.NewStrategy(state.cfg, state.logger)
	if err != nil {
		state.logger.Error("failed to create search source", "error", err)
		return nil, fmt.Errorf("failed to create search source: %w", err)
	}

	return service.NewSearchService(strategy, state.logger,
		autocomplete.WithQuietWindow(state.cfg.Search.QuietWindow),
		autocomplete.WithContext(ctx),
		autocomplete.WithAbandonedRejection(),
	), nil
}

func runTUI(ctx context.Context, svc *service.SearchService) error {
	model := tui.NewModel(svc, state.cfg.UI.MaxResults, state.logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	state.logger.Info("starting TUI")

	final, err := p.Run()
	if err != nil {
		state.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Selected() != nil {
		selected := m.Selected()
		fmt.Println(selected.DisplayTitle())
		if selected.URL != "" {
			fmt.Println(selected.URL)
		}
	}

	state.logger.Info("shutting down")
	return nil
}
