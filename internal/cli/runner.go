package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// ErrUsage marks bad flags or arguments (exit code 2).
var ErrUsage = errors.New("usage")

// Options tune the session from root flags. Flags left unset fall back
// to the config file.
type Options struct {
	ConfigPath string
	Theme      string
	Filter     string
	LogFile    string
	NoColor    bool
}

type runner struct {
	opts        Options
	out, errOut io.Writer

	// program drives the model until it quits; replaced in tests.
	program func(tea.Model) error
}

func newRunner() *runner {
	return &runner{
		out:    os.Stdout,
		errOut: os.Stderr,
		program: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// Run dispatches args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int { return newRunner().execute(args) }

func (r *runner) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := r.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(r.out)
	cmd.SetErr(r.errOut)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Messenger{Out: r.out, Err: r.errOut, Theme: ui.Default()}.Fail(err.Error())
	if errors.Is(err, ErrUsage) || errors.Is(err, config.ErrInvalid) {
		fmt.Fprintln(r.errOut)
		fmt.Fprint(r.errOut, cmd.UsageString())
		return 2
	}
	return 1
}

func (r *runner) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A single-screen todo list for the terminal",
		Long: `todo opens an interactive todo list.

Type a title and press enter to add it. Press tab to move to the list,
where space toggles, d deletes, a marks everything complete and c clears
completed items. 1, 2 and 3 switch between All, Active and Completed.

Todos live in memory only and are gone when the program exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE:          func(cmd *cobra.Command, _ []string) error { return r.runTUI(cmd) },
	}

	f := cmd.Flags()
	f.StringVar(&r.opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/tada/config.yaml)")
	f.StringVar(&r.opts.Theme, "theme", "", "color theme: classic, neon or mono")
	f.StringVar(&r.opts.Filter, "filter", "", "initial filter: all, active or completed")
	f.StringVar(&r.opts.LogFile, "log-file", "", "write debug logs to this file")
	f.BoolVar(&r.opts.NoColor, "no-color", false, "disable colors")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), "todo "+Version)
		},
	})
	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, args[0])
	}
	return nil
}

// settings merges explicitly set flags over the loaded config.
func (r *runner) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(r.opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("theme") {
		cfg.Theme = r.opts.Theme
	}
	if f.Changed("filter") {
		cfg.Filter = r.opts.Filter
	}
	if f.Changed("log-file") {
		cfg.LogFile = r.opts.LogFile
	}
	return cfg, cfg.Validate()
}

func (r *runner) runTUI(cmd *cobra.Command) error {
	cfg, err := r.settings(cmd)
	if err != nil {
		return err
	}
	if r.opts.NoColor {
		ui.DisableColor()
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, _ := ui.ParseTheme(cfg.Theme)
	filter, _ := model.ParseFilter(cfg.Filter)

	todos := store.New(filter)
	defer todos.LogChanges(logger)()

	todo := tui.NewTodoApp(todos, tui.Options{
		Theme:       theme,
		Placeholder: cfg.Placeholder,
		CharLimit:   cfg.CharLimit,
		Logger:      logger,
	})
	defer todo.Close()

	logger.Info("starting", "theme", theme.Name, "filter", filter.String())
	if err := r.program(tui.NewApp(todo)); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("exit", "items", todos.Len(), "remaining", todos.RemainingCount())

	ui.Messenger{Out: r.out, Err: r.errOut, Theme: theme}.
		OK(fmt.Sprintf("%d of %d todos completed", todos.CompletedCount(), todos.Len()))
	return nil
}

// openLog returns a file logger, or a discarding one when no file is set.
func openLog(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	level, _ := cfg.Level()
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}
