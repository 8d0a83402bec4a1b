package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cleanselect/internal/config"
	"cleanselect/internal/dropdown"
	"cleanselect/internal/theme"
	"cleanselect/internal/trace"
	"cleanselect/internal/ui"
)

// errAborted is returned when the form is quit without submitting.
var errAborted = errors.New("aborted")

type runOptions struct {
	form       string
	logFile    string
	verbose    bool
	cellWidth  float64
	cellHeight float64
	overlay    config.Settings
}

// addOverlayFlags binds the per-run overlay overrides.
func addOverlayFlags(fs *pflag.FlagSet, s *config.Settings) {
	fs.StringVar(&s.Theme, "theme", "", `force the overlay theme: "light" or "dark"`)
	fs.StringVar(&s.Placeholder, "placeholder", "", "search field placeholder")
	fs.StringVar(&s.DarkHighlight, "dark-highlight", "", "highlight color for the dark theme")
	fs.StringVar(&s.LightHighlight, "light-highlight", "", "highlight color for the light theme")
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a form and print the submitted values",
		Long: `Run shows the form in the terminal. Submit with ctrl+s to print one
name=value line per field; quit with ctrl+c to exit without output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.form, "form", "f", "", "path to the TOML form file (required)")
	fs.StringVar(&opts.logFile, "log-file", "cleanselect.log", `log file, or "" to disable logging`)
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug detail")
	fs.Float64Var(&opts.cellWidth, "cell-width", 0, "layout units per terminal column")
	fs.Float64Var(&opts.cellHeight, "cell-height", 0, "layout units per terminal row")
	addOverlayFlags(fs, &opts.overlay)
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

// newLogger opens the log file. The alternate screen owns the terminal, so
// logs never go to stderr.
func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// cellMetrics resolves the cell size: defaults, then environment, then flags.
func cellMetrics(opts runOptions) (config.CellMetrics, error) {
	m, err := config.CellMetricsFromEnv(os.Getenv)
	if err != nil {
		return config.CellMetrics{}, err
	}
	if opts.cellWidth > 0 {
		m.Width = opts.cellWidth
	}
	if opts.cellHeight > 0 {
		m.Height = opts.cellHeight
	}
	return m, nil
}

func run(ctx context.Context, out io.Writer, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	form, err := config.LoadForm(opts.form)
	if err != nil {
		return err
	}
	metrics, err := cellMetrics(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logFile, opts.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown, err := trace.Setup(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("trace flush failed", "err", err)
		}
	}()

	view, err := ui.NewFormView(form, ui.FormOptions{
		Overrides: []config.Settings{config.EnvSettings(os.Getenv), opts.overlay},
		Metrics:   metrics,
		Dark:      theme.DetectDark(),
		Logger:    logger,
		Dropdown:  []dropdown.Option{dropdown.WithContext(ctx)},
	})
	if err != nil {
		return err
	}
	defer view.Close()

	logger.Info("form started", "form", opts.form, "fields", len(form.Fields))
	p := tea.NewProgram(ui.NewAppModel(view).AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return err
	}

	if !view.Submitted() {
		logger.Info("form aborted")
		return errAborted
	}
	for _, fv := range view.Values() {
		fmt.Fprintf(out, "%s=%s\n", fv.Name, fv.Value)
	}
	logger.Info("form submitted")
	return nil
}
