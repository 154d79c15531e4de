package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tripods/grid"
	"github.com/katalvlaran/tripods/gridfile"
	"github.com/katalvlaran/tripods/internal/config"
	"github.com/katalvlaran/tripods/internal/logging"
	"github.com/katalvlaran/tripods/placement"
	"github.com/katalvlaran/tripods/report"
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	configPath string
	count      int
	format     string
	logLevel   string
	verbosity  int
	quiet      bool
	plotPath   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tripods FILE",
		Short: "Find the best tripod placements on a grid of numbers",
		Long: `tripods reads a grid of integers and places tripods on it. A tripod sits on
one cell and rests three legs on three of its four neighbors; the sum of those
cells is its reading. The command reports the requested number of placements
with the highest readings, best first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file (default: ./"+config.DefaultFile+" if present)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Number of tripods to place (prompted for when omitted)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: human or json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all logs")
	cmd.Flags().StringVar(&opts.plotPath, "plot", "", "Write a chart of all placements by rank to this file (.png, .svg, .pdf)")

	cmd.AddCommand(newGenCmd())
	return cmd
}

func runPlace(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.format, cfg)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts, cfg)

	values, err := gridfile.Load(path)
	if err != nil {
		return err
	}
	g, err := grid.New(values)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("grid loaded", "path", path, "rows", g.Rows(), "cols", g.Cols(), "capacity", placement.Capacity(g))

	out := cmd.OutOrStdout()
	if format == report.FormatHuman {
		if err := gridfile.Render(out, g, cfg.Limits()); err != nil {
			return err
		}
	}

	count := opts.count
	if !cmd.Flags().Changed("count") {
		if count, err = promptCount(cmd.InOrStdin(), out); err != nil {
			return err
		}
	}

	res, err := placement.Select(g, count)
	if errors.Is(err, placement.ErrCapacityExceeded) && format == report.FormatHuman {
		fmt.Fprintln(out, "Too many tripods!")
	}
	if err != nil {
		return err
	}
	logger.Debug("placements selected", "count", count, "total", res.Total)

	if err := report.Write(out, res, format); err != nil {
		return err
	}

	if opts.plotPath != "" {
		if err := report.Plot(opts.plotPath, res.Ranked, count); err != nil {
			return err
		}
		logger.Info("plot written", "path", opts.plotPath)
	}
	return nil
}

// resolveFormat determines the effective output format.
// Precedence: CLI flag > config (file and TRIPODS_FORMAT) > human
func resolveFormat(flag string, cfg *config.Config) (report.Format, error) {
	if flag != "" {
		return report.ParseFormat(flag)
	}
	return report.ParseFormat(cfg.Format)
}

// newLogger builds the command logger. --quiet discards everything; otherwise
// verbosity flags win over --log-level, which wins over the configured level.
func newLogger(w io.Writer, opts *rootOptions, cfg *config.Config) *slog.Logger {
	if opts.quiet {
		return logging.NewDiscardLogger()
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	return logging.NewLogger(w, logging.LevelFromVerbosity(opts.verbosity, logging.LevelFromString(level)))
}

// promptCount asks for the number of tripods on out and reads one line from in.
func promptCount(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, "Number of tripods: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("read tripod count: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("tripod count %q: %w", strings.TrimSpace(line), err)
	}
	return n, nil
}
