package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/alloygrid/internal/alloy"
	"github.com/san-kum/alloygrid/internal/board"
	"github.com/san-kum/alloygrid/internal/config"
	"github.com/san-kum/alloygrid/internal/puzzle"
	"github.com/san-kum/alloygrid/internal/sequence"
	"github.com/san-kum/alloygrid/internal/viz"
	"github.com/spf13/cobra"
)

var (
	interactive bool
	chartWidth  int
	exportPath  string
	settings    = config.Settings{LogLevel: "warn", Theme: "plain", RuleWidth: config.DefaultRuleWidth}
	logger      = slog.New(slog.DiscardHandler)
)

// main runs the alloygrid CLI. Schema mismatches between a puzzle and the
// instance end the process with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "alloygrid",
		Short:             "step through Alloy puzzle solutions",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	registry := puzzle.NewRegistry()
	for _, name := range registry.List() {
		showCmd := &cobra.Command{
			Use:   name + " [file]",
			Short: "show a " + name + " solution",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := registry.Get(name)
				if err != nil {
					return err
				}
				return show(cmd.OutOrStdout(), p, args[0])
			},
		}
		showCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "step through states one at a time")
		rootCmd.AddCommand(showCmd)
	}

	customCmd := &cobra.Command{
		Use:   "custom [definition.yaml] [file]",
		Short: "show a solution using a yaml puzzle definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), p, args[1])
		},
	}
	customCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "step through states one at a time")

	puzzlesCmd := &cobra.Command{
		Use:   "puzzles",
		Short: "list built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "puzzles:")
			for _, name := range registry.List() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	movesCmd := &cobra.Command{
		Use:   "moves [puzzle|definition.yaml] [file]",
		Short: "plot how many cells every move changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePuzzle(registry, args[0])
			if err != nil {
				return err
			}
			return moves(cmd.OutOrStdout(), p, args[1])
		},
	}
	movesCmd.Flags().IntVar(&chartWidth, "width", 60, "chart width")

	exportCmd := &cobra.Command{
		Use:   "export [puzzle]",
		Short: "print a built-in puzzle definition as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := config.GetPreset(args[0])
			if def == nil {
				return fmt.Errorf("%w: %s (available: %v)", puzzle.ErrUnknownPuzzle, args[0], config.ListPresets())
			}
			if exportPath != "" {
				if err := config.Save(exportPath, def); err != nil {
					return err
				}
				logger.Info("definition written", "puzzle", def.Name, "path", exportPath)
				return nil
			}
			return config.Encode(cmd.OutOrStdout(), def)
		},
	}
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "write the definition to a file instead of stdout")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes for interactive mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "themes:")
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(customCmd, puzzlesCmd, movesCmd, exportCmd, themesCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	lvl, err := s.Level()
	if err != nil {
		return err
	}
	settings = s
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return nil
}

func loadPuzzle(path string) (board.Puzzle, error) {
	def, err := config.Load(path)
	if err != nil {
		return board.Puzzle{}, fmt.Errorf("failed to load puzzle: %w", err)
	}
	return puzzle.Compile(def)
}

// resolvePuzzle accepts a built-in name or the path of a definition file.
func resolvePuzzle(registry *puzzle.Registry, arg string) (board.Puzzle, error) {
	p, err := registry.Get(arg)
	if err == nil {
		return p, nil
	}
	if _, statErr := os.Stat(arg); statErr != nil {
		return board.Puzzle{}, err
	}
	return loadPuzzle(arg)
}

func openDriver(p board.Puzzle, path string) (*sequence.Driver, error) {
	inst, err := alloy.ReadFile(path, alloy.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("instance parsed", "path", path, "relations", len(inst))

	b, err := board.New(inst, p)
	if err != nil {
		return nil, err
	}
	logger.Debug("board ready", "puzzle", p.Name, "coords", b.Index().Len(), "static", len(b.Static()))

	return sequence.New(inst, b,
		sequence.WithLogger(logger),
		sequence.WithRuleWidth(settings.RuleWidth),
	)
}

func show(out io.Writer, p board.Puzzle, path string) error {
	d, err := openDriver(p, path)
	if err != nil {
		return err
	}
	if interactive {
		return viz.Step(d, viz.GetTheme(settings.Theme))
	}

	w := bufio.NewWriter(out)
	if err := d.Dump(w); err != nil {
		w.Flush()
		return err
	}
	return w.Flush()
}

func moves(out io.Writer, p board.Puzzle, path string) error {
	d, err := openDriver(p, path)
	if err != nil {
		return err
	}
	counts, err := d.Changes()
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, viz.ChangeChart(counts, chartWidth))
	return err
}
