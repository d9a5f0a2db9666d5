package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/felixfbecker/resizegrid/internal/config"
	"github.com/felixfbecker/resizegrid/pkg/grid"
)

// runCommand creates the run command for the interactive grid.
func (c *CLI) runCommand() *cobra.Command {
	var printLayout bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drag and resize grid items in the terminal",
		Long: `Drag and resize grid items in the terminal.

Press an item and drag it over another item to move it there. Drag the ◢
handle in an item's corner to resize it: the item snaps to whole columns and
rows, and the items after it reflow around it.

Keys:
  tab / shift+tab   move focus between items
  a                 add an item
  d                 delete the focused item
  esc               release the current drag
  q                 quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			layout, err := c.runGrid(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if printLayout {
				return writeLayout(cmd.OutOrStdout(), layout)
			}
			printSummary(cmd.ErrOrStderr(), layout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printLayout, "print-layout", false, "write the final layout as JSON to stdout on exit")

	return cmd
}

// runGrid runs the interactive grid until the user quits and returns the
// final layout.
func (c *CLI) runGrid(ctx context.Context, cfg config.Config, opts ...tea.ProgramOption) (grid.Layout, error) {
	logger := loggerFromContext(ctx)

	// The terminal belongs to the UI; only a log file can take logs.
	sessionLogger := logger
	if c.logFile == "" {
		sessionLogger = log.New(io.Discard)
	}

	stats := newSessionStats(sessionLogger)
	defer stats.install()()

	model, err := NewGridModel(cfg, sessionLogger, stats)
	if err != nil {
		return nil, fmt.Errorf("render grid: %w", err)
	}

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run grid: %w", err)
	}

	layout := final.(GridModel).Layout()
	logger.Debug("session ended", "items", len(layout), "gestures", stats.gestures)
	return layout, nil
}

// printSummary prints the final order and spans after the grid exits.
func printSummary(w io.Writer, layout grid.Layout) {
	printSuccess(w, "Session ended with %d items", len(layout))
	for _, item := range layout {
		printKeyValue(w, item.Key, strconv.Itoa(item.ColumnSpan)+"×"+strconv.Itoa(item.RowSpan))
	}
	if len(layout) > 1 {
		printKeyValue(w, "order", strings.Join(layout.Keys(), " "))
	}
}

func writeLayout(w io.Writer, layout grid.Layout) error {
	if layout == nil {
		layout = grid.Layout{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layout)
}
