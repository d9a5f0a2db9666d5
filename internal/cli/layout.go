package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/felixfbecker/resizegrid/internal/config"
	"github.com/felixfbecker/resizegrid/pkg/grid/placement"
)

// layoutCommand creates the layout command for printing item placement.
func (c *CLI) layoutCommand() *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where every configured item is placed",
		Long: `Print where every configured item is placed.

Items are auto-placed in order, row by row: each item takes the first free
position at or after the previous one where its spans fit. The table lists
the resulting column and row of each item and the cells it covers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if columns > 0 {
				cfg.Columns = columns
			}
			return c.runLayout(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "override the number of grid columns")

	return cmd
}

// runLayout places the configured items and prints them as a table.
func (c *CLI) runLayout(w io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	prog := newProgress(c.Logger)

	layout := cfg.Layout()
	spans := make([]placement.Span, len(layout))
	for i, item := range layout {
		spans[i] = placement.Span{Columns: item.ColumnSpan, Rows: item.RowSpan}
	}
	areas := placement.Place(cfg.Template, spans)
	labels := cfg.Labels()

	rows := make([][]string, len(areas))
	for i, a := range areas {
		key := layout[i].Key
		rows[i] = []string{
			strconv.Itoa(i + 1),
			key,
			labels[key],
			fmt.Sprintf("%d×%d", a.ColumnSpan, a.RowSpan),
			strconv.Itoa(a.Column + 1),
			strconv.Itoa(a.Row + 1),
			cfg.Bounds(a).String(),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Key", "Label", "Span", "Column", "Row", "Cells").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleDim
			case col >= 3 && col <= 5:
				return StyleNumber
			default:
				return StyleValue
			}
		})

	fmt.Fprintln(w, t.Render())
	printInfo(w, "%d items on %d columns, %d rows", len(areas), cfg.Columns, placement.Rows(areas))
	prog.done(fmt.Sprintf("Placed %d items", len(areas)))
	return nil
}
