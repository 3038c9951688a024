package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmelgaard/snapgrid/internal/storage"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed puzzles",
	Long: `List your most recent puzzle completions.

Examples:
  snapgrid history
  snapgrid history --limit 50
  snapgrid history --format json`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of completions to show")
	historyCmd.Flags().StringVar(&historyFormat, "format", "table", "Output format (table, json)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewCompletionRepository(db)
	completions, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list completions: %w", err)
	}

	if len(completions) == 0 {
		fmt.Println("No completed puzzles yet. Run 'snapgrid play' to start one.")
		return nil
	}

	switch strings.ToLower(historyFormat) {
	case "table":
		fmt.Printf("%-38s %-20s %-5s %-9s %-6s %s\n",
			"ID", "COMPLETED", "GRID", "DURATION", "MOVES", "NOTES")
		for _, c := range completions {
			notes := ""
			if c.AutoSolved {
				notes = "auto-solved"
			}
			if c.CustomArt {
				if notes != "" {
					notes += ", "
				}
				notes += "custom art"
			}
			fmt.Printf("%-38s %-20s %dx%d   %-9s %-6d %s\n",
				c.CompletionID,
				c.CompletedAt.Format("2006-01-02 15:04:05"),
				c.GridSize, c.GridSize,
				formatDuration(c.DurationMs),
				c.Moves,
				notes)
		}

	case "json":
		data, err := json.MarshalIndent(completions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

	default:
		return fmt.Errorf("unknown format: %s (use table or json)", historyFormat)
	}

	return nil
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dm%02ds", mins, int(d.Seconds())-mins*60)
}
