package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmelgaard/snapgrid/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-grid statistics",
	Long:  `Display completion counts, best times and average times for each grid size. Auto-solved puzzles are counted but excluded from the timing figures.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewCompletionRepository(db)
	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	if len(stats) == 0 {
		fmt.Println("No completed puzzles yet. Run 'snapgrid play' to start one.")
		return nil
	}

	fmt.Println("Snapgrid Statistics")
	fmt.Println("===================")
	fmt.Println()

	for _, s := range stats {
		fmt.Printf("%dx%d grid\n", s.GridSize, s.GridSize)
		fmt.Printf("  Completions:  %d\n", s.Count)
		if s.Count > s.AutoSolved {
			fmt.Printf("  Best time:    %s\n", formatDuration(s.BestDurationMs))
			fmt.Printf("  Average time: %s\n", formatDuration(s.AvgDurationMs))
		}
		if s.AutoSolved > 0 {
			fmt.Printf("  Auto-solved:  %d\n", s.AutoSolved)
		}
		fmt.Println()
	}

	return nil
}
