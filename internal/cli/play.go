package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kmelgaard/snapgrid"
	"github.com/kmelgaard/snapgrid/internal/state"
	"github.com/kmelgaard/snapgrid/internal/storage"
	"github.com/kmelgaard/snapgrid/internal/tui"
)

var (
	playGridSize int
	playImage    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a puzzle session",
	Long: `Open the interactive puzzle board.

Tiles start scattered below the grid; drag them with the mouse and drop
them on their cells. Grid size and artwork choices are remembered between
sessions.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playGridSize, "grid", "g", 0, "Grid size (3 or 4, default: last used)")
	playCmd.Flags().StringVarP(&playImage, "image", "i", "", "Path to a custom puzzle image")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Load state file
	stateFile, err := state.NewDefaultFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	// Flag beats the remembered preference.
	gridSize := stateFile.GridSize()
	if playGridSize != 0 {
		gridSize = playGridSize
	}
	if gridSize == 0 {
		gridSize = 3
	}

	// The --db flag wins over the remembered path.
	if dbPath == "" {
		dbPath = stateFile.DBPath()
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	puzzle, err := snapgrid.New(snapgrid.WithGridSize(gridSize))
	if err != nil {
		return err
	}

	image := playImage
	if image == "" {
		image = stateFile.ArtworkPath()
	}
	if image != "" {
		if _, err := os.Stat(image); err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "image %s not found, using default artwork\n", image)
			}
			image = ""
		}
	}
	puzzle.SetArtwork(image != "")
	if err := stateFile.SetArtworkPath(image); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	repo := storage.NewCompletionRepository(db)
	model := tui.NewModel(puzzle, repo, stateFile)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
