// Snapgrid - a drag-and-drop jigsaw puzzle for the terminal.
package main

import (
	"github.com/kmelgaard/snapgrid/internal/cli"
)

func main() {
	cli.Execute()
}
