package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece catalog",
	Long:  `Shows every piece template followed by its four rotations.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printShapes(os.Stdout)
	},
}

func printShapes(w io.Writer) {
	for i, s := range tetris.Shapes {
		fmt.Fprintf(w, "%s:\n", tetris.ShapeNames[i])

		// Four rotations side by side
		rows := make([]string, tetris.ShapeSize)
		r := s
		for turn := 0; turn < 4; turn++ {
			for y, line := range strings.Split(r.String(), "\n") {
				rows[y] += "  " + line
			}
			r = tetris.RotateShape(r)
		}
		for _, row := range rows {
			fmt.Fprintln(w, row)
		}
		fmt.Fprintln(w)
	}
}
