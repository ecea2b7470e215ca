package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpuzzle/internal/games/blockpuzzle"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Long:  `Shows every shape a piece can take, with its four clockwise rotations.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printShapes(cmd.OutOrStdout())
	},
}

var rotationStyle = lipgloss.NewStyle().PaddingRight(3)

func printShapes(w io.Writer) {
	shapes, names := blockpuzzle.Catalog()

	fmt.Fprintf(w, "%d shapes, %d colors\n\n", len(shapes), len(blockpuzzle.Palette))
	for i, s := range shapes {
		fmt.Fprintf(w, "%s\n", names[i])

		rotations := make([]string, 0, 4)
		for iter := 0; iter < 4; iter++ {
			rotations = append(rotations, rotationStyle.Render(s.String()))
			s = s.Rotate()
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, rotations...))
		fmt.Fprintln(w)
	}
}
