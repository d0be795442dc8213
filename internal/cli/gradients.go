package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/heatgrid/pkg/gradient"
)

// swatchWidth is the number of terminal cells in a gradient preview.
const swatchWidth = 24

// gradientsCommand lists the canned gradients with a color preview.
func (c *CLI) gradientsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gradients",
		Short: "List the canned color gradients",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := gradientTable()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func gradientTable() (string, error) {
	var rows [][]string
	for _, name := range gradient.Names() {
		g, err := gradient.Named(name)
		if err != nil {
			return "", err
		}
		marker := ""
		if name == gradient.Default {
			marker = "default"
		}
		rows = append(rows, []string{name, swatch(g), g.String(), marker})
	}

	headerStyle := lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDim)).
		Headers("Name", "Preview", "Model", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
	return t.Render(), nil
}

// swatch renders g as a row of colored blocks.
func swatch(g *gradient.Gradient) string {
	var b strings.Builder
	for _, c := range g.Sample(swatchWidth) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(gradient.Hex(c))).
			Render("█"))
	}
	return b.String()
}
