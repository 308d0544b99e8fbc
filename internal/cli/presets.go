package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/artsign/pkg/fonts"
	"github.com/matzehuels/artsign/pkg/signature"
)

// presetsCommand lists placement presets, social tags, and font aliases.
func (c *CLI) presetsCommand() *cobra.Command {
	var artist string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List placement presets, social tags, and font aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderPresets(cmd.OutOrStdout(), artist)
			return nil
		},
	}
	cmd.Flags().StringVarP(&artist, "artist", "a", signature.DefaultArtistName, "artist name used in the samples")
	return cmd
}

func renderPresets(w io.Writer, artist string) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := func(row, col int) lipgloss.Style {
		if row == -1 {
			return headerStyle
		}
		if col == 0 {
			return lipgloss.NewStyle().Foreground(colorCyan)
		}
		return lipgloss.NewStyle().Foreground(colorWhite)
	}

	var rows [][]string
	for _, p := range signature.Presets() {
		x, y := signature.ComputePosition(sampleBox, p, len([]rune(artist)), signature.DefaultFontSize)
		rows = append(rows, []string{p.String(), fmt.Sprintf("%g", x), fmt.Sprintf("%g", y)})
	}
	fmt.Fprintln(w, StyleTitle.Render("Presets"))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("anchor for %q at %dpx on an 800×600 canvas", artist, signature.DefaultFontSize)))
	fmt.Fprintln(w, table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "X", "Y").
		Rows(rows...).
		StyleFunc(cellStyle).
		Render())

	rows = nil
	for _, t := range signature.SocialTags() {
		rows = append(rows, []string{t.String(), signature.ApplySocialTag(artist, t)})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Social tags"))
	fmt.Fprintln(w, table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tag", "Text").
		Rows(rows...).
		StyleFunc(cellStyle).
		Render())

	rows = nil
	for _, alias := range fonts.Aliases() {
		rows = append(rows, []string{alias, fonts.Resolve(alias)})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Font aliases"))
	fmt.Fprintln(w, table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Alias", "font-family").
		Rows(rows...).
		StyleFunc(cellStyle).
		Render())
}
