package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/artsign/pkg/signature"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sampleBox is the canvas used to preview preset coordinates.
var sampleBox = signature.NewBoundingBox(0, 0, 800, 600)

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  []signature.Preset
	Options  signature.Options // previewed signature; Preset is ignored
	Cursor   int
	Selected *signature.Preset
}

// NewPresetListModel creates a preset list previewing opts, with the cursor
// on opts.Preset.
func NewPresetListModel(opts signature.Options) PresetListModel {
	m := PresetListModel{Presets: signature.Presets(), Options: opts}
	for i, p := range m.Presets {
		if p == opts.Preset {
			m.Cursor = i
		}
	}
	return m
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
			}
		case "enter":
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Placement"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(signature.ApplySocialTag(m.Options.ArtistName, m.Options.SocialTag)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Presets))
	for i, p := range m.Presets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		opts := m.Options
		opts.Preset = p
		placed := signature.Compute(sampleBox, opts)
		rows = append(rows, []string{cursor, p.String(), fmt.Sprintf("%g, %g", placed.X, placed.Y)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Anchor on 800×600").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// pickPreset runs the preset picker on in/out, previewing opts. ok is false
// when the user quit without choosing.
func pickPreset(in io.Reader, out io.Writer, opts signature.Options) (p signature.Preset, ok bool, err error) {
	prog := tea.NewProgram(NewPresetListModel(opts), tea.WithInput(in), tea.WithOutput(out))
	final, err := prog.Run()
	if err != nil {
		return opts.Preset, false, err
	}
	m := final.(PresetListModel)
	if m.Selected == nil {
		return opts.Preset, false, nil
	}
	return *m.Selected, true, nil
}
