package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/artsign/pkg/signature"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(m PresetListModel, key string) PresetListModel {
	next, _ := m.Update(keyMsg(key))
	return next.(PresetListModel)
}

func withPreset(p signature.Preset) signature.Options {
	opts := signature.DefaultOptions()
	opts.Preset = p
	return opts
}

func TestPresetListStartsAtCurrent(t *testing.T) {
	m := NewPresetListModel(withPreset(signature.BottomRight))
	if got := m.Presets[m.Cursor]; got != signature.BottomRight {
		t.Errorf("cursor on %s, want BottomRight", got)
	}
}

func TestPresetListNavigation(t *testing.T) {
	m := NewPresetListModel(withPreset(signature.TopLeft))

	m = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("up at top moved cursor to %d", m.Cursor)
	}
	m = press(m, "j")
	m = press(m, "down")
	m = press(m, "k")
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}
	for i := 0; i < 10; i++ {
		m = press(m, "down")
	}
	if m.Cursor != len(m.Presets)-1 {
		t.Errorf("cursor = %d, want clamped to %d", m.Cursor, len(m.Presets)-1)
	}
}

func TestPresetListSelect(t *testing.T) {
	m := NewPresetListModel(withPreset(signature.TopLeft))
	m = press(m, "down")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(PresetListModel)
	if cmd == nil {
		t.Error("enter should quit")
	}
	if m.Selected == nil || *m.Selected != signature.TopRight {
		t.Errorf("Selected = %v, want TopRight", m.Selected)
	}
}

func TestPresetListQuit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := NewPresetListModel(withPreset(signature.Center))
		next, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("%s should quit", key)
		}
		if next.(PresetListModel).Selected != nil {
			t.Errorf("%s should not select", key)
		}
	}
}

func TestPresetListView(t *testing.T) {
	view := NewPresetListModel(withPreset(signature.Center)).View()
	for _, p := range signature.Presets() {
		if !strings.Contains(view, p.String()) {
			t.Errorf("view missing %s", p)
		}
	}
	// Center of 800×600.
	if !strings.Contains(view, "400, 300") {
		t.Errorf("view missing center anchor:\n%s", view)
	}
}

func TestPresetListViewUsesSignatureText(t *testing.T) {
	opts := signature.DefaultOptions()
	opts.ArtistName = "Zoë"
	opts.SocialTag = signature.Facebook
	opts.FontSizePx = 10
	m := NewPresetListModel(opts)

	// "Facebook: @Zoë" is 14 runes (15 bytes): 14*3.5*10/10 = 49 in from the left.
	view := m.View()
	if !strings.Contains(view, "Facebook: @Zoë") {
		t.Errorf("view missing signature text:\n%s", view)
	}
	if !strings.Contains(view, "49, 15") {
		t.Errorf("view missing TopLeft anchor 49, 15:\n%s", view)
	}
}
