package signature

// Preset is a named anchor for the signature relative to a bounding box.
type Preset int

const (
	// BottomRight is the zero value so unset presets land in the default corner.
	BottomRight Preset = iota
	TopLeft
	TopRight
	BottomLeft
	Center
)

var presetNames = [...]string{
	BottomRight: "BottomRight",
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	Center:      "Center",
}

// String returns the canonical preset name.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return presetNames[BottomRight]
	}
	return presetNames[p]
}

// ParsePreset maps a preset name to its value. Matching is case-sensitive.
// Any unrecognized name yields BottomRight; this is never an error.
func ParsePreset(s string) Preset {
	for p, name := range presetNames {
		if name == s {
			return Preset(p)
		}
	}
	return BottomRight
}

// IsPreset reports whether s names a preset exactly, for callers that want to
// warn about the fallback.
func IsPreset(s string) bool {
	for _, name := range presetNames {
		if name == s {
			return true
		}
	}
	return false
}

// Presets returns all presets in display order.
func Presets() []Preset {
	return []Preset{TopLeft, TopRight, BottomLeft, BottomRight, Center}
}
