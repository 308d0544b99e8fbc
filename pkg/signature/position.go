package signature

const (
	charWidthUnits      = 3.5  // approximate glyph width per character at a 10px font
	marginTopUnits      = 15.0 // baseline drop below the top edge at a 10px font
	marginBottomUnits   = 10.0 // baseline lift above the bottom edge at a 10px font
	referenceFontHeight = 10.0
)

// ComputePosition returns the text anchor for preset inside bbox.
//
// textLength is the character count of the final signature string and
// fontHeight the clamped font size in pixels. The box is not validated;
// malformed boxes give malformed but deterministic results. Values outside
// the Preset range are treated as BottomRight.
func ComputePosition(bbox BoundingBox, preset Preset, textLength int, fontHeight float64) (x, y float64) {
	horizontal := float64(textLength) * charWidthUnits * fontHeight / referenceFontHeight
	top := marginTopUnits * fontHeight / referenceFontHeight
	bottom := marginBottomUnits * fontHeight / referenceFontHeight

	switch preset {
	case TopLeft:
		return bbox.Left + horizontal, bbox.Top + top
	case TopRight:
		return bbox.Right - horizontal, bbox.Top + top
	case BottomLeft:
		return bbox.Left + horizontal, bbox.Bottom - bottom
	case Center:
		return bbox.Left + (bbox.Right-bbox.Left)/2, bbox.Top + (bbox.Bottom-bbox.Top)/2
	default:
		return bbox.Right - horizontal, bbox.Bottom - bottom
	}
}
