package signature

import "unicode/utf8"

const (
	DefaultArtistName = "Artist Name"
	DefaultFontFamily = "arial"
	DefaultFontSize   = 24
)

// Options are the user-facing signature settings, already parsed into values.
type Options struct {
	ArtistName  string
	Preset      Preset
	SocialTag   SocialTag
	FontFamily  string
	FontSizePx  int
	PackedColor int64
}

// DefaultOptions returns the settings used when the user supplies none.
func DefaultOptions() Options {
	return Options{
		ArtistName: DefaultArtistName,
		Preset:     BottomRight,
		SocialTag:  None,
		FontFamily: DefaultFontFamily,
		FontSizePx: DefaultFontSize,
	}
}

// Placement is everything a host needs to create the signature text node.
type Placement struct {
	Text  string
	X, Y  float64
	Style Style
}

// Compute formats the signature text, clamps the font size, and positions the
// text inside bbox. The tag is applied first since margins depend on the
// final text length, counted in characters.
func Compute(bbox BoundingBox, opts Options) Placement {
	text := ApplySocialTag(opts.ArtistName, opts.SocialTag)
	size := ClampFontSize(opts.FontSizePx)
	x, y := ComputePosition(bbox, opts.Preset, utf8.RuneCountInString(text), float64(size))
	return Placement{
		Text: text,
		X:    x,
		Y:    y,
		Style: Style{
			FontFamily: opts.FontFamily,
			FontSizePx: size,
			ColorHex:   ToHexColor(opts.PackedColor),
		},
	}
}

// ImageBox returns a w by h box centered above the text anchor, leaving one
// line of font height between the image and the baseline.
func (p Placement) ImageBox(w, h float64) BoundingBox {
	left := p.X - w/2
	bottom := p.Y - float64(p.Style.FontSizePx)
	return BoundingBox{Left: left, Right: left + w, Top: bottom - h, Bottom: bottom}
}
