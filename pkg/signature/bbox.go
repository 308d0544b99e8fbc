package signature

// BoundingBox is an axis-aligned rectangle in user units.
// The y axis points down, so Top <= Bottom for a well-formed box.
type BoundingBox struct {
	Left, Right, Top, Bottom float64
}

// NewBoundingBox builds a box from an origin and a size, the shape most hosts
// report measurements in.
func NewBoundingBox(x, y, w, h float64) BoundingBox {
	return BoundingBox{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

func (b BoundingBox) Width() float64   { return b.Right - b.Left }
func (b BoundingBox) Height() float64  { return b.Bottom - b.Top }
func (b BoundingBox) CenterX() float64 { return b.Left + b.Width()/2 }
func (b BoundingBox) CenterY() float64 { return b.Top + b.Height()/2 }
