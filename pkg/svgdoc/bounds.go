package svgdoc

import (
	"math"

	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/signature"
)

// CanvasBounds returns the drawing area in user units.
//
// The viewBox is authoritative when present. Otherwise width and height are
// converted from their units, with the origin at (0, 0).
func (d *Document) CanvasBounds() (signature.BoundingBox, error) {
	if vb, ok := d.root.attr("viewBox"); ok {
		minX, minY, w, h, err := parseViewBox(vb)
		if err != nil {
			return signature.BoundingBox{}, errors.UnmeasurableBounds("canvas", err)
		}
		return signature.NewBoundingBox(minX, minY, w, h), nil
	}

	ws, okW := d.root.attr("width")
	hs, okH := d.root.attr("height")
	if !okW || !okH {
		return signature.BoundingBox{}, errors.UnmeasurableBounds("canvas: no viewBox, width, or height", nil)
	}
	w, err := parseLength(ws)
	if err != nil {
		return signature.BoundingBox{}, errors.UnmeasurableBounds("canvas width", err)
	}
	h, err := parseLength(hs)
	if err != nil {
		return signature.BoundingBox{}, errors.UnmeasurableBounds("canvas height", err)
	}
	return signature.NewBoundingBox(0, 0, w, h), nil
}

// ElementBounds returns the untransformed extent of the element with id.
// Unknown ids yield MISSING_SELECTION; elements whose extent is not given by
// attributes (paths, text, groups) yield UNMEASURABLE_BOUNDS.
func (d *Document) ElementBounds(id string) (signature.BoundingBox, error) {
	el, ok := d.ids[id]
	if !ok {
		return signature.BoundingBox{}, errors.MissingSelection(id)
	}

	var (
		box signature.BoundingBox
		err error
	)
	switch el.Tag {
	case "rect", "image", "use", "svg", "foreignObject":
		box, err = rectBounds(el)
	case "circle":
		box, err = ellipseBounds(el, "r", "r")
	case "ellipse":
		box, err = ellipseBounds(el, "rx", "ry")
	case "line":
		box, err = lineBounds(el)
	default:
		return signature.BoundingBox{}, errors.UnmeasurableBounds("<"+el.Tag+" id=\""+id+"\">", nil)
	}
	if err != nil {
		return signature.BoundingBox{}, errors.UnmeasurableBounds(id, err)
	}
	return box, nil
}

// Bounds returns ElementBounds for id, or CanvasBounds when id is empty.
func (d *Document) Bounds(id string) (signature.BoundingBox, error) {
	if id == "" {
		return d.CanvasBounds()
	}
	return d.ElementBounds(id)
}

// length reads an optional length attribute; absent means def.
func length(el element, name string, def float64) (float64, error) {
	s, ok := el.attr(name)
	if !ok {
		return def, nil
	}
	return parseLength(s)
}

func rectBounds(el element) (signature.BoundingBox, error) {
	var v [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		var err error
		if v[i], err = length(el, name, 0); err != nil {
			return signature.BoundingBox{}, err
		}
	}
	if v[2] <= 0 || v[3] <= 0 {
		return signature.BoundingBox{}, errors.New(errors.ErrCodeUnmeasurableBounds, "element has no area")
	}
	return signature.NewBoundingBox(v[0], v[1], v[2], v[3]), nil
}

func ellipseBounds(el element, rxName, ryName string) (signature.BoundingBox, error) {
	cx, err := length(el, "cx", 0)
	if err != nil {
		return signature.BoundingBox{}, err
	}
	cy, err := length(el, "cy", 0)
	if err != nil {
		return signature.BoundingBox{}, err
	}
	rx, err := length(el, rxName, 0)
	if err != nil {
		return signature.BoundingBox{}, err
	}
	ry, err := length(el, ryName, 0)
	if err != nil {
		return signature.BoundingBox{}, err
	}
	if rx <= 0 || ry <= 0 {
		return signature.BoundingBox{}, errors.New(errors.ErrCodeUnmeasurableBounds, "element has no area")
	}
	return signature.BoundingBox{Left: cx - rx, Right: cx + rx, Top: cy - ry, Bottom: cy + ry}, nil
}

func lineBounds(el element) (signature.BoundingBox, error) {
	var v [4]float64
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		var err error
		if v[i], err = length(el, name, 0); err != nil {
			return signature.BoundingBox{}, err
		}
	}
	return signature.BoundingBox{
		Left:   math.Min(v[0], v[2]),
		Right:  math.Max(v[0], v[2]),
		Top:    math.Min(v[1], v[3]),
		Bottom: math.Max(v[1], v[3]),
	}, nil
}
