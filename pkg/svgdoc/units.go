package svgdoc

import (
	"strconv"
	"strings"

	"github.com/matzehuels/artsign/pkg/errors"
)

// pxPerUnit maps CSS absolute units to user units (px at 96 dpi).
var pxPerUnit = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"mm": 96.0 / 25.4,
	"cm": 96.0 / 2.54,
	"in": 96,
	"ft": 96 * 12,
	"yd": 96 * 36,
	"m":  96.0 / 0.0254,
}

// parseLength converts an SVG length such as "210mm" or "12.5" to user
// units. Percentages are rejected since they need a reference length.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidDocument, "empty length")
	}
	i := len(s)
	for i > 0 && isUnitChar(s[i-1]) {
		i--
	}
	num, unit := s[:i], strings.ToLower(s[i:])
	if unit == "%" {
		return 0, errors.New(errors.ErrCodeInvalidDocument, "relative length %q", s)
	}
	scale, ok := pxPerUnit[unit]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidDocument, "unknown unit in %q", s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid length %q", s)
	}
	return v * scale, nil
}

func isUnitChar(c byte) bool {
	return c == '%' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseViewBox parses "minx miny width height" with comma or space separators.
func parseViewBox(s string) (minX, minY, w, h float64, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if len(fields) != 4 {
		return 0, 0, 0, 0, errors.New(errors.ErrCodeInvalidDocument, "viewBox needs 4 numbers, got %q", s)
	}
	var v [4]float64
	for i, f := range fields {
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			return 0, 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid viewBox %q", s)
		}
	}
	if v[2] <= 0 || v[3] <= 0 {
		return 0, 0, 0, 0, errors.New(errors.ErrCodeInvalidDocument, "viewBox has non-positive size %q", s)
	}
	return v[0], v[1], v[2], v[3], nil
}

