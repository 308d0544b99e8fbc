package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/artsign/pkg/errors"
)

// Color is a packed RGBA integer that decodes from either a TOML integer or
// a color string accepted by [ParseColor]. Set is false when the key is absent.
type Color struct {
	Packed int64
	Set    bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *Color) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		if err := checkPackedRange(x); err != nil {
			return err
		}
		*c = Color{Packed: x, Set: true}
	case string:
		packed, err := ParseColor(x)
		if err != nil {
			return err
		}
		*c = Color{Packed: packed, Set: true}
	default:
		return errors.New(errors.ErrCodeInvalidColor, "color must be an integer or string, got %T", v)
	}
	return nil
}

// ParseColor reads a color as a packed RGBA integer (red in the high byte).
//
// Accepted forms:
//   - "#RRGGBB": opaque, alpha 0xFF
//   - "#RRGGBBAA"
//   - "0xRRGGBBAA": hex packed integer
//   - decimal packed integer, negative values allowed (signed 32-bit view)
func ParseColor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return 0, errors.New(errors.ErrCodeInvalidColor, "color %q must be #RRGGBB or #RRGGBBAA", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xFF
		}
		return int64(v), nil
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		return int64(v), nil
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		if err := checkPackedRange(v); err != nil {
			return 0, err
		}
		return v, nil
	}
}

// checkPackedRange accepts both signed and unsigned 32-bit views of a color.
func checkPackedRange(v int64) error {
	if v < math.MinInt32 || v > math.MaxUint32 {
		return errors.New(errors.ErrCodeInvalidColor, "color %s out of 32-bit range", fmt.Sprint(v))
	}
	return nil
}
