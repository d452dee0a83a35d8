package geometry

import "fmt"

// RGB is a resolved 8-bit fill color usable as a map key.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// RGBFromFloats converts color components in the 0..1 range, as produced by
// PDF color operators, to an RGB key.
func RGBFromFloats(r, g, b float64) RGB {
	return RGB{R: clamp8(r * 255), G: clamp8(g * 255), B: clamp8(b * 255)}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// ParseHexColor parses a "#rrggbb" or "rrggbb" color string.
func ParseHexColor(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want rrggbb", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// String returns the color in #rrggbb form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
