package feedback

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Shade is the surface color and emissive glow for one tint
type Shade struct {
	Color             color.NRGBA
	Emissive          color.NRGBA
	EmissiveIntensity float64
}

// Palette holds the shade of every tint
type Palette struct {
	Base     Shade
	Hover    Shade
	Selected Shade
}

// DefaultPalette returns the stock skin, hover and selection looks
func DefaultPalette() Palette {
	return Palette{
		Base: Shade{
			Color:             color.NRGBA{R: 0xd9, G: 0xb8, B: 0xa0, A: 0xff},
			Emissive:          color.NRGBA{A: 0xff},
			EmissiveIntensity: 0.05,
		},
		Hover: Shade{
			Color:             color.NRGBA{R: 0x7f, G: 0xb3, B: 0xff, A: 0xff},
			Emissive:          color.NRGBA{R: 0x2a, G: 0x4d, B: 0x80, A: 0xff},
			EmissiveIntensity: 0.15,
		},
		Selected: Shade{
			Color:             color.NRGBA{R: 0xff, G: 0x8a, B: 0x5c, A: 0xff},
			Emissive:          color.NRGBA{R: 0x80, G: 0x30, B: 0x1a, A: 0xff},
			EmissiveIntensity: 0.25,
		},
	}
}

// Shade returns the shade for t
func (p Palette) Shade(t Tint) Shade {
	switch t {
	case Hover:
		return p.Hover
	case Selected:
		return p.Selected
	default:
		return p.Base
	}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa"
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", dropping alpha
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
