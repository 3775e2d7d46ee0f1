package settings

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"lumiere/models"
)

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ParseHex converts "#RRGGBB" into an HSL triple.
func ParseHex(hex string) (models.HSLColor, error) {
	m := hexColorRe.FindStringSubmatch(hex)
	if m == nil {
		return models.HSLColor{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return models.HSLColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	r := float64((v>>16)&0xff) / 255
	g := float64((v>>8)&0xff) / 255
	b := float64(v&0xff) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return models.HSLColor{
		H: math.Round(h),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}, nil
}

// FormatHex converts an HSL triple into "#rrggbb".
func FormatHex(c models.HSLColor) string {
	h := math.Mod(c.H, 360) / 360
	s := c.S / 100
	l := c.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// ValidateHSL checks an HSL triple is inside its value ranges.
func ValidateHSL(c models.HSLColor) error {
	if c.H < 0 || c.H >= 360 {
		return fmt.Errorf("hue %.1f out of range [0,360)", c.H)
	}
	if c.S < 0 || c.S > 100 {
		return fmt.Errorf("saturation %.1f out of range [0,100]", c.S)
	}
	if c.L < 0 || c.L > 100 {
		return fmt.Errorf("lightness %.1f out of range [0,100]", c.L)
	}
	return nil
}
