// seehuhn.de/go/ringchart - multi-ring doughnut charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ringchart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor converts a CSS colour string to a non-premultiplied colour.
// Supported forms are "#rgb", "#rrggbb", "rgb()", "rgba()", "hsl()",
// "hsla()", the CSS colour names and "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("empty colour: %w", ErrInvalidInput)
	case s == "transparent":
		return color.NRGBA{}, nil
	case s[0] == '#':
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return fromColorful(c, 1), nil
	case strings.HasPrefix(s, "rgb"):
		args, err := colorArgs(s, "rgb")
		if err != nil {
			return color.NRGBA{}, err
		}
		var ch [3]float64
		for i := range ch {
			ch[i], err = channel(args[i], 255)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
			}
		}
		alpha, err := alphaArg(args)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		c := colorful.Color{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}
		return fromColorful(c, alpha), nil
	case strings.HasPrefix(s, "hsl"):
		args, err := colorArgs(s, "hsl")
		if err != nil {
			return color.NRGBA{}, err
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, ErrInvalidInput)
		}
		sat, err := channel(args[1], 100)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		light, err := channel(args[2], 100)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		alpha, err := alphaArg(args)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		return fromColorful(colorful.Hsl(h, sat/100, light/100), alpha), nil
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unrecognised colour %q: %w", s, ErrInvalidInput)
}

// DefaultColor returns the fill colour assigned to a datapoint without an
// explicit colour: hues are spread by position within the ring.
func DefaultColor(index, ringCount int) string {
	if ringCount < 1 {
		ringCount = 1
	}
	return fmt.Sprintf("hsl(%g, 100%%, 50%%)", 360*float64(index)/float64(ringCount))
}

// HexColor formats c as "#rrggbb", dropping alpha.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorArgs returns the comma or space separated arguments of a functional
// colour notation like "rgba(1, 2, 3, 0.5)".
func colorArgs(s, fn string) ([]string, error) {
	rest := strings.TrimPrefix(s, fn)
	rest = strings.TrimPrefix(rest, "a")
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("malformed colour %q: %w", s, ErrInvalidInput)
	}
	args := strings.FieldsFunc(rest[1:len(rest)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("colour %q needs 3 or 4 components: %w", s, ErrInvalidInput)
	}
	return args, nil
}

// channel parses a number or percentage and clamps it to [0, scale].
func channel(arg string, scale float64) (float64, error) {
	pct := strings.HasSuffix(arg, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrInvalidInput
	}
	if pct {
		v = v / 100 * scale
	}
	return max(0, min(scale, v)), nil
}

func alphaArg(args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	return channel(args[3], 1)
}

func fromColorful(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}
