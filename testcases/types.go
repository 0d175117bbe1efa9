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

// Package testcases defines a catalogue of example charts.
//
// The cases are used by the tests of the painters and by the ringchart
// command, which can render any of them by name.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ringchart"
)

// Case describes one example chart.
type Case struct {
	Name   string                  // lowercase a-z and _ only
	Data   [][]ringchart.Datapoint // rings, innermost first
	Width  int                     // canvas width in pixels
	Height int                     // canvas height in pixels

	// Options, if set, modifies the default options.
	Options func(*ringchart.Options)

	// Hover, if set, is a pointer position to apply after rendering.
	Hover *vec.Vec2
}

// ChartOptions returns the options for the case.
func (c Case) ChartOptions() ringchart.Options {
	opts := ringchart.DefaultOptions()
	if c.Options != nil {
		c.Options(&opts)
	}
	return opts
}

// Find returns the case with the given full name, which is the category
// and the case name joined by an underscore.
func Find(name string) (Case, bool) {
	for category, cases := range All {
		for _, c := range cases {
			if category+"_"+c.Name == name {
				return c, true
			}
		}
	}
	return Case{}, false
}

func pt(x, y float64) *vec.Vec2 {
	return &vec.Vec2{X: x, Y: y}
}

func dp(value float64, col, label string) ringchart.Datapoint {
	return ringchart.Datapoint{Value: value, Color: col, Label: label}
}
