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

package testcases

import "seehuhn.de/go/ringchart"

var styleCases = []Case{
	{
		Name:   "no_stroke",
		Data:   [][]ringchart.Datapoint{primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.SegmentShowStroke = false
		},
	},
	{
		Name:   "thick_stroke",
		Data:   [][]ringchart.Datapoint{primaries, primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.SegmentStrokeWidth = 8
			o.SegmentStrokeColor = "black"
		},
	},
	{
		Name: "default_colors",
		Data: [][]ringchart.Datapoint{
			{{Value: 1}, {Value: 1}, {Value: 1}, {Value: 1}, {Value: 1}, {Value: 1}},
		},
		Width:  200,
		Height: 200,
	},
	{
		Name: "translucent",
		Data: [][]ringchart.Datapoint{{
			dp(1, "rgba(255, 0, 0, 0.5)", "a"),
			dp(1, "rgba(0, 0, 255, 0.5)", "b"),
		}},
		Width:  100,
		Height: 100,
	},
}
