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

var primaries = []ringchart.Datapoint{
	{Value: 300, Color: "#F7464A", Highlight: "#FF5A5E", Label: "Red"},
	{Value: 50, Color: "#46BFBD", Highlight: "#5AD3D1", Label: "Green"},
	{Value: 100, Color: "#FDB45C", Highlight: "#FFC870", Label: "Yellow"},
}

var basicCases = []Case{
	{
		Name:   "single_ring",
		Data:   [][]ringchart.Datapoint{primaries},
		Width:  200,
		Height: 200,
	},
	{
		Name: "three_rings",
		Data: [][]ringchart.Datapoint{
			primaries,
			{
				dp(40, "#949FB1", "Grey"),
				dp(120, "#4D5360", "Dark Grey"),
			},
			{
				dp(10, "#F7464A", "Q1"),
				dp(20, "#46BFBD", "Q2"),
				dp(30, "#FDB45C", "Q3"),
				dp(40, "#949FB1", "Q4"),
			},
		},
		Width:  300,
		Height: 300,
	},
	{
		Name:   "wide_canvas",
		Data:   [][]ringchart.Datapoint{primaries, primaries},
		Width:  400,
		Height: 200,
	},
	{
		Name:   "hover_inner",
		Data:   [][]ringchart.Datapoint{primaries, primaries},
		Width:  200,
		Height: 200,
		Hover:  pt(110, 40),
	},
}
