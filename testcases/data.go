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

var dataCases = []Case{
	{
		Name:   "single_segment",
		Data:   [][]ringchart.Datapoint{{dp(1, "#46BFBD", "All")}},
		Width:  100,
		Height: 100,
	},
	{
		Name: "zero_value",
		Data: [][]ringchart.Datapoint{{
			dp(1, "#F7464A", "a"),
			dp(0, "#46BFBD", "b"),
			dp(1, "#FDB45C", "c"),
		}},
		Width:  100,
		Height: 100,
	},
	{
		Name: "all_zero",
		Data: [][]ringchart.Datapoint{
			{dp(0, "#F7464A", "a"), dp(0, "#46BFBD", "b")},
			primaries,
		},
		Width:  100,
		Height: 100,
	},
	{
		Name: "negative_value",
		Data: [][]ringchart.Datapoint{{
			dp(-2, "#F7464A", "debit"),
			dp(1, "#46BFBD", "credit"),
		}},
		Width:  100,
		Height: 100,
	},
	{
		Name:   "many_segments",
		Data:   [][]ringchart.Datapoint{manySegments(60)},
		Width:  300,
		Height: 300,
	},
}

func manySegments(n int) []ringchart.Datapoint {
	ring := make([]ringchart.Datapoint, n)
	for i := range ring {
		ring[i].Value = float64(i%7 + 1)
	}
	return ring
}
