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

var layoutCases = []Case{
	{
		Name:   "gap_half",
		Data:   [][]ringchart.Datapoint{primaries, primaries, primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.PercentageDatasetGap = 50
		},
	},
	{
		Name:   "gap_full",
		Data:   [][]ringchart.Datapoint{primaries, primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.PercentageDatasetGap = 100
		},
	},
	{
		Name:   "no_cutout",
		Data:   [][]ringchart.Datapoint{primaries, primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.PercentageInnerCutout = 0
		},
	},
	{
		Name:   "thin_ring",
		Data:   [][]ringchart.Datapoint{primaries},
		Width:  200,
		Height: 200,
		Options: func(o *ringchart.Options) {
			o.PercentageInnerCutout = 90
		},
	},
	{
		Name:   "full_cutout",
		Data:   [][]ringchart.Datapoint{primaries},
		Width:  100,
		Height: 100,
		Options: func(o *ringchart.Options) {
			o.PercentageInnerCutout = 100
		},
	},
}
