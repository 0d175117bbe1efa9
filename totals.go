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

import "math"

// Totals returns, for each ring, the sum of the absolute values of its
// segments.  Empty rings have total 0.
func Totals(rings [][]*Segment) []float64 {
	totals := make([]float64, len(rings))
	for i, ring := range rings {
		for _, seg := range ring {
			totals[i] += math.Abs(seg.Value)
		}
	}
	return totals
}

// Circumference returns the angular sweep of a segment with the given value
// in a ring with the given total.  Degenerate rings (total 0) give 0.
func Circumference(value, total float64) float64 {
	if total > 0 {
		return 2 * math.Pi * (math.Abs(value) / total)
	}
	return 0
}
