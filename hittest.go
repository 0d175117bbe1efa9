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

import "seehuhn.de/go/geom/vec"

// HitTest returns the segments whose polar region around center contains
// p, in ring order and segment order within each ring.  A point outside
// every ring gives an empty result.
func HitTest(rings [][]*Segment, p, center vec.Vec2) []*Segment {
	var hits []*Segment
	for _, ring := range rings {
		for _, seg := range ring {
			if seg.ContainsPoint(p, center) {
				hits = append(hits, seg)
			}
		}
	}
	return hits
}
