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

// Layout holds the inputs of the radius layout.  All functions on Layout
// are pure, so ring geometry can be computed without a Chart.
type Layout struct {
	Width, Height float64 // canvas size
	StrokeWidth   float64 // segment border width
	RingCount     int     // number of rings
	CutoutPercent float64 // hole size, percentage of the outer radius
	GapPercent    float64 // gap between rings, percentage of one ring width
}

// OuterRadius returns the radius available to the outermost ring.  The
// result is never negative; a zero-area canvas gives 0.
func OuterRadius(width, height, strokeWidth float64) float64 {
	return max(0, (min(width, height)-strokeWidth/2)/2)
}

// OuterRadius returns the radius of the whole chart.
func (l Layout) OuterRadius() float64 {
	return OuterRadius(l.Width, l.Height, l.StrokeWidth)
}

// OuterWidth returns the radial extent shared by all rings and gaps.
func (l Layout) OuterWidth() float64 {
	return l.OuterRadius() * (1 - l.CutoutPercent/100)
}

// CutoutRadius returns the radius of the hole in the middle.
func (l Layout) CutoutRadius() float64 {
	return l.OuterRadius() * l.CutoutPercent / 100
}

// totalGap returns the combined gap between all rings, in units of one
// ring width.
func (l Layout) totalGap() float64 {
	return float64(l.RingCount-1) * (l.GapPercent / 100)
}

// SegmentWidth returns the radial width of one ring.
func (l Layout) SegmentWidth() float64 {
	if l.RingCount < 1 {
		return 0
	}
	return l.OuterWidth() / (float64(l.RingCount) + l.totalGap())
}

// GapOffset returns the accumulated gap below ring i.  With a single ring
// there is no gap, and the offset is defined as 0.
func (l Layout) GapOffset(i int) float64 {
	if l.RingCount <= 1 {
		return 0
	}
	n := float64(l.RingCount)
	return float64(i) * (l.OuterWidth() - l.SegmentWidth()*n) / (n - 1)
}

// Ring returns the inner and outer radius of ring i, where ring 0 is the
// innermost ring.
func (l Layout) Ring(i int) (inner, outer float64) {
	w := l.SegmentWidth()
	inner = l.CutoutRadius() + float64(i)*w + l.GapOffset(i)
	return inner, inner + w
}
