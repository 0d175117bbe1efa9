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

// Package raster converts ring chart outlines to anti-aliased pixel
// coverage.
//
// Paths are filled with the nonzero winding rule using an active edge list
// and exact area coverage per pixel.  Strokes are converted to a set of
// consistently oriented polygons which are then filled, so that overlapping
// parts of the stroke are covered only once.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths to pixel coverage values.  One instance can be
// reused for many paths; internal buffers grow as needed but never shrink.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Join is the join style used at the corners of strokes.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the stroke
	// width.  Longer miters are drawn as bevels.
	MiterLimit float64

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int
	crossings []float64

	// stroke outlines, all polygons contiguous
	stroke        []vec.Vec2
	strokeOffsets []int
	segs          []strokeSegment
	segsOffsets   []int
	subpathClosed []bool

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasteriser creates a Rasteriser for the given clip rectangle, with
// default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	d := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	n := 1
	if m := d.Length(); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(m/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.  The
// number of segments follows Wang's formula in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// FillNonZero rasterises p with the nonzero winding rule.  Coverage is
// delivered row by row; the slice passed to emit is only valid for the
// duration of the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	r.collectPathEdges(p)
	r.fillEdges(emit)
}

// collectPathEdges walks p and appends its device space edges to r.edges.
// Open subpaths are closed implicitly.
func (r *Rasteriser) collectPathEdges(p *path.Data) {
	var current, subpath vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != subpath {
				r.addEdge(current, subpath)
			}
			current = p.Coords[k]
			subpath = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
			open = false
		}
	}
	if open && current != subpath {
		r.addEdge(current, subpath)
	}
}

// addEdge transforms a user space line segment to device space and adds
// it to the edge list.  Horizontal edges do not contribute and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin, r.edgeDevXMax = min(dx0, dx1), max(dx0, dx1)
		r.edgeDevYMin, r.edgeDevYMax = min(dy0, dy1), max(dy0, dy1)
		r.edgeBBoxFirst = false
		return
	}
	r.edgeDevXMin = min(r.edgeDevXMin, dx0, dx1)
	r.edgeDevXMax = max(r.edgeDevXMax, dx0, dx1)
	r.edgeDevYMin = min(r.edgeDevYMin, dy0, dy1)
	r.edgeDevYMax = max(r.edgeDevYMax, dy0, dy1)
}

// bbox returns the pixel range covered by the collected edges, clamped to
// the clip rectangle.
func (r *Rasteriser) bbox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation:
//
// For every pixel of a scanline we track
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  the same, weighted by the uncovered part of the pixel to the
//	       left of the crossing
//
// Scanning from the left, the coverage of pixel i is the sum of cover over
// all pixels left of i plus area[i].

// fillEdges scans r.edges with an active edge list and emits the coverage
// of every scanline which is touched by an edge.
func (r *Rasteriser) fillEdges(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.bbox()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x-xMin.  Edges left of the buffer
// are folded into its first pixel.  The result reports whether e
// intersects the scanline.
func (r *Rasteriser) accumulateEdge(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft >= xMax {
		return true
	}
	if pixLeft == pixRight || pixRight < xMin {
		r.addSpan(e, yTop, yBot, sign, xMin, xMax)
		return true
	}

	// split the edge where it crosses pixel boundaries
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		if r.crossings[i+1] > r.crossings[i] {
			r.addSpan(e, r.crossings[i], r.crossings[i+1], sign, xMin, xMax)
		}
	}
	return true
}

// addSpan adds the part of e between y0 and y1, which lies within a single
// pixel column.
func (r *Rasteriser) addSpan(e *edge, y0, y1 float64, sign float32, xMin, xMax int) {
	coverVal := sign * float32(y1-y0)
	xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
	pix := int(math.Floor(xMid))
	switch {
	case pix < xMin:
		r.cover[0] += coverVal
		r.area[0] += coverVal
	case pix < xMax:
		idx := pix - xMin
		r.cover[idx] += coverVal
		r.area[idx] += coverVal * float32(1-(xMid-float64(pix)))
	}
}

// integrateScanline turns accumulated cover and area values into nonzero
// coverage in [0, 1].  The result overwrites cover.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and its offset.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
