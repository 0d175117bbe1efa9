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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent A→B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

// Stroke renders p as a stroked outline of the current Width, with Join
// at the corners and butt ends on open subpaths.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.buildStroke(p)

	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	for i := range r.strokeOffsets {
		poly := r.polygon(i)
		for j, pt := range poly {
			r.addEdge(pt, poly[(j+1)%len(poly)])
		}
	}
	r.fillEdges(emit)
}

// StrokeOutline returns the polygons which make up the stroke of p, as a
// path in user space.  All polygons have the same orientation, so filling
// the result with the nonzero rule gives the stroke.
func (r *Rasteriser) StrokeOutline(p *path.Data) *path.Data {
	r.buildStroke(p)

	out := &path.Data{}
	for i := range r.strokeOffsets {
		poly := r.polygon(i)
		out = out.MoveTo(poly[0])
		for _, pt := range poly[1:] {
			out = out.LineTo(pt)
		}
		out = out.Close()
	}
	return out
}

// polygon returns the i-th stroke polygon.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.stroke)
	if i+1 < len(r.strokeOffsets) {
		end = r.strokeOffsets[i+1]
	}
	return r.stroke[r.strokeOffsets[i]:end]
}

// buildStroke fills r.stroke with one quadrilateral per flattened segment
// and one polygon per join.
func (r *Rasteriser) buildStroke(p *path.Data) {
	r.flattenPath(p)
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	if r.Width <= 0 {
		return
	}
	d := r.Width / 2

	for i, start := range r.segsOffsets {
		end := len(r.segs)
		if i+1 < len(r.segsOffsets) {
			end = r.segsOffsets[i+1]
		}
		segs := r.segs[start:end]

		for j := range segs {
			s := &segs[j]
			off := s.N.Mul(d)
			r.beginPolygon()
			r.stroke = append(r.stroke, s.A.Add(off), s.B.Add(off), s.B.Sub(off), s.A.Sub(off))
			r.endPolygon()

			switch {
			case j+1 < len(segs):
				r.addJoin(s.B, s.T, segs[j+1].T, d)
			case r.subpathClosed[i] && len(segs) > 1:
				r.addJoin(s.B, s.T, segs[0].T, d)
			}
		}
	}
}

// flattenPath converts p into line segments, grouped by subpath.
// Zero-length segments are dropped, and so are subpaths without any
// remaining segment.
func (r *Rasteriser) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]

	var current, subpath vec.Vec2
	start := 0
	finish := func(closed bool) {
		if len(r.segs) > start {
			r.segsOffsets = append(r.segsOffsets, start)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
		start = len(r.segs)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			subpath = current
			k++
		case path.CmdLineTo:
			r.addStrokeSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addStrokeSegment(current, subpath)
			current = subpath
			finish(true)
		}
	}
	finish(false)
}

func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addJoin adds the polygon which fills the outer corner where a segment
// with tangent t1 meets one with tangent t2 at p.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cosTheta := t1.Dot(t2)
	sinTheta := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	// the outer side of a left turn is on the right
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)

	r.beginPolygon()
	r.stroke = append(r.stroke, p, p.Add(n1.Mul(d)))
	switch r.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		bisector := n1.Add(n2)
		if l := bisector.Length(); sinHalf > 0 && 1/sinHalf <= r.MiterLimit+1e-10 && l > zeroLengthThreshold {
			r.stroke = append(r.stroke, p.Add(bisector.Mul(d/(sinHalf*l))))
		}
	case graphics.LineJoinRound:
		sweep := math.Acos(max(-1, min(1, cosTheta)))
		if sinTheta < 0 {
			sweep = -sweep
		}
		r.addArc(p, d, n1, sweep)
	}
	r.stroke = append(r.stroke, p.Add(n2.Mul(d)))
	r.endPolygon()
}

// addArc appends the interior points of a circular arc of the given sweep
// (positive is counter-clockwise), starting in direction startDir.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())
	if devRadius < r.Flatness {
		return
	}
	step := 2 * math.Acos(1-r.Flatness/devRadius)
	if step <= 0 || math.IsNaN(step) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	dt := sweep / float64(n)
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

func (r *Rasteriser) beginPolygon() {
	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
}

// endPolygon drops the current polygon if it has no area, and otherwise
// makes its orientation positive.
func (r *Rasteriser) endPolygon() {
	start := r.strokeOffsets[len(r.strokeOffsets)-1]
	poly := r.stroke[start:]
	a := signedArea(poly)
	if len(poly) < 3 || math.Abs(a) < zeroLengthThreshold {
		r.stroke = r.stroke[:start]
		r.strokeOffsets = r.strokeOffsets[:len(r.strokeOffsets)-1]
		return
	}
	if a < 0 {
		slices.Reverse(poly)
	}
}

// signedArea returns the shoelace area of a closed polygon.
func signedArea(poly []vec.Vec2) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
