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

// Package canvas implements ring chart painters for raster images, for
// x/image/vector and for PDF pages.
package canvas

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SectorPath returns the outline of the ring sector between radii inner and
// outer and angles start and end, around center.  The outer arc runs from
// start to end, the inner arc back from end to start.  Angles are in
// radians; with y pointing down, increasing angles run clockwise.
func SectorPath(center vec.Vec2, inner, outer, start, end float64) *path.Data {
	p := (&path.Data{}).MoveTo(polar(center, outer, start))
	p = arcTo(p, center, outer, start, end)
	if inner > 0 {
		p = p.LineTo(polar(center, inner, end))
		p = arcTo(p, center, inner, end, start)
	} else {
		p = p.LineTo(center)
	}
	return p.Close()
}

// arcTo appends a circular arc from angle a0 to a1, starting at the current
// point, as cubic Bézier curves of at most a quarter turn each.
func arcTo(p *path.Data, center vec.Vec2, r, a0, a1 float64) *path.Data {
	sweep := a1 - a0
	if sweep == 0 || r <= 0 {
		return p
	}
	n := math.Ceil(math.Abs(sweep) / (math.Pi / 2))
	step := sweep / n
	arm := r * (4.0 / 3.0) * math.Tan(step/4)

	p0 := polar(center, r, a0)
	for i := 1; i <= int(n); i++ {
		angle0 := a0 + float64(i-1)*step
		angle1 := a0 + float64(i)*step
		if i == int(n) {
			angle1 = a1
		}
		p3 := polar(center, r, angle1)
		p1 := p0.Add(tangent(angle0).Mul(arm))
		p2 := p3.Sub(tangent(angle1).Mul(arm))
		p = p.CubeTo(p1, p2, p3)
		p0 = p3
	}
	return p
}

func polar(center vec.Vec2, r, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return center.Add(vec.Vec2{X: cos * r, Y: sin * r})
}

// tangent returns the unit tangent of a circle at angle, in the direction
// of increasing angle.
func tangent(angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: -sin, Y: cos}
}
