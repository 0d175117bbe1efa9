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

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// StartAngle is the angle at which the first segment of every ring begins.
// Angles are measured in canvas coordinates (y pointing down), so 1.5π
// is the 12 o'clock position and segments proceed clockwise.
const StartAngle = 1.5 * math.Pi

// Geometry is the animatable part of a segment.
type Geometry struct {
	InnerRadius   float64
	OuterRadius   float64
	Circumference float64 // angular sweep in radians
}

// lerp returns g + (to-g)*f.
func (g Geometry) lerp(to Geometry, f float64) Geometry {
	return Geometry{
		InnerRadius:   g.InnerRadius + (to.InnerRadius-g.InnerRadius)*f,
		OuterRadius:   g.OuterRadius + (to.OuterRadius-g.OuterRadius)*f,
		Circumference: g.Circumference + (to.Circumference-g.Circumference)*f,
	}
}

// Style holds the paint attributes of a segment.
type Style struct {
	FillColor      color.NRGBA
	HighlightColor color.NRGBA
	StrokeColor    color.NRGBA
	StrokeWidth    float64
	ShowStroke     bool
}

// StyleKey selects style fields for RestoreStyle.
type StyleKey uint8

// Style fields which can be restored individually.
const (
	StyleFill StyleKey = 1 << iota
	StyleHighlight
	StyleStroke
	StyleStrokeWidth
	StyleShowStroke

	StyleAll = StyleFill | StyleHighlight | StyleStroke | StyleStrokeWidth | StyleShowStroke
)

// Segment is one angular slice of a ring.
//
// The embedded Geometry is the displayed geometry.  It moves from the
// geometry captured by BeginTransition towards the target set by SetTarget
// as Interpolate is called with increasing fractions.
type Segment struct {
	Value float64
	Label string

	StartAngle float64
	EndAngle   float64
	Geometry
	Style

	saved  Style
	from   Geometry
	target Geometry
}

// SetTarget records the geometry the segment should move to.  The displayed
// geometry is not changed.
func (s *Segment) SetTarget(g Geometry) {
	s.target = g
}

// Target returns the geometry set by the last call to SetTarget.
func (s *Segment) Target() Geometry {
	return s.target
}

// BeginTransition makes the displayed geometry the starting point of the
// next interpolation.
func (s *Segment) BeginTransition() {
	s.from = s.Geometry
}

// Interpolate sets the displayed geometry to the eased fraction f of the
// way from the transition start to the target.  Curves which overshoot may
// pass fractions outside [0, 1].  For f == 1 the displayed geometry equals
// the target exactly.
func (s *Segment) Interpolate(f float64) {
	if f == 1 {
		s.Geometry = s.target
	} else {
		s.Geometry = s.from.lerp(s.target, f)
	}
	s.EndAngle = s.StartAngle + s.Circumference
}

// SaveStyle takes a snapshot of the current style.
func (s *Segment) SaveStyle() {
	s.saved = s.Style
}

// RestoreStyle resets the selected style fields to the last snapshot.
func (s *Segment) RestoreStyle(keys StyleKey) {
	if keys&StyleFill != 0 {
		s.FillColor = s.saved.FillColor
	}
	if keys&StyleHighlight != 0 {
		s.HighlightColor = s.saved.HighlightColor
	}
	if keys&StyleStroke != 0 {
		s.StrokeColor = s.saved.StrokeColor
	}
	if keys&StyleStrokeWidth != 0 {
		s.StrokeWidth = s.saved.StrokeWidth
	}
	if keys&StyleShowStroke != 0 {
		s.ShowStroke = s.saved.ShowStroke
	}
}

// ContainsPoint reports whether p lies inside the segment drawn around
// center.  The radial range is closed; the angular range includes the
// start angle and excludes the end angle, so a point on the boundary
// between two neighbours belongs to exactly one of them.  Segments without
// area contain no points.
func (s *Segment) ContainsPoint(p, center vec.Vec2) bool {
	d := p.Sub(center)
	dist := d.Length()
	if dist < s.InnerRadius || dist > s.OuterRadius {
		return false
	}
	if s.Circumference <= 0 || s.OuterRadius <= s.InnerRadius {
		return false
	}
	if s.Circumference >= 2*math.Pi {
		return true
	}
	return angleOffset(math.Atan2(d.Y, d.X), s.StartAngle) < s.Circumference
}

// TooltipPosition returns the point half way through the segment, both
// radially and angularly.
func (s *Segment) TooltipPosition(center vec.Vec2) vec.Vec2 {
	mid := s.StartAngle + (s.EndAngle-s.StartAngle)/2
	r := s.InnerRadius + (s.OuterRadius-s.InnerRadius)/2
	return center.Add(vec.Vec2{X: math.Cos(mid), Y: math.Sin(mid)}.Mul(r))
}

// angleOffset returns how far angle lies clockwise of start, in [0, 2π).
func angleOffset(angle, start float64) float64 {
	rel := math.Mod(angle-start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	if rel >= 2*math.Pi {
		rel = 0
	}
	return rel
}
