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

package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/internal/raster"
)

// Vector paints charts into any draw.Image using golang.org/x/image/vector.
// Stroke outlines are built by the internal rasteriser and then filled by
// the vector rasteriser.
type Vector struct {
	Dst draw.Image

	// Background is used by Clear.  A nil Background clears to
	// transparent.
	Background color.Color

	z       *vector.Rasterizer
	stroker *raster.Rasteriser
}

// NewVector returns a painter which draws into dst.  The bounds of dst
// must start at the origin.
func NewVector(dst draw.Image) *Vector {
	b := dst.Bounds()
	return &Vector{
		Dst:     dst,
		z:       vector.NewRasterizer(b.Dx(), b.Dy()),
		stroker: raster.NewRasteriser(rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}),
	}
}

// Clear implements ringchart.Painter.
func (v *Vector) Clear(ringchart.RenderContext) {
	bg := v.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(v.Dst, v.Dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// DrawArc implements ringchart.Painter.
func (v *Vector) DrawArc(rc ringchart.RenderContext, seg *ringchart.Segment) {
	if seg.Circumference <= 0 {
		return
	}
	outline := SectorPath(rc.Center, seg.InnerRadius, seg.OuterRadius, seg.StartAngle, seg.EndAngle)
	v.fill(outline, image.NewUniform(seg.FillColor))

	if seg.ShowStroke && seg.StrokeWidth > 0 {
		v.stroker.Width = seg.StrokeWidth
		v.stroker.Join = graphics.LineJoinBevel
		v.fill(v.stroker.StrokeOutline(outline), image.NewUniform(seg.StrokeColor))
	}
}

func (v *Vector) fill(p *path.Data, src image.Image) {
	b := v.Dst.Bounds()
	v.z.Reset(b.Dx(), b.Dy())
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := p.Coords[k]
			v.z.MoveTo(float32(pt.X), float32(pt.Y))
			k++
		case path.CmdLineTo:
			pt := p.Coords[k]
			v.z.LineTo(float32(pt.X), float32(pt.Y))
			k++
		case path.CmdQuadTo:
			c, pt := p.Coords[k], p.Coords[k+1]
			v.z.QuadTo(float32(c.X), float32(c.Y), float32(pt.X), float32(pt.Y))
			k += 2
		case path.CmdCubeTo:
			c1, c2, pt := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			v.z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(pt.X), float32(pt.Y))
			k += 3
		case path.CmdClose:
			v.z.ClosePath()
		}
	}
	v.z.Draw(v.Dst, b, src, image.Point{})
}
