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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/internal/raster"
)

// Image paints charts into an RGBA image, using the built-in rasteriser.
type Image struct {
	Dst *image.RGBA

	// Background is used by Clear.  A nil Background clears to
	// transparent.
	Background color.Color

	r *raster.Rasteriser
}

// NewImage returns a painter which draws into dst.
func NewImage(dst *image.RGBA) *Image {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Image{Dst: dst, r: raster.NewRasteriser(clip)}
}

// Clear implements ringchart.Painter.
func (p *Image) Clear(ringchart.RenderContext) {
	bg := p.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(p.Dst, p.Dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// DrawArc implements ringchart.Painter.  Segments are filled first and
// then stroked with bevel joins.
func (p *Image) DrawArc(rc ringchart.RenderContext, seg *ringchart.Segment) {
	if seg.Circumference <= 0 {
		return
	}
	outline := SectorPath(rc.Center, seg.InnerRadius, seg.OuterRadius, seg.StartAngle, seg.EndAngle)

	p.r.FillNonZero(outline, func(y, xMin int, coverage []float32) {
		blendSpan(p.Dst, y, xMin, coverage, seg.FillColor)
	})
	if seg.ShowStroke && seg.StrokeWidth > 0 {
		p.r.Width = seg.StrokeWidth
		p.r.Join = graphics.LineJoinBevel
		p.r.Stroke(outline, func(y, xMin int, coverage []float32) {
			blendSpan(p.Dst, y, xMin, coverage, seg.StrokeColor)
		})
	}
}

// blendSpan composites col over one row of dst, scaled by coverage.
func blendSpan(dst *image.RGBA, y, xMin int, coverage []float32, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	off := dst.PixOffset(xMin, y)
	for i, c := range coverage {
		a := float32(col.A) / 255 * c
		if a <= 0 {
			continue
		}
		px := dst.Pix[off+4*i : off+4*i+4 : off+4*i+4]
		px[0] = over(col.R, a, px[0])
		px[1] = over(col.G, a, px[1])
		px[2] = over(col.B, a, px[2])
		px[3] = over(255, a, px[3])
	}
}

// over computes one premultiplied channel of src-over compositing.
func over(src uint8, alpha float32, dst uint8) uint8 {
	v := float32(src)*alpha + float32(dst)*(1-alpha)
	return uint8(min(v+0.5, 255))
}
