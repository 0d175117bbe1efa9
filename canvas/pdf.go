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
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ringchart"
)

// PDF paints charts onto a PDF page.  Only the last frame of an animation
// is meaningful, since PDF content cannot be erased; Clear therefore does
// nothing.  Colours are written as DeviceRGB and alpha is ignored.
type PDF struct {
	Page *document.Page
}

// NewPDF returns a painter for a page of the given height, and flips the
// y axis so that canvas coordinates can be used.
func NewPDF(page *document.Page, height float64) *PDF {
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	return &PDF{Page: page}
}

// Clear implements ringchart.Painter.
func (p *PDF) Clear(ringchart.RenderContext) {}

// DrawArc implements ringchart.Painter.
func (p *PDF) DrawArc(rc ringchart.RenderContext, seg *ringchart.Segment) {
	if seg.Circumference <= 0 {
		return
	}
	outline := SectorPath(rc.Center, seg.InnerRadius, seg.OuterRadius, seg.StartAngle, seg.EndAngle)

	p.Page.SetFillColor(deviceRGB(seg.FillColor))
	p.emit(outline)
	p.Page.Fill()

	if seg.ShowStroke && seg.StrokeWidth > 0 {
		p.Page.SetStrokeColor(deviceRGB(seg.StrokeColor))
		p.Page.SetLineWidth(seg.StrokeWidth)
		p.Page.SetLineJoin(graphics.LineJoinBevel)
		p.emit(outline)
		p.Page.Stroke()
	}
}

func (p *PDF) emit(outline *path.Data) {
	for cmd, pts := range outline.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.Page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.Page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			p.Page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.Page.ClosePath()
		}
	}
}

func deviceRGB(c stdcolor.NRGBA) color.Color {
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
