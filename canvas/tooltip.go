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
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/ringchart"
)

// ImageTooltip collects tooltip requests and renders them as labelled
// boxes.  Since painters clear the image for every frame, tooltips are
// drawn separately by calling Draw after the chart has been rendered.
type ImageTooltip struct {
	Face       font.Face
	Background color.Color
	Foreground color.Color
	Padding    int

	active []ringchart.TooltipRequest
}

// NewImageTooltip returns a tooltip renderer using a 7x13 bitmap font with
// white text on a translucent black box.
func NewImageTooltip() *ImageTooltip {
	return &ImageTooltip{
		Face:       basicfont.Face7x13,
		Background: color.NRGBA{A: 0xcc},
		Foreground: color.White,
		Padding:    4,
	}
}

// Show implements ringchart.Tooltip.
func (t *ImageTooltip) Show(req ringchart.TooltipRequest) {
	t.active = append(t.active, req)
}

// Hide implements ringchart.Tooltip.
func (t *ImageTooltip) Hide() {
	t.active = t.active[:0]
}

// Requests returns the tooltips currently shown.
func (t *ImageTooltip) Requests() []ringchart.TooltipRequest {
	return t.active
}

// Draw renders the current tooltips into dst, each centred on its anchor.
func (t *ImageTooltip) Draw(dst draw.Image) {
	for _, req := range t.active {
		t.drawOne(dst, req)
	}
}

func (t *ImageTooltip) drawOne(dst draw.Image, req ringchart.TooltipRequest) {
	if req.Text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Foreground),
		Face: t.Face,
	}
	width := d.MeasureString(req.Text).Ceil()
	m := t.Face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()

	box := image.Rect(0, 0, width+2*t.Padding, height+2*t.Padding)
	box = box.Add(image.Pt(req.X-box.Dx()/2, req.Y-box.Dy()/2))
	draw.Draw(dst, box, image.NewUniform(t.Background), image.Point{}, draw.Over)

	d.Dot = fixed.P(box.Min.X+t.Padding, box.Min.Y+t.Padding+m.Ascent.Ceil())
	d.DrawString(req.Text)
}
