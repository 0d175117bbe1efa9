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
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/ringchart"
)

func TestSectorPathEndpoints(t *testing.T) {
	center := vec.Vec2{X: 50, Y: 50}
	p := SectorPath(center, 10, 20, ringchart.StartAngle, ringchart.StartAngle+math.Pi)

	if got := p.Coords[0]; math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-30) > 1e-9 {
		t.Errorf("path starts at %v, want (50, 30)", got)
	}

	var cubics int
	k := 0
	var current vec.Vec2
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			current = p.Coords[k]
			k++
		case path.CmdCubeTo:
			p0, p1, p2, p3 := current, p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			mid := p0.Mul(0.125).Add(p1.Mul(0.375)).Add(p2.Mul(0.375)).Add(p3.Mul(0.125))
			r0 := p0.Sub(center).Length()
			if rm := mid.Sub(center).Length(); math.Abs(rm-r0)/r0 > 3e-4 {
				t.Errorf("cubic %d: midpoint radius %g, want %g", cubics, rm, r0)
			}
			current = p3
			cubics++
			k += 3
		}
	}
	if cubics != 4 {
		t.Errorf("%d cubic segments, want 4", cubics)
	}
	if p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Error("sector is not closed")
	}
}

func TestSectorPathNoHole(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 10}
	p := SectorPath(center, 0, 5, 0, math.Pi/2)
	last := p.Coords[len(p.Coords)-1]
	if last != center {
		t.Errorf("sector without hole ends at %v, want the centre", last)
	}
}

func newChart(t *testing.T, painter ringchart.Painter, data [][]ringchart.Datapoint) *ringchart.Chart {
	t.Helper()
	opts := ringchart.DefaultOptions()
	opts.Animation = false
	opts.SegmentShowStroke = false
	c, err := ringchart.New(100, 100, data, opts, ringchart.Host{Painter: painter})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

var halves = [][]ringchart.Datapoint{{
	{Value: 1, Color: "#ff0000", Highlight: "#00ff00"},
	{Value: 1, Color: "#0000ff"},
}}

func TestImagePainter(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := newChart(t, NewImage(dst), halves)

	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{85, 50, color.RGBA{255, 0, 0, 255}}, // right half
		{15, 50, color.RGBA{0, 0, 255, 255}}, // left half
		{50, 50, color.RGBA{}},               // hole
		{1, 1, color.RGBA{}},                 // outside
	}
	for _, c := range cases {
		if got := dst.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	c.HandleEvent(ringchart.PointerEvent{Type: ringchart.EventMouseMove, X: 85, Y: 50})
	if got := dst.RGBAAt(85, 50); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("highlighted pixel = %v", got)
	}
}

func TestImagePainterStroke(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	p := NewImage(dst)
	p.Background = color.Black
	opts := ringchart.DefaultOptions()
	opts.Animation = false
	opts.SegmentStrokeWidth = 4
	_, err := ringchart.New(100, 100, halves, opts, ringchart.Host{Painter: p})
	if err != nil {
		t.Fatal(err)
	}
	// the border between the two halves at 12 o'clock is white
	if got := dst.RGBAAt(50, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("border pixel = %v", got)
	}
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background pixel = %v", got)
	}
}

func TestVectorMatchesImage(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := image.NewRGBA(image.Rect(0, 0, 100, 100))
	data := [][]ringchart.Datapoint{
		{{Value: 3, Color: "#ff0000"}, {Value: 1, Color: "#00ff00"}},
		{{Value: 2, Color: "#0000ff"}, {Value: 5, Color: "#ffff00"}},
	}
	newChart(t, NewImage(a), data)
	newChart(t, NewVector(b), data)

	var worst int
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		worst = max(worst, d, -d)
	}
	// the rasterisers differ in curve flattening only
	if worst > 64 {
		t.Errorf("images differ by up to %d", worst)
	}
	if got := b.RGBAAt(85, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("vector pixel (85, 50) = %v", got)
	}
}

func TestImageTooltip(t *testing.T) {
	tip := NewImageTooltip()
	tip.Show(ringchart.TooltipRequest{X: 50, Y: 50, Text: "a: 1"})
	if len(tip.Requests()) != 1 {
		t.Fatalf("%d requests, want 1", len(tip.Requests()))
	}

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	tip.Draw(dst)
	if dst.RGBAAt(50, 50).A == 0 {
		t.Error("tooltip box not drawn at its anchor")
	}
	if dst.RGBAAt(5, 5).A != 0 {
		t.Error("tooltip drawn far from its anchor")
	}

	tip.Hide()
	if len(tip.Requests()) != 0 {
		t.Error("Hide left requests behind")
	}
}

func TestImageTooltipFollowsPointer(t *testing.T) {
	tip := NewImageTooltip()
	opts := ringchart.DefaultOptions()
	opts.Animation = false
	c, err := ringchart.New(100, 100, halves, opts, ringchart.Host{Tooltip: tip})
	if err != nil {
		t.Fatal(err)
	}

	c.HandleEvent(ringchart.PointerEvent{Type: ringchart.EventMouseMove, X: 85, Y: 50})
	c.HandleEvent(ringchart.PointerEvent{Type: ringchart.EventMouseMove, X: 15, Y: 50})
	reqs := tip.Requests()
	if len(reqs) != 1 {
		t.Fatalf("%d tooltips shown, want 1", len(reqs))
	}
	if reqs[0].Segment != c.Ring(0)[1] {
		t.Error("tooltip does not belong to the segment under the pointer")
	}

	c.Update()
	if len(tip.Requests()) != 0 {
		t.Error("tooltip survived Update")
	}
}

func TestPDFPainter(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "chart.pdf")
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: 100, URy: 100}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	opts := ringchart.DefaultOptions()
	opts.Animation = false
	_, err = ringchart.New(100, 100, halves, opts, ringchart.Host{Painter: NewPDF(page, 100)})
	if err != nil {
		t.Fatal(err)
	}
	if err := page.Close(); err != nil {
		t.Fatal(err)
	}

	body, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}
