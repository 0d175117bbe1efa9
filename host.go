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
	"strings"
	"text/template"

	"seehuhn.de/go/geom/vec"
)

// RenderContext describes the drawing surface for one frame.  It is passed
// explicitly to every draw call.
type RenderContext struct {
	Center vec.Vec2 // chart centre in canvas coordinates
	Width  float64  // canvas width
	Height float64  // canvas height
}

// Painter is the drawing primitive of the host.
type Painter interface {
	// Clear erases the canvas before a frame is drawn.
	Clear(rc RenderContext)

	// DrawArc paints one segment with its resolved geometry and style.
	DrawArc(rc RenderContext, seg *Segment)
}

// TooltipRequest asks the host to show a tooltip for one segment.
type TooltipRequest struct {
	Segment *Segment
	X, Y    int    // anchor, rounded to whole canvas units
	Text    string // tooltipTemplate rendered for the segment
}

// Tooltip shows and hides tooltips on behalf of the chart.
type Tooltip interface {
	Show(req TooltipRequest)
	Hide()
}

// Templater renders a template with the given data.
type Templater interface {
	Render(tmpl string, data any) (string, error)
}

// EventType names a pointer event.
type EventType string

// Pointer event types understood by Options.TooltipEvents.
const (
	EventMouseMove  EventType = "mousemove"
	EventMouseOut   EventType = "mouseout"
	EventTouchStart EventType = "touchstart"
	EventTouchMove  EventType = "touchmove"
	EventTouchEnd   EventType = "touchend"
)

// Leave reports whether the event means the pointer left the chart.
func (t EventType) Leave() bool {
	return t == EventMouseOut || t == EventTouchEnd
}

// PointerEvent is a pointer event in canvas coordinates.
type PointerEvent struct {
	Type EventType
	X, Y float64
}

// EventSource lets the chart subscribe to pointer events.  The returned
// function removes the subscription.
type EventSource interface {
	OnPointerMove(fn func(x, y float64)) (cancel func())
	OnPointerLeave(fn func()) (cancel func())
}

// Host bundles the collaborators a chart needs.  Nil fields are replaced
// by defaults: a painter and tooltip which do nothing, synchronous frame
// scheduling and Go text templates.
type Host struct {
	Painter   Painter
	Tooltip   Tooltip
	Scheduler Scheduler
	Templater Templater

	// OnAnimationProgress, if set, is called after every animation frame.
	OnAnimationProgress func(eased, progress float64)

	// OnAnimationComplete, if set, is called after every render which
	// was not superseded.
	OnAnimationComplete func()
}

func (h Host) withDefaults() Host {
	if h.Painter == nil {
		h.Painter = nopPainter{}
	}
	if h.Tooltip == nil {
		h.Tooltip = nopTooltip{}
	}
	if h.Scheduler == nil {
		h.Scheduler = &syncScheduler{}
	}
	if h.Templater == nil {
		h.Templater = NewTextTemplater()
	}
	return h
}

type nopPainter struct{}

func (nopPainter) Clear(RenderContext)             {}
func (nopPainter) DrawArc(RenderContext, *Segment) {}

type nopTooltip struct{}

func (nopTooltip) Show(TooltipRequest) {}
func (nopTooltip) Hide()               {}

// TextTemplater renders text/template templates.  Parsed templates are
// cached by source text.  Besides the builtins, templates can call
// "lower" (strings.ToLower) and "css" (colour to "#rrggbb").
type TextTemplater struct {
	cache map[string]*template.Template
}

// NewTextTemplater returns an empty TextTemplater.
func NewTextTemplater() *TextTemplater {
	return &TextTemplater{cache: make(map[string]*template.Template)}
}

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"css":   func(c color.NRGBA) string { return HexColor(c) },
}

// Render implements Templater.
func (tt *TextTemplater) Render(src string, data any) (string, error) {
	tmpl, ok := tt.cache[src]
	if !ok {
		var err error
		tmpl, err = template.New("").Funcs(templateFuncs).Parse(src)
		if err != nil {
			return "", err
		}
		tt.cache[src] = tmpl
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LegendData is passed to the legend template.
type LegendData struct {
	Name     string       // Options.Name
	Segments []*Segment   // all segments, ring by ring
	Rings    [][]*Segment // segments grouped by ring
}
