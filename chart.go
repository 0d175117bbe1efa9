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
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"

	"github.com/tanema/gween/ease"
	"seehuhn.de/go/geom/vec"
)

// Datapoint is one input value.  Color and Highlight are CSS colour
// strings; a missing Color is replaced by DefaultColor, a missing
// Highlight by the fill colour.
type Datapoint struct {
	Value     float64 `json:"value" yaml:"value"`
	Color     string  `json:"color,omitempty" yaml:"color,omitempty"`
	Highlight string  `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Chart is a multi-ring doughnut chart.  Ring 0 is the innermost ring.
//
// A Chart is driven from a single goroutine: the host delivers pointer
// events and frame callbacks on the same thread of control that calls the
// mutation methods.
type Chart struct {
	opts   Options
	host   Host
	stroke color.NRGBA
	easing ease.TweenFunc

	width, height float64
	layout        Layout

	rings  [][]*Segment
	totals []float64

	anim   Animator
	hover  Interaction
	unbind []func()
}

// New creates a chart of the given canvas size, adds the data ring by ring
// and renders it, animated if the options ask for it.
func New(width, height float64, data [][]Datapoint, opts Options, host Host) (*Chart, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for i, ring := range data {
		for j, dp := range ring {
			if err := dp.validate(); err != nil {
				return nil, fmt.Errorf("ring %d, segment %d: %w", i, j, err)
			}
		}
	}

	opts.TooltipEvents = slices.Clone(opts.TooltipEvents)
	c := &Chart{
		opts:   opts,
		host:   host.withDefaults(),
		width:  width,
		height: height,
	}
	c.stroke, _ = ParseColor(opts.SegmentStrokeColor)
	c.easing, _ = EasingByName(opts.AnimationEasing)
	c.anim.Scheduler = c.host.Scheduler
	c.hover = Interaction{
		Redraw:   c.redraw,
		Tooltip:  c.host.Tooltip,
		Describe: c.describe,
	}

	if _, err := c.host.Templater.Render(opts.TooltipTemplate, &Segment{}); err != nil {
		return nil, fmt.Errorf("tooltipTemplate: %w", err)
	}

	for i, ring := range data {
		for j, dp := range ring {
			if dp.Color == "" {
				dp.Color = DefaultColor(j, len(data))
			}
			if err := c.AddData(dp, i, j, true); err != nil {
				return nil, fmt.Errorf("ring %d, segment %d: %w", i, j, err)
			}
		}
	}
	c.render(true)
	return c, nil
}

func (dp Datapoint) validate() error {
	if math.IsNaN(dp.Value) || math.IsInf(dp.Value, 0) {
		return fmt.Errorf("value %g is not finite: %w", dp.Value, ErrInvalidInput)
	}
	return nil
}

// AddData inserts a segment into ring at position at.  A ring index
// outside the existing rings (including negative) appends a new ring; a
// position outside the ring (including negative) appends to the ring.  Unless silent is set the
// chart is re-laid out and re-rendered.
func (c *Chart) AddData(dp Datapoint, ring, at int, silent bool) error {
	if err := dp.validate(); err != nil {
		return err
	}
	ringCount, n := len(c.rings), 0
	if ring < 0 || ring >= len(c.rings) {
		ring = len(c.rings)
		ringCount++
	} else {
		n = len(c.rings[ring])
	}
	if at < 0 || at > n {
		at = n
	}
	if dp.Color == "" {
		dp.Color = DefaultColor(at, ringCount)
	}

	seg, err := c.newSegment(dp)
	if err != nil {
		return err
	}
	if ring == len(c.rings) {
		c.rings = append(c.rings, nil)
	}
	c.rings[ring] = slices.Insert(c.rings[ring], at, seg)
	c.refresh()

	inner, outer := c.layout.Ring(ring)
	g := Geometry{
		InnerRadius:   inner,
		OuterRadius:   outer,
		Circumference: Circumference(seg.Value, c.totals[ring]),
	}
	if c.opts.AnimateRotate {
		g.Circumference = 0
	}
	if c.opts.AnimateScale {
		g.InnerRadius, g.OuterRadius = 0, 0
	}
	seg.Geometry = g
	seg.target = g
	seg.StartAngle = StartAngle
	seg.EndAngle = StartAngle + g.Circumference
	seg.BeginTransition()

	if !silent {
		c.Update()
	}
	return nil
}

func (c *Chart) newSegment(dp Datapoint) (*Segment, error) {
	fill, err := ParseColor(dp.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	highlight := fill
	if dp.Highlight != "" {
		highlight, err = ParseColor(dp.Highlight)
		if err != nil {
			return nil, fmt.Errorf("highlight: %w", err)
		}
	}
	seg := &Segment{
		Value: dp.Value,
		Label: dp.Label,
		Style: Style{
			FillColor:      fill,
			HighlightColor: highlight,
			StrokeColor:    c.stroke,
			StrokeWidth:    c.opts.SegmentStrokeWidth,
			ShowStroke:     c.opts.SegmentShowStroke,
		},
	}
	seg.SaveStyle()
	return seg, nil
}

// RemoveData removes the segment at position at of the given ring.  An
// out-of-range ring selects the last ring, an out-of-range position the
// last segment.  A ring left without segments is removed.
func (c *Chart) RemoveData(ring, at int) {
	if len(c.rings) == 0 {
		return
	}
	if ring < 0 || ring >= len(c.rings) {
		ring = len(c.rings) - 1
	}
	segs := c.rings[ring]
	if len(segs) > 0 {
		if at < 0 || at >= len(segs) {
			at = len(segs) - 1
		}
		c.rings[ring] = slices.Delete(segs, at, at+1)
	}
	if len(c.rings[ring]) == 0 {
		c.rings = slices.Delete(c.rings, ring, ring+1)
	}
	c.refresh()
	c.Update()
}

// RemoveRing removes ring i together with all its segments.  An
// out-of-range index selects the last ring.
func (c *Chart) RemoveRing(i int) {
	if len(c.rings) == 0 {
		return
	}
	if i < 0 || i >= len(c.rings) {
		i = len(c.rings) - 1
	}
	c.rings = slices.Delete(c.rings, i, i+1)
	c.refresh()
	c.Update()
}

// SetValue changes the value of an existing segment and re-renders.
func (c *Chart) SetValue(ring, at int, value float64) error {
	if err := (Datapoint{Value: value}).validate(); err != nil {
		return err
	}
	if ring < 0 || ring >= len(c.rings) || at < 0 || at >= len(c.rings[ring]) {
		return fmt.Errorf("no segment %d in ring %d: %w", at, ring, ErrInvalidInput)
	}
	c.rings[ring][at].Value = value
	c.refresh()
	c.Update()
	return nil
}

// Update recomputes the ring totals, reverts any highlight, takes a new
// style snapshot of every segment and renders the chart.
func (c *Chart) Update() {
	c.refresh()
	c.hover.Reset()
	for _, ring := range c.rings {
		for _, seg := range ring {
			seg.SaveStyle()
		}
	}
	c.render(true)
}

// Resize changes the canvas size and redraws without animation.
func (c *Chart) Resize(width, height float64) {
	c.width, c.height = width, height
	c.Reflow()
}

// Reflow recomputes the centre and the ring radii from the current canvas
// size and redraws without animation.
func (c *Chart) Reflow() {
	c.refresh()
	c.render(false)
}

// refresh recomputes the cached totals and the radius layout.
func (c *Chart) refresh() {
	c.totals = Totals(c.rings)
	c.layout = Layout{
		Width:         c.width,
		Height:        c.height,
		StrokeWidth:   c.opts.SegmentStrokeWidth,
		RingCount:     len(c.rings),
		CutoutPercent: c.opts.PercentageInnerCutout,
		GapPercent:    c.opts.PercentageDatasetGap,
	}
}

// render draws the chart, as a full animated transition if animate is set
// and the options enable animation, or as a single final frame otherwise.
func (c *Chart) render(animate bool) {
	animate = animate && c.opts.Animation && (c.opts.AnimateRotate || c.opts.AnimateScale)
	if !animate {
		c.anim.Immediate(c.drawFrame)
		if c.host.OnAnimationComplete != nil {
			c.host.OnAnimationComplete()
		}
		return
	}

	for _, ring := range c.rings {
		for _, seg := range ring {
			seg.BeginTransition()
		}
	}
	c.anim.Run(c.opts.AnimationSteps, c.easing, func(eased, progress float64) {
		c.drawFrame(eased, progress)
		if c.host.OnAnimationProgress != nil {
			c.host.OnAnimationProgress(eased, progress)
		}
	}, c.host.OnAnimationComplete)
}

// redraw paints the final state without animation.
func (c *Chart) redraw() {
	c.anim.Immediate(c.drawFrame)
}

// drawFrame moves every segment the eased fraction of the way to its
// current target and paints it.  Targets are recomputed on every frame,
// so a silent mutation during a transition takes effect on the next frame.
func (c *Chart) drawFrame(eased, _ float64) {
	rc := c.RenderContext()
	c.host.Painter.Clear(rc)
	paint := c.layout.OuterRadius() > 0

	for i, ring := range c.rings {
		inner, outer := c.layout.Ring(i)
		angle := StartAngle
		for _, seg := range ring {
			seg.SetTarget(Geometry{
				InnerRadius:   inner,
				OuterRadius:   outer,
				Circumference: Circumference(seg.Value, c.totals[i]),
			})
			seg.StartAngle = angle
			seg.Interpolate(eased)
			angle = seg.EndAngle
			if paint {
				c.host.Painter.DrawArc(rc, seg)
			}
		}
	}
}

// RenderContext returns the drawing context for the current canvas size.
func (c *Chart) RenderContext() RenderContext {
	return RenderContext{
		Center: vec.Vec2{X: c.width / 2, Y: c.height / 2},
		Width:  c.width,
		Height: c.height,
	}
}

// SegmentsAt returns the segments under the canvas point (x, y).
func (c *Chart) SegmentsAt(x, y float64) []*Segment {
	return HitTest(c.rings, vec.Vec2{X: x, Y: y}, c.RenderContext().Center)
}

// HandleEvent runs hit testing for a pointer event, if the event type is
// listed in Options.TooltipEvents, and updates the highlight.
func (c *Chart) HandleEvent(ev PointerEvent) {
	if !c.opts.listens(ev.Type) {
		return
	}
	var hits []*Segment
	if !ev.Type.Leave() {
		hits = c.SegmentsAt(ev.X, ev.Y)
	}
	c.hover.Update(hits, false)
}

// ShowTooltip makes segs the highlighted segments.  Without force, nothing
// happens if segs equals the current highlight.
func (c *Chart) ShowTooltip(segs []*Segment, force bool) {
	c.hover.Update(segs, force)
}

// Bind subscribes the chart to pointer events from src.  Nothing is
// subscribed if tooltips are disabled.
func (c *Chart) Bind(src EventSource) {
	var move, leave EventType
	for _, t := range c.opts.TooltipEvents {
		if t.Leave() {
			leave = t
		} else {
			move = t
		}
	}
	if move != "" && c.opts.ShowTooltips {
		c.unbind = append(c.unbind, src.OnPointerMove(func(x, y float64) {
			c.HandleEvent(PointerEvent{Type: move, X: x, Y: y})
		}))
	}
	if leave != "" && c.opts.ShowTooltips {
		c.unbind = append(c.unbind, src.OnPointerLeave(func() {
			c.HandleEvent(PointerEvent{Type: leave})
		}))
	}
}

// Destroy removes all event subscriptions and stops any animation.
func (c *Chart) Destroy() {
	for _, cancel := range c.unbind {
		cancel()
	}
	c.unbind = nil
	c.anim.Stop()
}

// describe builds the tooltip request for seg.
func (c *Chart) describe(seg *Segment) TooltipRequest {
	pos := seg.TooltipPosition(c.RenderContext().Center)
	return TooltipRequest{
		Segment: seg,
		X:       int(math.Round(pos.X)),
		Y:       int(math.Round(pos.Y)),
		Text:    c.TooltipText(seg),
	}
}

// TooltipText renders the tooltip template for seg.  If the template
// fails, the plain value is returned.
func (c *Chart) TooltipText(seg *Segment) string {
	text, err := c.host.Templater.Render(c.opts.TooltipTemplate, seg)
	if err != nil {
		return strconv.FormatFloat(seg.Value, 'g', -1, 64)
	}
	return text
}

// Legend renders the legend template.
func (c *Chart) Legend() (string, error) {
	data := LegendData{
		Name:  c.opts.Name,
		Rings: c.Rings(),
	}
	for _, ring := range c.rings {
		data.Segments = append(data.Segments, ring...)
	}
	return c.host.Templater.Render(c.opts.LegendTemplate, data)
}

// Options returns the options the chart was created with.
func (c *Chart) Options() Options {
	o := c.opts
	o.TooltipEvents = slices.Clone(o.TooltipEvents)
	return o
}

// RingCount returns the number of rings.
func (c *Chart) RingCount() int {
	return len(c.rings)
}

// Ring returns the segments of ring i.
func (c *Chart) Ring(i int) []*Segment {
	return slices.Clone(c.rings[i])
}

// Rings returns the segments of all rings.
func (c *Chart) Rings() [][]*Segment {
	rings := make([][]*Segment, len(c.rings))
	for i, ring := range c.rings {
		rings[i] = slices.Clone(ring)
	}
	return rings
}

// Totals returns the cached ring totals.
func (c *Chart) Totals() []float64 {
	return slices.Clone(c.totals)
}

// Layout returns the current radius layout.
func (c *Chart) Layout() Layout {
	return c.layout
}

// Active returns the highlighted segments.
func (c *Chart) Active() []*Segment {
	return slices.Clone(c.hover.Active())
}

// Animating reports whether an animated transition is in flight.
func (c *Chart) Animating() bool {
	return c.anim.Running()
}

// Locate returns the ring and position of seg.
func (c *Chart) Locate(seg *Segment) (ring, at int, ok bool) {
	for i, r := range c.rings {
		if j := slices.Index(r, seg); j >= 0 {
			return i, j, true
		}
	}
	return 0, 0, false
}
