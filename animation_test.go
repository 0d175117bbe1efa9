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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tanema/gween/ease"
)

func TestAnimatorFrames(t *testing.T) {
	q := &FrameQueue{}
	a := &Animator{Scheduler: q}

	var progress, eased []float64
	done := 0
	a.Run(4, ease.Linear, func(e, p float64) {
		eased = append(eased, e)
		progress = append(progress, p)
	}, func() { done++ })

	if !a.Running() {
		t.Error("animator not running after Run")
	}
	if len(progress) != 0 {
		t.Fatal("frames ran before the host scheduled them")
	}
	if n := q.Drain(); n != 4 {
		t.Errorf("ran %d frames, want 4", n)
	}

	want := []float64{0.25, 0.5, 0.75, 1}
	if d := cmp.Diff(want, progress); d != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, eased); d != "" {
		t.Errorf("eased mismatch (-want +got):\n%s", d)
	}
	if done != 1 {
		t.Errorf("done called %d times, want 1", done)
	}
	if a.Running() {
		t.Error("animator still running after the last frame")
	}
}

func TestAnimatorLastFrameExact(t *testing.T) {
	for _, name := range EasingNames() {
		curve, _ := EasingByName(name)
		a := &Animator{Scheduler: &syncScheduler{}}
		var last float64
		frames := 0
		a.Run(7, curve, func(e, _ float64) {
			last = e
			frames++
		}, nil)
		if frames != 7 {
			t.Errorf("%s: %d frames, want 7", name, frames)
		}
		if last != 1 {
			t.Errorf("%s: last eased value %g, want 1", name, last)
		}
	}
}

func TestAnimatorSupersede(t *testing.T) {
	q := &FrameQueue{}
	a := &Animator{Scheduler: q}

	var first, second int
	var firstDone, secondDone int
	a.Run(10, ease.Linear, func(_, _ float64) { first++ }, func() { firstDone++ })
	q.Step()
	q.Step()
	a.Run(3, ease.Linear, func(_, _ float64) { second++ }, func() { secondDone++ })
	q.Drain()

	if first != 2 {
		t.Errorf("superseded run drew %d frames, want 2", first)
	}
	if second != 3 {
		t.Errorf("new run drew %d frames, want 3", second)
	}
	if firstDone != 0 || secondDone != 1 {
		t.Errorf("done calls = (%d, %d), want (0, 1)", firstDone, secondDone)
	}
}

func TestAnimatorStop(t *testing.T) {
	q := &FrameQueue{}
	a := &Animator{Scheduler: q}
	frames := 0
	a.Run(5, ease.Linear, func(_, _ float64) { frames++ }, nil)
	q.Step()
	a.Stop()
	q.Drain()
	if frames != 1 {
		t.Errorf("%d frames after Stop, want 1", frames)
	}
	if a.Running() {
		t.Error("animator running after Stop")
	}
}

func TestSyncSchedulerNoRecursion(t *testing.T) {
	s := &syncScheduler{}
	depth, maxDepth := 0, 0
	n := 0
	var fn func()
	fn = func() {
		depth++
		maxDepth = max(maxDepth, depth)
		n++
		if n < 1000 {
			s.RequestFrame(fn)
		}
		depth--
	}
	s.RequestFrame(fn)
	if n != 1000 {
		t.Errorf("ran %d frames, want 1000", n)
	}
	if maxDepth != 1 {
		t.Errorf("frames nested %d deep", maxDepth)
	}
}

// recorder is a Painter and Tooltip which counts calls.
type recorder struct {
	clears, arcs int
	shown        []TooltipRequest
	hides        int
}

func (r *recorder) Clear(RenderContext)             { r.clears++ }
func (r *recorder) DrawArc(RenderContext, *Segment) { r.arcs++ }
func (r *recorder) Show(req TooltipRequest)         { r.shown = append(r.shown, req) }
func (r *recorder) Hide()                           { r.hides++ }

func linearOptions(steps int) Options {
	opts := DefaultOptions()
	opts.AnimationSteps = steps
	opts.AnimationEasing = "linear"
	return opts
}

func TestChartAnimatedRender(t *testing.T) {
	q := &FrameQueue{}
	rec := &recorder{}
	var progress []float64
	complete := 0
	host := Host{
		Painter:             rec,
		Scheduler:           q,
		OnAnimationProgress: func(_, p float64) { progress = append(progress, p) },
		OnAnimationComplete: func() { complete++ },
	}
	data := [][]Datapoint{{{Value: 10}, {Value: 30}}}
	c, err := New(400, 400, data, linearOptions(4), host)
	if err != nil {
		t.Fatal(err)
	}
	seg := c.Ring(0)[1]
	if seg.Circumference != 0 {
		t.Errorf("segment starts with circumference %g, want 0", seg.Circumference)
	}

	q.Step()
	if want := 0.25 * 1.5 * math.Pi; math.Abs(seg.Circumference-want) > 1e-12 {
		t.Errorf("after one frame circumference is %g, want %g", seg.Circumference, want)
	}
	q.Drain()
	if seg.Circumference != 1.5*math.Pi {
		t.Errorf("final circumference %g, want 3π/2", seg.Circumference)
	}
	if rec.clears != 4 || rec.arcs != 8 {
		t.Errorf("%d clears and %d arcs, want 4 and 8", rec.clears, rec.arcs)
	}
	if d := cmp.Diff([]float64{0.25, 0.5, 0.75, 1}, progress); d != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", d)
	}
	if complete != 1 {
		t.Errorf("completion reported %d times, want 1", complete)
	}
}

func TestChartNoAnimationFlags(t *testing.T) {
	q := &FrameQueue{}
	rec := &recorder{}
	opts := DefaultOptions()
	opts.AnimateRotate = false
	opts.AnimateScale = false
	data := [][]Datapoint{{{Value: 1}, {Value: 1}}}
	c, err := New(100, 100, data, opts, Host{Painter: rec, Scheduler: q})
	if err != nil {
		t.Fatal(err)
	}
	if q.Len() != 0 {
		t.Errorf("%d frames scheduled, want none", q.Len())
	}
	if rec.clears != 1 {
		t.Errorf("%d redraws, want 1", rec.clears)
	}
	if got := c.Ring(0)[0].Circumference; got != math.Pi {
		t.Errorf("circumference %g, want π", got)
	}
}

func TestChartAnimateScale(t *testing.T) {
	q := &FrameQueue{}
	opts := linearOptions(2)
	opts.AnimateRotate = false
	opts.AnimateScale = true
	data := [][]Datapoint{{{Value: 1}}}
	c, err := New(200, 200, data, opts, Host{Scheduler: q})
	if err != nil {
		t.Fatal(err)
	}
	seg := c.Ring(0)[0]
	q.Step()
	inner, outer := c.Layout().Ring(0)
	if seg.InnerRadius != inner/2 || seg.OuterRadius != outer/2 {
		t.Errorf("radii after half the frames (%g, %g), want (%g, %g)",
			seg.InnerRadius, seg.OuterRadius, inner/2, outer/2)
	}
	if seg.Circumference != 2*math.Pi {
		t.Errorf("circumference %g, want 2π", seg.Circumference)
	}
	q.Drain()
	if seg.InnerRadius != inner || seg.OuterRadius != outer {
		t.Errorf("final radii (%g, %g), want (%g, %g)",
			seg.InnerRadius, seg.OuterRadius, inner, outer)
	}
}

func TestChartSilentMutationJumps(t *testing.T) {
	q := &FrameQueue{}
	data := [][]Datapoint{{{Value: 10}, {Value: 30}}}
	c, err := New(400, 400, data, linearOptions(4), Host{Scheduler: q})
	if err != nil {
		t.Fatal(err)
	}
	q.Step()
	q.Step()
	seg := c.Ring(0)[0]
	if want := 0.5 * math.Pi / 2; math.Abs(seg.Circumference-want) > 1e-12 {
		t.Fatalf("circumference %g, want %g", seg.Circumference, want)
	}

	if err := c.AddData(Datapoint{Value: 40}, 0, -1, true); err != nil {
		t.Fatal(err)
	}
	q.Step()
	// the new total applies from the next frame on
	if want := 0.75 * math.Pi / 4; math.Abs(seg.Circumference-want) > 1e-12 {
		t.Errorf("circumference %g, want %g", seg.Circumference, want)
	}
	q.Drain()

	sum := 0.0
	for _, s := range c.Ring(0) {
		sum += s.Circumference
	}
	if math.Abs(sum-2*math.Pi) > 1e-9 {
		t.Errorf("circumferences sum to %g, want 2π", sum)
	}
}

func TestChartUpdateSupersedes(t *testing.T) {
	q := &FrameQueue{}
	complete := 0
	host := Host{Scheduler: q, OnAnimationComplete: func() { complete++ }}
	data := [][]Datapoint{{{Value: 1}, {Value: 1}}}
	c, err := New(100, 100, data, linearOptions(10), host)
	if err != nil {
		t.Fatal(err)
	}
	q.Step()
	if !c.Animating() {
		t.Error("chart not animating")
	}
	if err := c.SetValue(0, 0, 3); err != nil {
		t.Fatal(err)
	}
	n := q.Drain()
	if n != 11 {
		// one stale frame of the first run plus ten frames of the second
		t.Errorf("%d frame callbacks, want 11", n)
	}
	if complete != 1 {
		t.Errorf("completion reported %d times, want 1", complete)
	}
	if got := c.Ring(0)[0].Circumference; got != 1.5*math.Pi {
		t.Errorf("circumference %g, want 3π/2", got)
	}
}
