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
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scheduler runs callbacks at frame boundaries.  The host owns the frame
// clock; an animation yields to the host between frames by requesting the
// next frame and returning.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler which runs frames only when asked to.  It is
// useful for hosts that drive rendering from their own loop, and in tests.
type FrameQueue struct {
	pending []func()
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of pending frame callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Step runs the oldest pending callback.  It reports false if there was
// nothing to run.
func (q *FrameQueue) Step() bool {
	if len(q.pending) == 0 {
		return false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	fn()
	return true
}

// Drain runs callbacks, including ones requested while draining, until the
// queue is empty.  It returns the number of callbacks run.
func (q *FrameQueue) Drain() int {
	n := 0
	for q.Step() {
		n++
	}
	return n
}

// syncScheduler runs every requested frame before RequestFrame returns.
// Frames requested from inside a frame are queued, so a long animation
// does not grow the call stack.
type syncScheduler struct {
	queue   FrameQueue
	running bool
}

func (s *syncScheduler) RequestFrame(fn func()) {
	s.queue.RequestFrame(fn)
	if s.running {
		return
	}
	s.running = true
	s.queue.Drain()
	s.running = false
}

// FrameFunc renders one frame.  eased is the output of the easing curve,
// progress is the linear fraction of the transition completed.
type FrameFunc func(eased, progress float64)

// Animator drives transitions as a bounded sequence of eased frames.
//
// Starting a transition supersedes any transition still in flight: frames
// of the older run which are already scheduled become no-ops.
type Animator struct {
	Scheduler Scheduler

	generation uint64
	running    bool
}

// Run schedules steps frames.  Frame k receives progress k/steps and the
// eased value of that progress; the last frame receives exactly 1 for both.
// done, if non-nil, is called after the last frame of a run which was not
// superseded.
func (a *Animator) Run(steps int, curve ease.TweenFunc, frame FrameFunc, done func()) {
	a.generation++
	gen := a.generation
	steps = max(steps, 1)
	tween := gween.New(0, 1, float32(steps), curve)

	k := 0
	var step func()
	step = func() {
		if gen != a.generation {
			return
		}
		k++
		eased, finished := tween.Set(float32(k))
		progress := 1.0
		if !finished {
			progress = float64(k) / float64(steps)
		}
		frame(float64(eased), progress)
		if gen != a.generation {
			return
		}
		if finished {
			a.running = false
			if done != nil {
				done()
			}
			return
		}
		a.Scheduler.RequestFrame(step)
	}

	a.running = true
	a.Scheduler.RequestFrame(step)
}

// Immediate renders a single frame at the end of the transition.  It does
// not affect a transition in flight.
func (a *Animator) Immediate(frame FrameFunc) {
	frame(1, 1)
}

// Stop supersedes the transition in flight, if any.
func (a *Animator) Stop() {
	a.generation++
	a.running = false
}

// Running reports whether a transition has frames left to run.
func (a *Animator) Running() bool {
	return a.running
}
