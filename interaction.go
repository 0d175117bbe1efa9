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

import "slices"

// Interaction tracks which segments are highlighted.  It redraws and
// issues tooltip requests only when the set of active segments changes.
type Interaction struct {
	// Redraw repaints the chart without animation.
	Redraw func()

	// Tooltip receives a Hide call whenever previously shown tooltips
	// become stale, followed by one Show call per active segment.
	Tooltip Tooltip

	// Describe builds the tooltip request for an active segment.
	Describe func(seg *Segment) TooltipRequest

	active []*Segment
}

// Active returns the currently highlighted segments.
func (in *Interaction) Active() []*Segment {
	return in.active
}

// Changed reports whether hits differs from the active segments, by
// length or by identity at any position.
func (in *Interaction) Changed(hits []*Segment) bool {
	return !slices.Equal(hits, in.active)
}

// Update makes hits the active segments.  If nothing changed and force is
// false, Update does nothing and returns false.  Otherwise the previous
// highlight is reverted, the new segments are highlighted, the chart is
// redrawn and the tooltips of the previous segments are replaced.
func (in *Interaction) Update(hits []*Segment, force bool) bool {
	if !force && !in.Changed(hits) {
		return false
	}
	shown := len(in.active) > 0

	for _, seg := range in.active {
		seg.RestoreStyle(StyleFill)
	}
	for _, seg := range hits {
		seg.FillColor = seg.HighlightColor
	}
	in.active = slices.Clone(hits)

	if in.Redraw != nil {
		in.Redraw()
	}
	if in.Tooltip == nil {
		return true
	}
	if shown || len(in.active) == 0 {
		in.Tooltip.Hide()
	}
	for _, seg := range in.active {
		in.Tooltip.Show(in.Describe(seg))
	}
	return true
}

// Reset reverts the highlight of all active segments, hides their
// tooltips and forgets them, without redrawing.
func (in *Interaction) Reset() {
	if len(in.active) == 0 {
		return
	}
	for _, seg := range in.active {
		seg.RestoreStyle(StyleFill)
	}
	in.active = nil
	if in.Tooltip != nil {
		in.Tooltip.Hide()
	}
}
