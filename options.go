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
	"math"
	"slices"
)

// Options controls layout, styling, animation and interaction of a chart.
// A chart copies its Options once at construction; later changes to the
// caller's value have no effect.
type Options struct {
	// Name identifies the chart type in legend templates.
	Name string

	// SegmentShowStroke enables the border around each segment.
	SegmentShowStroke bool

	// SegmentStrokeColor is the border colour as a CSS colour string.
	SegmentStrokeColor string

	// SegmentStrokeWidth is the border width in canvas units.
	SegmentStrokeWidth float64

	// PercentageDatasetGap is the radial gap between adjacent rings,
	// as a percentage of the width of one ring.  Must be in [0, 100].
	PercentageDatasetGap float64

	// PercentageInnerCutout is the size of the hole in the middle,
	// as a percentage of the outer radius.  Must be in [0, 100].
	PercentageInnerCutout float64

	// Animation is the master switch for animated transitions.
	Animation bool

	// AnimationSteps is the number of frames of an animated transition.
	AnimationSteps int

	// AnimationEasing names the easing curve, e.g. "easeOutBounce".
	AnimationEasing string

	// AnimateRotate grows new segments from zero circumference.
	AnimateRotate bool

	// AnimateScale grows new segments outwards from the centre.
	AnimateScale bool

	// ShowTooltips enables hit testing on pointer events.
	ShowTooltips bool

	// TooltipEvents lists the pointer event types that trigger hit testing.
	TooltipEvents []EventType

	// TooltipTemplate is a text/template executed with a *Segment.
	TooltipTemplate string

	// LegendTemplate is a text/template executed with a LegendData.
	LegendTemplate string
}

// DefaultOptions returns the default chart options.
func DefaultOptions() Options {
	return Options{
		Name:                  "MultiDoughnut",
		SegmentShowStroke:     true,
		SegmentStrokeColor:    "#fff",
		SegmentStrokeWidth:    2,
		PercentageDatasetGap:  0,
		PercentageInnerCutout: 50,
		Animation:             true,
		AnimationSteps:        100,
		AnimationEasing:       "easeOutBounce",
		AnimateRotate:         true,
		AnimateScale:          false,
		ShowTooltips:          true,
		TooltipEvents:         []EventType{EventMouseMove, EventTouchStart, EventTouchMove, EventMouseOut},
		TooltipTemplate:       defaultTooltipTemplate,
		LegendTemplate:        defaultLegendTemplate,
	}
}

const defaultTooltipTemplate = `{{if .Label}}{{.Label}}: {{end}}{{.Value}}`

const defaultLegendTemplate = `<ul class="{{lower .Name}}-legend">` +
	`{{range .Segments}}<li><span style="background-color:{{css .FillColor}}">` +
	`{{if .Label}}{{.Label}}{{end}}</span></li>{{end}}</ul>`

// Validate checks that all numeric options are in range and that the
// easing curve is known.
func (o *Options) Validate() error {
	if o.PercentageInnerCutout < 0 || o.PercentageInnerCutout > 100 || math.IsNaN(o.PercentageInnerCutout) {
		return fmt.Errorf("percentageInnerCutout %g outside [0, 100]: %w",
			o.PercentageInnerCutout, ErrInvalidInput)
	}
	if o.PercentageDatasetGap < 0 || o.PercentageDatasetGap > 100 || math.IsNaN(o.PercentageDatasetGap) {
		return fmt.Errorf("percentageDatasetGap %g outside [0, 100]: %w",
			o.PercentageDatasetGap, ErrInvalidInput)
	}
	if o.SegmentStrokeWidth < 0 || math.IsNaN(o.SegmentStrokeWidth) || math.IsInf(o.SegmentStrokeWidth, 0) {
		return fmt.Errorf("segmentStrokeWidth %g: %w", o.SegmentStrokeWidth, ErrInvalidInput)
	}
	if o.AnimationSteps < 1 {
		return fmt.Errorf("animationSteps %d < 1: %w", o.AnimationSteps, ErrInvalidInput)
	}
	if _, err := EasingByName(o.AnimationEasing); err != nil {
		return err
	}
	if _, err := ParseColor(o.SegmentStrokeColor); err != nil {
		return fmt.Errorf("segmentStrokeColor: %w", err)
	}
	return nil
}

// listens reports whether hit testing runs for events of type t.
func (o *Options) listens(t EventType) bool {
	return o.ShowTooltips && slices.Contains(o.TooltipEvents, t)
}
