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

// Package config loads chart options, canvas size and logging settings
// from a configuration file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/ringchart"
)

// EnvPrefix is the prefix of environment variables which override
// configuration keys, e.g. RINGCHART_PERCENTAGEINNERCUTOUT or
// RINGCHART_CANVAS_WIDTH.
const EnvPrefix = "RINGCHART"

// Config is the complete configuration of the ringchart command.
type Config struct {
	Name                  string   `mapstructure:"name"`
	SegmentShowStroke     bool     `mapstructure:"segmentShowStroke"`
	SegmentStrokeColor    string   `mapstructure:"segmentStrokeColor"`
	SegmentStrokeWidth    float64  `mapstructure:"segmentStrokeWidth"`
	PercentageDatasetGap  float64  `mapstructure:"percentageDatasetGap"`
	PercentageInnerCutout float64  `mapstructure:"percentageInnerCutout"`
	Animation             bool     `mapstructure:"animation"`
	AnimationSteps        int      `mapstructure:"animationSteps"`
	AnimationEasing       string   `mapstructure:"animationEasing"`
	AnimateRotate         bool     `mapstructure:"animateRotate"`
	AnimateScale          bool     `mapstructure:"animateScale"`
	ShowTooltips          bool     `mapstructure:"showTooltips"`
	TooltipEvents         []string `mapstructure:"tooltipEvents"`
	TooltipTemplate       string   `mapstructure:"tooltipTemplate"`
	LegendTemplate        string   `mapstructure:"legendTemplate"`

	Canvas  CanvasConfig  `mapstructure:"canvas"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CanvasConfig is the size of the output canvas.
type CanvasConfig struct {
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	Background string  `mapstructure:"background"`
}

// LoggingConfig controls the command's log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// Load reads ringchart.{yaml,json,toml} from the working directory or from
// $HOME/.config/ringchart, if present, and applies environment overrides.
// A missing configuration file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("ringchart")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ringchart"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads the configuration from the given file and applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	o := ringchart.DefaultOptions()
	events := make([]string, len(o.TooltipEvents))
	for i, e := range o.TooltipEvents {
		events[i] = string(e)
	}

	v.SetDefault("name", o.Name)
	v.SetDefault("segmentShowStroke", o.SegmentShowStroke)
	v.SetDefault("segmentStrokeColor", o.SegmentStrokeColor)
	v.SetDefault("segmentStrokeWidth", o.SegmentStrokeWidth)
	v.SetDefault("percentageDatasetGap", o.PercentageDatasetGap)
	v.SetDefault("percentageInnerCutout", o.PercentageInnerCutout)
	v.SetDefault("animation", o.Animation)
	v.SetDefault("animationSteps", o.AnimationSteps)
	v.SetDefault("animationEasing", o.AnimationEasing)
	v.SetDefault("animateRotate", o.AnimateRotate)
	v.SetDefault("animateScale", o.AnimateScale)
	v.SetDefault("showTooltips", o.ShowTooltips)
	v.SetDefault("tooltipEvents", events)
	v.SetDefault("tooltipTemplate", o.TooltipTemplate)
	v.SetDefault("legendTemplate", o.LegendTemplate)

	v.SetDefault("canvas.width", 400)
	v.SetDefault("canvas.height", 400)
	v.SetDefault("canvas.background", "transparent")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Options converts the chart part of the configuration and validates it.
func (c *Config) Options() (ringchart.Options, error) {
	o := ringchart.Options{
		Name:                  c.Name,
		SegmentShowStroke:     c.SegmentShowStroke,
		SegmentStrokeColor:    c.SegmentStrokeColor,
		SegmentStrokeWidth:    c.SegmentStrokeWidth,
		PercentageDatasetGap:  c.PercentageDatasetGap,
		PercentageInnerCutout: c.PercentageInnerCutout,
		Animation:             c.Animation,
		AnimationSteps:        c.AnimationSteps,
		AnimationEasing:       c.AnimationEasing,
		AnimateRotate:         c.AnimateRotate,
		AnimateScale:          c.AnimateScale,
		ShowTooltips:          c.ShowTooltips,
		TooltipTemplate:       c.TooltipTemplate,
		LegendTemplate:        c.LegendTemplate,
	}
	for _, e := range c.TooltipEvents {
		o.TooltipEvents = append(o.TooltipEvents, ringchart.EventType(strings.TrimSpace(e)))
	}
	if err := o.Validate(); err != nil {
		return ringchart.Options{}, err
	}
	return o, nil
}
