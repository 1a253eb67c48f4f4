/*
	Copyright 2026 The ringchart Authors
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package options

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Override holds optional replacements for Options fields.  A nil field
// leaves the corresponding option unchanged.
type Override struct {
	Order           *Order          `yaml:"order" json:"order,omitempty"`
	NodeStyle       *NodeStyle      `yaml:"nodeStyle" json:"nodeStyle,omitempty"`
	ChartType       *ChartType      `yaml:"chartType" json:"chartType,omitempty"`
	ClickAction     *ClickAction    `yaml:"clickAction" json:"clickAction,omitempty"`
	StickyNodes     *bool           `yaml:"stickyNodes" json:"stickyNodes,omitempty"`
	ShowZeros       *bool           `yaml:"showZeros" json:"showZeros,omitempty"`
	AlwaysShowLines *bool           `yaml:"alwaysShowLines" json:"alwaysShowLines,omitempty"`
	FixedNodeRadius *float64        `yaml:"fixedNodeRadius" json:"fixedNodeRadius,omitempty"`
	InnerRadius     *float64        `yaml:"innerRadius" json:"innerRadius,omitempty"`
	Palette         []string        `yaml:"palette" json:"palette,omitempty"`
	Legend          *LegendOverride `yaml:"legend" json:"legend,omitempty"`
	Tick            *TickOverride   `yaml:"tick" json:"tick,omitempty"`
}

// LegendOverride holds optional replacements for Legend fields.
type LegendOverride struct {
	Enabled    *bool   `yaml:"enabled" json:"enabled,omitempty"`
	Centered   *bool   `yaml:"centered" json:"centered,omitempty"`
	FontSize   *string `yaml:"fontSize" json:"fontSize,omitempty"`
	Format     *string `yaml:"format" json:"format,omitempty"`
	LabelColor *string `yaml:"labelColor" json:"labelColor,omitempty"`
	Num        *int    `yaml:"num" json:"num,omitempty"`
}

// TickOverride holds optional replacements for Tick fields.
type TickOverride struct {
	Name     *string `yaml:"name" json:"name,omitempty"`
	IsDate   *bool   `yaml:"isDate" json:"isDate,omitempty"`
	Format   *string `yaml:"format" json:"format,omitempty"`
	FontSize *string `yaml:"fontSize" json:"fontSize,omitempty"`
	Color    *string `yaml:"color" json:"color,omitempty"`
}

// Ptr returns a pointer to v, for populating Overrides.
func Ptr[T any](v T) *T {
	return &v
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Merge returns base with each override applied in order.  base is not
// modified.
func Merge(base Options, overrides ...Override) Options {
	ret := base
	ret.Palette = slices.Clone(base.Palette)
	for _, ov := range overrides {
		set(&ret.Order, ov.Order)
		set(&ret.NodeStyle, ov.NodeStyle)
		set(&ret.ChartType, ov.ChartType)
		set(&ret.ClickAction, ov.ClickAction)
		set(&ret.StickyNodes, ov.StickyNodes)
		set(&ret.ShowZeros, ov.ShowZeros)
		set(&ret.AlwaysShowLines, ov.AlwaysShowLines)
		set(&ret.FixedNodeRadius, ov.FixedNodeRadius)
		set(&ret.InnerRadius, ov.InnerRadius)
		if ov.Palette != nil {
			ret.Palette = slices.Clone(ov.Palette)
		}
		if lo := ov.Legend; lo != nil {
			set(&ret.Legend.Enabled, lo.Enabled)
			set(&ret.Legend.Centered, lo.Centered)
			set(&ret.Legend.FontSize, lo.FontSize)
			set(&ret.Legend.Format, lo.Format)
			set(&ret.Legend.LabelColor, lo.LabelColor)
			set(&ret.Legend.Num, lo.Num)
		}
		if to := ov.Tick; to != nil {
			set(&ret.Tick.Name, to.Name)
			set(&ret.Tick.IsDate, to.IsDate)
			set(&ret.Tick.Format, to.Format)
			set(&ret.Tick.FontSize, to.FontSize)
			set(&ret.Tick.Color, to.Color)
		}
	}
	return ret
}

// Load decodes an Override from YAML.  Unknown keys are rejected.  Empty
// input yields an empty Override.
func Load(r io.Reader) (Override, error) {
	var ov Override
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ov); err != nil && !errors.Is(err, io.EOF) {
		return Override{}, fmt.Errorf("failed to decode options: %w", err)
	}
	return ov, nil
}
