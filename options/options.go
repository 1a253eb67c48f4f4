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

// Package options defines the configuration of a ring chart.
//
// An Options value is immutable once built: Default returns the defaults,
// and Merge overlays any number of Overrides onto a base Options, returning
// a new value.  Overrides use pointer fields so that an unset field leaves
// the base untouched; they can be decoded from YAML with Load or from JSON.
package options

import (
	"fmt"

	"github.com/analyzer2004/ringchart/dataset"
)

// Order is the rank sort direction.
type Order string

// Rank sort directions.
const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// NodeStyle is the shape drawn for each data point.
type NodeStyle string

// Node styles.
const (
	Arc    NodeStyle = "arc"
	Circle NodeStyle = "circle"
	Rect   NodeStyle = "rect"
)

// ChartType selects the layout mode.
type ChartType string

// Chart types.  RankMap places keys by per-tick rank and connects them with
// lines; HeatMap colors each key's ring by value.
const (
	RankMap ChartType = "rankmap"
	HeatMap ChartType = "heatmap"
)

// ClickAction selects what clicking a drawable does.
type ClickAction string

// Click actions.
const (
	Highlight ClickAction = "highlight"
	NoAction  ClickAction = "none"
)

// Legend configures the chart legend.
type Legend struct {
	Enabled    bool
	Centered   bool
	FontSize   string
	Format     string
	LabelColor string
	// Num is the maximum number of color-scale ticks bounding heatmap legend
	// bins.
	Num int
}

// Tick configures the tick field and the outer axis labels.
type Tick struct {
	// Name is the tick field.  If empty, the first field of the first row is
	// used.
	Name string
	// IsDate marks tick values as dates, which are parsed with Format (a Go
	// time layout) or, if Format is empty, a set of common layouts.
	IsDate   bool
	Format   string
	FontSize string
	Color    string
}

// Options is the complete configuration of a ring chart.
type Options struct {
	Order       Order
	NodeStyle   NodeStyle
	ChartType   ChartType
	ClickAction ClickAction
	// StickyNodes places markers at fixed steps of one node diameter from the
	// inner radius instead of scaling them across the available rings.
	StickyNodes bool
	// ShowZeros, if false, renders zero values as absent and keeps them off
	// the connecting lines.
	ShowZeros       bool
	AlwaysShowLines bool
	// FixedNodeRadius, if positive, overrides the computed marker radius.
	FixedNodeRadius float64
	InnerRadius     float64
	// Palette lists the colors of the chart.  Rank maps assign one color per
	// key; heat maps interpolate across the palette.  If empty, a default
	// palette suited to the chart type is used.
	Palette []string
	Legend  Legend
	Tick    Tick
}

// Default returns the default Options.
func Default() Options {
	return Options{
		Order:           Ascending,
		NodeStyle:       Arc,
		ChartType:       RankMap,
		ClickAction:     Highlight,
		StickyNodes:     true,
		ShowZeros:       true,
		AlwaysShowLines: false,
		FixedNodeRadius: 0,
		InnerRadius:     50,
		Legend: Legend{
			Enabled:    true,
			Centered:   true,
			FontSize:   "9pt",
			Format:     ".2s",
			LabelColor: "#666",
			Num:        7,
		},
		Tick: Tick{
			FontSize: "9pt",
			Color:    "#666",
		},
	}
}

// IsArc returns true if nodes are drawn as arc segments.
func (o Options) IsArc() bool {
	return o.NodeStyle == Arc
}

// IsSequential returns true for magnitude (heat map) charts.
func (o Options) IsSequential() bool {
	return o.ChartType == HeatMap
}

// Validate returns a *dataset.ConfigurationError describing the first
// invalid option, or nil.
func (o Options) Validate() error {
	invalid := func(field string, value any) error {
		return dataset.NewConfigurationError(field, fmt.Errorf("unsupported value '%v'", value))
	}
	switch o.Order {
	case Ascending, Descending:
	default:
		return invalid("order", o.Order)
	}
	switch o.NodeStyle {
	case Arc, Circle, Rect:
	default:
		return invalid("nodeStyle", o.NodeStyle)
	}
	switch o.ChartType {
	case RankMap, HeatMap:
	default:
		return invalid("chartType", o.ChartType)
	}
	switch o.ClickAction {
	case Highlight, NoAction:
	default:
		return invalid("clickAction", o.ClickAction)
	}
	if o.FixedNodeRadius < 0 {
		return invalid("fixedNodeRadius", o.FixedNodeRadius)
	}
	if o.InnerRadius < 0 {
		return invalid("innerRadius", o.InnerRadius)
	}
	if o.Legend.Num < 2 {
		return invalid("legend.num", o.Legend.Num)
	}
	return nil
}
