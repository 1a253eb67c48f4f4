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

package render

import (
	"math"

	"github.com/analyzer2004/ringchart/color"
	"github.com/analyzer2004/ringchart/legend"
	"github.com/analyzer2004/ringchart/options"
	"github.com/analyzer2004/ringchart/rank"
	"github.com/analyzer2004/ringchart/scale"
	"github.com/analyzer2004/ringchart/sizing"
)

// Geometry holds the scales placing records on the chart.
type Geometry struct {
	Radius sizing.Radius
	// Angle maps tick positions onto angular bands, in radians.
	Angle *scale.Band
	// Degrees maps tick positions onto degrees.
	Degrees *scale.Linear
	// Ring maps positions within a tick's records onto radial bands.  When
	// zeros are hidden, position -1 lies inside the inner radius.
	Ring   *scale.Band
	Colors legend.Colors

	sequential bool
	showZeros  bool
}

// NewGeometry returns the Geometry of res in a chart with the specified
// options and radii.
func NewGeometry(res *rank.Result, opts options.Options, radius sizing.Radius) *Geometry {
	ticks, keys := len(res.Rows), len(res.Keys)
	g := &Geometry{
		Radius:     radius,
		Angle:      scale.Angular(ticks),
		Degrees:    scale.Degrees(ticks),
		Ring:       scale.Radial(keys, radius.Inner, radius.Max, opts.ShowZeros),
		sequential: opts.IsSequential(),
		showZeros:  opts.ShowZeros,
	}
	if g.sequential {
		palette := opts.Palette
		if len(palette) == 0 {
			palette = color.Blues
		}
		g.Colors.Values = color.NewSequential(color.NewSpace("values", palette...), res.Min, res.Max)
	} else {
		g.Colors.Keys = color.NewOrdinal(res.Keys, opts.Palette)
	}
	return g
}

// Fill returns the fill color of vr's marker.
func (g *Geometry) Fill(vr *rank.ValueRecord) string {
	if !g.showZeros && vr.IsZero() {
		return color.None
	}
	if g.sequential {
		return g.Colors.Values.Color(vr.Value)
	}
	return g.Colors.Keys.Color(vr.Key)
}

// KeyColor returns the color of key's line.
func (g *Geometry) KeyColor(key string) string {
	if g.Colors.Keys == nil {
		return color.None
	}
	return g.Colors.Keys.Color(key)
}

// RingRange returns the radii of the innermost and outermost ring edges.
func (g *Geometry) RingRange() (float64, float64) {
	return g.Ring.Range()
}

// MarkerOffset returns the distance from the center of the non-arc marker
// at position pos within its tick.
func (g *Geometry) MarkerOffset(pos int, sticky bool) float64 {
	if sticky {
		return sizing.StickyOffset(g.Radius, pos)
	}
	return g.Ring.At(pos)
}

// SeriesPoints returns the vertices of series' connecting line.  Lines
// through arcs pass through the middle of each arc.
func (g *Geometry) SeriesPoints(series *rank.Series, arc bool) []RadialPoint {
	var da, dr float64
	if arc {
		da, dr = g.Angle.Bandwidth()/2, g.Ring.Bandwidth()/2
	}
	ret := make([]RadialPoint, len(series.Points))
	for idx, p := range series.Points {
		radius := g.Ring.At(p.Index) + dr
		ret[idx] = RadialPoint{
			Angle:   g.Angle.At(idx) + da,
			Radius:  radius,
			Defined: p.Index >= 0 && !math.IsNaN(radius),
		}
	}
	return ret
}
