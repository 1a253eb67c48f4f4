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

package sizing

import (
	"math"

	"github.com/analyzer2004/ringchart/options"
)

// Radius holds the radii of a ring chart.  Outer is the diameter available
// to the rings, Inner the radius of the central hole, Node the radius of a
// single marker and Max the radius of the outermost ring.
type Radius struct {
	Inner, Outer, Node, Max float64
}

// OuterRadius returns the space available to the rings in a width x height
// chart, leaving room for tick labels at the specified font size.
func OuterRadius(width, height float64, tickFontSize string) (float64, error) {
	box, err := CharBox(tickFontSize)
	if err != nil {
		return 0, err
	}
	return math.Min(width, height) - (box.Height + tickLabelGap), nil
}

// NodeRadius returns the marker radius for ticks positions around the circle
// and keys rings.  A positive fixed radius takes precedence.
func NodeRadius(r Radius, ticks, keys int, fixed float64) float64 {
	if fixed > 0 {
		return fixed
	}
	byTicks := 2 * math.Pi * r.Inner / float64(ticks) / 2
	byKeys := (r.Outer/2 - r.Inner) / float64(keys*2)
	return math.Min(byTicks, byKeys)
}

// MaxRadius returns the radius of the outermost ring.  Sticky, non-arc
// markers pack the rings at one marker diameter apart; otherwise the rings
// spread out to the edge.
func MaxRadius(r Radius, arc, sticky bool, keys int) float64 {
	if arc || !sticky {
		return r.Outer / 2
	}
	return r.Inner + r.Node*2*float64(keys)
}

// StickyOffset returns the distance from the center of the marker at index
// i when markers are sticky.
func StickyOffset(r Radius, i int) float64 {
	return r.Inner + float64(i)*2*r.Node
}

// Compute returns all radii of a width x height chart of ticks positions and
// keys rings.
func Compute(width, height float64, opts options.Options, ticks, keys int) (Radius, error) {
	outer, err := OuterRadius(width, height, opts.Tick.FontSize)
	if err != nil {
		return Radius{}, err
	}
	r := Radius{
		Inner: opts.InnerRadius,
		Outer: outer,
	}
	r.Node = NodeRadius(r, ticks, keys, opts.FixedNodeRadius)
	r.Max = MaxRadius(r, opts.IsArc(), opts.StickyNodes, keys)
	return r, nil
}
