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

// Package legend builds the legend of a ring chart.
//
// Rank map legends list one item per series key.  Heat map legends list
// contiguous value bins bounded by consecutive ticks of the chart's color
// scale; the last bin is labeled as open-ended.
package legend

import (
	"fmt"

	"github.com/analyzer2004/ringchart/color"
	"github.com/analyzer2004/ringchart/highlight"
	"github.com/analyzer2004/ringchart/options"
	"github.com/analyzer2004/ringchart/sizing"
)

// Layout constants of legend items.
const (
	SwatchWidth  = 15
	Spacing      = 2.5
	CornerRadius = 4
	// rightGap separates an uncentered legend from the outermost ring.
	rightGap = 15
)

// Item is a single legend entry.
type Item struct {
	Entity *highlight.Entity
	Label  string
	Color  string
}

// Legend is a laid-out legend.  Items are stacked top to bottom, each
// ItemHeight tall, in a box of Width x Height.
type Legend struct {
	Items      []Item
	FontSize   string
	ItemHeight float64
	Width      float64
	Height     float64
}

// Colors holds the color scales a legend is drawn with.  Keys is used for
// rank maps and Values for heat maps.
type Colors struct {
	Keys   *color.Ordinal
	Values *color.Sequential
}

// Build returns the Legend of a chart with the specified keys.
func Build(keys []string, colors Colors, cfg options.Legend, sequential bool) (*Legend, error) {
	format, err := NewFormatter(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to build legend: %w", err)
	}
	charBox, err := sizing.CharBox(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build legend: %w", err)
	}
	var items []Item
	if sequential {
		items = bins(colors.Values, cfg.Num, format)
	} else {
		items = make([]Item, len(keys))
		for idx, key := range keys {
			items[idx] = Item{
				Entity: highlight.KeyEntity(key),
				Label:  key,
				Color:  colors.Keys.Color(key),
			}
		}
	}
	ret := &Legend{
		Items:      items,
		FontSize:   cfg.FontSize,
		ItemHeight: charBox.Height,
	}
	var labelWidth float64
	for _, item := range items {
		w, err := sizing.TextWidth(item.Label, cfg.FontSize)
		if err != nil {
			return nil, err
		}
		labelWidth = max(labelWidth, w)
	}
	if len(items) > 0 {
		ret.Width = SwatchWidth + Spacing + labelWidth
		ret.Height = float64(len(items))*(ret.ItemHeight+Spacing) - Spacing
	}
	return ret, nil
}

func bins(values *color.Sequential, num int, format Formatter) []Item {
	ticks := values.Ticks(num)
	if len(ticks) < 2 {
		return nil
	}
	ret := make([]Item, len(ticks)-1)
	for idx := range ret {
		from, to := ticks[idx], ticks[idx+1]
		label := fmt.Sprintf("%s - %s", format(from), format(to))
		if idx == len(ret)-1 {
			label = fmt.Sprintf("> %s", format(from))
		}
		ret[idx] = Item{
			Entity: highlight.BandEntity(from, to),
			Label:  label,
			Color:  values.Color(from),
		}
	}
	return ret
}

// ItemOffset returns the vertical offset of the item at idx.
func (l *Legend) ItemOffset(idx int) float64 {
	return float64(idx) * (l.ItemHeight + Spacing)
}

// Place returns the top-left corner of the receiver in a width x height
// chart.  A centered legend sits in the chart's central hole if it fits
// there; otherwise the legend sits to the right of the outermost ring, of
// radius ringMax.
func (l *Legend) Place(width, height float64, r sizing.Radius, ringMax float64, centered bool) (x, y float64, isCentered bool) {
	threshold := r.Inner - r.Node
	if centered && l.Width/2 < threshold && l.Height/2 < threshold {
		return (width - l.Width) / 2, (height - l.Height) / 2, true
	}
	return width/2 + ringMax + l.ItemHeight + rightGap, height/2 - ringMax, false
}
