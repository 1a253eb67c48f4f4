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
	"strconv"
	"strings"
	"time"

	"github.com/analyzer2004/ringchart/options"
	"github.com/analyzer2004/ringchart/scale"
)

// InvalidDate labels date ticks that cannot be parsed.
const InvalidDate = "Invalid Date"

// dateLabelLayout is the layout of date tick labels.
const dateLabelLayout = "1/2/2006"

// dateLayouts are tried in order when parsing date ticks without a
// configured layout.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2006",
	"January 2006",
	time.RFC1123,
	time.RFC1123Z,
	"2006",
}

// FormatTick returns the label of a tick.  Date ticks are parsed with the
// configured Go time layout, or with a set of common layouts if none is
// configured, and labeled as month/day/year.
func FormatTick(tick string, cfg options.Tick) string {
	if !cfg.IsDate {
		return tick
	}
	s := strings.TrimSpace(tick)
	if cfg.Format != "" {
		t, err := time.Parse(cfg.Format, s)
		if err != nil {
			return InvalidDate
		}
		return t.Format(dateLabelLayout)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLabelLayout)
		}
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		return time.UnixMilli(int64(ms)).UTC().Format(dateLabelLayout)
	}
	return InvalidDate
}

// formatValue formats a record value for a tooltip.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// axisTicks returns the tick positions, on the axis percentage scale's
// domain, at which axis lines are drawn.
func axisTicks(ticks int) []float64 {
	axis := scale.AxisPercent(ticks)
	ret := axis.Ticks(10)
	if len(ret) > ticks {
		ret = axis.Ticks(ticks)
	}
	return ret
}

func isInteger(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0)
}
