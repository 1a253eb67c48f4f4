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

// Package rank turns the rows of a dataset into the per-tick records of a
// ring chart.
//
// Every row yields one ValueRecord per series key, ranked within its row by
// value.  Rank maps additionally trace each key's position through the
// ranked rows as a Series, from which the chart's connecting lines are
// drawn.
package rank

import (
	"math"
	"slices"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/options"
)

// Config configures Transform.
type Config struct {
	// TickField names the tick field; if empty, the first field is used.
	TickField string
	Order     options.Order
	ChartType options.ChartType
	ShowZeros bool
}

// ConfigFrom returns the Config described by the specified Options.
func ConfigFrom(o options.Options) Config {
	return Config{
		TickField: o.Tick.Name,
		Order:     o.Order,
		ChartType: o.ChartType,
		ShowZeros: o.ShowZeros,
	}
}

// ValueRecord is a single key's value at a single tick.  Rank is 1-based;
// in ascending order the largest value has rank 1.
type ValueRecord struct {
	Tick  string
	Key   string
	Value float64
	Rank  int
}

// IsZero returns true if the receiver holds the value 0.
func (vr *ValueRecord) IsZero() bool {
	return vr.Value == 0
}

// ChartRow holds the records of a single tick.  For rank maps, Values are
// in rank-sorted order; for heat maps, they are in key order.
type ChartRow struct {
	Tick   string
	Values []*ValueRecord
}

// IndexOf returns the position of key's record within the receiver, or -1.
func (cr *ChartRow) IndexOf(key string) int {
	return slices.IndexFunc(cr.Values, func(vr *ValueRecord) bool {
		return vr.Key == key
	})
}

// SeriesPoint is a key's position within a single tick's rank-sorted
// records.  Index is -1 for hidden zero values.
type SeriesPoint struct {
	Tick  string
	Index int
}

// Series traces a single key through every tick.
type Series struct {
	Key    string
	Points []SeriesPoint
}

// Result is the output of Transform.
type Result struct {
	TickField string
	// Keys lists the series keys in field order.
	Keys []string
	Rows []*ChartRow
	// SortedKeys lists the keys in the rank-sorted order of the first row.
	// Only set for rank maps.
	SortedKeys []string
	// Series holds one Series per SortedKeys entry.  Only set for rank maps.
	Series []*Series
	// Min and Max bound every value, and always include 0.
	Min, Max float64
}

// Ticks returns the tick labels of the receiver's rows, in order.
func (r *Result) Ticks() []string {
	ret := make([]string, len(r.Rows))
	for idx, row := range r.Rows {
		ret[idx] = row.Tick
	}
	return ret
}

// Transform validates rows and ranks their values.  It does not modify
// rows, and identical inputs produce identical Results.
func Transform(rows []dataset.Row, cfg Config) (*Result, error) {
	if err := dataset.Validate(rows, cfg.TickField); err != nil {
		return nil, err
	}
	tickField, keys, err := dataset.ExtractKeys(rows[0], cfg.TickField)
	if err != nil {
		return nil, err
	}
	ret := &Result{
		TickField: tickField,
		Keys:      keys,
		Rows:      make([]*ChartRow, len(rows)),
	}
	ascending := cfg.Order != options.Descending
	rankMap := cfg.ChartType != options.HeatMap
	for rowIdx, row := range rows {
		tickValue, _ := row.Get(tickField)
		cr := &ChartRow{
			Tick:   dataset.String(tickValue),
			Values: make([]*ValueRecord, len(keys)),
		}
		for keyIdx, key := range keys {
			raw, ok := row.Get(key)
			value := math.NaN()
			if ok {
				value = dataset.Number(raw)
			}
			if value < ret.Min {
				ret.Min = value
			} else if value > ret.Max {
				ret.Max = value
			}
			cr.Values[keyIdx] = &ValueRecord{
				Tick:  cr.Tick,
				Key:   key,
				Value: value,
			}
		}
		sorting := cr.Values
		if !rankMap {
			sorting = slices.Clone(cr.Values)
		}
		rankRecords(sorting, ascending)
		ret.Rows[rowIdx] = cr
	}
	if rankMap {
		ret.SortedKeys = make([]string, len(keys))
		for idx, vr := range ret.Rows[0].Values {
			ret.SortedKeys[idx] = vr.Key
		}
		ret.Series = make([]*Series, len(ret.SortedKeys))
		for idx, key := range ret.SortedKeys {
			ret.Series[idx] = traceSeries(ret.Rows, key, cfg.ShowZeros)
		}
	}
	return ret, nil
}

// compareValues orders records by value.  NaN compares equal to every
// value, so records holding NaN keep their relative position.
func compareValues(a, b *ValueRecord) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return 0
}

// rankRecords stably sorts records by value and assigns their ranks.
func rankRecords(records []*ValueRecord, ascending bool) {
	if ascending {
		slices.SortStableFunc(records, compareValues)
	} else {
		slices.SortStableFunc(records, func(a, b *ValueRecord) int {
			return compareValues(b, a)
		})
	}
	n := len(records)
	for idx, vr := range records {
		if ascending {
			vr.Rank = n - idx
		} else {
			vr.Rank = idx + 1
		}
	}
}

func traceSeries(rows []*ChartRow, key string, showZeros bool) *Series {
	ret := &Series{
		Key:    key,
		Points: make([]SeriesPoint, len(rows)),
	}
	for rowIdx, row := range rows {
		idx := row.IndexOf(key)
		if !showZeros && idx >= 0 && row.Values[idx].IsZero() {
			idx = -1
		}
		ret.Points[rowIdx] = SeriesPoint{
			Tick:  row.Tick,
			Index: idx,
		}
	}
	return ret
}
