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

package rank

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/options"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func janFeb() []dataset.Row {
	return []dataset.Row{
		dataset.NewRow("month", "Jan", "A", 10, "B", 5),
		dataset.NewRow("month", "Feb", "A", 3, "B", 8),
	}
}

func ranksByKey(row *ChartRow) map[string]int {
	ret := map[string]int{}
	for _, vr := range row.Values {
		ret[vr.Key] = vr.Rank
	}
	return ret
}

func TestTransformRankMap(t *testing.T) {
	for _, test := range []struct {
		description    string
		order          options.Order
		wantRanks      []map[string]int
		wantSortedKeys []string
		wantSeries     []*Series
	}{{
		description:    "ascending",
		order:          options.Ascending,
		wantRanks:      []map[string]int{{"A": 1, "B": 2}, {"A": 2, "B": 1}},
		wantSortedKeys: []string{"B", "A"},
		wantSeries: []*Series{{
			Key:    "B",
			Points: []SeriesPoint{{Tick: "Jan", Index: 0}, {Tick: "Feb", Index: 1}},
		}, {
			Key:    "A",
			Points: []SeriesPoint{{Tick: "Jan", Index: 1}, {Tick: "Feb", Index: 0}},
		}},
	}, {
		description:    "descending",
		order:          options.Descending,
		wantRanks:      []map[string]int{{"A": 1, "B": 2}, {"A": 2, "B": 1}},
		wantSortedKeys: []string{"A", "B"},
		wantSeries: []*Series{{
			Key:    "A",
			Points: []SeriesPoint{{Tick: "Jan", Index: 0}, {Tick: "Feb", Index: 1}},
		}, {
			Key:    "B",
			Points: []SeriesPoint{{Tick: "Jan", Index: 1}, {Tick: "Feb", Index: 0}},
		}},
	}} {
		t.Run(test.description, func(t *testing.T) {
			res, err := Transform(janFeb(), Config{
				Order:     test.order,
				ChartType: options.RankMap,
				ShowZeros: true,
			})
			if err != nil {
				t.Fatalf("Transform() yielded unexpected error %s", err)
			}
			for idx, row := range res.Rows {
				if diff := cmp.Diff(test.wantRanks[idx], ranksByKey(row)); diff != "" {
					t.Errorf("row %d ranks diff (-want +got) %s", idx, diff)
				}
			}
			if diff := cmp.Diff(test.wantSortedKeys, res.SortedKeys); diff != "" {
				t.Errorf("SortedKeys diff (-want +got) %s", diff)
			}
			if diff := cmp.Diff(test.wantSeries, res.Series); diff != "" {
				t.Errorf("Series diff (-want +got) %s", diff)
			}
			if diff := cmp.Diff([]string{"Jan", "Feb"}, res.Ticks()); diff != "" {
				t.Errorf("Ticks() diff (-want +got) %s", diff)
			}
		})
	}
}

func TestTransformHeatMapKeepsKeyOrder(t *testing.T) {
	res, err := Transform(janFeb(), Config{
		Order:     options.Ascending,
		ChartType: options.HeatMap,
		ShowZeros: true,
	})
	if err != nil {
		t.Fatalf("Transform() yielded unexpected error %s", err)
	}
	want := []*ChartRow{{
		Tick: "Jan",
		Values: []*ValueRecord{
			{Tick: "Jan", Key: "A", Value: 10, Rank: 1},
			{Tick: "Jan", Key: "B", Value: 5, Rank: 2},
		},
	}, {
		Tick: "Feb",
		Values: []*ValueRecord{
			{Tick: "Feb", Key: "A", Value: 3, Rank: 2},
			{Tick: "Feb", Key: "B", Value: 8, Rank: 1},
		},
	}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("Rows diff (-want +got) %s", diff)
	}
	if res.SortedKeys != nil || res.Series != nil {
		t.Errorf("heat map Transform() produced series %v", res.Series)
	}
}

func TestTransformRanksArePermutations(t *testing.T) {
	rows := []dataset.Row{
		dataset.NewRow("t", "1", "a", 4, "b", 4, "c", -2, "d", 9, "e", 0),
		dataset.NewRow("t", "2", "a", 1, "b", "x", "c", 3, "d", 3, "e", 3),
		dataset.NewRow("t", "3", "a", 7, "b", 6, "c", 5, "d", 4, "e", 3),
	}
	for _, order := range []options.Order{options.Ascending, options.Descending} {
		for _, chartType := range []options.ChartType{options.RankMap, options.HeatMap} {
			res, err := Transform(rows, Config{Order: order, ChartType: chartType, ShowZeros: true})
			if err != nil {
				t.Fatalf("Transform() yielded unexpected error %s", err)
			}
			for idx, row := range res.Rows {
				var got []int
				for _, vr := range row.Values {
					got = append(got, vr.Rank)
				}
				slices.Sort(got)
				if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got); diff != "" {
					t.Errorf("%s %s row %d ranks diff (-want +got) %s", order, chartType, idx, diff)
				}
			}
		}
	}
}

func TestTransformIsPure(t *testing.T) {
	rows := janFeb()
	before := slices.Clone(rows)
	cfg := Config{Order: options.Ascending, ChartType: options.RankMap}
	first, err := Transform(rows, cfg)
	if err != nil {
		t.Fatalf("Transform() yielded unexpected error %s", err)
	}
	second, err := Transform(rows, cfg)
	if err != nil {
		t.Fatalf("Transform() yielded unexpected error %s", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Transform() diff (-first +second) %s", diff)
	}
	if diff := cmp.Diff(before, rows); diff != "" {
		t.Errorf("Transform() modified its input: diff (-before +after) %s", diff)
	}
}

func TestTransformHidesZeros(t *testing.T) {
	rows := []dataset.Row{
		dataset.NewRow("t", "1", "a", 0, "b", 2),
		dataset.NewRow("t", "2", "a", 5, "b", 0),
	}
	res, err := Transform(rows, Config{Order: options.Ascending, ChartType: options.RankMap, ShowZeros: false})
	if err != nil {
		t.Fatalf("Transform() yielded unexpected error %s", err)
	}
	want := []*Series{{
		Key:    "a",
		Points: []SeriesPoint{{Tick: "1", Index: -1}, {Tick: "2", Index: 1}},
	}, {
		Key:    "b",
		Points: []SeriesPoint{{Tick: "1", Index: 1}, {Tick: "2", Index: -1}},
	}}
	if diff := cmp.Diff(want, res.Series); diff != "" {
		t.Errorf("Series diff (-want +got) %s", diff)
	}
}

func TestTransformMinMax(t *testing.T) {
	for _, test := range []struct {
		description      string
		rows             []dataset.Row
		wantMin, wantMax float64
	}{{
		description: "positive values include zero",
		rows: []dataset.Row{
			dataset.NewRow("t", "1", "a", 3, "b", 9),
		},
		wantMin: 0,
		wantMax: 9,
	}, {
		description: "negative values",
		rows: []dataset.Row{
			dataset.NewRow("t", "1", "a", -4, "b", -1),
			dataset.NewRow("t", "2", "a", 2, "b", -6),
		},
		wantMin: -6,
		wantMax: 2,
	}} {
		t.Run(test.description, func(t *testing.T) {
			res, err := Transform(test.rows, Config{ChartType: options.HeatMap})
			if err != nil {
				t.Fatalf("Transform() yielded unexpected error %s", err)
			}
			if res.Min != test.wantMin || res.Max != test.wantMax {
				t.Errorf("Transform() bounds = [%v, %v], want [%v, %v]", res.Min, res.Max, test.wantMin, test.wantMax)
			}
		})
	}
}

func TestTransformNonNumericIsNaN(t *testing.T) {
	rows := []dataset.Row{
		dataset.NewRow("t", "1", "a", "n/a", "b", 2),
	}
	res, err := Transform(rows, Config{ChartType: options.HeatMap})
	if err != nil {
		t.Fatalf("Transform() yielded unexpected error %s", err)
	}
	if got := res.Rows[0].Values[0].Value; !math.IsNaN(got) {
		t.Errorf("non-numeric value = %v, want NaN", got)
	}
	if diff := cmp.Diff(&ValueRecord{Tick: "1", Key: "b", Value: 2, Rank: 1}, res.Rows[0].Values[1], cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("numeric record diff (-want +got) %s", diff)
	}
}

func TestTransformErrors(t *testing.T) {
	for _, test := range []struct {
		description string
		rows        []dataset.Row
		tickField   string
		wantErr     error
	}{{
		description: "invalid tick field",
		rows:        janFeb(),
		tickField:   "year",
		wantErr:     dataset.ErrInvalidTickField,
	}, {
		description: "empty dataset",
		wantErr:     dataset.ErrEmptyDataset,
	}, {
		description: "mismatched rows",
		rows: []dataset.Row{
			dataset.NewRow("month", "Jan", "A", 1),
			dataset.NewRow("month", "Feb", "B", 1),
		},
		wantErr: dataset.ErrFieldMismatch,
	}} {
		t.Run(test.description, func(t *testing.T) {
			_, err := Transform(test.rows, Config{TickField: test.tickField})
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Transform() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
