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

package dataset

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestExtractKeys(t *testing.T) {
	row := NewRow("month", "Jan", "A", 10, "B", 5, "C", 7)
	for _, test := range []struct {
		description string
		row         Row
		tickField   string
		wantTick    string
		wantKeys    []string
		wantErr     error
	}{{
		description: "first field is the default tick field",
		row:         row,
		wantTick:    "month",
		wantKeys:    []string{"A", "B", "C"},
	}, {
		description: "configured tick field is removed from the keys",
		row:         row,
		tickField:   "B",
		wantTick:    "B",
		wantKeys:    []string{"month", "A", "C"},
	}, {
		description: "missing tick field is a configuration error",
		row:         row,
		tickField:   "year",
		wantErr:     ErrInvalidTickField,
	}, {
		description: "tick field only yields no keys",
		row:         NewRow("month", "Jan"),
		wantTick:    "month",
		wantKeys:    []string{},
	}} {
		t.Run(test.description, func(t *testing.T) {
			tick, keys, err := ExtractKeys(test.row, test.tickField)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("ExtractKeys() error = %v, want %v", err, test.wantErr)
				}
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) || cfgErr.Field != test.tickField {
					t.Fatalf("ExtractKeys() error = %v, want a ConfigurationError for %q", err, test.tickField)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractKeys() yielded unexpected error %s", err)
			}
			if tick != test.wantTick {
				t.Errorf("ExtractKeys() tick = %q, want %q", tick, test.wantTick)
			}
			if diff := cmp.Diff(test.wantKeys, keys); diff != "" {
				t.Errorf("ExtractKeys() keys diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		description string
		rows        []Row
		tickField   string
		wantErr     error
		wantRow     int
	}{{
		description: "well-formed dataset",
		rows: []Row{
			NewRow("month", "Jan", "A", 10, "B", 5),
			NewRow("month", "Feb", "B", 8, "A", 3),
		},
	}, {
		description: "empty dataset",
		wantErr:     ErrEmptyDataset,
		wantRow:     -1,
	}, {
		description: "no series keys",
		rows:        []Row{NewRow("month", "Jan")},
		wantErr:     ErrNoKeys,
		wantRow:     0,
	}, {
		description: "row with a different field set",
		rows: []Row{
			NewRow("month", "Jan", "A", 10, "B", 5),
			NewRow("month", "Feb", "A", 3, "B", 8),
			NewRow("month", "Mar", "A", 3, "C", 8),
		},
		wantErr: ErrFieldMismatch,
		wantRow: 2,
	}, {
		description: "invalid tick field",
		rows:        []Row{NewRow("month", "Jan", "A", 10)},
		tickField:   "day",
		wantErr:     ErrInvalidTickField,
	}} {
		t.Run(test.description, func(t *testing.T) {
			err := Validate(test.rows, test.tickField)
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() yielded unexpected error %s", err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, test.wantErr)
			}
			var dataErr *DataError
			if errors.As(err, &dataErr) && dataErr.Row != test.wantRow {
				t.Errorf("Validate() error row = %d, want %d", dataErr.Row, test.wantRow)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	ts := time.UnixMilli(1600000000000)
	for _, test := range []struct {
		in   any
		want float64
	}{
		{10, 10},
		{int64(-3), -3},
		{2.5, 2.5},
		{"  42 ", 42},
		{"", 0},
		{nil, 0},
		{true, 1},
		{false, 0},
		{"1e3", 1000},
		{ts, 1600000000000},
		{"n/a", math.NaN()},
		{[]int{1}, math.NaN()},
	} {
		got := Number(test.in)
		if math.IsNaN(test.want) {
			if !math.IsNaN(got) {
				t.Errorf("Number(%v) = %v, want NaN", test.in, got)
			}
			continue
		}
		if got != test.want {
			t.Errorf("Number(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
