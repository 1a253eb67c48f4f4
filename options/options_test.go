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
	"strings"
	"testing"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	base := Default()
	for _, test := range []struct {
		description string
		overrides   []Override
		want        func(o *Options)
	}{{
		description: "no overrides",
		want:        func(o *Options) {},
	}, {
		description: "scalar overrides",
		overrides: []Override{{
			Order:     Ptr(Descending),
			ChartType: Ptr(HeatMap),
			ShowZeros: Ptr(false),
		}},
		want: func(o *Options) {
			o.Order = Descending
			o.ChartType = HeatMap
			o.ShowZeros = false
		},
	}, {
		description: "later overrides win",
		overrides: []Override{
			{NodeStyle: Ptr(Circle), FixedNodeRadius: Ptr(4.0)},
			{NodeStyle: Ptr(Rect)},
		},
		want: func(o *Options) {
			o.NodeStyle = Rect
			o.FixedNodeRadius = 4
		},
	}, {
		description: "nested overrides leave unset fields alone",
		overrides: []Override{{
			Legend:  &LegendOverride{Num: Ptr(5)},
			Tick:    &TickOverride{Name: Ptr("month"), IsDate: Ptr(true)},
			Palette: []string{"#000", "#fff"},
		}},
		want: func(o *Options) {
			o.Legend.Num = 5
			o.Tick.Name = "month"
			o.Tick.IsDate = true
			o.Palette = []string{"#000", "#fff"}
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			want := Default()
			test.want(&want)
			got := Merge(base, test.overrides...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Merge() diff (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(Default(), base); diff != "" {
				t.Errorf("Merge() modified its base (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		description string
		override    Override
		wantField   string
	}{{
		description: "defaults are valid",
	}, {
		description: "unknown order",
		override:    Override{Order: Ptr(Order("sideways"))},
		wantField:   "order",
	}, {
		description: "unknown node style",
		override:    Override{NodeStyle: Ptr(NodeStyle("star"))},
		wantField:   "nodeStyle",
	}, {
		description: "negative node radius",
		override:    Override{FixedNodeRadius: Ptr(-1.0)},
		wantField:   "fixedNodeRadius",
	}, {
		description: "legend needs two ticks",
		override:    Override{Legend: &LegendOverride{Num: Ptr(1)}},
		wantField:   "legend.num",
	}} {
		t.Run(test.description, func(t *testing.T) {
			err := Merge(Default(), test.override).Validate()
			if test.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() yielded unexpected error %s", err)
				}
				return
			}
			var cfgErr *dataset.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want a ConfigurationError", err)
			}
			if cfgErr.Field != test.wantField {
				t.Errorf("Validate() field = %q, want %q", cfgErr.Field, test.wantField)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	ov, err := Load(strings.NewReader(`
order: desc
chartType: heatmap
stickyNodes: false
legend:
  num: 9
tick:
  name: month
`))
	if err != nil {
		t.Fatalf("Load() yielded unexpected error %s", err)
	}
	got := Merge(Default(), ov)
	want := Default()
	want.Order = Descending
	want.ChartType = HeatMap
	want.StickyNodes = false
	want.Legend.Num = 9
	want.Tick.Name = "month"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() diff (-want +got):\n%s", diff)
	}

	if _, err := Load(strings.NewReader("colour: red\n")); err == nil {
		t.Errorf("Load() accepted an unknown key")
	}
	if _, err := Load(strings.NewReader("")); err != nil {
		t.Errorf("Load() of empty input yielded error %s", err)
	}
}
