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
	"testing"

	"github.com/analyzer2004/ringchart/options"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFontPx(t *testing.T) {
	for _, test := range []struct {
		size    string
		want    float64
		wantErr bool
	}{
		{size: "9pt", want: 12},
		{size: "13px", want: 13},
		{size: "1em", want: 16},
		{size: " 14 ", want: 14},
		{size: "big", wantErr: true},
		{size: "-3px", wantErr: true},
	} {
		t.Run(test.size, func(t *testing.T) {
			got, err := FontPx(test.size)
			if (err != nil) != test.wantErr {
				t.Fatalf("FontPx(%q) yielded unexpected error %v", test.size, err)
			}
			if math.Abs(got-test.want) > 1e-9 {
				t.Errorf("FontPx(%q) = %v, want %v", test.size, got, test.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	box, err := CharBox("13px")
	if err != nil {
		t.Fatalf("CharBox() yielded unexpected error %s", err)
	}
	if diff := cmp.Diff(Box{Width: 7, Height: 13}, box); diff != "" {
		t.Errorf("CharBox() diff (-want +got) %s", diff)
	}
	width, err := TextWidth("abcd", "26px")
	if err != nil {
		t.Fatalf("TextWidth() yielded unexpected error %s", err)
	}
	if width != 56 {
		t.Errorf("TextWidth() = %v, want 56", width)
	}
}

func TestCompute(t *testing.T) {
	withStyle := func(style options.NodeStyle, sticky bool, fixed float64) options.Options {
		o := options.Default()
		o.NodeStyle = style
		o.StickyNodes = sticky
		o.FixedNodeRadius = fixed
		o.Tick.FontSize = "13px"
		return o
	}
	for _, test := range []struct {
		description string
		opts        options.Options
		ticks, keys int
		want        Radius
	}{{
		description: "arc spreads to the edge",
		opts:        withStyle(options.Arc, true, 0),
		ticks:       4,
		keys:        5,
		want:        Radius{Inner: 50, Outer: 477, Node: (238.5 - 50) / 10, Max: 238.5},
	}, {
		description: "sticky circles pack by node diameter",
		opts:        withStyle(options.Circle, true, 0),
		ticks:       100,
		keys:        5,
		want:        Radius{Inner: 50, Outer: 477, Node: math.Pi / 2, Max: 50 + math.Pi*5},
	}, {
		description: "fixed node radius",
		opts:        withStyle(options.Rect, true, 4),
		ticks:       12,
		keys:        3,
		want:        Radius{Inner: 50, Outer: 477, Node: 4, Max: 74},
	}, {
		description: "loose rects spread to the edge",
		opts:        withStyle(options.Rect, false, 4),
		ticks:       12,
		keys:        3,
		want:        Radius{Inner: 50, Outer: 477, Node: 4, Max: 238.5},
	}} {
		t.Run(test.description, func(t *testing.T) {
			got, err := Compute(500, 600, test.opts, test.ticks, test.keys)
			if err != nil {
				t.Fatalf("Compute() yielded unexpected error %s", err)
			}
			if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Compute() diff (-want +got) %s", diff)
			}
		})
	}
}

func TestStickyOffsetStep(t *testing.T) {
	r := Radius{Inner: 50, Node: 3}
	for i := 0; i < 5; i++ {
		if got, want := StickyOffset(r, i+1)-StickyOffset(r, i), 2*r.Node; got != want {
			t.Errorf("step at %d = %v, want %v", i, got, want)
		}
	}
}
