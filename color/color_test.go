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

package color

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpaceAt(t *testing.T) {
	blackToWhite := NewSpace("black_to_white", "#000000", "#fff")
	threeStops := NewSpace("three", "#000", "#ff0000", "#ffffff")
	named := NewSpace("named", "red", "blue")
	for _, test := range []struct {
		description string
		space       *Space
		t           float64
		want        string
	}{{
		description: "start",
		space:       blackToWhite,
		t:           0,
		want:        "rgb(0, 0, 0)",
	}, {
		description: "middle",
		space:       blackToWhite,
		t:           .5,
		want:        "rgb(128, 128, 128)",
	}, {
		description: "clamped",
		space:       blackToWhite,
		t:           2,
		want:        "rgb(255, 255, 255)",
	}, {
		description: "second segment",
		space:       threeStops,
		t:           .75,
		want:        "rgb(255, 128, 128)",
	}, {
		description: "named colors snap",
		space:       named,
		t:           .7,
		want:        "blue",
	}, {
		description: "NaN",
		space:       blackToWhite,
		t:           math.NaN(),
		want:        None,
	}} {
		t.Run(test.description, func(t *testing.T) {
			if got := test.space.At(test.t); got != test.want {
				t.Errorf("At(%v) = %q, want %q", test.t, got, test.want)
			}
		})
	}
}

func TestOrdinal(t *testing.T) {
	o := NewOrdinal([]string{"A", "B", "C"}, []string{"red", "green"})
	for _, test := range []struct {
		key  string
		want string
	}{
		{"A", "red"},
		{"B", "green"},
		{"C", "red"},
		{"D", "green"},
		{"A", "red"},
	} {
		if got := o.Color(test.key); got != test.want {
			t.Errorf("Color(%q) = %q, want %q", test.key, got, test.want)
		}
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, o.Domain()); diff != "" {
		t.Errorf("Domain() diff (-want +got) %s", diff)
	}
}

func TestOrdinalDefaultPalette(t *testing.T) {
	if got, want := NewOrdinal([]string{"A"}, nil).Color("A"), Tableau10[0]; got != want {
		t.Errorf("Color(A) = %q, want %q", got, want)
	}
}

func TestSequential(t *testing.T) {
	s := NewSequential(NewSpace("grey", "#000000", "#ffffff"), 0, 97)
	lo, hi := s.Domain()
	if lo != 0 || hi != 100 {
		t.Fatalf("Domain() = %v, %v, want 0, 100", lo, hi)
	}
	for _, test := range []struct {
		description string
		v           float64
		want        string
	}{{
		description: "low",
		v:           0,
		want:        "rgb(0, 0, 0)",
	}, {
		description: "middle",
		v:           50,
		want:        "rgb(128, 128, 128)",
	}, {
		description: "NaN",
		v:           math.NaN(),
		want:        None,
	}} {
		t.Run(test.description, func(t *testing.T) {
			if got := s.Color(test.v); got != test.want {
				t.Errorf("Color(%v) = %q, want %q", test.v, got, test.want)
			}
		})
	}
	if diff := cmp.Diff([]float64{0, 20, 40, 60, 80, 100}, s.Ticks(7)); diff != "" {
		t.Errorf("Ticks(7) diff (-want +got) %s", diff)
	}
}

func TestSequentialEmptyDomain(t *testing.T) {
	s := NewSequential(NewSpace("grey", "#000000", "#ffffff"), 0, 0)
	if lo, hi := s.Domain(); lo != 0 || hi != 0 {
		t.Fatalf("Domain() = %v, %v, want 0, 0", lo, hi)
	}
	if got, want := s.Color(0), "rgb(128, 128, 128)"; got != want {
		t.Errorf("Color(0) = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]float64{0}, s.Ticks(7)); diff != "" {
		t.Errorf("Ticks(7) diff (-want +got) %s", diff)
	}
}
