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

package highlight

import (
	"fmt"
	"testing"
	"time"

	"github.com/analyzer2004/ringchart/options"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// recorder logs applier calls and callbacks in order.
type recorder struct {
	log []string
}

func (r *recorder) Highlight(e *Entity) {
	r.log = append(r.log, fmt.Sprintf("highlight %s", e))
}

func (r *recorder) Cancel() {
	r.log = append(r.log, "cancel")
}

func (r *recorder) callbacks() Callbacks {
	logAs := func(name string) Callback {
		return func(e *Entity) {
			r.log = append(r.log, fmt.Sprintf("%s %s", name, e))
		}
	}
	return Callbacks{
		OnHover:  logAs("onHover"),
		OnClick:  logAs("onClick"),
		OnCancel: logAs("onCancel"),
	}
}

func TestController(t *testing.T) {
	a, b := KeyEntity("A"), KeyEntity("B")
	band := BandEntity(0, 10)
	for _, test := range []struct {
		description string
		clickAction options.ClickAction
		events      func(c *Controller)
		wantLog     []string
		wantFocus   *Entity
	}{{
		description: "hover and leave while idle",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Hover(a)
			c.Leave(a)
		},
		wantLog: []string{
			"highlight key 'A'",
			"onHover key 'A'",
			"cancel",
		},
	}, {
		description: "clicking the same entity twice cancels once",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(a)
			c.Click(KeyEntity("A"))
		},
		wantLog: []string{
			"highlight key 'A'",
			"onClick key 'A'",
			"cancel",
			"onCancel key 'A'",
		},
	}, {
		description: "clicking two entities replaces the focus",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(a)
			c.Click(b)
		},
		wantLog: []string{
			"highlight key 'A'",
			"onClick key 'A'",
			"highlight key 'B'",
			"onClick key 'B'",
		},
		wantFocus: b,
	}, {
		description: "hover is ignored while focused",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(band)
			c.Hover(a)
			c.Leave(a)
		},
		wantLog: []string{
			"highlight band [0, 10)",
			"onClick band [0, 10)",
		},
		wantFocus: band,
	}, {
		description: "equal bands match",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(band)
			c.Click(BandEntity(0, 10))
		},
		wantLog: []string{
			"highlight band [0, 10)",
			"onClick band [0, 10)",
			"cancel",
			"onCancel band [0, 10)",
		},
	}, {
		description: "blank key cancels on second click",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(KeyEntity(""))
			c.Click(KeyEntity(""))
		},
		wantLog: []string{
			"highlight key ''",
			"onClick key ''",
			"cancel",
			"onCancel key ''",
		},
	}, {
		description: "blank key and band are distinct",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(KeyEntity(""))
			c.Click(band)
		},
		wantLog: []string{
			"highlight key ''",
			"onClick key ''",
			"highlight band [0, 10)",
			"onClick band [0, 10)",
		},
		wantFocus: band,
	}, {
		description: "click outside clears the focus",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.Click(a)
			c.ClickOutside()
		},
		wantLog: []string{
			"highlight key 'A'",
			"onClick key 'A'",
			"cancel",
			"onCancel key 'A'",
		},
	}, {
		description: "click outside while idle only cancels",
		clickAction: options.Highlight,
		events: func(c *Controller) {
			c.ClickOutside()
		},
		wantLog: []string{
			"cancel",
		},
	}, {
		description: "clicks disabled",
		clickAction: options.NoAction,
		events: func(c *Controller) {
			c.Click(a)
			c.ClickOutside()
			c.Hover(b)
		},
		wantLog: []string{
			"highlight key 'B'",
			"onHover key 'B'",
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			r := &recorder{}
			c := NewController(r, test.clickAction, r.callbacks())
			test.events(c)
			if diff := cmp.Diff(test.wantLog, r.log); diff != "" {
				t.Errorf("event log diff (-want +got) %s", diff)
			}
			if diff := cmp.Diff(test.wantFocus, c.Focus()); diff != "" {
				t.Errorf("Focus() diff (-want +got) %s", diff)
			}
		})
	}
}

func TestMode(t *testing.T) {
	rankMap := Mode{}
	rankMapLines := Mode{AlwaysShowLines: true}
	heatMap := Mode{Sequential: true}
	a, band := KeyEntity("A"), BandEntity(10, 20)
	for _, test := range []struct {
		description string
		got, want   float64
	}{
		{"idle dots are opaque", rankMap.DotOpacity(nil, "A", 1), Full},
		{"matching dot", rankMap.DotOpacity(a, "A", 1), Full},
		{"other dot", rankMap.DotOpacity(a, "B", 1), Dimmed},
		{"band contains value", heatMap.DotOpacity(band, "B", 10), Full},
		{"band excludes upper bound", heatMap.DotOpacity(band, "B", 20), Dimmed},
		{"idle lines hidden", rankMap.LineOpacity(nil, "A"), Hidden},
		{"idle lines shown", rankMapLines.LineOpacity(nil, "A"), Full},
		{"matching line", rankMap.LineOpacity(a, "A"), Full},
		{"other line hidden", rankMap.LineOpacity(a, "B"), Hidden},
		{"other line dimmed", rankMapLines.LineOpacity(a, "B"), Dimmed},
		{"blank key dot", rankMap.DotOpacity(KeyEntity(""), "", 1), Full},
		{"band skips blank key line", heatMap.LineOpacity(band, ""), Hidden},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.description, test.got, test.want)
		}
	}
	if !heatMap.LabelVisible(a, "A") || heatMap.LabelVisible(a, "B") || heatMap.LabelVisible(nil, "A") {
		t.Errorf("LabelVisible() should only show the highlighted key")
	}
	if !rankMap.LegendBold(a, "A") || heatMap.LegendBold(a, "A") {
		t.Errorf("LegendBold() should only embolden rank map keys")
	}
}

func TestScheduler(t *testing.T) {
	start := time.Unix(1000, 0)
	at := func(d time.Duration) time.Time {
		return start.Add(d)
	}
	dot := Target{"dot_0", "opacity"}
	line := Target{"line_0", "opacity"}
	s := NewScheduler()
	s.Start(dot, 1, .2, DotDuration, start)
	s.Start(line, 0, 1, LineDuration, start)

	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff([]Value{
		{dot, .95},
		{line, .5},
	}, s.Step(at(LineDuration/2)), approx); diff != "" {
		t.Errorf("Step() at the lines' midpoint diff (-want +got) %s", diff)
	}
	if diff := cmp.Diff([]Value{
		{dot, 1 - .8*EaseCubicInOut(.5)},
		{line, 1},
	}, s.Step(at(LineDuration)), approx); diff != "" {
		t.Errorf("Step() at the lines' end diff (-want +got) %s", diff)
	}
	if got := s.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}

	// Superseding the dot's task continues from its current value.
	s.Start(dot, 1, 1, DotDuration, at(LineDuration))
	if diff := cmp.Diff([]Value{
		{dot, .6},
	}, s.Step(at(LineDuration)), approx); diff != "" {
		t.Errorf("Step() after superseding diff (-want +got) %s", diff)
	}
	if diff := cmp.Diff([]Value{
		{dot, 1},
	}, s.Finish()); diff != "" {
		t.Errorf("Finish() diff (-want +got) %s", diff)
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending() after Finish() = %d, want 0", got)
	}
}

func TestEaseCubicInOut(t *testing.T) {
	for _, test := range []struct {
		t, want float64
	}{
		{0, 0},
		{.25, .0625},
		{.5, .5},
		{.75, .9375},
		{1, 1},
	} {
		if got := EaseCubicInOut(test.t); got != test.want {
			t.Errorf("EaseCubicInOut(%v) = %v, want %v", test.t, got, test.want)
		}
	}
}
