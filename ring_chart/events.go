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

package ringchart

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/analyzer2004/ringchart/highlight"
	"github.com/analyzer2004/ringchart/render"
	"github.com/analyzer2004/ringchart/style"
)

// ErrNotRendered is returned by event handlers invoked before Render.
var ErrNotRendered = errors.New("chart has not been rendered")

// entityOf returns the Entity of the interactive drawable with id.
func (c *Chart) entityOf(id string) (*highlight.Entity, error) {
	if c.scene == nil {
		return nil, ErrNotRendered
	}
	d, ok := c.scene.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("no drawable with id '%s'", id)
	}
	if d.Entity == nil {
		return nil, fmt.Errorf("drawable '%s' is not interactive", id)
	}
	return d.Entity, nil
}

// dispatch resolves id and forwards its Entity to event, returning any
// error encountered applying the resulting highlight.
func (c *Chart) dispatch(id string, event func(e *highlight.Entity)) error {
	e, err := c.entityOf(id)
	if err != nil {
		return err
	}
	c.applyErr = nil
	event(e)
	return c.applyErr
}

// Hover handles the pointer entering the drawable with id.
func (c *Chart) Hover(id string) error {
	return c.dispatch(id, func(e *highlight.Entity) { c.controller.Hover(e) })
}

// Leave handles the pointer leaving the drawable with id.
func (c *Chart) Leave(id string) error {
	return c.dispatch(id, func(e *highlight.Entity) { c.controller.Leave(e) })
}

// Click handles a click on the drawable with id.
func (c *Chart) Click(id string) error {
	return c.dispatch(id, func(e *highlight.Entity) { c.controller.Click(e) })
}

// ClickOutside handles a click on the chart outside any interactive
// drawable.
func (c *Chart) ClickOutside() error {
	if c.scene == nil {
		return ErrNotRendered
	}
	c.applyErr = nil
	c.controller.ClickOutside()
	return c.applyErr
}

// Focus returns the focused Entity, or nil.
func (c *Chart) Focus() *highlight.Entity {
	if c.controller == nil {
		return nil
	}
	return c.controller.Focus()
}

// Pending returns the number of running highlight transitions.
func (c *Chart) Pending() int {
	if c.scheduler == nil {
		return 0
	}
	return c.scheduler.Pending()
}

// Advance steps the running highlight transitions to the current time and
// sends the resulting values to the Backend.
func (c *Chart) Advance() error {
	if c.scheduler == nil {
		return ErrNotRendered
	}
	return c.update(changesOf(c.scheduler.Step(c.now())))
}

// Settle completes all running highlight transitions immediately.
func (c *Chart) Settle() error {
	if c.scheduler == nil {
		return ErrNotRendered
	}
	return c.update(changesOf(c.scheduler.Finish()))
}

func changesOf(values []highlight.Value) []render.Change {
	ret := make([]render.Change, len(values))
	for idx, v := range values {
		ret[idx] = render.Change{
			ID:    v.ID,
			Attr:  v.Attr,
			Value: style.Num(v.Value),
		}
	}
	return ret
}

// update applies changes to the Scene and forwards them to the Backend.
func (c *Chart) update(changes []render.Change) error {
	if len(changes) == 0 {
		return nil
	}
	if err := c.scene.Apply(changes); err != nil {
		return err
	}
	return c.backend.Update(changes)
}

// applier applies highlights to a Chart's Scene.
type applier Chart

func (a *applier) Highlight(e *highlight.Entity) {
	(*Chart)(a).apply(e)
}

func (a *applier) Cancel() {
	(*Chart)(a).apply(nil)
}

// apply starts the opacity transitions toward e's highlight, or toward the
// unhighlighted state if e is nil, and immediately updates label visibility
// and legend emphasis.
func (c *Chart) apply(e *highlight.Entity) {
	now := c.now()
	animate := func(d *render.Drawable, to float64, duration time.Duration) {
		current, err := strconv.ParseFloat(d.Attr(style.Opacity), 64)
		if err != nil {
			current = highlight.Full
		}
		c.scheduler.Start(highlight.Target{ID: d.ID, Attr: style.Opacity}, current, to, duration, now)
	}
	for _, dot := range c.scene.Class(render.DotClass) {
		animate(dot, c.mode.DotOpacity(e, dot.Record.Key, dot.Record.Value), highlight.DotDuration)
	}
	for _, line := range c.scene.Class(render.LineClass) {
		animate(line, c.mode.LineOpacity(e, line.Key), highlight.LineDuration)
	}
	var changes []render.Change
	for _, label := range c.scene.Class(render.YLabelClass) {
		visibility := "hidden"
		if c.mode.LabelVisible(e, label.Key) {
			visibility = "visible"
		}
		changes = append(changes, render.Change{ID: label.ID, Attr: style.Visibility, Value: visibility})
	}
	if !c.mode.Sequential {
		for _, item := range c.scene.Class(render.LegendItemClass) {
			weight := "normal"
			if c.mode.LegendBold(e, item.Entity.Key) {
				weight = "bold"
			}
			changes = append(changes, render.Change{ID: item.ID, Attr: style.FontWeight, Value: weight})
		}
	}
	if err := c.update(changes); err != nil && c.applyErr == nil {
		c.applyErr = err
	}
}
