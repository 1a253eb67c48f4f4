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

// Package highlight implements the focus and hover state machine of a ring
// chart, the opacity rules it drives, and the timed transitions that animate
// them.
//
// A Controller is idle until an Entity (a series key or a band of values)
// is clicked, at which point that Entity is focused until it is clicked
// again or the chart background is clicked.  While idle, hovering an Entity
// highlights it transiently.
package highlight

import (
	"fmt"

	"github.com/analyzer2004/ringchart/options"
)

// Band is a half-open range of values [From, To).
type Band struct {
	From, To float64
}

// Contains returns true if v lies within the receiver.
func (b Band) Contains(v float64) bool {
	return v >= b.From && v < b.To
}

// Entity is the subject of a highlight: either a series key or, for heat
// maps, a band of values.
type Entity struct {
	Key  string
	Band *Band
}

// KeyEntity returns an Entity for the specified series key.
func KeyEntity(key string) *Entity {
	return &Entity{Key: key}
}

// BandEntity returns an Entity for the values in [from, to).
func BandEntity(from, to float64) *Entity {
	return &Entity{Band: &Band{From: from, To: to}}
}

// Matches returns true if the receiver and other denote the same subject.
func (e *Entity) Matches(other *Entity) bool {
	if e == nil || other == nil {
		return false
	}
	if e == other {
		return true
	}
	if e.IsKey() {
		return other.IsKey() && e.Key == other.Key
	}
	return other.Band != nil && *e.Band == *other.Band
}

// IsKey returns true if the receiver denotes a series key, which may be
// empty.
func (e *Entity) IsKey() bool {
	return e != nil && e.Band == nil
}

func (e *Entity) String() string {
	switch {
	case e == nil:
		return "<none>"
	case e.IsKey():
		return fmt.Sprintf("key '%s'", e.Key)
	}
	return fmt.Sprintf("band [%v, %v)", e.Band.From, e.Band.To)
}

// Callback is notified of a highlight event on an Entity.
type Callback func(e *Entity)

// Callbacks holds the optional user callbacks of a Controller.
type Callbacks struct {
	OnHover  Callback
	OnClick  Callback
	OnCancel Callback
}

// Applier applies highlight state to a rendered chart.
type Applier interface {
	Highlight(e *Entity)
	Cancel()
}

// Controller tracks the focused Entity of a chart and dispatches hover and
// click events to an Applier and the user's Callbacks.  It is not safe for
// concurrent use.
type Controller struct {
	applier      Applier
	callbacks    Callbacks
	clickEnabled bool
	focus        *Entity
}

// NewController returns a new, idle Controller.
func NewController(applier Applier, clickAction options.ClickAction, callbacks Callbacks) *Controller {
	return &Controller{
		applier:      applier,
		callbacks:    callbacks,
		clickEnabled: clickAction != options.NoAction,
	}
}

// Focus returns the focused Entity, or nil if the receiver is idle.
func (c *Controller) Focus() *Entity {
	return c.focus
}

// Hover highlights e unless an Entity is focused.
func (c *Controller) Hover(e *Entity) {
	if c.focus != nil {
		return
	}
	c.applier.Highlight(e)
	if c.callbacks.OnHover != nil {
		c.callbacks.OnHover(e)
	}
}

// Leave reverts a transient highlight unless an Entity is focused.
func (c *Controller) Leave(e *Entity) {
	if c.focus != nil {
		return
	}
	c.applier.Cancel()
}

// Click focuses e, replacing any prior focus, or returns to idle if e is
// already focused.
func (c *Controller) Click(e *Entity) {
	if !c.clickEnabled {
		return
	}
	if c.focus.Matches(e) {
		c.focus = nil
		c.applier.Cancel()
		if c.callbacks.OnCancel != nil {
			c.callbacks.OnCancel(e)
		}
		return
	}
	c.focus = e
	c.applier.Highlight(e)
	if c.callbacks.OnClick != nil {
		c.callbacks.OnClick(e)
	}
}

// ClickOutside returns to idle.  OnCancel is notified with the prior focus,
// if there was one.
func (c *Controller) ClickOutside() {
	if !c.clickEnabled {
		return
	}
	prior := c.focus
	c.focus = nil
	c.applier.Cancel()
	if prior != nil && c.callbacks.OnCancel != nil {
		c.callbacks.OnCancel(prior)
	}
}
