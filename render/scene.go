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

// Package render lays out a ranked dataset as a Scene: a tree of SVG-like
// drawables bound to the records, keys and legend entries they depict.
//
// A Scene is handed to a Backend for drawing.  Highlight transitions then
// mutate individual drawable attributes, and the Backend receives those as
// batches of Changes.
package render

import (
	"fmt"

	"github.com/analyzer2004/ringchart/highlight"
	"github.com/analyzer2004/ringchart/rank"
	"github.com/analyzer2004/ringchart/style"
)

// Kind is the type of a Drawable.
type Kind int

// Drawable kinds.
const (
	GroupKind Kind = iota
	PathKind
	CircleKind
	RectKind
	LineKind
	TextKind
	TextPathKind
)

var elementNames = map[Kind]string{
	GroupKind:    "g",
	PathKind:     "path",
	CircleKind:   "circle",
	RectKind:     "rect",
	LineKind:     "line",
	TextKind:     "text",
	TextPathKind: "textPath",
}

// Element returns the SVG element name of the receiver.
func (k Kind) Element() string {
	if name, ok := elementNames[k]; ok {
		return name
	}
	return "g"
}

func (k Kind) String() string {
	return k.Element()
}

// Drawable classes.
const (
	ChartClass      = "ring-chart"
	LinesClass      = "lines"
	LineClass       = "line"
	DotsClass       = "dots"
	DotClass        = "dot"
	TickClass       = "tick"
	YLabelsClass    = "y-labels"
	YLabelClass     = "y-label"
	LegendClass     = "legend"
	LegendItemClass = "legend-item"
)

// Drawable is a node of a Scene.
type Drawable struct {
	// ID, if set, is unique within the Scene.
	ID    string
	Kind  Kind
	Attrs *style.Style
	// Title is shown as a tooltip.
	Title string
	// Text is the text content of Text and TextPath drawables.
	Text     string
	Children []*Drawable
	// Record is the value record a dot depicts.
	Record *rank.ValueRecord
	// Key is the series key a line or ring label depicts.
	Key string
	// Entity, if set, is highlighted when the drawable is hovered or clicked.
	Entity *highlight.Entity
}

func newDrawable(kind Kind, id string) *Drawable {
	d := &Drawable{
		ID:    id,
		Kind:  kind,
		Attrs: style.New(),
	}
	if id != "" {
		d.Attrs.With(style.ID, id)
	}
	return d
}

// With sets the specified attribute in the receiver.
func (d *Drawable) With(attr, val string) *Drawable {
	d.Attrs.With(attr, val)
	return d
}

// WithNum sets the specified numeric attribute in the receiver.
func (d *Drawable) WithNum(attr string, val float64) *Drawable {
	d.Attrs.WithNum(attr, val)
	return d
}

// Append adds children to the receiver.
func (d *Drawable) Append(children ...*Drawable) *Drawable {
	d.Children = append(d.Children, children...)
	return d
}

// Attr returns the value of the specified attribute, or "" if it is unset.
func (d *Drawable) Attr(attr string) string {
	val, _ := d.Attrs.Get(attr)
	return val
}

// Class returns the receiver's class.
func (d *Drawable) Class() string {
	return d.Attr(style.Class)
}

// Change sets a single attribute of the Drawable with ID.
type Change struct {
	ID, Attr, Value string
}

// Backend draws Scenes.
type Backend interface {
	// Draw draws a complete Scene, replacing whatever was drawn before.
	Draw(scene *Scene) error
	// Update applies Changes to the most recently drawn Scene.
	Update(changes []Change) error
}

// Scene is a complete, laid-out chart.
type Scene struct {
	// ID is the chart's unique identifier, which namespaces drawable IDs.
	ID            string
	Width, Height float64
	Root          *Drawable
	byID          map[string]*Drawable
}

// NewScene returns a Scene rooted at root, indexing its drawables by ID.
func NewScene(id string, width, height float64, root *Drawable) (*Scene, error) {
	s := &Scene{
		ID:     id,
		Width:  width,
		Height: height,
		Root:   root,
		byID:   map[string]*Drawable{},
	}
	var err error
	s.Walk(func(d *Drawable) {
		if d.ID == "" || err != nil {
			return
		}
		if _, ok := s.byID[d.ID]; ok {
			err = fmt.Errorf("duplicate drawable id '%s'", d.ID)
			return
		}
		s.byID[d.ID] = d
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Walk invokes fn on every drawable in the receiver, in document order.
func (s *Scene) Walk(fn func(d *Drawable)) {
	var walk func(d *Drawable)
	walk = func(d *Drawable) {
		fn(d)
		for _, child := range d.Children {
			walk(child)
		}
	}
	if s.Root != nil {
		walk(s.Root)
	}
}

// Lookup returns the drawable with the specified ID.
func (s *Scene) Lookup(id string) (*Drawable, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// Class returns the drawables with the specified class, in document order.
func (s *Scene) Class(class string) []*Drawable {
	var ret []*Drawable
	s.Walk(func(d *Drawable) {
		if d.Class() == class {
			ret = append(ret, d)
		}
	})
	return ret
}

// Apply applies changes to the receiver's drawables.
func (s *Scene) Apply(changes []Change) error {
	for _, change := range changes {
		d, ok := s.byID[change.ID]
		if !ok {
			return fmt.Errorf("no drawable with id '%s'", change.ID)
		}
		d.With(change.Attr, change.Value)
	}
	return nil
}
