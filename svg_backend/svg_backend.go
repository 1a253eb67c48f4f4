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

// Package svgbackend provides a render.Backend that serializes ring chart
// Scenes as standalone SVG documents.
package svgbackend

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/analyzer2004/ringchart/render"
)

// ErrNoScene is returned when a Backend is used before a Scene is drawn to
// it.
var ErrNoScene = errors.New("no scene has been drawn")

// Backend is a render.Backend retaining the most recently drawn Scene, with
// any subsequent updates applied, for serialization as SVG.  It is not safe
// for concurrent use.
type Backend struct {
	scene   *render.Scene
	updates int
}

// New returns a new, empty Backend.
func New() *Backend {
	return &Backend{}
}

// Draw replaces the receiver's Scene.
func (b *Backend) Draw(scene *render.Scene) error {
	if scene == nil {
		return errors.New("cannot draw a nil scene")
	}
	b.scene = scene
	b.updates = 0
	return nil
}

// Update applies changes to the receiver's Scene.
func (b *Backend) Update(changes []render.Change) error {
	if b.scene == nil {
		return ErrNoScene
	}
	if err := b.scene.Apply(changes); err != nil {
		return err
	}
	b.updates++
	return nil
}

// Updates returns the number of Update batches applied since the last Draw.
func (b *Backend) Updates() int {
	return b.updates
}

// WriteTo writes the receiver's Scene to w as an SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.scene == nil {
		return 0, ErrNoScene
	}
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	width, height := int(math.Ceil(b.scene.Width)), int(math.Ceil(b.scene.Height))
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	if b.scene.Root != nil {
		if err := writeDrawable(canvas, b.scene.Root); err != nil {
			return 0, err
		}
	}
	canvas.End()
	return buf.WriteTo(w)
}

// attrsOf returns d's attributes in svgo's raw 'name="value"' form.
func attrsOf(d *render.Drawable) []string {
	attrs := d.Attrs.Attrs()
	ret := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		ret = append(ret, fmt.Sprintf(`%s="%s"`, attr.Name, escape(attr.Value)))
	}
	return ret
}

func escape(s string) string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

func writeDrawable(canvas *svg.SVG, d *render.Drawable) error {
	attrs := attrsOf(d)
	if d.Kind == render.GroupKind && d.Title == "" && d.Text == "" {
		canvas.Group(attrs...)
		for _, child := range d.Children {
			if err := writeDrawable(canvas, child); err != nil {
				return err
			}
		}
		canvas.Gend()
		return nil
	}
	elem := d.Kind.Element()
	open := "<" + elem
	if len(attrs) > 0 {
		open += " " + strings.Join(attrs, " ")
	}
	if d.Title == "" && d.Text == "" && len(d.Children) == 0 {
		_, err := fmt.Fprintf(canvas.Writer, "%s/>\n", open)
		return err
	}
	if _, err := fmt.Fprintf(canvas.Writer, "%s>", open); err != nil {
		return err
	}
	if d.Title != "" {
		if _, err := fmt.Fprintf(canvas.Writer, "<title>%s</title>", escape(d.Title)); err != nil {
			return err
		}
	}
	if d.Text != "" {
		if _, err := io.WriteString(canvas.Writer, escape(d.Text)); err != nil {
			return err
		}
	}
	for _, child := range d.Children {
		if err := writeDrawable(canvas, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(canvas.Writer, "</%s>\n", elem)
	return err
}
