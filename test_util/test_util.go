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

// Package testutil provides types and methods facilitating testing ring
// chart rendering.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/analyzer2004/ringchart/render"
	"github.com/google/go-cmp/cmp"
)

// Recorder is a render.Backend recording everything drawn to it.
type Recorder struct {
	Scenes  []*render.Scene
	Changes [][]render.Change
	// Err, if set, is returned from every Draw and Update.
	Err error
}

// NewRecorder returns a new, empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Draw records scene.
func (r *Recorder) Draw(scene *render.Scene) error {
	if r.Err != nil {
		return r.Err
	}
	r.Scenes = append(r.Scenes, scene)
	return nil
}

// Update records changes.
func (r *Recorder) Update(changes []render.Change) error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.Scenes) == 0 {
		return errors.New("update before draw")
	}
	r.Changes = append(r.Changes, append([]render.Change(nil), changes...))
	return nil
}

// Last returns the most recently drawn Scene, or nil.
func (r *Recorder) Last() *render.Scene {
	if len(r.Scenes) == 0 {
		return nil
	}
	return r.Scenes[len(r.Scenes)-1]
}

// AllChanges returns every recorded Change, in order.
func (r *Recorder) AllChanges() []render.Change {
	var ret []render.Change
	for _, batch := range r.Changes {
		ret = append(ret, batch...)
	}
	return ret
}

// Reset forgets all recorded Changes.
func (r *Recorder) Reset() {
	r.Changes = nil
}

// ChangeComparator facilitates testing of the Changes sent to a Backend,
// ignoring the batches they were sent in.
type ChangeComparator struct {
	got, want []render.Change
}

// NewChangeComparator returns a new, empty ChangeComparator.
func NewChangeComparator() *ChangeComparator {
	return &ChangeComparator{}
}

// WithTestChanges specifies the receiver's Changes-under-test.
func (cc *ChangeComparator) WithTestChanges(got ...render.Change) *ChangeComparator {
	cc.got = got
	return cc
}

// WithWantChanges specifies the Changes the receiver's test Changes should
// equal.
func (cc *ChangeComparator) WithWantChanges(want ...render.Change) *ChangeComparator {
	cc.want = want
	return cc
}

// Compare the receiver's 'got' and 'want' Changes, returning a difference
// message (empty if no difference) and a boolean indicating whether the two
// are different (true) or not (false).  Ordering must be preserved.
func (cc *ChangeComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	if diff := cmp.Diff(cc.want, cc.got); diff != "" {
		return fmt.Sprintf("Got changes %v, diff (-want +got):\n%s", cc.got, diff), true
	}
	return "", false
}

// PrettyPrint returns an indented outline of d and its descendants, listing
// each drawable's element, attributes and text.
func PrettyPrint(d *render.Drawable) string {
	var b strings.Builder
	var write func(d *render.Drawable, indent string)
	write = func(d *render.Drawable, indent string) {
		b.WriteString(indent + d.Kind.Element())
		for _, attr := range d.Attrs.Attrs() {
			fmt.Fprintf(&b, " %s=%q", attr.Name, attr.Value)
		}
		if d.Title != "" {
			fmt.Fprintf(&b, " title=%q", d.Title)
		}
		if d.Text != "" {
			fmt.Fprintf(&b, " text=%q", d.Text)
		}
		b.WriteString("\n")
		for _, child := range d.Children {
			write(child, indent+"  ")
		}
	}
	write(d, "")
	return b.String()
}
