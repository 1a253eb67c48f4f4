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

// Package color supports the color scales of a ring chart.
//
// Keys of a rankmap are colored categorically with an Ordinal scale over a
// palette, while the cells of a heatmap are colored by value with a
// Sequential scale: a continuum linearly interpolated across a color Space.
//
// Palettes are sequences of HTML color strings.  Only hex colors ("#rgb" or
// "#rrggbb") are interpolated; a Space holding any other color string
// snaps to its nearest stop instead.
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"
	"strconv"
	"strings"
)

// None is the fill of a hidden, zero-valued cell.
const None = "none"

// Tableau10 is the default categorical palette.
var Tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// Blues is the default sequential palette.
var Blues = []string{
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b",
}

// Space represents a color space: a color continuum that can map values in
// [0, 1] to colors.
type Space struct {
	name   string
	colors []string
}

// NewSpace defines a new color space.  Colors in this space will be linearly
// interpolated between the specified colors.
func NewSpace(name string, colors ...string) *Space {
	return &Space{
		name:   name,
		colors: append([]string(nil), colors...),
	}
}

// Name returns the Space's name.
func (s *Space) Name() string {
	return s.name
}

// Colors returns the stops of the Space.
func (s *Space) Colors() []string {
	return append([]string(nil), s.colors...)
}

// At returns the color at position t along the Space, with t clamped to
// [0, 1].
func (s *Space) At(t float64) string {
	switch len(s.colors) {
	case 0:
		return None
	case 1:
		return s.colors[0]
	}
	if math.IsNaN(t) {
		return None
	}
	t = math.Max(0, math.Min(1, t))
	segments := float64(len(s.colors) - 1)
	idx := int(math.Min(math.Floor(t*segments), segments-1))
	frac := t*segments - float64(idx)
	from, fromOK := parseHex(s.colors[idx])
	to, toOK := parseHex(s.colors[idx+1])
	if !fromOK || !toOK {
		if frac < .5 {
			return s.colors[idx]
		}
		return s.colors[idx+1]
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*frac))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B))
}

func parseHex(s string) (imgcolor.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return imgcolor.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return imgcolor.RGBA{}, false
	}
	return imgcolor.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
