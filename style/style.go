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

// Package style supports specifying the SVG attributes of a drawable.
//
// A Style instance comprises a mapping from attribute name to value, both
// represented as strings.  Attributes should have the names and expected
// values of SVG attributes, e.g.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute.
package style

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Commonly used attribute names.
const (
	ID              = "id"
	Class           = "class"
	Transform       = "transform"
	D               = "d"
	Fill            = "fill"
	Stroke          = "stroke"
	StrokeWidth     = "stroke-width"
	StrokeDasharray = "stroke-dasharray"
	Opacity         = "opacity"
	Visibility      = "visibility"
	FontSize        = "font-size"
	FontWeight      = "font-weight"
)

// Attr is a single attribute of a Style.
type Attr struct {
	Name, Value string
}

// Style defines a set of attributes that can be attached to a drawable.
type Style struct {
	attrs map[string]string
}

// New returns a new, empty Style.
func New() *Style {
	return &Style{
		attrs: map[string]string{},
	}
}

// Px formats the provided value as a pixel specifier.
func Px(valPx float64) string {
	return fmt.Sprintf("%.2fpx", valPx)
}

// Num formats the provided value as a plain SVG number, rounded to three
// decimal places.
func Num(val float64) string {
	rounded := math.Round(val*1000) / 1000
	if rounded == 0 {
		// Avoid "-0".
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// With sets the specified attribute type and value in the receiver.
func (s *Style) With(attrType string, attrVal string) *Style {
	s.attrs[attrType] = attrVal
	return s
}

// WithNum sets the specified attribute to a number.
func (s *Style) WithNum(attrType string, val float64) *Style {
	return s.With(attrType, Num(val))
}

// Get returns the value of the specified attribute, and whether it is set.
func (s *Style) Get(attrType string) (string, bool) {
	val, ok := s.attrs[attrType]
	return val, ok
}

// Len returns the number of attributes set in the receiver.
func (s *Style) Len() int {
	return len(s.attrs)
}

// Attrs returns the receiver's attributes, sorted by name.
func (s *Style) Attrs() []Attr {
	ret := make([]Attr, 0, len(s.attrs))
	for name, val := range s.attrs {
		ret = append(ret, Attr{name, val})
	}
	slices.SortFunc(ret, func(a, b Attr) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return ret
}

// Clone returns a copy of the receiver.
func (s *Style) Clone() *Style {
	ret := New()
	for name, val := range s.attrs {
		ret.attrs[name] = val
	}
	return ret
}
