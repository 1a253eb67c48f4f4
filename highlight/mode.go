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
	"time"

	"github.com/analyzer2004/ringchart/options"
)

// Highlighted and dimmed opacities.
const (
	Full   = 1.0
	Dimmed = 0.2
	Hidden = 0.0
)

// Transition durations.
const (
	DotDuration  = 500 * time.Millisecond
	LineDuration = 250 * time.Millisecond
)

// Mode holds the chart options that determine highlight rules.
type Mode struct {
	Sequential      bool
	AlwaysShowLines bool
}

// ModeFrom returns the Mode of the specified Options.
func ModeFrom(o options.Options) Mode {
	return Mode{
		Sequential:      o.IsSequential(),
		AlwaysShowLines: o.AlwaysShowLines,
	}
}

// DotOpacity returns the opacity of the marker for key's value while e is
// highlighted.  A nil e means no highlight.
func (m Mode) DotOpacity(e *Entity, key string, value float64) float64 {
	switch {
	case e == nil:
		return Full
	case m.Sequential && !e.IsKey():
		if e.Band.Contains(value) {
			return Full
		}
		return Dimmed
	case e.IsKey() && e.Key == key:
		return Full
	}
	return Dimmed
}

// LineOpacity returns the opacity of key's connecting line while e is
// highlighted.
func (m Mode) LineOpacity(e *Entity, key string) float64 {
	switch {
	case e == nil && m.AlwaysShowLines:
		return Full
	case e == nil:
		return Hidden
	case e.IsKey() && e.Key == key:
		return Full
	case m.AlwaysShowLines:
		return Dimmed
	}
	return Hidden
}

// LabelVisible returns true if key's ring label is shown while e is
// highlighted.
func (m Mode) LabelVisible(e *Entity, key string) bool {
	return e.IsKey() && e.Key == key
}

// LegendBold returns true if key's legend item is emboldened while e is
// highlighted.  Only rank map legends are emboldened.
func (m Mode) LegendBold(e *Entity, key string) bool {
	return !m.Sequential && e.IsKey() && e.Key == key
}
