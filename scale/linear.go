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

package scale

import (
	mscale "github.com/aclements/go-moremath/scale"
)

// Linear maps a continuous domain linearly onto a continuous range.  A
// degenerate domain maps every value to the middle of the range.
type Linear struct {
	domain mscale.Linear
	r0, r1 float64
}

// NewLinear returns a Linear mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{
		domain: mscale.Linear{Min: d0, Max: d1},
		r0:     r0,
		r1:     r1,
	}
}

// Map maps x from the receiver's domain into its range.
func (l *Linear) Map(x float64) float64 {
	if l.domain.Min == l.domain.Max {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + (l.r1-l.r0)*l.domain.Map(x)
}

// Domain returns the receiver's domain.
func (l *Linear) Domain() (float64, float64) {
	return l.domain.Min, l.domain.Max
}

// Range returns the receiver's range.
func (l *Linear) Range() (float64, float64) {
	return l.r0, l.r1
}

// Ticks returns roughly count round values spanning the receiver's domain.
func (l *Linear) Ticks(count int) []float64 {
	return Ticks(l.domain.Min, l.domain.Max, count)
}

// TicksAtMost returns at most max round values spanning the receiver's
// domain, as densely as possible.
func (l *Linear) TicksAtMost(max int) []float64 {
	return TicksAtMost(l.domain.Min, l.domain.Max, max)
}

// Nice extends the receiver's domain to round values.
func (l *Linear) Nice(count int) *Linear {
	l.domain.Min, l.domain.Max = Nice(l.domain.Min, l.domain.Max, count)
	return l
}
