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

package color

import (
	"math"

	"github.com/analyzer2004/ringchart/scale"
)

// niceTickCount is the tick count used to round a Sequential's domain.
const niceTickCount = 10

// Sequential maps a continuous value domain onto a color Space.
type Sequential struct {
	space  *Space
	lo, hi float64
}

// NewSequential returns a Sequential mapping [min, max], extended to round
// values, onto the specified Space.
func NewSequential(space *Space, min, max float64) *Sequential {
	lo, hi := scale.Nice(min, max, niceTickCount)
	return &Sequential{
		space: space,
		lo:    lo,
		hi:    hi,
	}
}

// Color returns the color of v.  NaN values are not colored.
func (s *Sequential) Color(v float64) string {
	if math.IsNaN(v) {
		return None
	}
	if s.lo == s.hi {
		return s.space.At(.5)
	}
	return s.space.At((v - s.lo) / (s.hi - s.lo))
}

// Domain returns the receiver's (rounded) domain.
func (s *Sequential) Domain() (float64, float64) {
	return s.lo, s.hi
}

// Ticks returns at most max round values spanning the receiver's domain.
func (s *Sequential) Ticks(max int) []float64 {
	return scale.TicksAtMost(s.lo, s.hi, max)
}
