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

import "math"

// Angular returns the band scale placing n ticks evenly around a full
// circle, in radians.
func Angular(n int) *Band {
	return NewBand(Seq(0, n), 0, 2*math.Pi)
}

// Degrees returns the linear scale mapping tick positions [0, n] onto
// [0, 360] degrees.
func Degrees(n int) *Linear {
	return NewLinear(0, float64(n), 0, 360)
}

// AxisPercent returns the linear scale mapping tick positions [0, n-1] onto
// the percentage of the axis circumference at which each tick label starts.
func AxisPercent(n int) *Linear {
	return NewLinear(0, float64(n-1), 0, 100-100/float64(n))
}

// Radial returns the band scale mapping series indices onto radii between
// inner and max for k series.  When zeros are hidden, an extra band below
// index 0 holds the suppressed index -1, inside the inner radius.
func Radial(k int, inner, max float64, showZeros bool) *Band {
	if showZeros {
		return NewBand(Seq(0, k), inner, max)
	}
	unit := (max - inner) / float64(k+1)
	return NewBand(Seq(-1, k+1), inner-unit, max)
}
