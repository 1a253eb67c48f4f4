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

// Package scale provides the numeric mappings used to lay out a ring chart:
// band scales over discrete positions, linear scales over continuous
// domains, and tick selection for axes and legends.
package scale

import "math"

// Band maps an ordered, discrete domain of integers onto equal, unpadded
// bands of a continuous range.
type Band struct {
	domain    []int
	positions map[int]float64
	r0, r1    float64
	bandwidth float64
}

// NewBand returns a Band mapping domain onto [r0, r1].  Duplicate domain
// values keep their first position.  If r1 < r0 the bands run in reverse.
func NewBand(domain []int, r0, r1 float64) *Band {
	b := &Band{
		positions: make(map[int]float64, len(domain)),
		r0:        r0,
		r1:        r1,
	}
	for _, v := range domain {
		if _, ok := b.positions[v]; ok {
			continue
		}
		b.positions[v] = 0
		b.domain = append(b.domain, v)
	}
	n := len(b.domain)
	start, stop := r0, r1
	reverse := r1 < r0
	if reverse {
		start, stop = r1, r0
	}
	b.bandwidth = (stop - start) / math.Max(1, float64(n))
	for idx, v := range b.domain {
		pos := idx
		if reverse {
			pos = n - 1 - idx
		}
		b.positions[v] = start + b.bandwidth*float64(pos)
	}
	return b
}

// At returns the start of v's band, or NaN if v is not in the domain.
func (b *Band) At(v int) float64 {
	pos, ok := b.positions[v]
	if !ok {
		return math.NaN()
	}
	return pos
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 {
	return b.bandwidth
}

// Range returns the receiver's range.
func (b *Band) Range() (float64, float64) {
	return b.r0, b.r1
}

// Domain returns the receiver's domain.
func (b *Band) Domain() []int {
	return append([]int(nil), b.domain...)
}

// Seq returns n consecutive integers starting at start.
func Seq(start, n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = start + i
	}
	return ret
}
