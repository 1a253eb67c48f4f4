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
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns the integer bounds and increment of the ticks spanning
// [start, stop] with roughly count ticks.  A negative inc means the tick
// values are i / -inc, which keeps fractional steps exact.
func tickSpec(start, stop float64, count int) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1, i2 = math.Round(start*inc), math.Round(stop*inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1, i2 = math.Round(start/inc), math.Round(stop/inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count == 1 {
		return tickSpec(start, stop, 2)
	}
	return i1, i2, inc
}

func ticksOf(i1, i2, inc float64) []float64 {
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	ret := make([]float64, n)
	for i := range ret {
		if inc < 0 {
			ret[i] = (i1 + float64(i)) / -inc
		} else {
			ret[i] = (i1 + float64(i)) * inc
		}
	}
	return ret
}

// Ticks returns round values (multiples of 1, 2 or 5 times a power of ten)
// spanning [lo, hi], choosing the step that yields closest to count ticks.
// The result may hold somewhat more or fewer than count values.
func Ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	ret := ticksOf(tickSpec(lo, hi, count))
	if reverse {
		for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
			ret[i], ret[j] = ret[j], ret[i]
		}
	}
	return ret
}

// tickIncrement returns the step Ticks would use, negated and inverted for
// fractional steps.
func tickIncrement(lo, hi float64, count int) float64 {
	step := (hi - lo) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Nice extends [lo, hi] outward so that both ends are multiples of the tick
// step for roughly count ticks.  The domain is returned unchanged if no
// finite step settles, as for an empty span.
func Nice(lo, hi float64, count int) (float64, float64) {
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	start, stop := lo, hi
	var prestep float64
	for iter := 0; iter < 10; iter++ {
		step := tickIncrement(start, stop, count)
		if math.IsNaN(step) || math.IsInf(step, 0) || step == 0 {
			break
		}
		if step == prestep {
			lo, hi = start, stop
			break
		}
		if step > 0 {
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		} else {
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		}
		prestep = step
	}
	if reverse {
		return hi, lo
	}
	return lo, hi
}

// levelStep returns the tick step at a tick level.  Levels cycle through
// steps of 1, 2 and 5 times successive powers of ten, so higher levels space
// ticks further apart.
func levelStep(level int) float64 {
	exp := int(math.Floor(float64(level) / 3))
	mantissa := [3]float64{1, 2, 5}[level-exp*3]
	return mantissa * math.Pow(10, float64(exp))
}

// levelBounds returns the integer bounds and increment of the ticks at
// level, in the form ticksOf expects.
func levelBounds(lo, hi float64, level int) (i1, i2, inc float64) {
	step := levelStep(level)
	if step < 1 {
		inv := math.Round(1 / step)
		return math.Ceil(lo * inv), math.Floor(hi * inv), -inv
	}
	return math.Ceil(lo / step), math.Floor(hi / step), step
}

// TicksAtMost returns the densest set of round ticks spanning [lo, hi] that
// holds no more than max values.
func TicksAtMost(lo, hi float64, max int) []float64 {
	if max <= 0 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(hi-lo, 0) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}
	t := levelTicker{lo: lo, hi: hi}
	guess := int(math.Floor(math.Log10((hi-lo)/float64(max)) * 3))
	opts := mscale.TickOptions{Max: max}
	level, ok := opts.FindLevel(t, guess)
	if !ok {
		return nil
	}
	return t.ticks(level)
}

// levelTicker is an mscale.Ticker over [lo, hi] using levelStep spacing.
type levelTicker struct {
	lo, hi float64
}

var _ mscale.Ticker = levelTicker{}

func (t levelTicker) CountTicks(level int) int {
	i1, i2, _ := levelBounds(t.lo, t.hi, level)
	n := i2 - i1 + 1
	switch {
	case math.IsNaN(n) || n > math.MaxInt32:
		return math.MaxInt32
	case n < 0:
		return 0
	}
	return int(n)
}

func (t levelTicker) TicksAtLevel(level int) interface{} {
	return t.ticks(level)
}

func (t levelTicker) ticks(level int) []float64 {
	return ticksOf(levelBounds(t.lo, t.hi, level))
}
