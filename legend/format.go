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

package legend

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minus is the typographic minus sign used for negative numbers.
const minus = "−"

var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Formatter formats legend numbers.
type Formatter func(v float64) string

// NewFormatter returns a Formatter for a d3-style format specifier of the
// form [,][.precision][type], where type is one of:
//
//	s  SI-prefixed, with precision significant digits (default 6)
//	f  fixed point, with precision decimals (default 6)
//	d  integer
//	e  exponent notation, with precision decimals (default 6)
//	%  percentage, fixed point, with precision decimals (default 6)
//
// An empty type prints the shortest representation of the value.
func NewFormatter(spec string) (Formatter, error) {
	rest := spec
	group := strings.HasPrefix(rest, ",")
	rest = strings.TrimPrefix(rest, ",")
	precision := -1
	if strings.HasPrefix(rest, ".") {
		end := 1
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		p, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return nil, fmt.Errorf("invalid format '%s': missing precision", spec)
		}
		precision, rest = p, rest[end:]
	}
	if len(rest) > 1 {
		return nil, fmt.Errorf("invalid format '%s'", spec)
	}
	var body func(abs float64) string
	switch rest {
	case "s":
		p := precisionOr(precision, 6)
		if p < 1 {
			p = 1
		}
		body = func(abs float64) string { return siPrefix(abs, p) }
	case "f":
		p := precisionOr(precision, 6)
		body = func(abs float64) string { return strconv.FormatFloat(abs, 'f', p, 64) }
	case "d":
		body = func(abs float64) string { return strconv.FormatFloat(math.Round(abs), 'f', 0, 64) }
	case "e":
		p := precisionOr(precision, 6)
		body = func(abs float64) string { return exponent(abs, p) }
	case "%":
		p := precisionOr(precision, 6)
		body = func(abs float64) string { return strconv.FormatFloat(abs*100, 'f', p, 64) }
	case "":
		body = func(abs float64) string { return strconv.FormatFloat(abs, 'f', -1, 64) }
	default:
		return nil, fmt.Errorf("invalid format '%s': unsupported type '%s'", spec, rest)
	}
	return func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		negative := math.Signbit(v)
		s := body(math.Abs(v))
		if group {
			s = groupThousands(s)
		}
		if rest == "%" {
			s += "%"
		}
		if negative && !isZero(s) {
			s = minus + s
		}
		return s
	}, nil
}

func precisionOr(p, def int) int {
	if p < 0 {
		return def
	}
	return p
}

// isZero returns true if the formatted number s has no nonzero digit.
func isZero(s string) bool {
	return !strings.ContainsAny(s, "123456789")
}

// decimalParts returns the significant digits of x rounded to p digits and
// the decimal exponent of the first digit.
func decimalParts(x float64, p int) (string, int) {
	s := strconv.FormatFloat(x, 'e', p-1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	return strings.Replace(mantissa, ".", "", 1), e
}

func siPrefix(x float64, p int) string {
	if math.IsInf(x, 0) {
		return "Infinity"
	}
	digits, exp := decimalParts(x, p)
	prefixExp := int(math.Max(-8, math.Min(8, math.Floor(float64(exp)/3)))) * 3
	i := exp - prefixExp + 1
	n := len(digits)
	var s string
	switch {
	case i == n:
		s = digits
	case i > n:
		s = digits + strings.Repeat("0", i-n)
	case i > 0:
		s = digits[:i] + "." + digits[i:]
	default:
		tail, _ := decimalParts(x, int(math.Max(0, float64(p+i-1))))
		s = "0." + strings.Repeat("0", 1-i) + tail
	}
	return s + siPrefixes[8+prefixExp/3]
}

func exponent(x float64, p int) string {
	s := strconv.FormatFloat(x, 'e', p, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	sign := "+"
	if e < 0 {
		sign, e = "-", -e
	}
	return fmt.Sprintf("%se%s%d", mantissa, sign, e)
}

func groupThousands(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if end < 0 {
		end = len(s)
	}
	intPart, tail := s[:end], s[end:]
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + tail
}
