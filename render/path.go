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

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/analyzer2004/ringchart/style"
)

const epsilon = 1e-12

// Point is a position in chart coordinates, relative to the chart's center.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return style.Num(p.X) + "," + style.Num(p.Y)
}

// Polar returns the point at radius r and angle a, in radians clockwise from
// twelve o'clock.
func Polar(r, a float64) Point {
	return Point{r * math.Sin(a), -r * math.Cos(a)}
}

// ArcPath returns the SVG path of the annular sector between radii r0 and r1
// and angles a0 and a1, in radians clockwise from twelve o'clock.  A sector
// spanning the whole circle is drawn as a full ring.
func ArcPath(r0, r1, a0, a1 float64) string {
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	if !(r1 > epsilon) {
		return "M0,0Z"
	}
	var b strings.Builder
	arcTo := func(r float64, large, sweep int, to Point) {
		fmt.Fprintf(&b, "A%s,%s,0,%d,%d,%s", style.Num(r), style.Num(r), large, sweep, to)
	}
	if a1-a0 >= 2*math.Pi-1e-6 {
		fmt.Fprintf(&b, "M%s", Polar(r1, a0))
		arcTo(r1, 1, 1, Polar(r1, a0+math.Pi))
		arcTo(r1, 1, 1, Polar(r1, a0))
		if r0 > epsilon {
			fmt.Fprintf(&b, "M%s", Polar(r0, a0))
			arcTo(r0, 1, 0, Polar(r0, a0+math.Pi))
			arcTo(r0, 1, 0, Polar(r0, a0))
		}
		b.WriteString("Z")
		return b.String()
	}
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	fmt.Fprintf(&b, "M%s", Polar(r1, a0))
	arcTo(r1, large, 1, Polar(r1, a1))
	if r0 > epsilon {
		fmt.Fprintf(&b, "L%s", Polar(r0, a1))
		arcTo(r0, large, 0, Polar(r0, a0))
	} else {
		b.WriteString("L0,0")
	}
	b.WriteString("Z")
	return b.String()
}

// CirclePath returns an SVG path tracing the circle of radius r around the
// center, starting at nine o'clock and running clockwise.  Text laid along
// it starts at nine o'clock.
func CirclePath(r float64) string {
	return fmt.Sprintf("M 0, 0 m %s,0 a %s,%s 0 0,1 %s,0 a %s,%s 0 0,1 %s,0",
		style.Num(-r), style.Num(r), style.Num(r), style.Num(2*r), style.Num(r), style.Num(r), style.Num(-2*r))
}

// RadialPoint is a vertex of a radial line.  Points that are not Defined
// leave a gap in the line.
type RadialPoint struct {
	Angle, Radius float64
	Defined       bool
}

// RadialLinePath returns the SVG path of a closed radial polyline through
// points.  If any point is undefined, the line is split into open runs of
// consecutive defined points, with the run crossing the end of points
// continuing through its start.
func RadialLinePath(points []RadialPoint) string {
	var b strings.Builder
	vertex := func(idx int, first bool) {
		cmd := "L"
		if first {
			cmd = "M"
		}
		p := points[idx]
		fmt.Fprintf(&b, "%s%s", cmd, Polar(p.Radius, p.Angle))
	}
	gap := -1
	for idx, p := range points {
		if !p.Defined {
			gap = idx
			break
		}
	}
	if gap < 0 {
		for idx := range points {
			vertex(idx, idx == 0)
		}
		if len(points) > 0 {
			b.WriteString("Z")
		}
		return b.String()
	}
	// Start just after a gap so that no run wraps around.
	n := len(points)
	inRun := false
	for step := 1; step <= n; step++ {
		idx := (gap + step) % n
		if !points[idx].Defined {
			inRun = false
			continue
		}
		vertex(idx, !inRun)
		inRun = true
	}
	return b.String()
}
