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

// Package sizing computes the radii of a ring chart and the text metrics
// they depend on.
//
// Text is measured with the fixed-width basicfont face, scaled from its
// native 13px to the requested font size.
package sizing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// The number of CSS pixels per point and per em.
	pxPerPt = 96.0 / 72.0
	pxPerEm = 16.0
	// tickLabelGap is the room kept between the rings and the tick labels.
	tickLabelGap = 10
)

// Box is the size of a piece of rendered text.
type Box struct {
	Width, Height float64
}

// FontPx returns the size in pixels of a CSS font size such as "9pt",
// "12px", "1.2em" or "14".
func FontPx(size string) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(size))
	unit := 1.0
	for _, suffix := range []struct {
		suffix string
		px     float64
	}{
		{"px", 1},
		{"pt", pxPerPt},
		{"rem", pxPerEm},
		{"em", pxPerEm},
	} {
		if strings.HasSuffix(s, suffix.suffix) {
			s, unit = strings.TrimSuffix(s, suffix.suffix), suffix.px
			break
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unsupported font size '%s'", size)
	}
	return v * unit, nil
}

func faceScale(fontSize string) (float64, error) {
	px, err := FontPx(fontSize)
	if err != nil {
		return 0, err
	}
	return px / float64(basicfont.Face7x13.Height), nil
}

// CharBox returns the box of a single character at the specified font size.
func CharBox(fontSize string) (Box, error) {
	scale, err := faceScale(fontSize)
	if err != nil {
		return Box{}, err
	}
	face := basicfont.Face7x13
	return Box{
		Width:  float64(face.Advance) * scale,
		Height: float64(face.Height) * scale,
	}, nil
}

// TextWidth returns the rendered width of s at the specified font size.
func TextWidth(s, fontSize string) (float64, error) {
	scale, err := faceScale(fontSize)
	if err != nil {
		return 0, err
	}
	advance := font.MeasureString(basicfont.Face7x13, s)
	return float64(advance) / 64 * scale, nil
}
