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

// Ordinal maps keys to palette colors by their position in its domain,
// cycling through the palette.  Keys outside the domain are appended to it
// the first time they are colored.
type Ordinal struct {
	palette []string
	domain  []string
	index   map[string]int
}

// NewOrdinal returns an Ordinal over the specified keys and palette.  An
// empty palette falls back to Tableau10.
func NewOrdinal(keys []string, palette []string) *Ordinal {
	if len(palette) == 0 {
		palette = Tableau10
	}
	o := &Ordinal{
		palette: append([]string(nil), palette...),
		index:   make(map[string]int, len(keys)),
	}
	for _, key := range keys {
		o.add(key)
	}
	return o
}

func (o *Ordinal) add(key string) int {
	if idx, ok := o.index[key]; ok {
		return idx
	}
	idx := len(o.domain)
	o.index[key] = idx
	o.domain = append(o.domain, key)
	return idx
}

// Color returns the color of the specified key.
func (o *Ordinal) Color(key string) string {
	return o.palette[o.add(key)%len(o.palette)]
}

// Domain returns the keys known to the receiver, in order.
func (o *Ordinal) Domain() []string {
	return append([]string(nil), o.domain...)
}
