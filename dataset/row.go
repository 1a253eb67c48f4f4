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

// Package dataset holds the tabular input of a ring chart: ordered rows of
// named fields, the extraction of the tick field and series keys from those
// rows, and loaders reading rows from CSV, JSON and XLSX sources.
//
// Field order within a Row is significant.  When no tick field is
// configured, the first field of the first row is the tick field and every
// following field, in order, is a series key.
package dataset

import (
	"fmt"
)

// Field is a single named value within a Row.
type Field struct {
	Name  string
	Value any
}

// Row is one input record: a tick value and one value per series key, in
// field order.
type Row []Field

// NewRow returns a Row built from alternating field names and values, e.g.
//
//	NewRow("month", "Jan", "A", 10, "B", 5)
//
// It panics if given an odd number of arguments or a non-string name.
func NewRow(namesAndValues ...any) Row {
	if len(namesAndValues)%2 != 0 {
		panic("dataset.NewRow: odd number of arguments")
	}
	ret := make(Row, 0, len(namesAndValues)/2)
	for i := 0; i < len(namesAndValues); i += 2 {
		name, ok := namesAndValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("dataset.NewRow: field name %v is not a string", namesAndValues[i]))
		}
		ret = append(ret, Field{Name: name, Value: namesAndValues[i+1]})
	}
	return ret
}

// Names returns the receiver's field names in order.
func (r Row) Names() []string {
	ret := make([]string, len(r))
	for idx, f := range r {
		ret[idx] = f.Name
	}
	return ret
}

// Get returns the value of the named field, and whether it is present.
func (r Row) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
