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

package dataset

import (
	"fmt"
	"slices"
	"strings"
)

// ExtractKeys determines the tick field and the ordered series keys from the
// first row of a dataset.  If tickField is empty, the first field is the tick
// field and all following fields are keys.  Otherwise tickField must name a
// field of first, and the keys are all other fields in order.
func ExtractKeys(first Row, tickField string) (string, []string, error) {
	names := first.Names()
	if tickField == "" {
		if len(names) == 0 {
			return "", nil, NewDataError(0, ErrNoKeys)
		}
		return names[0], names[1:], nil
	}
	idx := slices.Index(names, tickField)
	if idx < 0 {
		return "", nil, NewConfigurationError(tickField, ErrInvalidTickField)
	}
	return tickField, slices.Delete(names, idx, idx+1), nil
}

// Validate checks that rows can be laid out with the provided tick field:
// there must be at least one row, at least one series key, and every row
// must carry exactly the field set of the first row.
func Validate(rows []Row, tickField string) error {
	if len(rows) == 0 {
		return NewDataError(-1, ErrEmptyDataset)
	}
	_, keys, err := ExtractKeys(rows[0], tickField)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return NewDataError(0, ErrNoKeys)
	}
	want := rows[0].Names()
	slices.Sort(want)
	for idx, row := range rows[1:] {
		got := row.Names()
		slices.Sort(got)
		if !slices.Equal(want, got) {
			return NewDataError(idx+1, fmt.Errorf("%w: got [%s]", ErrFieldMismatch, strings.Join(row.Names(), ", ")))
		}
	}
	return nil
}
