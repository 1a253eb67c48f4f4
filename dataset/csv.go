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
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads rows from CSV data whose first record is the header.  Field
// values are kept as strings; Number coerces them when the chart is laid
// out.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		rows = append(rows, rowOf(headers, record))
	}
	return rows, nil
}

// rowOf zips headers with cells.  Missing trailing cells become empty
// strings; cells beyond the header are dropped.
func rowOf(headers, cells []string) Row {
	row := make(Row, len(headers))
	for idx, name := range headers {
		var value string
		if idx < len(cells) {
			value = cells[idx]
		}
		row[idx] = Field{Name: name, Value: value}
	}
	return row
}
