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

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads rows from a worksheet of an Excel workbook.  The first
// worksheet row is the header.  If sheet is empty, the first worksheet is
// read.
func ReadXLSX(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook '%s' has no worksheets", path)
		}
		sheet = sheets[0]
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}
	headers := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		if len(record) == 0 {
			continue
		}
		rows = append(rows, rowOf(headers, record))
	}
	return rows, nil
}
