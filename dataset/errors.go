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
	"errors"
	"fmt"
)

var (
	// ErrInvalidTickField is returned when the configured tick field is not
	// a field of the dataset.
	ErrInvalidTickField = errors.New("invalid tick field")
	// ErrEmptyDataset is returned when a dataset has no rows.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrNoKeys is returned when a dataset has no series keys besides its
	// tick field.
	ErrNoKeys = errors.New("no series keys")
	// ErrFieldMismatch is returned when a row's fields differ from those of
	// the first row.
	ErrFieldMismatch = errors.New("fields differ from the first row")
	// ErrUnsupportedFormat is returned by Load for unknown file types.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// ConfigurationError reports an option that cannot be applied to a dataset
// or chart.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %q: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field: field,
		Err:   err,
	}
}

// DataError reports a dataset that cannot be laid out.  Row is the index of
// the offending row, or -1 if the error concerns the whole dataset.
type DataError struct {
	Row int
	Err error
}

func (e *DataError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("data error: %v", e.Err)
	}
	return fmt.Sprintf("data error in row %d: %v", e.Row, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new DataError.
func NewDataError(row int, err error) *DataError {
	return &DataError{
		Row: row,
		Err: err,
	}
}
