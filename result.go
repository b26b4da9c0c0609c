/*
 * Copyright 2016 Simbiose Ventures.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package slicingdice

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
)

// Result is the decoded body of a successful API response.
//
// The client does not reinterpret the response schema: callers index the
// fields the API documents for the operation they performed. A successful
// response always carries a "status" field; the rest varies per operation.
type Result map[string]any

// Status returns the response's status field, or "" when it is not a string.
func (r Result) Status() string {
	s, _ := r["status"].(string)
	return s
}

// Rows returns the data rows of a result or score extraction response.
//
// It fails when the response has no "data" field or the field is not a list
// of objects.
func (r Result) Rows() ([]map[string]any, error) {
	raw, ok := r["data"]
	if !ok {
		return nil, errors.New("response carries no data rows")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("data field is %T, not a list", raw)
	}
	rows := make([]map[string]any, 0, len(list))
	for i, item := range list {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("data row %d is %T, not an object", i, item)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ToArrowBatch reads the data rows of a result or score extraction response
// and returns them as a single Arrow record.
//
// Columns are the union of the keys seen across rows, in sorted order. The
// type of a column is inferred from its first non-null value: strings,
// numbers and booleans map to their Arrow counterparts, anything else is
// carried as JSON text. Missing and null values become Arrow nulls. The
// caller owns the returned record and must Release it.
func (r Result) ToArrowBatch() (arrow.Record, error) {
	rows, err := r.Rows()
	if err != nil {
		return nil, err
	}
	return extractionRecord(rows)
}
