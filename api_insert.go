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
	"context"

	"github.com/apache/arrow/go/v17/arrow"
)

// insertAPI defines interfaces under /insert.
type insertAPI interface {
	// Insert inserts entities into the database.
	Insert(ctx context.Context, data any) (Result, error)
	// InsertArrowBatch inserts the rows of an Arrow record.
	InsertArrowBatch(ctx context.Context, rec arrow.Record, idColumn string) (Result, error)
}

var _ insertAPI = (*Client)(nil)

// Insert inserts data into the database. The payload maps entity IDs to
// their column values, optionally alongside an "auto-create" list naming
// what the service may create on the fly:
//
//	client.Insert(ctx, map[string]any{
//		"user1@slicingdice.com": map[string]any{
//			"name": "John",
//			"age":  42,
//		},
//		"auto-create": []string{"table", "column"},
//	})
//
// Requires a write or master key.
func (c *Client) Insert(ctx context.Context, data any) (Result, error) {
	return c.execute(ctx, epInsert, "", data)
}

// InsertArrowBatch inserts the rows of an Arrow record. The idColumn must be
// a string column; its values become the entity IDs and the remaining
// columns the entities' values. Null cells are skipped. Requires a write or
// master key.
func (c *Client) InsertArrowBatch(ctx context.Context, rec arrow.Record, idColumn string) (Result, error) {
	payload, err := entityPayload(rec, idColumn)
	if err != nil {
		return nil, err
	}
	return c.Insert(ctx, payload)
}
