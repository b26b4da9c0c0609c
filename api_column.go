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

import "context"

// columnAPI defines interfaces under /column.
type columnAPI interface {
	// GetColumns lists the columns of the database.
	GetColumns(ctx context.Context, opts ...CallOption) (Result, error)
	// CreateColumn creates one or more columns.
	CreateColumn(ctx context.Context, column any) (Result, error)
}

var _ columnAPI = (*Client)(nil)

// GetColumns lists the columns of the database, active and inactive ones.
// Requires a master key. Accepts WithTestMode.
func (c *Client) GetColumns(ctx context.Context, opts ...CallOption) (Result, error) {
	return c.execute(ctx, epGetColumns, "", nil, opts...)
}

// CreateColumn creates a column described by the given payload:
//
//	client.CreateColumn(ctx, map[string]any{
//		"name":        "Age",
//		"api-name":    "age",
//		"type":        "integer",
//		"description": "Entity age in years",
//	})
//
// The payload shape is defined by the API and sent as-is; a list of column
// descriptions creates several columns in one call. Requires a master key.
func (c *Client) CreateColumn(ctx context.Context, column any) (Result, error) {
	return c.execute(ctx, epCreateColumn, "", column)
}
