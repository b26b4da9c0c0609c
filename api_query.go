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

// queryAPI defines interfaces under /query.
//
// Query payloads are opaque to the client: their shape is defined by the API
// documentation and they are sent as-is. Every operation here requires a
// read or master key.
type queryAPI interface {
	// CountEntity counts the entities matching a query.
	CountEntity(ctx context.Context, query any, opts ...CallOption) (Result, error)
	// CountEntityTotal counts all entities in the given tables.
	CountEntityTotal(ctx context.Context, tables []string, opts ...CallOption) (Result, error)
	// CountEvent counts the events matching a query.
	CountEvent(ctx context.Context, query any, opts ...CallOption) (Result, error)
	// ExistsEntity checks which of the given entity IDs exist.
	ExistsEntity(ctx context.Context, ids []string) (Result, error)
	// TopValues returns the most frequent values of the queried columns.
	TopValues(ctx context.Context, query any) (Result, error)
	// Aggregation runs an aggregation query.
	Aggregation(ctx context.Context, query any) (Result, error)
}

var _ queryAPI = (*Client)(nil)

// CountEntity counts the entities matching the given query. Accepts
// WithTestMode.
func (c *Client) CountEntity(ctx context.Context, query any, opts ...CallOption) (Result, error) {
	return c.execute(ctx, epCountEntity, "", query, opts...)
}

// CountEntityTotal counts all entities in the given tables. With no tables,
// every table of the database is counted. Accepts WithTestMode.
func (c *Client) CountEntityTotal(ctx context.Context, tables []string, opts ...CallOption) (Result, error) {
	if tables == nil {
		tables = []string{}
	}
	query := map[string]any{
		"tables": tables,
	}
	return c.execute(ctx, epCountEntityTotal, "", query, opts...)
}

// CountEvent counts the events matching the given query. Accepts
// WithTestMode.
func (c *Client) CountEvent(ctx context.Context, query any, opts ...CallOption) (Result, error) {
	return c.execute(ctx, epCountEvent, "", query, opts...)
}

// ExistsEntity checks which of the given entity IDs exist in the database.
func (c *Client) ExistsEntity(ctx context.Context, ids []string) (Result, error) {
	query := map[string]any{
		"ids": ids,
	}
	return c.execute(ctx, epExistsEntity, "", query)
}

// TopValues returns the most frequent values of the columns named by the
// given query.
func (c *Client) TopValues(ctx context.Context, query any) (Result, error) {
	return c.execute(ctx, epTopValues, "", query)
}

// Aggregation runs an aggregation query.
func (c *Client) Aggregation(ctx context.Context, query any) (Result, error) {
	return c.execute(ctx, epAggregation, "", query)
}
