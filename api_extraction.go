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

// extractionAPI defines interfaces under /data_extraction.
//
// Extraction responses carry their rows in the "data" field; use
// Result.Rows or Result.ToArrowBatch to consume them. Both operations
// require a read or master key.
type extractionAPI interface {
	// ExtractResult retrieves the column values of the matching entities.
	ExtractResult(ctx context.Context, query any) (Result, error)
	// ExtractScore retrieves the matching entities with their scores.
	ExtractScore(ctx context.Context, query any) (Result, error)
}

var _ extractionAPI = (*Client)(nil)

// ExtractResult retrieves the values of the queried columns for the
// entities matching the given query.
func (c *Client) ExtractResult(ctx context.Context, query any) (Result, error) {
	return c.execute(ctx, epExtractResult, "", query)
}

// ExtractScore retrieves the entities matching the given query together
// with their relevance scores.
func (c *Client) ExtractScore(ctx context.Context, query any) (Result, error) {
	return c.execute(ctx, epExtractScore, "", query)
}
