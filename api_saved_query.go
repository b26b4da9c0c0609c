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

// savedQueryAPI defines interfaces under /query/saved.
//
// A saved query is stored server-side under a name and can be executed by
// that name later. The name is embedded verbatim in the URL path.
type savedQueryAPI interface {
	// GetSavedQueries lists all saved queries of the database.
	GetSavedQueries(ctx context.Context) (Result, error)
	// CreateSavedQuery stores a new saved query.
	CreateSavedQuery(ctx context.Context, query any) (Result, error)
	// UpdateSavedQuery replaces the saved query with the given name.
	UpdateSavedQuery(ctx context.Context, name string, query any) (Result, error)
	// GetSavedQuery executes the saved query with the given name.
	GetSavedQuery(ctx context.Context, name string) (Result, error)
	// DeleteSavedQuery deletes the saved query with the given name.
	DeleteSavedQuery(ctx context.Context, name string) (Result, error)
}

var _ savedQueryAPI = (*Client)(nil)

// GetSavedQueries lists all saved queries of the database. Requires a master
// key.
func (c *Client) GetSavedQueries(ctx context.Context) (Result, error) {
	return c.execute(ctx, epGetSavedQueries, "", nil)
}

// CreateSavedQuery stores a query under the name given in the payload:
//
//	client.CreateSavedQuery(ctx, map[string]any{
//		"name":  "my-saved-query",
//		"type":  "count/entity",
//		"query": query,
//	})
//
// Requires a master key.
func (c *Client) CreateSavedQuery(ctx context.Context, query any) (Result, error) {
	return c.execute(ctx, epCreateSavedQuery, "", query)
}

// UpdateSavedQuery replaces the saved query with the given name. Requires a
// master key.
func (c *Client) UpdateSavedQuery(ctx context.Context, name string, query any) (Result, error) {
	return c.execute(ctx, epUpdateSavedQuery, name, query)
}

// GetSavedQuery executes the saved query with the given name and returns its
// result. Requires a read or master key.
func (c *Client) GetSavedQuery(ctx context.Context, name string) (Result, error) {
	return c.execute(ctx, epGetSavedQuery, name, nil)
}

// DeleteSavedQuery deletes the saved query with the given name. Requires a
// master key.
func (c *Client) DeleteSavedQuery(ctx context.Context, name string) (Result, error) {
	return c.execute(ctx, epDeleteSavedQuery, name, nil)
}
