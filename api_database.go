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

// databaseAPI defines interfaces under /database.
type databaseAPI interface {
	// GetDatabase returns information about the database the keys belong to.
	GetDatabase(ctx context.Context) (Result, error)
}

var _ databaseAPI = (*Client)(nil)

// GetDatabase returns name, plan and usage information about the database
// the configured keys belong to. Requires a master key.
//
// There is no test variant of this operation: the call goes to the
// production address even when the client uses the test endpoint.
func (c *Client) GetDatabase(ctx context.Context) (Result, error) {
	return c.execute(ctx, epGetDatabase, "", nil)
}
