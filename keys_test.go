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

package slicingdice_test

import (
	"context"
	"testing"

	slicingdice "github.com/slicingdice/slicingdice-sdk/go"
	"github.com/stretchr/testify/require"
)

func TestKeySelection(t *testing.T) {
	insert := func(ctx context.Context, c *slicingdice.Client) error {
		_, err := c.Insert(ctx, map[string]any{"user1@slicingdice.com": map[string]any{"age": 22}})
		return err
	}
	countEntity := func(ctx context.Context, c *slicingdice.Client) error {
		_, err := c.CountEntity(ctx, map[string]any{})
		return err
	}
	getDatabase := func(ctx context.Context, c *slicingdice.Client) error {
		_, err := c.GetDatabase(ctx)
		return err
	}

	for _, tc := range []struct {
		name   string
		config slicingdice.Config
		call   func(ctx context.Context, c *slicingdice.Client) error

		// wantKey is the Authorization header value; "" expects a local
		// authorization failure instead.
		wantKey string
	}{
		{"master satisfies write level", slicingdice.Config{MasterKey: "mk"}, insert, "mk"},
		{"master satisfies read level", slicingdice.Config{MasterKey: "mk"}, countEntity, "mk"},
		{"master satisfies master level", slicingdice.Config{MasterKey: "mk"}, getDatabase, "mk"},
		{"custom passes through for write level", slicingdice.Config{CustomKey: "ck"}, insert, "ck"},
		{"custom passes through for read level", slicingdice.Config{CustomKey: "ck"}, countEntity, "ck"},
		{"custom passes through for master level", slicingdice.Config{CustomKey: "ck"}, getDatabase, "ck"},
		{"write key inserts", slicingdice.Config{WriteKey: "wk"}, insert, "wk"},
		{"write key cannot query", slicingdice.Config{WriteKey: "wk"}, countEntity, ""},
		{"write key cannot manage", slicingdice.Config{WriteKey: "wk"}, getDatabase, ""},
		{"read key queries", slicingdice.Config{ReadKey: "rk"}, countEntity, "rk"},
		{"read key cannot insert", slicingdice.Config{ReadKey: "rk"}, insert, ""},
		{"read key cannot manage", slicingdice.Config{ReadKey: "rk"}, getDatabase, ""},
		{"master preferred over write", slicingdice.Config{MasterKey: "mk", WriteKey: "wk"}, insert, "mk"},
		{"master preferred over custom", slicingdice.Config{MasterKey: "mk", CustomKey: "ck"}, countEntity, "mk"},
		{"custom preferred over read", slicingdice.Config{CustomKey: "ck", ReadKey: "rk"}, countEntity, "ck"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			server, log := newTestService(t, replyWith(replySuccess))
			config := tc.config
			client := newTestClient(t, server, &config)

			err := tc.call(context.Background(), client)
			if tc.wantKey == "" {
				var authErr *slicingdice.AuthorizationError
				require.ErrorAs(t, err, &authErr)
				require.Zero(t, log.count(), "authorization must fail before any request is made")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantKey, log.last(t).auth)
		})
	}
}

func TestAuthorizationErrorDetails(t *testing.T) {
	server, log := newTestService(t, replyWith(replySuccess))
	client := newTestClient(t, server, &slicingdice.Config{ReadKey: "rk"})

	_, err := client.Insert(context.Background(), map[string]any{})

	var authErr *slicingdice.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "insert", authErr.Operation)
	require.Equal(t, slicingdice.PermissionWrite, authErr.Required)
	require.Contains(t, err.Error(), "requires a write key")
	require.Zero(t, log.count())
}
