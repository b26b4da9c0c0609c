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
	"testing"
	"time"

	slicingdice "github.com/slicingdice/slicingdice-sdk/go"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SD_MASTER_KEY", "env-master")
	t.Setenv("SD_READ_KEY", "env-read")
	t.Setenv("SD_API_ADDRESS", "http://localhost:9000/v1")
	t.Setenv("SD_TIMEOUT", "30s")
	t.Setenv("SD_USE_TEST_ENDPOINT", "true")

	config, err := slicingdice.ConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, "env-master", config.MasterKey)
	require.Equal(t, "env-read", config.ReadKey)
	require.Equal(t, "http://localhost:9000/v1", config.Endpoint)
	require.Equal(t, 30*time.Second, config.Timeout)
	require.True(t, config.UsesTestEndpoint)
}

func TestClientDefaults(t *testing.T) {
	client, err := slicingdice.NewClient(&slicingdice.Config{MasterKey: "k"})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	config := client.Config()
	require.Equal(t, slicingdice.DefaultEndpoint, config.Endpoint)
	require.Equal(t, slicingdice.DefaultTimeout, config.Timeout)
}

func TestNewClientValidation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := slicingdice.NewClient(nil)
		var confErr *slicingdice.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})

	t.Run("no keys", func(t *testing.T) {
		_, err := slicingdice.NewClient(&slicingdice.Config{})
		var confErr *slicingdice.ConfigurationError
		require.ErrorAs(t, err, &confErr)
		require.Contains(t, err.Error(), "at least one API key")
	})

	t.Run("any single key suffices", func(t *testing.T) {
		for name, config := range map[string]*slicingdice.Config{
			"master": {MasterKey: "k"},
			"custom": {CustomKey: "k"},
			"write":  {WriteKey: "k"},
			"read":   {ReadKey: "k"},
		} {
			client, err := slicingdice.NewClient(config)
			require.NoError(t, err, name)
			client.Close()
		}
	})
}
