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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	slicingdice "github.com/slicingdice/slicingdice-sdk/go"
	"github.com/stretchr/testify/require"
)

// loggedRequest is one request a test service saw.
type loggedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

// bodyJSON decodes the request body.
func (r loggedRequest) bodyJSON(t testing.TB) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(r.body, &decoded))
	return decoded
}

type requestLog struct {
	mu   sync.Mutex
	reqs []loggedRequest
}

func (l *requestLog) add(r loggedRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, r)
}

func (l *requestLog) all() []loggedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]loggedRequest, len(l.reqs))
	copy(out, l.reqs)
	return out
}

func (l *requestLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reqs)
}

func (l *requestLog) last(t testing.TB) loggedRequest {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotEmpty(t, l.reqs)
	return l.reqs[len(l.reqs)-1]
}

// newTestService starts an HTTP server that records every request and lets
// the handler shape the response.
func newTestService(t testing.TB, handler http.HandlerFunc) (*httptest.Server, *requestLog) {
	t.Helper()

	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		log.add(loggedRequest{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, log
}

// newTestClient creates a client pointed at the given server. A nil config
// gets a master key.
func newTestClient(t testing.TB, server *httptest.Server, config *slicingdice.Config) *slicingdice.Client {
	t.Helper()

	if config == nil {
		config = &slicingdice.Config{MasterKey: "test-master-key"}
	}
	config.Endpoint = server.URL
	client, err := slicingdice.NewClient(config)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

// replyWith responds with the given JSON body and status 200.
func replyWith(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

// replyStatus responds with the given HTTP status and JSON body.
func replyStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

const replySuccess = `{"status": "success", "took": 0.042}`
