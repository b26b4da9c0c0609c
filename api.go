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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// endpoint describes one operation of the SlicingDice API: its HTTP method,
// URL path and the key permission it requires. The table below is fixed and
// known at compile time; paths ending in "/" take an identifier appended
// verbatim.
type endpoint struct {
	name   string
	method string
	path   string
	level  PermissionLevel

	// testable marks operations with a test-environment variant.
	testable bool
	// overridable marks operations accepting a per-call test-mode override.
	overridable bool
}

var (
	epGetDatabase      = endpoint{name: "get database", method: http.MethodGet, path: "/database", level: PermissionMaster}
	epGetColumns       = endpoint{name: "get columns", method: http.MethodGet, path: "/column", level: PermissionMaster, testable: true, overridable: true}
	epCreateColumn     = endpoint{name: "create column", method: http.MethodPost, path: "/column", level: PermissionMaster, testable: true}
	epInsert           = endpoint{name: "insert", method: http.MethodPost, path: "/insert", level: PermissionWrite, testable: true}
	epCountEntity      = endpoint{name: "count entity", method: http.MethodPost, path: "/query/count/entity", level: PermissionRead, testable: true, overridable: true}
	epCountEntityTotal = endpoint{name: "count entity total", method: http.MethodPost, path: "/query/count/entity/total", level: PermissionRead, testable: true, overridable: true}
	epCountEvent       = endpoint{name: "count event", method: http.MethodPost, path: "/query/count/event", level: PermissionRead, testable: true, overridable: true}
	epExistsEntity     = endpoint{name: "exists entity", method: http.MethodPost, path: "/query/exists/entity", level: PermissionRead, testable: true}
	epTopValues        = endpoint{name: "top values", method: http.MethodPost, path: "/query/top_values", level: PermissionRead, testable: true}
	epAggregation      = endpoint{name: "aggregation", method: http.MethodPost, path: "/query/aggregation", level: PermissionRead, testable: true}
	epGetSavedQueries  = endpoint{name: "get saved queries", method: http.MethodGet, path: "/query/saved", level: PermissionMaster, testable: true}
	epCreateSavedQuery = endpoint{name: "create saved query", method: http.MethodPost, path: "/query/saved", level: PermissionMaster, testable: true}
	epUpdateSavedQuery = endpoint{name: "update saved query", method: http.MethodPut, path: "/query/saved/", level: PermissionMaster, testable: true}
	epGetSavedQuery    = endpoint{name: "get saved query", method: http.MethodGet, path: "/query/saved/", level: PermissionRead, testable: true}
	epDeleteSavedQuery = endpoint{name: "delete saved query", method: http.MethodDelete, path: "/query/saved/", level: PermissionMaster, testable: true}
	epExtractResult    = endpoint{name: "result extraction", method: http.MethodPost, path: "/data_extraction/result", level: PermissionRead, testable: true}
	epExtractScore     = endpoint{name: "score extraction", method: http.MethodPost, path: "/data_extraction/score", level: PermissionRead, testable: true}
)

// CallOption adjusts a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	testMode *bool
}

// WithTestMode overrides the client's UsesTestEndpoint setting for one call,
// in either direction. Only the operations documented with a per-call test
// variant honor it: get columns, count entity, count entity total and count
// event. The other operations ignore the option.
func WithTestMode(enabled bool) CallOption {
	return func(o *callOptions) {
		o.testMode = &enabled
	}
}

// baseURL picks the production or test variant of the API address for the
// given endpoint.
func (c *Client) baseURL(ep endpoint, options *callOptions) string {
	testMode := c.config.UsesTestEndpoint
	if ep.overridable && options.testMode != nil {
		testMode = *options.testMode
	}
	if ep.testable && testMode {
		return c.config.Endpoint + "/test"
	}
	return c.config.Endpoint
}

// execute performs one API call: select a key, assemble the URL, send the
// JSON body and decode the response. Every operation of the client funnels
// through here.
func (c *Client) execute(ctx context.Context, ep endpoint, pathArg string, payload any, opts ...CallOption) (Result, error) {
	key, err := c.config.keyFor(ep.name, ep.level)
	if err != nil {
		return nil, err
	}

	options := callOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	u, err := url.Parse(c.baseURL(ep, &options) + ep.path + pathArg)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", key)

	var body []byte
	if ep.method == http.MethodPost || ep.method == http.MethodPut {
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	var resp *http.Response
	switch ep.method {
	case http.MethodGet:
		resp, err = c.http.Get(ctx, u, header)
	case http.MethodPost:
		resp, err = c.http.Post(ctx, u, header, body)
	case http.MethodPut:
		resp, err = c.http.Put(ctx, u, header, body)
	case http.MethodDelete:
		resp, err = c.http.Delete(ctx, u, header)
	default:
		return nil, fmt.Errorf("unsupported method: %s", ep.method)
	}
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer sneakyBodyClose(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serviceError(resp.StatusCode, data)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Reason: "body is not a JSON object", Err: err}
	}
	status, ok := result["status"]
	if !ok {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Reason: "missing status field"}
	}
	if status == "error" {
		return nil, serviceError(resp.StatusCode, data)
	}
	return result, nil
}
