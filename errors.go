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
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

// ConfigurationError reports a Config that cannot produce a working client.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "slicingdice: " + e.Reason
}

// AuthorizationError reports an operation that none of the configured keys is
// allowed to perform. It is produced locally, before any request is made.
type AuthorizationError struct {
	Operation string
	Required  PermissionLevel
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("slicingdice: %s requires a %s key and none of the configured keys satisfies it",
		e.Operation, e.Required)
}

// ConnectionError reports a transport failure: the request never produced an
// HTTP response, or the response body could not be read.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("slicingdice: connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was hitting a deadline, either the
// client timeout or one carried by the context.
func (e *ConnectionError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ResponseError reports a successful HTTP status whose body could not be
// understood as a SlicingDice response.
type ResponseError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slicingdice: malformed response (HTTP %d): %s: %v", e.StatusCode, e.Reason, e.Err)
	}
	return fmt.Sprintf("slicingdice: malformed response (HTTP %d): %s", e.StatusCode, e.Reason)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// ErrorFamily groups the service's numeric error codes by documented range.
type ErrorFamily int

const (
	FamilyUnknown        ErrorFamily = iota
	FamilyAuthentication             // 10-19
	FamilyRequest                    // 20-29
	FamilyAccount                    // 30-39
	FamilyColumn                     // 40-59
	FamilyInsert                     // 60-79
	FamilyQuery                      // 80-129
	FamilyInternal                   // 130+
)

func (f ErrorFamily) String() string {
	switch f {
	case FamilyAuthentication:
		return "authentication"
	case FamilyRequest:
		return "request"
	case FamilyAccount:
		return "account"
	case FamilyColumn:
		return "column"
	case FamilyInsert:
		return "insert"
	case FamilyQuery:
		return "query"
	case FamilyInternal:
		return "internal"
	default:
		return "unknown"
	}
}

func familyOf(code int) ErrorFamily {
	switch {
	case code >= 10 && code <= 19:
		return FamilyAuthentication
	case code >= 20 && code <= 29:
		return FamilyRequest
	case code >= 30 && code <= 39:
		return FamilyAccount
	case code >= 40 && code <= 59:
		return FamilyColumn
	case code >= 60 && code <= 79:
		return FamilyInsert
	case code >= 80 && code <= 129:
		return FamilyQuery
	case code >= 130:
		return FamilyInternal
	default:
		return FamilyUnknown
	}
}

// ErrorDetail is one error reported by the service, verbatim.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Family classifies the detail by its code range.
func (d ErrorDetail) Family() ErrorFamily {
	return familyOf(d.Code)
}

// APIError is an error reported by the SlicingDice service itself: a non-2xx
// HTTP status, or a 2xx body whose status field is "error".
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("slicingdice: API error (HTTP %d)", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		if d.Code != 0 {
			parts = append(parts, fmt.Sprintf("%d: %s", d.Code, d.Message))
		} else {
			parts = append(parts, d.Message)
		}
	}
	return fmt.Sprintf("slicingdice: API error (HTTP %d): %s", e.StatusCode, strings.Join(parts, "; "))
}

// Family classifies the first reported code. Responses carry a single error
// in practice.
func (e *APIError) Family() ErrorFamily {
	if len(e.Errors) == 0 {
		return FamilyUnknown
	}
	return e.Errors[0].Family()
}

// errorBody is the wire shape of an error response. The API documents a list
// of coded errors, but some endpoints reply with a flat message; both are
// accepted.
type errorBody struct {
	Status  string        `json:"status"`
	Errors  []ErrorDetail `json:"errors"`
	Message string        `json:"message"`
	Code    int           `json:"code"`
}

func (b *errorBody) details() []ErrorDetail {
	if len(b.Errors) > 0 {
		return b.Errors
	}
	if b.Message != "" || b.Code != 0 {
		return []ErrorDetail{{Code: b.Code, Message: b.Message}}
	}
	return nil
}

// serviceError builds an APIError from an error response body. Bodies that
// are not JSON are carried as a single plain-text detail.
func serviceError(statusCode int, data []byte) *APIError {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if details := body.details(); details != nil {
			return &APIError{StatusCode: statusCode, Errors: details}
		}
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return &APIError{StatusCode: statusCode, Errors: []ErrorDetail{{Message: msg}}}
	}
	return &APIError{StatusCode: statusCode}
}

// sneakyBodyClose closes the body and ignores the error.
// This is useful to close the HTTP response body when we don't care about the error.
func sneakyBodyClose(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
