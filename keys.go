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

import "fmt"

// PermissionLevel is the API key permission an operation requires.
type PermissionLevel int

const (
	// PermissionRead allows querying data.
	PermissionRead PermissionLevel = iota
	// PermissionWrite allows inserting data.
	PermissionWrite
	// PermissionMaster allows every operation, database management included.
	PermissionMaster
)

func (p PermissionLevel) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	case PermissionMaster:
		return "master"
	default:
		return fmt.Sprintf("PermissionLevel(%d)", int(p))
	}
}

// keyFor selects a configured key that satisfies the required level. The
// master key satisfies every level. A custom key is passed through for any
// level; the service enforces the scope the key was created with. Otherwise
// only the key of the exact level qualifies: a write key never satisfies a
// read-level operation and vice versa.
func (c *Config) keyFor(op string, required PermissionLevel) (string, error) {
	if c.MasterKey != "" {
		return c.MasterKey, nil
	}
	if c.CustomKey != "" {
		return c.CustomKey, nil
	}
	switch required {
	case PermissionRead:
		if c.ReadKey != "" {
			return c.ReadKey, nil
		}
	case PermissionWrite:
		if c.WriteKey != "" {
			return c.WriteKey, nil
		}
	}
	return "", &AuthorizationError{Operation: op, Required: required}
}
