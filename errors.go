// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resteasy

import (
	"errors"
	"fmt"
)

var (
	// ErrEndpointConflict indicates that an endpoint name is already claimed
	// by a different resource.
	ErrEndpointConflict = errors.New("endpoint already registered to a different resource")

	// ErrAlreadyMounted indicates that an API was bound to a blueprint that
	// has already been mounted. Deferred registration is only meaningful
	// before the first mount.
	ErrAlreadyMounted = errors.New("blueprint already mounted")

	// ErrRepeatedMount indicates a second mount of a blueprint that carries
	// deferred registrations.
	ErrRepeatedMount = errors.New("blueprint with deferred registrations can only be mounted once")

	// ErrNilReturnValue indicates that a handler produced no payload.
	ErrNilReturnValue = errors.New("handler did not return a response value")

	// ErrUnknownEndpoint indicates that a resource was never registered with
	// the API being asked to build its URL.
	ErrUnknownEndpoint = errors.New("resource has no registered endpoint")

	// ErrNotBound indicates that no host application is available yet.
	ErrNotBound = errors.New("not bound to a host application")

	// ErrMissingRouteParameter indicates that a required URL parameter is
	// missing when building a URL.
	ErrMissingRouteParameter = errors.New("missing required parameter")
)

// EndpointConflictError reports an endpoint name claimed by two distinct
// resources. It unwraps to [ErrEndpointConflict].
type EndpointConflictError struct {
	Endpoint string // the contested endpoint name
	Claimed  string // name of the resource that owns the endpoint
	Proposed string // name of the resource attempting to claim it
}

func (e *EndpointConflictError) Error() string {
	return fmt.Sprintf("endpoint %q is already registered to resource %q (attempted by %q)",
		e.Endpoint, e.Claimed, e.Proposed)
}

func (e *EndpointConflictError) Unwrap() error { return ErrEndpointConflict }
