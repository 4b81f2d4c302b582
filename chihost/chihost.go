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

// Package chihost adapts go-chi routers to the resteasy.App interface.
//
// chi has no reverse routing of its own, so the adapter records the pattern
// registered for each endpoint and builds URLs by substituting values into
// {param} segments.
//
// Example:
//
//	host := chihost.New()
//	api := resteasy.New()
//	api.MustBind(host)
//	api.MustAdd(user, "/users/{id}")
//	http.ListenAndServe(":8080", host)
package chihost

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"rivaas.dev/resteasy"
)

// Host wraps a chi router and implements resteasy.App. Route registration is
// a startup-time phase; Host is not safe for registration concurrent with
// serving.
type Host struct {
	mux      chi.Router
	handlers map[string]http.Handler
	patterns map[string]string
}

// New creates a Host around a fresh chi router.
func New() *Host {
	return Wrap(chi.NewRouter())
}

// Wrap adapts an existing chi router, so resources can share it with routes
// and middleware registered directly on chi.
func Wrap(mux chi.Router) *Host {
	return &Host{
		mux:      mux,
		handlers: make(map[string]http.Handler),
		patterns: make(map[string]string),
	}
}

// Router returns the underlying chi router.
func (h *Host) Router() chi.Router { return h.mux }

// ServeHTTP implements http.Handler by delegating to the chi router.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// AddRoute implements resteasy.App. The handler is mounted for all methods;
// per-method dispatch is the resource's concern.
func (h *Host) AddRoute(pattern, endpoint string, handler http.Handler) {
	h.mux.Handle(pattern, handler)
	h.handlers[endpoint] = handler
	h.patterns[endpoint] = pattern
}

// HandlerAt implements resteasy.App.
func (h *Host) HandlerAt(endpoint string) (http.Handler, bool) {
	handler, ok := h.handlers[endpoint]

	return handler, ok
}

// URLFor implements resteasy.App. Each {param} segment of the endpoint's
// pattern is replaced with the matching value, path-escaped. Regex
// constraints in the pattern ({id:[0-9]+}) are stripped, not enforced.
func (h *Host) URLFor(endpoint string, params map[string]string) (string, error) {
	pattern, ok := h.patterns[endpoint]
	if !ok {
		return "", fmt.Errorf("%w: %s", resteasy.ErrUnknownEndpoint, endpoint)
	}

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if len(seg) < 2 || seg[0] != '{' || seg[len(seg)-1] != '}' {
			continue
		}

		name := seg[1 : len(seg)-1]
		if idx := strings.IndexByte(name, ':'); idx >= 0 {
			name = name[:idx]
		}

		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", resteasy.ErrMissingRouteParameter, name)
		}
		segments[i] = url.PathEscape(value)
	}

	return strings.Join(segments, "/"), nil
}
