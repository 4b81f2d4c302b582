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
	"fmt"
	"net/http"
	"strings"
)

// fakeRoute records one AddRoute call for assertions.
type fakeRoute struct {
	pattern  string
	endpoint string
}

// fakeApp is a minimal App implementation used across the tests. It records
// registrations and does naive {param} substitution for reverse routing.
type fakeApp struct {
	routes   []fakeRoute
	handlers map[string]http.Handler
	patterns map[string]string
}

func newFakeApp() *fakeApp {
	return &fakeApp{
		handlers: make(map[string]http.Handler),
		patterns: make(map[string]string),
	}
}

func (f *fakeApp) AddRoute(pattern, endpoint string, handler http.Handler) {
	f.routes = append(f.routes, fakeRoute{pattern: pattern, endpoint: endpoint})
	f.handlers[endpoint] = handler
	f.patterns[endpoint] = pattern
}

func (f *fakeApp) HandlerAt(endpoint string) (http.Handler, bool) {
	handler, ok := f.handlers[endpoint]

	return handler, ok
}

func (f *fakeApp) URLFor(endpoint string, params map[string]string) (string, error) {
	pattern, ok := f.patterns[endpoint]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint)
	}

	url := pattern
	for name, value := range params {
		url = strings.ReplaceAll(url, "{"+name+"}", value)
	}

	return url, nil
}

// patternsOf returns the registered patterns in registration order.
func (f *fakeApp) patternsOf() []string {
	patterns := make([]string, 0, len(f.routes))
	for _, rt := range f.routes {
		patterns = append(patterns, rt.pattern)
	}

	return patterns
}

// greetResource returns a fresh GET-only resource answering with a fixed
// payload.
func greetResource(name string) *Resource {
	return &Resource{
		Name: name,
		Get: func(*http.Request) (any, error) {
			return map[string]string{"msg": "hello"}, nil
		},
	}
}
