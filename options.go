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

// Option configures an API at construction time.
type Option func(*API)

// WithPrefix prefixes every route registered through the API, e.g. "/v1" or
// "/2025-01-01". The prefix sits between a blueprint's mount prefix and each
// resource's declared path.
func WithPrefix(prefix string) Option {
	return func(a *API) {
		a.prefix = prefix
	}
}

// WithMiddleware attaches middleware to every resource registered through
// the API. API-level middleware is outermost: it runs before any
// per-registration middleware and before the resource method, so
// cross-cutting behavior such as auth can short-circuit early.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *API) {
		a.middleware = append(a.middleware, mw...)
	}
}

// WithResponder sets the Responder used to normalize handler return values.
// The default encodes payloads as JSON.
func WithResponder(rp *Responder) Option {
	return func(a *API) {
		a.responder = rp
	}
}

// WithErrorHandler sets the handler invoked when a resource method returns
// an error or its return value cannot be normalized. The default writes a
// 500 with the error text.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *API) {
		a.onError = h
	}
}

// addCfg collects per-registration options.
type addCfg struct {
	endpoint   string
	aliases    []string
	middleware []Middleware
}

// AddOption configures a single AddResource call.
type AddOption func(*addCfg)

// WithEndpoint overrides the endpoint name for a registration. The default
// is the lowercased resource name.
func WithEndpoint(endpoint string) AddOption {
	return func(cfg *addCfg) {
		cfg.endpoint = endpoint
	}
}

// WithAlias declares additional paths serving the same resource.
//
// Example:
//
//	api.AddResource(hello, "/hello", resteasy.WithAlias("/hi", "/howdy"))
func WithAlias(paths ...string) AddOption {
	return func(cfg *addCfg) {
		cfg.aliases = append(cfg.aliases, paths...)
	}
}

// WithRouteMiddleware attaches middleware to this registration only. It runs
// after API-level middleware and before the resource method.
func WithRouteMiddleware(mw ...Middleware) AddOption {
	return func(cfg *addCfg) {
		cfg.middleware = append(cfg.middleware, mw...)
	}
}
