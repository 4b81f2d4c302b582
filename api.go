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
	"sort"
	"strings"
)

// Middleware wraps a handler with cross-cutting behavior. The same shape as
// chi middleware, so existing middleware stacks plug in directly.
type Middleware func(http.Handler) http.Handler

// ErrorHandler is invoked when a resource method returns an error or its
// return value cannot be normalized. Errors are not retried or downgraded;
// presenting them is the host's concern.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// registration buffers one AddResource call made before the API is bound.
// Buffered entries are replayed, in order, exactly once at bind time.
type registration struct {
	res   *Resource
	paths []string
	cfg   addCfg
}

// API binds resources to URL patterns on a host application. An API is in
// one of three binding states: unbound (registrations buffer), bound to a
// live host (registrations take effect immediately), or bound to an
// unmounted [Blueprint] (registrations become deferred rules finalized at
// mount time).
//
// All mutation happens during the registration phase at process startup;
// an API is not safe for mutation concurrent with request serving.
type API struct {
	app App
	bp  *Blueprint

	prefix     string
	middleware []Middleware
	responder  *Responder
	onError    ErrorHandler

	pending   []registration
	endpoints map[string]*Resource
}

// New creates an unbound API. Use [API.Bind] to attach it to a host or a
// blueprint.
//
// Example:
//
//	api := resteasy.New(
//	    resteasy.WithPrefix("/v1"),
//	    resteasy.WithMiddleware(authMiddleware),
//	)
func New(opts ...Option) *API {
	a := &API{
		responder: NewResponder(),
		onError:   defaultErrorHandler,
		endpoints: make(map[string]*Resource),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Bind attaches the API to a host application and replays any buffered
// registrations. Binding to a *[Blueprint] defers registrations until the
// blueprint is mounted; binding to an already-mounted blueprint fails with
// [ErrAlreadyMounted].
func (a *API) Bind(app App) error {
	if bp, ok := app.(*Blueprint); ok {
		return a.bindBlueprint(bp)
	}

	a.app = app

	return a.flush()
}

// MustBind is like [API.Bind] but panics on error. Intended for startup
// wiring where a binding failure is a programming mistake.
func (a *API) MustBind(app App) {
	if err := a.Bind(app); err != nil {
		panic(fmt.Sprintf("resteasy: bind failed: %v", err))
	}
}

// bindBlueprint takes the deferred path: it installs the rule resolver on
// the blueprint and guards against a second mount.
func (a *API) bindBlueprint(bp *Blueprint) error {
	if bp.Mounted() {
		return fmt.Errorf("%w: %s", ErrAlreadyMounted, bp.Name())
	}

	bp.installRuleResolver()
	bp.OnMount(func(ms *MountState) error {
		// Remounting would re-run URL finalization against stale rules.
		if !ms.FirstMount() {
			return fmt.Errorf("%w: %s", ErrRepeatedMount, bp.Name())
		}

		return nil
	})
	a.bp = bp

	return a.flush()
}

// flush replays registrations buffered while the API was unbound.
func (a *API) flush() error {
	pending := a.pending
	a.pending = nil
	for _, reg := range pending {
		if err := a.register(reg.res, reg.paths, reg.cfg); err != nil {
			return err
		}
	}

	return nil
}

// AddResource registers a resource under one or more URL paths.
//
// The endpoint name defaults to the lowercased resource name and can be
// overridden with [WithEndpoint]. Registering a second, distinct resource
// under an endpoint already taken fails with an [EndpointConflictError] and
// leaves the API's state untouched; re-registering the same resource under
// the same endpoint is allowed.
//
// Example:
//
//	api.AddResource(hello, "/", resteasy.WithAlias("/hello"))
//	api.AddResource(foo, "/foo", resteasy.WithEndpoint("foo"))
func (a *API) AddResource(res *Resource, path string, opts ...AddOption) error {
	var cfg addCfg
	for _, opt := range opts {
		opt(&cfg)
	}
	paths := append([]string{path}, cfg.aliases...)

	if a.app == nil && a.bp == nil {
		a.pending = append(a.pending, registration{res: res, paths: paths, cfg: cfg})

		return nil
	}

	return a.register(res, paths, cfg)
}

// MustAdd is the declarative form of [AddResource]: it panics on error and
// returns the resource, so registration can sit next to the resource's
// declaration.
//
// Example:
//
//	var hello = api.MustAdd(&resteasy.Resource{
//	    Name: "Hello",
//	    Get:  getHello,
//	}, "/hello")
func (a *API) MustAdd(res *Resource, path string, opts ...AddOption) *Resource {
	if err := a.AddResource(res, path, opts...); err != nil {
		panic(fmt.Sprintf("resteasy: add resource %q: %v", res.Name, err))
	}

	return res
}

// register performs one registration against the bound target. All checks
// run before any state is mutated, so a failed call leaves the endpoint set
// and route table exactly as they were.
func (a *API) register(res *Resource, paths []string, cfg addCfg) error {
	endpoint := cfg.endpoint
	if endpoint == "" {
		endpoint = strings.ToLower(res.Name)
	}

	if owner, ok := a.endpoints[endpoint]; ok && owner != res {
		return &EndpointConflictError{Endpoint: endpoint, Claimed: owner.Name, Proposed: res.Name}
	}
	if a.app != nil {
		if existing, ok := a.app.HandlerAt(endpoint); ok {
			if carrier, ok := existing.(resourceCarrier); ok && carrier.Resource() != res {
				return &EndpointConflictError{
					Endpoint: endpoint,
					Claimed:  carrier.Resource().Name,
					Proposed: res.Name,
				}
			}
		}
	}

	if res.endpoint == "" {
		res.endpoint = endpoint
	}

	handler := a.buildHandler(res, cfg)
	for _, path := range paths {
		if a.app != nil {
			a.app.AddRoute(Compose("", a.prefix, path), endpoint, handler)
		} else {
			a.bp.AddRule(DeferredRule(ComposeLater(a.prefix, path)), endpoint, handler)
		}
	}
	a.endpoints[endpoint] = res

	return nil
}

// buildHandler assembles the handler chain for a registration. Order, outer
// to inner: API middleware, per-registration middleware, normalizing view,
// resource method.
func (a *API) buildHandler(res *Resource, cfg addCfg) http.Handler {
	var h http.Handler = &view{res: res, respond: a.responder, onError: a.onError}
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		h = cfg.middleware[i](h)
	}
	for i := len(a.middleware) - 1; i >= 0; i-- {
		h = a.middleware[i](h)
	}

	return endpointHandler{res: res, Handler: h}
}

// Endpoints returns the endpoint names registered through this API, sorted.
// Introspection only; routing never consults it.
func (a *API) Endpoints() []string {
	names := make([]string, 0, len(a.endpoints))
	for name := range a.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// URLFor builds a URL for a registered resource by delegating to the host's
// reverse routing. When the API is bound to a blueprint, the endpoint is
// qualified with the blueprint's name. Fails with [ErrUnknownEndpoint] if
// the resource was never registered with this API, and with [ErrNotBound]
// before a host is available.
//
// Example:
//
//	url, err := api.URLFor(user, map[string]string{"id": "42"})
func (a *API) URLFor(res *Resource, params map[string]string) (string, error) {
	if res.endpoint == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownEndpoint, res.Name)
	}
	if owner, ok := a.endpoints[res.endpoint]; !ok || owner != res {
		return "", fmt.Errorf("%w: %s", ErrUnknownEndpoint, res.endpoint)
	}

	switch {
	case a.bp != nil:
		return a.bp.URLFor(res.endpoint, params)
	case a.app != nil:
		return a.app.URLFor(res.endpoint, params)
	default:
		return "", ErrNotBound
	}
}
