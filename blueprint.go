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

// ruleRegistrar registers one rule with the parent application during or
// after a mount. The blueprint's own registrar only understands resolved
// rules; binding an API installs a deferred-aware replacement.
type ruleRegistrar func(ms *MountState, rule Rule, endpoint string, handler http.Handler)

// Blueprint is a mountable group of routes. It is declared independently and
// later attached to a host with [Mount], at which point its URL prefix
// becomes fixed and every recorded registration is finalized.
//
// Blueprint implements [App]: routes added before the mount are buffered,
// routes added afterwards go straight to the parent. Endpoint names are
// registered with the parent qualified as "name.endpoint".
type Blueprint struct {
	name       string
	hooks      []func(*MountState) error
	mountCount int
	state      *MountState // set on successful mount

	registrar     ruleRegistrar
	deferredRules bool // deferred-aware registrar installed
}

// NewBlueprint creates an unmounted blueprint. The name qualifies every
// endpoint registered through it.
func NewBlueprint(name string) *Blueprint {
	return &Blueprint{
		name:      name,
		registrar: registerResolved,
	}
}

// Name returns the blueprint's namespace name.
func (bp *Blueprint) Name() string { return bp.name }

// Mounted reports whether the blueprint has been mounted on a host.
func (bp *Blueprint) Mounted() bool { return bp.state != nil }

// Prefix returns the mount prefix. It is empty until the blueprint is
// mounted.
func (bp *Blueprint) Prefix() string {
	if bp.state == nil {
		return ""
	}

	return bp.state.prefix
}

// OnMount records fn to run when the blueprint is mounted. Hooks run in
// recording order; the first error aborts the mount.
func (bp *Blueprint) OnMount(fn func(*MountState) error) {
	bp.hooks = append(bp.hooks, fn)
}

// AddRule registers a rule under the given endpoint. Before the mount the
// rule is recorded and finalized once the mount prefix is known; afterwards
// it is registered with the parent immediately.
func (bp *Blueprint) AddRule(rule Rule, endpoint string, handler http.Handler) {
	if bp.state != nil {
		bp.registrar(bp.state, rule, endpoint, handler)

		return
	}

	bp.OnMount(func(ms *MountState) error {
		bp.registrar(ms, rule, endpoint, handler)

		return nil
	})
}

// AddRoute implements [App] for plain string patterns.
func (bp *Blueprint) AddRoute(pattern, endpoint string, handler http.Handler) {
	bp.AddRule(ResolvedRule(pattern), endpoint, handler)
}

// HandlerAt implements [App]. It reports handlers only once the blueprint is
// mounted, since nothing is registered with a host before that.
func (bp *Blueprint) HandlerAt(endpoint string) (http.Handler, bool) {
	if bp.state == nil {
		return nil, false
	}

	return bp.state.app.HandlerAt(bp.qualify(endpoint))
}

// URLFor implements [App], delegating to the parent with the endpoint
// qualified by the blueprint's name. Fails with [ErrNotBound] until the
// blueprint is mounted.
func (bp *Blueprint) URLFor(endpoint string, params map[string]string) (string, error) {
	if bp.state == nil {
		return "", fmt.Errorf("%w: blueprint %s is not mounted", ErrNotBound, bp.name)
	}

	return bp.state.app.URLFor(bp.qualify(endpoint), params)
}

// qualify namespaces an endpoint with the blueprint's name. Endpoints that
// already carry a namespace are passed through.
func (bp *Blueprint) qualify(endpoint string) string {
	if strings.Contains(endpoint, ".") {
		return endpoint
	}

	return bp.name + "." + endpoint
}

// installRuleResolver swaps the blueprint's registration operation for the
// deferred-aware variant. Installing twice is a no-op; the installed state
// is tracked here rather than inferred from the function value.
func (bp *Blueprint) installRuleResolver() {
	if bp.deferredRules {
		return
	}
	bp.deferredRules = true
	bp.registrar = registerDeferred
}

// registerResolved is the blueprint's original registration operation. It
// only understands resolved rules: the mount prefix is prepended to the
// pattern string.
func registerResolved(ms *MountState, rule Rule, endpoint string, handler http.Handler) {
	ms.app.AddRoute(ms.prefix+rule.Pattern(), ms.bp.qualify(endpoint), handler)
}

// registerDeferred finalizes the rule with the now-known mount prefix before
// delegating to the parent. Resolved rules behave exactly as with
// registerResolved.
func registerDeferred(ms *MountState, rule Rule, endpoint string, handler http.Handler) {
	ms.app.AddRoute(rule.Resolve(ms.prefix), ms.bp.qualify(endpoint), handler)
}

// MountState carries everything a mount hook needs: the parent application,
// the mount prefix chosen by the caller, and whether this is the first
// mount of the blueprint.
type MountState struct {
	app        App
	bp         *Blueprint
	prefix     string
	firstMount bool
}

// App returns the parent application the blueprint is being mounted on.
func (ms *MountState) App() App { return ms.app }

// Prefix returns the mount prefix chosen by the caller.
func (ms *MountState) Prefix() string { return ms.prefix }

// FirstMount reports whether this is the blueprint's first mount.
func (ms *MountState) FirstMount() bool { return ms.firstMount }

// Mount attaches the blueprint to app under prefix, running every recorded
// hook with the mount state. Deferred rules are resolved here, exactly once.
// The first hook error aborts the mount and leaves the blueprint unmounted;
// in particular, mounting a blueprint with deferred registrations a second
// time fails with [ErrRepeatedMount] before anything is re-registered.
func Mount(app App, prefix string, bp *Blueprint) error {
	ms := &MountState{
		app:        app,
		bp:         bp,
		prefix:     prefix,
		firstMount: bp.mountCount == 0,
	}
	bp.mountCount++

	for _, hook := range bp.hooks {
		if err := hook(ms); err != nil {
			return err
		}
	}
	bp.state = ms

	return nil
}
