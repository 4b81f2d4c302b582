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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeferredThenMountEquivalence verifies the central invariant: routes
// registered against an unmounted blueprint and finalized at mount time are
// identical to routes registered directly with the mount prefix pre-composed.
func TestDeferredThenMountEquivalence(t *testing.T) {
	t.Parallel()

	// Deferred: declare against an unmounted blueprint, mount later.
	bp := NewBlueprint("bp")
	deferred := New(WithPrefix("/api"))
	require.NoError(t, deferred.Bind(bp))
	require.NoError(t, deferred.AddResource(greetResource("Hello"), "/hi", WithAlias("/hello")))

	parent := newFakeApp()
	require.NoError(t, Mount(parent, "/bp", bp))

	// Direct: same declarations against a host with the prefix pre-composed.
	direct := New(WithPrefix("/bp/api"))
	app := newFakeApp()
	require.NoError(t, direct.Bind(app))
	require.NoError(t, direct.AddResource(greetResource("Hello"), "/hi", WithAlias("/hello")))

	assert.Equal(t, app.patternsOf(), parent.patternsOf())
	assert.Equal(t, []string{"/bp/api/hi", "/bp/api/hello"}, parent.patternsOf())

	// Mounted endpoints carry the blueprint namespace.
	for _, rt := range parent.routes {
		assert.Equal(t, "bp.hello", rt.endpoint)
	}

	// Route-for-route, both handlers serve the same response.
	for _, endpoint := range []string{"bp.hello", "hello"} {
		var handler http.Handler
		var ok bool
		if handler, ok = parent.HandlerAt(endpoint); !ok {
			handler, ok = app.HandlerAt(endpoint)
		}
		require.True(t, ok, "handler for %s", endpoint)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bp/api/hi", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"msg":"hello"}`, w.Body.String())
	}
}

// TestSingleMountEnforcement verifies a blueprint carrying deferred
// registrations cannot be mounted twice and that the failed second mount
// registers nothing.
func TestSingleMountEnforcement(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")
	api := New()
	require.NoError(t, api.Bind(bp))
	require.NoError(t, api.AddResource(greetResource("Hello"), "/hello"))

	parent := newFakeApp()
	require.NoError(t, Mount(parent, "/v1", bp))
	routesAfterFirst := len(parent.routes)

	other := newFakeApp()
	err := Mount(other, "/v2", bp)
	require.ErrorIs(t, err, ErrRepeatedMount)

	assert.Empty(t, other.routes)
	assert.Len(t, parent.routes, routesAfterFirst)
	assert.Equal(t, "/v1", bp.Prefix())
}

// TestBindAlreadyMounted verifies deferred binding is refused once the
// blueprint has been mounted.
func TestBindAlreadyMounted(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")
	require.NoError(t, Mount(newFakeApp(), "/v1", bp))

	err := New().Bind(bp)
	require.ErrorIs(t, err, ErrAlreadyMounted)
}

// TestRuleResolverInstallIdempotent verifies installing the deferred-aware
// registrar twice does not double-wrap: two APIs can share one blueprint.
func TestRuleResolverInstallIdempotent(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")
	bp.installRuleResolver()
	bp.installRuleResolver()
	assert.True(t, bp.deferredRules)

	api1 := New(WithPrefix("/a"))
	require.NoError(t, api1.Bind(bp))
	require.NoError(t, api1.AddResource(greetResource("Alpha"), "/x"))

	api2 := New(WithPrefix("/b"))
	require.NoError(t, api2.Bind(bp))
	require.NoError(t, api2.AddResource(greetResource("Beta"), "/y"))

	parent := newFakeApp()
	require.NoError(t, Mount(parent, "/bp", bp))

	assert.Equal(t, []string{"/bp/a/x", "/bp/b/y"}, parent.patternsOf())
}

// TestBlueprintPlainRoutes verifies string rules registered directly on a
// blueprint get the mount prefix and qualified endpoint, before and after
// mounting.
func TestBlueprintPlainRoutes(t *testing.T) {
	t.Parallel()

	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	bp := NewBlueprint("admin")
	bp.AddRoute("/dash", "dash", noop)

	parent := newFakeApp()
	require.NoError(t, Mount(parent, "/admin", bp))
	assert.Equal(t, []string{"/admin/dash"}, parent.patternsOf())
	assert.Equal(t, "admin.dash", parent.routes[0].endpoint)

	// Post-mount routes register with the parent immediately.
	bp.AddRoute("/late", "late", noop)
	assert.Equal(t, []string{"/admin/dash", "/admin/late"}, parent.patternsOf())
}

// TestBlueprintAddResourceAfterMount verifies an API bound to a mounted
// blueprint registers immediately, with the mount prefix applied.
func TestBlueprintAddResourceAfterMount(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")
	api := New(WithPrefix("/api"))
	require.NoError(t, api.Bind(bp))

	parent := newFakeApp()
	require.NoError(t, Mount(parent, "/v1", bp))

	require.NoError(t, api.AddResource(greetResource("Late"), "/late"))
	assert.Equal(t, []string{"/v1/api/late"}, parent.patternsOf())
	assert.Equal(t, "bp.late", parent.routes[0].endpoint)
}

// TestBlueprintURLFor verifies reverse routing through a mounted blueprint
// uses the qualified endpoint, and fails before mounting.
func TestBlueprintURLFor(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")
	api := New(WithPrefix("/api"))
	require.NoError(t, api.Bind(bp))
	user := api.MustAdd(greetResource("User"), "/users/{id}")

	_, err := api.URLFor(user, map[string]string{"id": "7"})
	require.ErrorIs(t, err, ErrNotBound)

	require.NoError(t, Mount(newFakeApp(), "/v1", bp))

	url, err := api.URLFor(user, map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/api/users/7", url)
}

// TestMountHookOrder verifies hooks run in recording order and the first
// error aborts the mount.
func TestMountHookOrder(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint("bp")

	var order []string
	bp.OnMount(func(*MountState) error {
		order = append(order, "first")

		return nil
	})
	bp.OnMount(func(ms *MountState) error {
		order = append(order, "second")
		assert.Equal(t, "/v1", ms.Prefix())
		assert.True(t, ms.FirstMount())

		return nil
	})

	require.NoError(t, Mount(newFakeApp(), "/v1", bp))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.True(t, bp.Mounted())
}
