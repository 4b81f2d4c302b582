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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComposeOrder verifies the fixed fragment order: mount prefix, API
// prefix, declared path.
func TestComposeOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/bp/api/hi", Compose("/bp", "/api", "/hi"))
	assert.Equal(t, "/api/hi", Compose("", "/api", "/hi"))
	assert.Equal(t, "/bp/hi", Compose("/bp", "", "/hi"))
	assert.Equal(t, "/hi", Compose("", "", "/hi"))
	assert.Equal(t, "", Compose("", "", ""))
}

// TestComposeNoSeparatorInsertion documents the garbage-in/garbage-out
// contract: fragments are concatenated exactly as given.
func TestComposeNoSeparatorInsertion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/bphi", Compose("/bp", "", "hi"))
	assert.Equal(t, "/bp//api//hi", Compose("/bp/", "/api/", "/hi"))
}

// TestComposeDeferredEquivalence verifies that supplying the mount prefix
// immediately and via partial application produce the same URL.
func TestComposeDeferredEquivalence(t *testing.T) {
	t.Parallel()

	build := ComposeLater("/api", "/hi")
	assert.Equal(t, Compose("/bp", "/api", "/hi"), build("/bp"))
	assert.Equal(t, "/bp/api/hi", build("/bp"))

	// Identical inputs give identical outputs on every call.
	assert.Equal(t, build("/bp"), build("/bp"))
}

func TestRuleResolved(t *testing.T) {
	t.Parallel()

	rule := ResolvedRule("/api/hi")
	assert.False(t, rule.Deferred())
	assert.Equal(t, "/api/hi", rule.Pattern())
	assert.Equal(t, "/api/hi", rule.Resolve(""))
	assert.Equal(t, "/bp/api/hi", rule.Resolve("/bp"))
}

func TestRuleDeferred(t *testing.T) {
	t.Parallel()

	rule := DeferredRule(ComposeLater("/api", "/hi"))
	assert.True(t, rule.Deferred())
	assert.Empty(t, rule.Pattern())
	assert.Equal(t, "/bp/api/hi", rule.Resolve("/bp"))
	assert.Equal(t, "/api/hi", rule.Resolve(""))
}
