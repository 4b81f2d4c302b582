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

import "strings"

// Compose builds a URL pattern from up to three fragments: the mount prefix
// contributed by a blueprint, the API's own prefix, and the path declared for
// the resource. Empty fragments are skipped; non-empty fragments are joined
// in that fixed order with no separator insertion. Callers are responsible
// for leading slashes: Compose("/bp", "/api", "/hi") is "/bp/api/hi", while
// Compose("/bp", "", "hi") is "/bphi".
func Compose(mountPrefix, prefix, path string) string {
	var sb strings.Builder
	sb.Grow(len(mountPrefix) + len(prefix) + len(path))
	sb.WriteString(mountPrefix)
	sb.WriteString(prefix)
	sb.WriteString(path)

	return sb.String()
}

// ComposeLater returns a function that completes the composition once the
// mount prefix becomes known. This is the partial-application form of
// [Compose] used for routes registered against a blueprint before it is
// mounted:
//
//	build := resteasy.ComposeLater("/api", "/hi")
//	build("/bp") // "/bp/api/hi"
func ComposeLater(prefix, path string) func(mountPrefix string) string {
	return func(mountPrefix string) string {
		return Compose(mountPrefix, prefix, path)
	}
}

// Rule is the URL pattern of one registration. It is either resolved (a
// finished string) or deferred (a function awaiting the mount prefix).
// Deferred rules exist only while a blueprint is unmounted; they are resolved
// exactly once, at mount time.
type Rule struct {
	pattern string
	build   func(mountPrefix string) string
}

// ResolvedRule returns a rule whose pattern is already final apart from an
// optional mount prefix prepended at registration.
func ResolvedRule(pattern string) Rule {
	return Rule{pattern: pattern}
}

// DeferredRule returns a rule that builds its pattern from the mount prefix,
// typically via [ComposeLater].
func DeferredRule(build func(mountPrefix string) string) Rule {
	return Rule{build: build}
}

// Deferred reports whether the rule still awaits a mount prefix.
func (r Rule) Deferred() bool { return r.build != nil }

// Pattern returns the resolved pattern. It is empty for deferred rules.
func (r Rule) Pattern() string { return r.pattern }

// Resolve finalizes the rule with the given mount prefix. Deferred rules run
// their build function; resolved rules are prefixed verbatim. The prefix may
// be empty.
func (r Rule) Resolve(mountPrefix string) string {
	if r.build != nil {
		return r.build(mountPrefix)
	}

	return mountPrefix + r.pattern
}
