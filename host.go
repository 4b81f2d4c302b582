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

import "net/http"

// App is the routing surface the API needs from a host framework. The
// chihost subpackage adapts chi routers; any router with named routes and
// reverse URL building can be adapted the same way.
//
// [Blueprint] also implements App, which is how an API is bound to a
// not-yet-mounted group: registrations are deferred until the blueprint's
// mount prefix becomes known.
type App interface {
	// AddRoute registers handler for all HTTP methods at pattern under the
	// given endpoint name. Per-method dispatch happens inside the handler.
	AddRoute(pattern, endpoint string, handler http.Handler)

	// HandlerAt returns the handler already registered under endpoint, if
	// any. Used to detect endpoint conflicts across APIs sharing a host.
	HandlerAt(endpoint string) (http.Handler, bool)

	// URLFor builds a URL for the named endpoint, substituting params into
	// the pattern's variable segments.
	URLFor(endpoint string, params map[string]string) (string, error)
}
