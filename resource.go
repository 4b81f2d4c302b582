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
	"strings"
)

// HandlerFunc handles one HTTP method of a resource. The return value is
// normalized by the API's [Responder]: a plain payload is encoded with status
// 200, a [Result] carries payload, status, and headers, and a *[Response] is
// passed through unchanged. URL parameters are read from the request with
// whatever mechanism the host router provides (for example chi.URLParam).
type HandlerFunc func(r *http.Request) (any, error)

// Resource is a named group of per-method handlers. Methods left nil are
// answered with 405 Method Not Allowed and an Allow header listing the
// supported methods. A HEAD request falls back to Get when no Head handler
// is set.
//
// The resource's endpoint name is assigned by the first API that registers
// it and never overwritten, so the same resource can be registered with
// several APIs without cross-contamination.
type Resource struct {
	Name string

	Get     HandlerFunc
	Post    HandlerFunc
	Put     HandlerFunc
	Delete  HandlerFunc
	Patch   HandlerFunc
	Head    HandlerFunc
	Options HandlerFunc

	endpoint string
}

// Endpoint returns the endpoint name assigned at first registration, or an
// empty string if the resource was never registered.
func (res *Resource) Endpoint() string { return res.endpoint }

// handler returns the handler for method, or nil if the method is not
// supported. HEAD falls back to Get.
func (res *Resource) handler(method string) HandlerFunc {
	switch method {
	case http.MethodGet:
		return res.Get
	case http.MethodPost:
		return res.Post
	case http.MethodPut:
		return res.Put
	case http.MethodDelete:
		return res.Delete
	case http.MethodPatch:
		return res.Patch
	case http.MethodHead:
		if res.Head != nil {
			return res.Head
		}

		return res.Get
	case http.MethodOptions:
		return res.Options
	default:
		return nil
	}
}

// allowed returns the supported methods in a fixed order for the Allow
// header.
func (res *Resource) allowed() string {
	methods := make([]string, 0, 7)
	if res.Get != nil {
		methods = append(methods, http.MethodGet, http.MethodHead)
	} else if res.Head != nil {
		methods = append(methods, http.MethodHead)
	}
	if res.Post != nil {
		methods = append(methods, http.MethodPost)
	}
	if res.Put != nil {
		methods = append(methods, http.MethodPut)
	}
	if res.Delete != nil {
		methods = append(methods, http.MethodDelete)
	}
	if res.Patch != nil {
		methods = append(methods, http.MethodPatch)
	}
	if res.Options != nil {
		methods = append(methods, http.MethodOptions)
	}

	return strings.Join(methods, ", ")
}

// view dispatches requests to the resource's method handlers and normalizes
// their return values. It is the innermost handler of every registration:
// middleware wraps it, never the other way around.
type view struct {
	res     *Resource
	respond *Responder
	onError ErrorHandler
}

func (v *view) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := v.res.handler(r.Method)
	if h == nil {
		w.Header().Set("Allow", v.res.allowed())
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

		return
	}

	rv, err := h(r)
	if err != nil {
		v.onError(w, r, err)

		return
	}

	resp, err := v.respond.Response(rv)
	if err != nil {
		v.onError(w, r, err)

		return
	}

	_ = resp.WriteTo(w) //nolint:errcheck // client gone, nothing to do
}

// endpointHandler is the handler shape the API registers with the host. It
// carries the owning resource so conflict checks against the host's existing
// handlers can compare resource identity.
type endpointHandler struct {
	res *Resource
	http.Handler
}

// Resource returns the resource this handler serves.
func (h endpointHandler) Resource() *Resource { return h.res }

// resourceCarrier is satisfied by handlers that expose the resource they
// serve.
type resourceCarrier interface {
	Resource() *Resource
}
