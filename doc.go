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

// Package resteasy registers resource handler groups onto a host router and
// normalizes their return values into HTTP responses.
//
// A Resource declares one handler per HTTP method. An API binds resources to
// URL patterns on any host implementing the App interface, so a resource is
// declared once and served under one or more paths without wiring each method
// by hand:
//
//	hello := &resteasy.Resource{
//	    Name: "Hello",
//	    Get: func(r *http.Request) (any, error) {
//	        return map[string]string{"msg": "Hello, World!"}, nil
//	    },
//	}
//
//	host := chihost.New()
//	api := resteasy.New(resteasy.WithPrefix("/api"))
//	api.MustBind(host)
//	api.MustAdd(hello, "/hello")
//
// Handlers return plain payloads, a Result carrying payload, status, and
// headers, or a finished *Response. The API's Responder encodes payloads with
// a configurable encoder (JSON by default; YAML, TOML, Msgpack, and Protobuf
// encoders are provided).
//
// # Blueprints
//
// A Blueprint is a mountable group of routes whose URL prefix is unknown
// until the host mounts it. An API bound to an unmounted blueprint registers
// deferred rules; the final URL for each route is composed from the mount
// prefix, the API prefix, and the declared path once Mount runs:
//
//	bp := resteasy.NewBlueprint("v1")
//	api := resteasy.New(resteasy.WithPrefix("/api"))
//	api.MustBind(bp)
//	api.MustAdd(hello, "/hello") // final URL not yet known
//
//	resteasy.Mount(host, "/v1", bp) // now serves /v1/api/hello
//
// The composed URL is identical whether the mount prefix is supplied up front
// or injected at mount time. A blueprint carrying deferred registrations may
// only be mounted once.
//
// # Scope
//
// The package performs no request validation, no payload schema enforcement,
// and no content negotiation; path fragments are concatenated as given, with
// no slash normalization. Registration is a startup-time, single-threaded
// phase: mutating an API concurrently with request serving is not supported.
package resteasy
