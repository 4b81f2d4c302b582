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
)

// Result is the (payload, status, headers) combination a handler may return.
// A zero Status defaults to 200 and a nil Header to no extra headers. The
// payload itself must be non-nil.
type Result struct {
	Data   any
	Status int
	Header http.Header
}

// Response is a finished HTTP response: status, headers, and an encoded
// body. Handlers may build one directly to bypass normalization; the
// Responder returns it untouched.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// WriteTo writes the response to w. Headers are merged additively so values
// set on the writer by middleware survive; the status and body are written
// last.
func (resp *Response) WriteTo(w http.ResponseWriter) error {
	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(resp.Status)
	_, err := w.Write(resp.Body)

	return err
}

// Responder converts handler return values into finished responses using a
// configured encoder. Each Responder is independently configured; there is
// no global encoder state.
type Responder struct {
	enc Encoder
}

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// WithEncoder sets the payload encoder. The default is [JSON].
//
// Example:
//
//	rp := resteasy.NewResponder(resteasy.WithEncoder(resteasy.YAML()))
func WithEncoder(enc Encoder) ResponderOption {
	return func(rp *Responder) {
		rp.enc = enc
	}
}

// NewResponder returns a Responder encoding payloads as JSON unless
// configured otherwise.
func NewResponder(opts ...ResponderOption) *Responder {
	rp := &Responder{enc: JSON()}
	for _, opt := range opts {
		opt(rp)
	}

	return rp
}

// Response normalizes a handler return value.
//
// A *[Response] is returned unchanged. A [Result] (or *Result) supplies
// payload, status, and headers, with the zero status defaulting to 200.
// Any other non-nil value is treated as a bare payload with status 200.
// A nil payload yields [ErrNilReturnValue]: a handler must always produce
// some payload.
//
// The payload is encoded with the configured encoder and the encoder's
// Content-Type is set first, so a caller-supplied Content-Type header wins
// only when explicitly present in the result headers.
func (rp *Responder) Response(rv any) (*Response, error) {
	var res Result
	switch v := rv.(type) {
	case *Response:
		if v == nil {
			return nil, ErrNilReturnValue
		}

		return v, nil
	case Result:
		res = v
	case *Result:
		if v == nil {
			return nil, ErrNilReturnValue
		}
		res = *v
	default:
		res = Result{Data: rv}
	}

	if res.Data == nil {
		return nil, ErrNilReturnValue
	}
	if res.Status == 0 {
		res.Status = http.StatusOK
	}

	body, err := rp.enc.Marshal(res.Data)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", rp.enc.ContentType)
	for key, values := range res.Header {
		header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}

	return &Response{Status: res.Status, Header: header, Body: body}, nil
}
