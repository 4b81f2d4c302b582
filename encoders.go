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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// Encoder pairs a payload marshal function with the Content-Type it
// produces. Encoders are plain values; build custom ones for formats not
// covered here.
type Encoder struct {
	ContentType string
	Marshal     func(v any) ([]byte, error)
}

// JSON returns the default encoder, producing compact JSON with
// Content-Type application/json.
func JSON() Encoder {
	return Encoder{
		ContentType: "application/json",
		Marshal:     json.Marshal,
	}
}

// JSONIndent returns a JSON encoder with the given prefix and indentation,
// for APIs that serve human-readable output.
//
// Example:
//
//	rp := resteasy.NewResponder(resteasy.WithEncoder(resteasy.JSONIndent("", "  ")))
func JSONIndent(prefix, indent string) Encoder {
	return Encoder{
		ContentType: "application/json",
		Marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, prefix, indent)
		},
	}
}

// YAML returns an encoder producing YAML with Content-Type application/yaml.
func YAML() Encoder {
	return Encoder{
		ContentType: "application/yaml",
		Marshal:     yaml.Marshal,
	}
}

// TOML returns an encoder producing TOML with Content-Type application/toml.
// The payload must be a map or struct; TOML has no top-level scalars.
func TOML() Encoder {
	return Encoder{
		ContentType: "application/toml",
		Marshal: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(v); err != nil {
				return nil, err
			}

			return buf.Bytes(), nil
		},
	}
}

// Msgpack returns an encoder producing MessagePack with Content-Type
// application/msgpack.
func Msgpack() Encoder {
	return Encoder{
		ContentType: "application/msgpack",
		Marshal:     msgpack.Marshal,
	}
}

// Proto returns an encoder producing Protocol Buffers binary output with
// Content-Type application/x-protobuf. Payloads must implement
// proto.Message.
func Proto() Encoder {
	return Encoder{
		ContentType: "application/x-protobuf",
		Marshal: func(v any) ([]byte, error) {
			msg, ok := v.(proto.Message)
			if !ok {
				return nil, fmt.Errorf("proto encoder: %T does not implement proto.Message", v)
			}

			return proto.Marshal(msg)
		},
	}
}
