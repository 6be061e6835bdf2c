/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/hexffi/apis"
	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/reason"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Library defaults are seeded first, then opts are applied, then every reason
// prefix is validated and ordered. The returned value shares nothing with
// the options or package-level tables.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpRules, err := compileRules("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcRules, err := compileRules("gRPC", b.grpcPrefixes, toGRPC)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, func(v int) int { return v }),
		grpcDefault:  freeze(b.grpcDefaults, toGRPC),
		httpOverride: freeze(b.httpOverride, func(v int) int { return v }),
		grpcOverride: freeze(b.grpcOverride, toGRPC),
		httpRules:    httpRules,
		grpcRules:    grpcRules,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: toGRPC(b.fallbackGRPC),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func toGRPC(v int) codes.Code { return codes.Code(v) }

// mapper combines per-code defaults, exact overrides and ordered reason
// prefix rules. Safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	// Overrides win over everything else for their code.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// Rules are sorted most specific first.
	httpRules map[code.Code][]rule[int]
	grpcRules map[code.Code][]rule[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

var _ apis.Mapper = (*mapper)(nil)

// HTTPStatus resolves an HTTP status for the given code and reason.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	_, v, _ := resolve(c, r, m.httpOverride, m.httpRules, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	_, v, _ := resolve(c, r, m.grpcOverride, m.grpcRules, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain describes how the mapper resolved HTTP and gRPC statuses for
// (c, r). The first line echoes the inputs; the next two lines name the
// tier that matched for each transport.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	src, hv, pat := resolve(c, r, m.httpOverride, m.httpRules, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintln(&b, explainLine("http", src, pat, fmt.Sprintf("%d", hv)))

	src, gv, pat := resolve(c, r, m.grpcOverride, m.grpcRules, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintln(&b, explainLine("grpc", src, pat, fmt.Sprintf("%s(%d)", strings.ToUpper(gv.String()), int(gv))))

	return strings.TrimSuffix(b.String(), "\n")
}

const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// resolve walks the tiers in order and reports which one produced v. pat is
// the matching prefix when source is "prefix".
func resolve[V any](
	c code.Code,
	r reason.Reason,
	override map[code.Code]V,
	rules map[code.Code][]rule[V],
	defaults map[code.Code]V,
	fallback V,
) (source string, v V, pat string) {
	if v, ok := override[c]; ok {
		return sourceOverride, v, ""
	}
	if r != reason.Empty {
		if ru, ok := match(rules[c], r); ok {
			return sourcePrefix, ru.val, ru.pattern
		}
	}
	if v, ok := defaults[c]; ok {
		return sourceDefault, v, ""
	}
	return sourceFallback, fallback, ""
}

func explainLine(transport, source, pat, val string) string {
	if source == sourcePrefix {
		return fmt.Sprintf("%s: source=%s pattern=%q -> %s", transport, source, pat, val)
	}
	return fmt.Sprintf("%s: source=%s -> %s", transport, source, val)
}
