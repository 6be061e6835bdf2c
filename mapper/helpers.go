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
	"sort"
	"strings"

	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/reason"
)

// rule is a compiled prefix rule.
type rule[V any] struct {
	pattern  string
	segments int
	wild     int
	val      V
}

// compileRules validates and orders the raw rules of every code so that
// the first match is the most specific one.
func compileRules[V any](transport string, raw map[code.Code][]prefixRule, conv func(int) V) (map[code.Code][]rule[V], error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[code.Code][]rule[V], len(raw))
	for c, rules := range raw {
		if len(rules) == 0 {
			continue
		}
		compiled := make([]rule[V], 0, len(rules))
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, r.prefix, c, err)
			}
			segs := strings.Split(p, ".")
			compiled = append(compiled, rule[V]{
				pattern:  p,
				segments: len(segs),
				wild:     strings.Count(p, "*"),
				val:      conv(r.val),
			})
		}
		// Stable: among identical patterns the one registered first wins.
		sort.SliceStable(compiled, func(i, j int) bool {
			if compiled[i].segments != compiled[j].segments {
				return compiled[i].segments > compiled[j].segments
			}
			return compiled[i].wild < compiled[j].wild
		})
		out[c] = compiled
	}
	return out, nil
}

func match[V any](rules []rule[V], r reason.Reason) (rule[V], bool) {
	for _, ru := range rules {
		if r.HasPrefix(ru.pattern) {
			return ru, true
		}
	}
	return rule[V]{}, false
}

// freeze copies src into a new map, converting values with conv.
func freeze[V any](src map[code.Code]int, conv func(int) V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

// normalizeAndValidatePrefix forbids empty prefixes and prefixes made only
// of wildcards, and checks each segment.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment accepts "*" or [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
