// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package values assembles the chart values payload sent with install and
// upgrade. Values files (YAML or JSON) are deep-merged in order, --set style
// overrides are applied on top, and the result is rendered as a JSON object.
package values

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load merges files and sets into a JSON object. It returns nil when there
// are no values at all.
func Load(files []string, sets []string) ([]byte, error) {
	merged := map[string]any{}

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read values file: %w", err)
		}
		m, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		merged = Merge(merged, m)
	}

	for _, s := range sets {
		if err := applySet(merged, s); err != nil {
			return nil, err
		}
	}

	if len(merged) == 0 {
		return nil, nil
	}
	return json.Marshal(merged)
}

// Parse decodes a YAML or JSON document into a map. An empty document
// yields an empty map.
func Parse(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("values must be a mapping, got %T", raw)
	}
	return m, nil
}

// normalize converts YAML maps with non-string keys into map[string]any so
// the result can be rendered as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

// Merge deep-merges src into dst and returns dst. Maps merge key by key;
// any other value in src replaces the one in dst.
func Merge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				dst[k] = Merge(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

// applySet applies one --set argument: comma-separated key.path=value pairs.
func applySet(dst map[string]any, arg string) error {
	for _, pair := range strings.Split(arg, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q: want key=value", pair)
		}

		path := strings.Split(key, ".")
		node := dst
		for _, p := range path[:len(path)-1] {
			if p == "" {
				return fmt.Errorf("invalid --set key %q", key)
			}
			next, ok := node[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				node[p] = next
			}
			node = next
		}
		last := path[len(path)-1]
		if last == "" {
			return fmt.Errorf("invalid --set key %q", key)
		}
		node[last] = scalar(raw)
	}
	return nil
}

// scalar infers the type of a --set value.
func scalar(s string) any {
	switch s {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// NaN and the infinities have no JSON form and stay strings.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
