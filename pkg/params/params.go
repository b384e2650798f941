// Package params turns raw query and form string values into typed values
// with documented fallbacks, so handlers never coerce implicitly.
package params

import "strconv"

// PositiveInt parses raw as a base-10 integer. It returns def when raw is
// absent, not a number, or smaller than 1.
func PositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// ID parses raw as an unsigned row identifier. Unlike the other helpers it
// reports failure instead of substituting a default, because every route
// reacts to a bad id differently (render an error state, silent redirect).
func ID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// Checkbox interprets an HTML checkbox value: "on" means checked, anything
// else (including absent) means unchecked.
func Checkbox(raw string) bool {
	return raw == "on"
}

// FilterBool interprets an optional boolean filter parameter. An empty value
// means "no filter" (nil); any present value filters for equality with
// "true", so e.g. "false" and "no" both select false.
func FilterBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	b := raw == "true"
	return &b
}
