// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// FirstNonBlank returns the first candidate with non whitespace content, trimmed
func FirstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if c = std.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /meta or /analyze
// one leading slash, no trailing slash; panics when nothing is left but the root
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
