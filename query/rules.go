package query

import "regexp"

// rule pairs a pattern with the value it produces.
type rule[T any] struct {
	pattern *regexp.Regexp
	value   T
}

func newRule[T any](expr string, value T) rule[T] {
	return rule[T]{pattern: regexp.MustCompile(expr), value: value}
}

// firstMatch walks rules in declaration order and returns the first hit.
func firstMatch[T any](rules []rule[T], text string) (T, bool) {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.value, true
		}
	}
	var zero T
	return zero, false
}

// matchAny reports whether any pattern matches text.
func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
