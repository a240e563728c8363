package common

import "strings"

// CleanName trims s and collapses runs of whitespace to a single space.
func CleanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = CleanName(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// HasAny returns true if s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
