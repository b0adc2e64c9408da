package match

import "strings"

// Matcher decides whether a free-text candidate refers to a known name.
// The import pipeline feeds it OCR output, so implementations are expected
// to tolerate partial and differently-cased names.
type Matcher interface {
	Match(candidate, known string) bool
}

// NameMatcher is the default heuristic: case-insensitive substring in either
// direction, falling back to last-token containment so "Sharma" resolves
// "Mrs. Priya Sharma".
type NameMatcher struct{}

// NewNameMatcher constructs the default matcher.
func NewNameMatcher() *NameMatcher {
	return &NameMatcher{}
}

// Match implements Matcher.
func (m *NameMatcher) Match(candidate, known string) bool {
	c := normalize(candidate)
	k := normalize(known)
	if c == "" || k == "" {
		return false
	}
	if strings.Contains(k, c) || strings.Contains(c, k) {
		return true
	}
	return lastToken(c) == lastToken(k)
}

// ExactMatcher matches on normalized equality only. Used by tests that need
// deterministic resolution.
type ExactMatcher struct{}

// Match implements Matcher.
func (ExactMatcher) Match(candidate, known string) bool {
	return normalize(candidate) != "" && normalize(candidate) == normalize(known)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
