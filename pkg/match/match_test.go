package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameMatcherSubstring(t *testing.T) {
	m := NewNameMatcher()

	assert.True(t, m.Match("priya", "Mrs. Priya Sharma"))
	assert.True(t, m.Match("Mrs. Priya Sharma", "Priya Sharma"))
	assert.False(t, m.Match("Anita Verma", "Mrs. Priya Sharma"))
}

func TestNameMatcherLastName(t *testing.T) {
	m := NewNameMatcher()

	assert.True(t, m.Match("R. Sharma", "Mrs. Priya Sharma"))
	assert.False(t, m.Match("R. Gupta", "Mrs. Priya Sharma"))
}

func TestNameMatcherEmpty(t *testing.T) {
	m := NewNameMatcher()

	assert.False(t, m.Match("", "Priya Sharma"))
	assert.False(t, m.Match("  ", "Priya Sharma"))
}

func TestExactMatcher(t *testing.T) {
	m := ExactMatcher{}

	assert.True(t, m.Match(" priya sharma ", "Priya Sharma"))
	assert.False(t, m.Match("priya", "Priya Sharma"))
}
