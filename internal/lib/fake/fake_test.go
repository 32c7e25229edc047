package fake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailUnique(t *testing.T) {
	gen := New(1)

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		email := gen.Email()

		_, dup := seen[email]
		require.False(t, dup, "duplicate email generated: %s", email)
		seen[email] = struct{}{}

		assert.Contains(t, email, "@")
		assert.Equal(t, email, strings.ToLower(email))
	}
}

func TestIntRange(t *testing.T) {
	gen := New(2)

	for i := 0; i < 1000; i++ {
		got := gen.IntRange(1, 5)
		require.GreaterOrEqual(t, got, 1)
		require.LessOrEqual(t, got, 5)
	}

	assert.Equal(t, 7, gen.IntRange(7, 7))
}

func TestSentence(t *testing.T) {
	gen := New(3)

	s := gen.Sentence(6)
	assert.Len(t, strings.Fields(s), 6)
	assert.Equal(t, strings.ToUpper(s[:1]), s[:1])

	assert.Equal(t, "", gen.Sentence(0))
	assert.Equal(t, "", gen.Sentence(-1))
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Email(), b.Email())
		assert.Equal(t, a.StreetAddress(), b.StreetAddress())
		assert.Equal(t, a.IntRange(1, 100), b.IntRange(1, 100))
	}
}

func TestBool(t *testing.T) {
	gen := New(4)

	for i := 0; i < 100; i++ {
		assert.True(t, gen.Bool(1.0))
		assert.False(t, gen.Bool(0.0))
	}
}
