package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_Length(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 8, 24, 64} {
		pw, err := Password(n)
		require.NoError(t, err)
		assert.Len(t, pw, n)
	}
}

func TestPassword_Alphabet(t *testing.T) {
	t.Parallel()
	pw, err := Password(256)
	require.NoError(t, err)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestPassword_Unique(t *testing.T) {
	t.Parallel()
	a, err := Password(24)
	require.NoError(t, err)
	b, err := Password(24)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPassword_InvalidLength(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		_, err := Password(n)
		require.Error(t, err)
	}
}
