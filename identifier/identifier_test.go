package identifier_test

import (
	"testing"

	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/identifier"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := identifier.Normalize("/Users/Johnny/123_hello", '\\')
	require.NoError(t, err)
	require.Equal(t, `\users\johnny\123_hello`, got)
}

func TestNormalizeRejectsDisallowedCharacter(t *testing.T) {
	_, err := identifier.Normalize("C:/Users/Johnny", '\\')
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestNormalizeRejectsConsecutiveSlash(t *testing.T) {
	_, err := identifier.Normalize("a//b", 0)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	_, err := identifier.Normalize("", 0)
	require.Error(t, err)
}

func TestNormalizeIdempotent(t *testing.T) {
	ids := []string{"a/b/c", "Hello_World/123", "FOO"}
	for _, id := range ids {
		once, err := identifier.Normalize(id, '/')
		require.NoError(t, err)
		twice, err := identifier.Normalize(once, '/')
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

func TestSplit(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, identifier.Split("a/b/c", '/'))
}
