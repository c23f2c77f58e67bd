package cache_test

import (
	"testing"

	"github.com/aeriksson/blocktable/cache"
	"github.com/aeriksson/blocktable/errs"
	"github.com/stretchr/testify/require"
)

func newIdentityCache(t *testing.T, capacity int) (*cache.Cache[int, int], *[]int) {
	t.Helper()
	var evicted []int
	c, err := cache.New[int, int](capacity,
		func(k int) (int, error) { return k, nil },
		func(k, v int) { evicted = append(evicted, k) },
	)
	require.NoError(t, err)
	return c, &evicted
}

func TestNewRejectsSmallCapacity(t *testing.T) {
	_, err := cache.New[int, int](2, func(k int) (int, error) { return k, nil }, func(int, int) {})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestLRUEvictionOrder(t *testing.T) {
	c, evicted := newIdentityCache(t, 5)

	access := []int{0, 0, 1, 1, 0, 1, 2, 3, 4, 0, 1}
	for _, k := range access {
		_, err := c.Get(k)
		require.NoError(t, err)
	}
	require.Empty(t, *evicted, "no eviction expected while under capacity")

	expectEvict := func(k int, want int) {
		t.Helper()
		before := len(*evicted)
		_, err := c.Get(k)
		require.NoError(t, err)
		require.Len(t, *evicted, before+1)
		require.Equal(t, want, (*evicted)[before])
	}

	expectEvict(7, 2)
	expectEvict(8, 3)
	_, err := c.Get(1) // hit, no eviction
	require.NoError(t, err)
	require.Len(t, *evicted, 2)
	expectEvict(9, 4)
	_, err = c.Get(0) // hit
	require.NoError(t, err)
	require.Len(t, *evicted, 3)
	expectEvict(4, 7)
	_, err = c.Get(8) // hit
	require.NoError(t, err)
	require.Len(t, *evicted, 4)
	expectEvict(5, 1)
	expectEvict(6, 9)
}

func TestGetMovesKeyToHead(t *testing.T) {
	c, evicted := newIdentityCache(t, 5)
	for _, k := range []int{1, 2, 3} {
		_, err := c.Get(k)
		require.NoError(t, err)
	}
	_, err := c.Get(1)
	require.NoError(t, err)
	require.True(t, c.HasKey(1))
	require.Equal(t, 3, c.Len())

	// Fill to capacity and overflow by one: with 1 moved ahead of 2 and 3,
	// the least recently used key is 2, not 1.
	for _, k := range []int{4, 5, 6} {
		_, err := c.Get(k)
		require.NoError(t, err)
	}
	require.Equal(t, []int{2}, *evicted)
	require.True(t, c.HasKey(1))
}

func TestClearCallsUnloadTailToHead(t *testing.T) {
	c, evicted := newIdentityCache(t, 5)
	for _, k := range []int{1, 2, 3} {
		_, err := c.Get(k)
		require.NoError(t, err)
	}
	c.Clear()
	require.Equal(t, []int{1, 2, 3}, *evicted)
	require.Equal(t, 0, c.Len())
}

func TestLoadErrorPropagatesWithoutAlteringState(t *testing.T) {
	c, err := cache.New[int, int](3,
		func(k int) (int, error) {
			if k == 2 {
				return 0, errs.New(errs.IO, "test", "boom")
			}
			return k, nil
		},
		func(int, int) {},
	)
	require.NoError(t, err)

	_, err = c.Get(1)
	require.NoError(t, err)

	_, err = c.Get(2)
	require.Error(t, err)
	require.False(t, c.HasKey(2))
	require.Equal(t, 1, c.Len())
}
