package pagedtable_test

import (
	"math/rand"
	"testing"

	"github.com/aeriksson/blocktable/blockstorage"
	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/pagedtable"
	"github.com/stretchr/testify/require"
)

func openTable(t *testing.T, blockSize, cacheCapacity int) (*blockstorage.Storage, *pagedtable.Table, string, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := blockstorage.Open(dir)
	require.NoError(t, err)

	h, err := s.Create("data", blockSize)
	require.NoError(t, err)

	pt, err := pagedtable.Open(h, cacheCapacity)
	require.NoError(t, err)

	return s, pt, dir, "data"
}

func TestWriteThenReadInRange(t *testing.T) {
	_, pt, _, _ := openTable(t, 9, 5)

	for i := uint64(0); i < 50; i++ {
		require.NoError(t, pt.Write(i, byte(i)))
	}
	for i := uint64(0); i < 50; i++ {
		v, err := pt.Read(i)
		require.NoError(t, err)
		require.Equal(t, byte(i), v)
	}
	require.Equal(t, uint64(50), pt.ElementCount())
}

func TestReadOutOfRangeFails(t *testing.T) {
	_, pt, _, _ := openTable(t, 9, 5)
	_, err := pt.Read(0)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.IndexOutOfRange))
}

func TestWriteBeyondElementCountFails(t *testing.T) {
	_, pt, _, _ := openTable(t, 9, 5)
	err := pt.Write(1, 'a')
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.IndexOutOfRange))
}

func TestFastCellHitsLastAccessedBlock(t *testing.T) {
	_, pt, _, _ := openTable(t, 9, 5)
	for i := uint64(0); i < 9; i++ {
		require.NoError(t, pt.Write(i, byte(i)))
	}
	_, err := pt.Read(0)
	require.NoError(t, err)
	bid, ok := pt.LastAccessedBlock()
	require.True(t, ok)
	require.Equal(t, uint64(0), bid)
}

func TestPersistenceAcrossReopenAllCacheSizes(t *testing.T) {
	for _, cacheCapacity := range []int{3, 5, 10, 100, 1000} {
		cacheCapacity := cacheCapacity
		t.Run(modeName(cacheCapacity), func(t *testing.T) {
			dir := t.TempDir()
			s, err := blockstorage.Open(dir)
			require.NoError(t, err)

			h, err := s.Create("data", 9)
			require.NoError(t, err)
			pt, err := pagedtable.Open(h, cacheCapacity)
			require.NoError(t, err)

			for i := uint64(0); i < 1000; i++ {
				require.NoError(t, pt.Write(i, byte(i)))
			}

			for i := uint64(0); i < 1000; i++ {
				v, err := pt.Read(i)
				require.NoError(t, err)
				require.Equal(t, byte(i), v)
			}
			for i := uint64(999); ; i-- {
				v, err := pt.Read(i)
				require.NoError(t, err)
				require.Equal(t, byte(i), v)
				if i == 0 {
					break
				}
			}

			rng := rand.New(rand.NewSource(123))
			for n := 0; n < 1000; n++ {
				i := uint64(rng.Intn(1000))
				v, err := pt.Read(i)
				require.NoError(t, err)
				require.Equal(t, byte(i), v)
			}

			for i := uint64(1000); i < 2000; i++ {
				require.NoError(t, pt.Write(i, byte(i)))
			}
			for i := uint64(0); i < 2000; i++ {
				v, err := pt.Read(i)
				require.NoError(t, err)
				require.NoError(t, pt.Write(i, v+1))
			}

			require.NoError(t, pt.Close())
			require.NoError(t, s.Close(h))

			s2, err := blockstorage.Open(dir)
			require.NoError(t, err)
			h2, err := s2.Open("data")
			require.NoError(t, err)
			pt2, err := pagedtable.Open(h2, cacheCapacity)
			require.NoError(t, err)

			require.Equal(t, uint64(2000), pt2.ElementCount())
			for i := uint64(0); i < 2000; i++ {
				v, err := pt2.Read(i)
				require.NoError(t, err)
				require.Equal(t, byte(i)+1, v)
			}

			require.NoError(t, pt2.Close())
			require.NoError(t, s2.Close(h2))
		})
	}
}

func modeName(n int) string {
	switch n {
	case 3:
		return "cap3"
	case 5:
		return "cap5"
	case 10:
		return "cap10"
	case 100:
		return "cap100"
	default:
		return "cap1000"
	}
}

func TestElementCountMonotonicAcrossWrites(t *testing.T) {
	_, pt, _, _ := openTable(t, 9, 5)
	var last uint64
	for i := uint64(0); i < 100; i++ {
		require.NoError(t, pt.Write(i, byte(i)))
		require.GreaterOrEqual(t, pt.ElementCount(), last)
		last = pt.ElementCount()
	}
}
