package table_test

import (
	"testing"

	"github.com/aeriksson/blocktable/blockstorage"
	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/pagedtable"
	"github.com/aeriksson/blocktable/schema"
	"github.com/aeriksson/blocktable/table"
	"github.com/stretchr/testify/require"
)

func openPagedTable(t *testing.T, dir, name string, blockSize int) *pagedtable.Table {
	t.Helper()
	s, err := blockstorage.Open(dir)
	require.NoError(t, err)
	h, err := s.Create(name, blockSize)
	require.NoError(t, err)
	pt, err := pagedtable.Open(h, 5)
	require.NoError(t, err)
	return pt
}

func TestFixedLayoutRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sch := schema.Int32()
	pt := openPagedTable(t, dir, "fixed", 8)

	tb, err := table.Fixed[int32](sch, pt)
	require.NoError(t, err)
	require.Equal(t, uint64(0), tb.Len())

	for i := uint64(0); i < 10; i++ {
		require.NoError(t, tb.Write(i, int32(i*3)))
	}
	require.Equal(t, uint64(10), tb.Len())

	for i := uint64(0); i < 10; i++ {
		v, err := tb.Read(i)
		require.NoError(t, err)
		require.Equal(t, int32(i*3), v)
	}

	// Overwrite an existing record in place.
	require.NoError(t, tb.Write(3, int32(999)))
	v, err := tb.Read(3)
	require.NoError(t, err)
	require.Equal(t, int32(999), v)

	require.NoError(t, tb.Close())
}

func TestFixedRejectsVariableSchema(t *testing.T) {
	dir := t.TempDir()
	pt := openPagedTable(t, dir, "fixed", 8)
	_, err := table.Fixed[string](schema.String(), pt)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestFixedReadOutOfRangeFails(t *testing.T) {
	dir := t.TempDir()
	pt := openPagedTable(t, dir, "fixed", 8)
	tb, err := table.Fixed[int32](schema.Int32(), pt)
	require.NoError(t, err)
	_, err = tb.Read(0)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.IndexOutOfRange))
}

func TestVariableLayoutRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sch := schema.String()
	indexPt := openPagedTable(t, dir, "index", 16)
	dataPt := openPagedTable(t, dir, "data", 16)

	tb, err := table.Variable[string](sch, indexPt, dataPt)
	require.NoError(t, err)

	records := []string{"Dans le port d'Amsterdam", "Y a des marins qui chantent", "", "c"}
	for i, s := range records {
		require.NoError(t, tb.Write(uint64(i), s))
	}
	require.Equal(t, uint64(len(records)), tb.Len())

	for i, want := range records {
		got, err := tb.Read(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.NoError(t, tb.Close())
}

func TestVariableOverwriteLeavesPriorDataUnreclaimed(t *testing.T) {
	dir := t.TempDir()
	indexPt := openPagedTable(t, dir, "index", 16)
	dataPt := openPagedTable(t, dir, "data", 16)

	tb, err := table.Variable[string](schema.String(), indexPt, dataPt)
	require.NoError(t, err)

	require.NoError(t, tb.Write(0, "short"))
	dataLenAfterFirst := dataPt.ElementCount()

	require.NoError(t, tb.Write(0, "a much longer replacement value"))
	got, err := tb.Read(0)
	require.NoError(t, err)
	require.Equal(t, "a much longer replacement value", got)

	// The data stream only ever grows; the first record's bytes remain
	// unreclaimed fragmentation.
	require.Greater(t, dataPt.ElementCount(), dataLenAfterFirst)
}

func TestVariableWriteBeyondLengthFails(t *testing.T) {
	dir := t.TempDir()
	indexPt := openPagedTable(t, dir, "index", 16)
	dataPt := openPagedTable(t, dir, "data", 16)
	tb, err := table.Variable[string](schema.String(), indexPt, dataPt)
	require.NoError(t, err)

	err = tb.Write(1, "skips index 0")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.IndexOutOfRange))
}

func TestFixedLayoutPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := blockstorage.Open(dir)
	require.NoError(t, err)
	h, err := s.Create("persist", 8)
	require.NoError(t, err)
	pt, err := pagedtable.Open(h, 5)
	require.NoError(t, err)
	tb, err := table.Fixed[int32](schema.Int32(), pt)
	require.NoError(t, err)

	for i := uint64(0); i < 20; i++ {
		require.NoError(t, tb.Write(i, int32(i)))
	}
	require.NoError(t, tb.Close())

	h2, err := s.Open("persist")
	require.NoError(t, err)
	pt2, err := pagedtable.Open(h2, 5)
	require.NoError(t, err)
	tb2, err := table.Fixed[int32](schema.Int32(), pt2)
	require.NoError(t, err)

	require.Equal(t, uint64(20), tb2.Len())
	for i := uint64(0); i < 20; i++ {
		v, err := tb2.Read(i)
		require.NoError(t, err)
		require.Equal(t, int32(i), v)
	}
	require.NoError(t, tb2.Close())
}
