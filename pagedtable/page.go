package pagedtable

// Page is a cached in-memory copy of one block. A resident page's id is
// always < the container's current block count, except for a
// freshly-created trailing block, which is always Modified.
type Page struct {
	ID       uint64
	Modified bool
	Bytes    []byte
}
