package table

import "github.com/aeriksson/blocktable/pagedtable"

// readRange reads n bytes starting at logical position start from pt,
// one byte at a time, driving pt's page cache exactly as any other
// random-access caller would.
func readRange(pt *pagedtable.Table, start uint64, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := pt.Read(start + uint64(i))
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// writeRange writes data starting at logical position start into pt, one
// byte at a time and in ascending order, so that a range straddling the
// current element count appends correctly (pt.Write only permits writing
// at most one past the current element count).
func writeRange(pt *pagedtable.Table, start uint64, data []byte) error {
	for i, b := range data {
		if err := pt.Write(start+uint64(i), b); err != nil {
			return err
		}
	}
	return nil
}
