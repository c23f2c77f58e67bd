package pagedtable

import (
	"github.com/aeriksson/blocktable/errs"
)

// popRecycled returns a reusable block-sized buffer if one is available,
// zero-filled, otherwise allocates a fresh one.
func (t *Table) popRecycled() []byte {
	n := len(t.recycled)
	if n == 0 {
		return make([]byte, t.blockSize())
	}
	buf := t.recycled[n-1]
	t.recycled = t.recycled[:n-1]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func (t *Table) pushRecycled(buf []byte) {
	t.recycled = append(t.recycled, buf)
}

// drainBgWrite blocks on any in-flight background write, clearing the
// slot regardless of outcome (the error, if any, is recorded as sticky).
func (t *Table) drainBgWrite() {
	if !t.bgWrite.active {
		return
	}
	buf := t.bgWrite.buf
	err := t.bgWrite.res.Wait()
	t.bgWrite = pending{}
	if err != nil {
		t.setErr(errs.Wrap(errs.IO, op+".drainBgWrite", err))
		return
	}
	t.pushRecycled(buf)
}

// drainBgRead blocks on any in-flight background read, returning its
// buffer to the recycle stack on success.
func (t *Table) drainBgRead() {
	if !t.bgRead.active {
		return
	}
	buf := t.bgRead.buf
	err := t.bgRead.res.Wait()
	t.bgRead = pending{}
	if err != nil {
		t.setErr(errs.Wrap(errs.IO, op+".drainBgRead", err))
		return
	}
	t.pushRecycled(buf)
}

// loadPage is the cache's miss handler, implementing the extend /
// await-background-read / drain-and-synchronous-read policy of §4.5.
func (t *Table) loadPage(bid uint64) (*Page, error) {
	blockSize := t.blockSize()
	count := t.handle.BlockCount()

	switch {
	case bid == count:
		return t.loadExtend(bid, blockSize)
	case t.bgRead.active && t.bgRead.id == bid:
		return t.loadAwaitBgRead(bid)
	default:
		return t.loadSynchronous(bid, blockSize)
	}
}

func (t *Table) loadExtend(bid uint64, blockSize int) (*Page, error) {
	t.drainBgWrite()

	diskBuf := t.popRecycled()
	res, err := t.handle.WriteBlock(bid, diskBuf)
	if err != nil {
		return nil, errs.Wrap(errs.IO, op+".loadExtend", err)
	}
	t.bgWrite = pending{active: true, id: bid, res: res, buf: diskBuf}

	pageBuf := make([]byte, blockSize)
	page := &Page{ID: bid, Modified: true, Bytes: pageBuf}

	t.metricExtend()
	t.logger.Debug("block extended", "block", bid)
	return page, nil
}

func (t *Table) loadAwaitBgRead(bid uint64) (*Page, error) {
	buf := t.bgRead.buf
	err := t.bgRead.res.Wait()
	t.bgRead = pending{}
	if err != nil {
		return nil, errs.Wrap(errs.IO, op+".loadAwaitBgRead", err)
	}

	page := &Page{ID: bid, Modified: false, Bytes: buf}
	t.prefetchAfter(bid)
	t.metricBgReadHit()
	return page, nil
}

func (t *Table) loadSynchronous(bid uint64, blockSize int) (*Page, error) {
	if t.bgWrite.active && t.bgWrite.id == bid {
		t.drainBgWrite()
	}
	t.drainBgRead()

	buf := t.popRecycled()
	res, err := t.handle.ReadBlock(bid, buf)
	if err != nil {
		return nil, errs.Wrap(errs.IO, op+".loadSynchronous", err)
	}
	if err := res.Wait(); err != nil {
		return nil, errs.Wrap(errs.IO, op+".loadSynchronous", err)
	}

	page := &Page{ID: bid, Modified: false, Bytes: buf}
	t.prefetchAfter(bid)
	t.metricSyncRead()
	return page, nil
}

// prefetchAfter issues a background read for bid+1 if it is in range and
// not already cached or in flight, per §4.5's one-ahead prefetch rule.
func (t *Table) prefetchAfter(bid uint64) {
	next := bid + 1
	count := t.handle.BlockCount()
	if next >= count {
		return
	}
	if t.cache.HasKey(next) {
		return
	}
	if t.bgRead.active && t.bgRead.id == next {
		return
	}
	if t.bgWrite.active && t.bgWrite.id == next {
		return
	}

	buf := t.popRecycled()
	res, err := t.handle.ReadBlock(next, buf)
	if err != nil {
		// Prefetch is an optimization, not a correctness requirement: a
		// submission failure here is logged but does not fail the
		// caller's current read/write, and the block will simply be
		// fetched synchronously if and when it is actually needed.
		t.pushRecycled(buf)
		t.logger.Warn("prefetch submission failed", "block", next, "error", err)
		return
	}
	t.bgRead = pending{active: true, id: next, res: res, buf: buf}
	t.metricPrefetch()
}

// unloadPage is the cache's eviction handler.
func (t *Table) unloadPage(_ uint64, page *Page) {
	// The evicted page's Bytes may be handed to a background write or
	// pushed onto the recycle stack for reuse by an unrelated block;
	// either way the fast cell must stop pointing at it.
	if t.lastAccessed == page {
		t.lastAccessed = nil
	}

	if page.Modified {
		t.drainBgWrite()
		res, err := t.handle.WriteBlock(page.ID, page.Bytes)
		if err != nil {
			t.setErr(errs.Wrap(errs.IO, op+".unloadPage", err))
			return
		}
		t.bgWrite = pending{active: true, id: page.ID, res: res, buf: page.Bytes}
		t.metricWriteDrain()
		return
	}
	t.pushRecycled(page.Bytes)
}
