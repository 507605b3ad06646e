package api

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// pageCache keeps recently fetched transaction pages so paging back and
// forth does not re-issue identical requests.
type pageCache struct {
	c *ristretto.Cache
}

func newPageCache() *pageCache {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     1000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		// Config above is static; this only fails on programmer error.
		panic(fmt.Sprintf("init page cache: %v", err))
	}

	return &pageCache{c: c}
}

func cacheKey(page, limit int) string {
	return fmt.Sprintf("transactions:%d:%d", page, limit)
}

func (p *pageCache) get(page, limit int) (*TransactionPage, bool) {
	v, ok := p.c.Get(cacheKey(page, limit))
	if !ok {
		return nil, false
	}

	tp, ok := v.(*TransactionPage)

	return tp, ok
}

func (p *pageCache) set(page, limit int, v *TransactionPage) {
	p.c.Set(cacheKey(page, limit), v, 1)
	// Flush the buffered write so an immediate re-read sees the entry.
	p.c.Wait()
}

func (p *pageCache) clear() {
	p.c.Clear()
}
