package inventory

import (
	"fmt"
	"sync"
)

// Allocator hands out and reclaims item nodes for an Engine.
type Allocator interface {
	Alloc() *Item
	Free(item *Item)
	FreeAll()
	Used() int
}

// PoolAllocator recycles item nodes under one tag. Freeing a node twice, or
// one it never handed out, panics.
type PoolAllocator struct {
	mu   sync.Mutex
	tag  string
	live map[*Item]struct{}
	free []*Item
}

// NewPoolAllocator creates an empty pool for tag.
func NewPoolAllocator(tag string) *PoolAllocator {
	if tag == "" {
		tag = DefaultAllocatorTag
	}
	return &PoolAllocator{
		tag:  tag,
		live: make(map[*Item]struct{}),
	}
}

func (p *PoolAllocator) Tag() string { return p.tag }

func (p *PoolAllocator) Alloc() *Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	var item *Item
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		item = &Item{}
	}
	p.live[item] = struct{}{}
	return item
}

func (p *PoolAllocator) Free(item *Item) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.live[item]; !ok {
		panic(fmt.Sprintf(FatalMsgDoubleFree, p.tag, item))
	}
	delete(p.live, item)
	*item = Item{}
	p.free = append(p.free, item)
}

// FreeAll drops every live node at once, e.g. between missions.
func (p *PoolAllocator) FreeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for item := range p.live {
		*item = Item{}
		p.free = append(p.free, item)
	}
	clear(p.live)
}

// Used returns the number of live nodes.
func (p *PoolAllocator) Used() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}
