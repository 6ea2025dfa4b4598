package tostring

import (
	"container/list"
	"sync"

	"github.com/yinjianfei/owlapi/pkg/render"
)

// cache is a bounded identifier -> renderer map with least recently used
// eviction
type cache struct {
	mu    sync.Mutex
	max   int
	list  *list.List
	items map[string]*list.Element
}

type entry struct {
	id       string
	renderer render.Renderer
}

func newCache(max int) *cache {
	if max < 1 {
		max = 1
	}
	return &cache{
		max:   max,
		list:  list.New(),
		items: make(map[string]*list.Element),
	}
}

func (c *cache) get(id string) (render.Renderer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[id]
	if !ok {
		return nil, false
	}
	c.list.MoveToFront(elem)
	return elem.Value.(*entry).renderer, true
}

// add stores r under id unless an instance is already cached, and returns
// whichever instance is live plus the identifiers it pushed out
func (c *cache) add(id string, r render.Renderer) (render.Renderer, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[id]; ok {
		c.list.MoveToFront(elem)
		return elem.Value.(*entry).renderer, nil
	}

	c.items[id] = c.list.PushFront(&entry{id: id, renderer: r})

	var evicted []string
	for c.list.Len() > c.max {
		oldest := c.list.Back()
		ent := oldest.Value.(*entry)
		c.list.Remove(oldest)
		delete(c.items, ent.id)
		evicted = append(evicted, ent.id)
	}
	return r, evicted
}

func (c *cache) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[id]
	if !ok {
		return false
	}
	c.list.Remove(elem)
	delete(c.items, id)
	return true
}

func (c *cache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.items = make(map[string]*list.Element)
}

// ids lists cached identifiers, most recently used first
func (c *cache) ids() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, c.list.Len())
	for elem := c.list.Front(); elem != nil; elem = elem.Next() {
		ids = append(ids, elem.Value.(*entry).id)
	}
	return ids
}
