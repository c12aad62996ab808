// Package cache holds a small LRU used to memoize rendered markdown
// previews, keyed by vault path.
package cache

import (
	"container/list"
)

type PreviewCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	path     string
	rendered string
}

func NewPreviewCache(size int) *PreviewCache {
	if size < 1 {
		size = 1
	}
	return &PreviewCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *PreviewCache) Get(path string) (string, bool) {
	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).rendered, true
	}
	return "", false
}

func (c *PreviewCache) Put(path, rendered string) {
	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).rendered = rendered
		return
	}

	ele := c.evictList.PushFront(&entry{path: path, rendered: rendered})
	c.items[path] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Invalidate drops the entry for a path after its file changed on disk.
func (c *PreviewCache) Invalidate(path string) {
	if ele, hit := c.items[path]; hit {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) Len() int {
	return c.evictList.Len()
}

func (c *PreviewCache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	delete(c.items, e.Value.(*entry).path)
}
