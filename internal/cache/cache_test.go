package cache

import "testing"

func TestPutAndGet(t *testing.T) {
	c := NewPreviewCache(2)
	c.Put("/a.md", "rendered a")

	got, ok := c.Get("/a.md")
	if !ok || got != "rendered a" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if _, ok := c.Get("/missing.md"); ok {
		t.Error("unexpected hit for missing path")
	}
}

func TestPutUpdatesExisting(t *testing.T) {
	c := NewPreviewCache(2)
	c.Put("/a.md", "old")
	c.Put("/a.md", "new")

	if got, _ := c.Get("/a.md"); got != "new" {
		t.Errorf("Get = %q, want new", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewPreviewCache(2)
	c.Put("/a.md", "a")
	c.Put("/b.md", "b")
	c.Get("/a.md") // refresh a
	c.Put("/c.md", "c")

	if _, ok := c.Get("/b.md"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("/a.md"); !ok {
		t.Error("a should have survived")
	}
	if _, ok := c.Get("/c.md"); !ok {
		t.Error("c should be present")
	}
}

func TestInvalidate(t *testing.T) {
	c := NewPreviewCache(2)
	c.Put("/a.md", "a")
	c.Invalidate("/a.md")

	if _, ok := c.Get("/a.md"); ok {
		t.Error("invalidated entry still present")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}
