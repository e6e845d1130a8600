package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing key")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.Capacity != 10 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	for i := 0; i < 3; i++ {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Errorf("GetOrCreate() = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](8)
	for i := 0; i < 8; i++ {
		c.Set(i, i)
	}
	// Keep 0 recent so it survives.
	c.Get(0)
	c.Set(8, 8)

	if got := c.Len(); got != 6 {
		t.Errorf("Len() after eviction = %d, want 6", got)
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key 1 survived eviction")
	}
	if got := c.Stats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
}

func TestUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := strconv.Itoa(i % 32)
				if v := c.GetOrCreate(k, func() int { return i % 32 }); v != i%32 {
					t.Errorf("GetOrCreate(%s) = %d", k, v)
				}
			}
		}()
	}
	wg.Wait()
	if s := c.Stats(); s.Misses != 32 {
		t.Errorf("Misses = %d, want 32", s.Misses)
	}
}
