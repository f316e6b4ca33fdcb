package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
)

func TestContextCache_SetGet(t *testing.T) {
	t.Parallel()

	c := NewContextCache(time.Minute, 10)

	if got := c.Get("missing"); got != nil {
		t.Errorf("expected miss for unknown key, got %+v", got)
	}

	ctx := &model.SEOContext{Keyword: "golang tutorial"}
	c.Set("k1", ctx)

	got := c.Get("k1")
	if got == nil || got.Keyword != "golang tutorial" {
		t.Errorf("expected hit with stored context, got %+v", got)
	}
}

func TestContextCache_Expiry(t *testing.T) {
	t.Parallel()

	c := NewContextCache(10*time.Millisecond, 10)
	c.Set("k1", &model.SEOContext{Keyword: "kw"})

	time.Sleep(25 * time.Millisecond)

	if got := c.Get("k1"); got != nil {
		t.Errorf("expected expired entry to miss, got %+v", got)
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry to be removed, len = %d", c.Len())
	}
}

func TestContextCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	c := NewContextCache(time.Minute, 3)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), &model.SEOContext{Keyword: fmt.Sprintf("kw%d", i)})
		time.Sleep(time.Millisecond) // Distinct insertion times
	}

	c.Set("k3", &model.SEOContext{Keyword: "kw3"})

	if c.Len() != 3 {
		t.Errorf("expected cache to stay at capacity 3, len = %d", c.Len())
	}
	if got := c.Get("k0"); got != nil {
		t.Error("expected oldest entry k0 to be evicted")
	}
	if got := c.Get("k3"); got == nil {
		t.Error("expected newest entry k3 to be present")
	}
}

func TestContextCache_UpdateDoesNotEvict(t *testing.T) {
	t.Parallel()

	c := NewContextCache(time.Minute, 2)
	c.Set("a", &model.SEOContext{Keyword: "a"})
	c.Set("b", &model.SEOContext{Keyword: "b"})

	// Overwriting an existing key should not evict anything.
	c.Set("a", &model.SEOContext{Keyword: "a2"})

	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
	if got := c.Get("b"); got == nil {
		t.Error("expected b to survive an overwrite of a")
	}
	if got := c.Get("a"); got == nil || got.Keyword != "a2" {
		t.Errorf("expected updated value for a, got %+v", got)
	}
}
