package qr

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestExportCache(t *testing.T) {
	now := time.Unix(1700000000, 0)
	c := NewExportCache(time.Minute, 2)
	c.now = func() time.Time { return now }

	exp := &Export{Filename: "qr-code.png", Data: []byte{1}}
	c.Set("https://example.com", DefaultColor, exp)

	if got, ok := c.Get("https://example.com", DefaultColor); !ok || got != exp {
		t.Fatal("expected cache hit")
	}
	if _, ok := c.Get("https://example.com", "#EF4444"); ok {
		t.Error("color must be part of the key")
	}
	if c.Hits() != 1 {
		t.Errorf("Hits() = %d, want 1", c.Hits())
	}

	c.Set("https://a.example", DefaultColor, exp)
	c.Set("https://b.example", DefaultColor, exp)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (full cache drops new entries)", c.Len())
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("https://example.com", DefaultColor); ok {
		t.Error("expected expired entry to miss")
	}
	if removed := c.Sweep(); removed != 1 {
		t.Errorf("Sweep() removed %d, want 1", removed)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after sweep = %d, want 0", c.Len())
	}
}

func TestServiceUsesCache(t *testing.T) {
	svc, err := NewService(Options{CacheTTL: time.Minute, CacheEntries: 10})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		s := svc.NewSession()
		s.SetURL("https://example.com")
		if _, err := s.Export(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	if svc.Cache().Hits() != 1 {
		t.Errorf("expected second export to hit the cache, hits = %d", svc.Cache().Hits())
	}
}

func TestExportCacheConcurrentLimit(t *testing.T) {
	c := NewExportCache(time.Minute, 8)
	exp := &Export{Filename: "qr-code.png"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("https://example.com/%d", i), DefaultColor, exp)
		}(i)
	}
	wg.Wait()

	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}

	stored := 0
	c.store.Range(func(_, _ interface{}) bool {
		stored++
		return true
	})
	if stored != c.Len() {
		t.Errorf("stored %d entries, size counter says %d", stored, c.Len())
	}
}

func TestExportCacheReplaceKeepsSize(t *testing.T) {
	c := NewExportCache(time.Minute, 1)
	c.Set("https://example.com", DefaultColor, &Export{Data: []byte{1}})
	c.Set("https://example.com", DefaultColor, &Export{Data: []byte{2}})

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
