package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

type view struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(100, time.Minute)

	var got view
	if ok, err := m.Get(ctx, "missing", &got); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}

	if err := m.Set(ctx, "cards", TagDashboard, 0, view{Name: "cards", Total: 3}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err := m.Get(ctx, "cards", &got)
	if err != nil || !ok {
		t.Fatalf("Get(cards) = %v, %v", ok, err)
	}
	if got != (view{Name: "cards", Total: 3}) {
		t.Fatalf("Get(cards) decoded %+v", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(100, time.Hour)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "k", TagInvoices, 0, view{Total: 1}, time.Second)
	now = now.Add(2 * time.Second)

	var got view
	if ok, _ := m.Get(ctx, "k", &got); ok {
		t.Fatal("expected entry to expire")
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry not purged, Len() = %d", m.Len())
	}
}

func TestMemoryStoreReclaimsExpiredEntriesWithoutReads(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(100, 20*time.Millisecond)

	for _, q := range []string{"a", "b", "c", "d"} {
		_ = m.Set(ctx, "invoices:pages:"+q, TagInvoices, 0, 1, time.Minute)
	}
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}

	deadline := time.Now().Add(2 * time.Second)
	for m.Len() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("%d expired entries never reclaimed", m.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tags) != 0 {
		t.Fatalf("tag index still holds %v", m.tags)
	}
}

func TestMemoryStoreBoundsEntries(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2, time.Minute)

	for _, key := range []string{"one", "two", "three"} {
		_ = m.Set(ctx, key, TagInvoices, 0, view{Name: key}, 0)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	var got view
	if ok, _ := m.Get(ctx, "one", &got); ok {
		t.Fatal("least recently used entry was kept")
	}
}

func TestMemoryStoreInvalidateByTag(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(100, time.Minute)

	_ = m.Set(ctx, "invoices:1", TagInvoices, 0, view{Total: 1}, 0)
	_ = m.Set(ctx, "invoices:2", TagInvoices, 0, view{Total: 2}, 0)
	_ = m.Set(ctx, "revenue", TagRevenue, 0, view{Total: 3}, 0)

	if err := m.Invalidate(ctx, TagInvoices, TagCustomers); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	var got view
	for _, key := range []string{"invoices:1", "invoices:2"} {
		if ok, _ := m.Get(ctx, key, &got); ok {
			t.Fatalf("%s survived invalidation", key)
		}
	}
	if ok, _ := m.Get(ctx, "revenue", &got); !ok {
		t.Fatal("untagged view was dropped")
	}
	if gen, _ := m.Generation(ctx, TagInvoices); gen != 1 {
		t.Fatalf("Generation(invoices) = %d, want 1", gen)
	}
}

func TestMemoryStoreSkipsViewsLoadedBeforeInvalidation(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(100, time.Minute)

	gen, _ := m.Generation(ctx, TagInvoices)
	// a mutation lands while the view is being loaded
	_ = m.Invalidate(ctx, TagInvoices)

	if err := m.Set(ctx, "invoices:pages:", TagInvoices, gen, 1, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var pages int
	if ok, _ := m.Get(ctx, "invoices:pages:", &pages); ok {
		t.Fatal("view loaded under an old generation was stored")
	}

	gen, _ = m.Generation(ctx, TagInvoices)
	_ = m.Set(ctx, "invoices:pages:", TagInvoices, gen, 0, 0)
	if ok, _ := m.Get(ctx, "invoices:pages:", &pages); !ok || pages != 0 {
		t.Fatalf("current view = %v, %d", ok, pages)
	}
}

func TestMemoryStoreConcurrentUse(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(8, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + (i+j)%16))
				gen, _ := m.Generation(ctx, TagInvoices)
				_ = m.Set(ctx, key, TagInvoices, gen, j, 0)
				var v int
				_, _ = m.Get(ctx, key, &v)
				if j%10 == 0 {
					_ = m.Invalidate(ctx, TagInvoices)
				}
			}
		}(i)
	}
	wg.Wait()
	if m.Len() > 8 {
		t.Fatalf("Len() = %d exceeds bound", m.Len())
	}
}

func TestNilRedisStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	r := NewRedisStore(nil, "test:")

	if err := r.Set(ctx, "k", TagInvoices, 0, view{}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got view
	if ok, err := r.Get(ctx, "k", &got); ok || err != nil {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if gen, err := r.Generation(ctx, TagInvoices); gen != 0 || err != nil {
		t.Fatalf("Generation = %d, %v", gen, err)
	}
	if err := r.Invalidate(ctx, TagInvoices); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
}
