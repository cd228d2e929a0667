// Package cache holds rendered dashboard views keyed by query and grouped by
// tag so that a mutation can drop every view it affects at once.
package cache

import (
	"context"
	"time"
)

// View tags.
const (
	TagInvoices  = "invoices"
	TagCustomers = "customers"
	TagDashboard = "dashboard"
	TagRevenue   = "revenue"
)

// Invalidator drops every entry stored under the given tags.
type Invalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}

// Store caches JSON-serialisable views.
//
// Every tag carries a generation that Invalidate advances. A reader notes
// the generation before loading a view and passes it to Set; a view loaded
// under an older generation is never stored.
type Store interface {
	Invalidator
	Generation(ctx context.Context, tag string) (int64, error)
	// Get decodes the entry for key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key, tag string, gen int64, value any, ttl time.Duration) error
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, string, int64, any, time.Duration) error { return nil }
func (Nop) Invalidate(context.Context, ...string) error { return nil }
