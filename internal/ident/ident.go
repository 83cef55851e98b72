// Package ident allocates conversation identifiers. Ids are a monotonic
// counter rather than random draws, so freshly created conversations can
// never collide with each other or with the seeded catalog; whether an entry
// is "new" is carried by an explicit origin tag on the record, never by the
// id value itself.
package ident

import (
	"sync"

	"github.com/google/uuid"
)

// Allocator hands out strictly increasing conversation ids.
type Allocator struct {
	mu   sync.Mutex
	next int64
}

// NewAllocator returns an allocator whose first id is floor+1. Callers seed
// floor with the maximum of the catalog range and the highest persisted id
// so restarts never reuse an identifier.
func NewAllocator(floor int64) *Allocator {
	if floor < 0 {
		floor = 0
	}
	return &Allocator{next: floor + 1}
}

// Next returns the next unused id.
func (a *Allocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// NewAuthToken mints the opaque token persisted at login. The token carries
// no claims; its presence alone is what marks a session authenticated.
func NewAuthToken() string {
	return "tj-" + uuid.NewString()
}
