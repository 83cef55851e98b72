package ident

import (
	"strings"
	"testing"
)

func TestAllocator_Monotonic(t *testing.T) {
	t.Parallel()
	a := NewAllocator(100)

	prev := int64(100)
	for i := 0; i < 50; i++ {
		id := a.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestAllocator_StartsAboveFloor(t *testing.T) {
	t.Parallel()

	if got := NewAllocator(6).Next(); got != 7 {
		t.Errorf("expected first id 7, got %d", got)
	}
	if got := NewAllocator(-5).Next(); got != 1 {
		t.Errorf("negative floor should clamp to 0, got first id %d", got)
	}
}

func TestNewAuthToken_OpaqueAndUnique(t *testing.T) {
	t.Parallel()

	a, b := NewAuthToken(), NewAuthToken()
	if a == b {
		t.Error("two tokens should not collide")
	}
	if !strings.HasPrefix(a, "tj-") {
		t.Errorf("token missing prefix: %q", a)
	}
}
