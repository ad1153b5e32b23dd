package engine

import (
	"testing"
	"unsafe"
)

func TestSessionTable_Basic(t *testing.T) {
	var table sessionTable
	marker := new(int)

	h := table.insert(unsafe.Pointer(marker))
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	ptr, ok := table.get(h)
	if !ok {
		t.Fatal("get failed")
	}
	if ptr != unsafe.Pointer(marker) {
		t.Fatal("get returned the wrong pointer")
	}
	if table.len() != 1 {
		t.Fatalf("Expected len 1, got %d", table.len())
	}

	ptr, ok = table.drop(h)
	if !ok {
		t.Fatal("drop failed")
	}
	if ptr != unsafe.Pointer(marker) {
		t.Fatal("drop returned the wrong pointer")
	}
	if table.len() != 0 {
		t.Fatalf("Expected len 0 after drop, got %d", table.len())
	}
}

func TestSessionTable_DropExactlyOnce(t *testing.T) {
	var table sessionTable
	h := table.insert(unsafe.Pointer(new(int)))

	if _, ok := table.drop(h); !ok {
		t.Fatal("First drop failed")
	}
	if _, ok := table.drop(h); ok {
		t.Fatal("Second drop of the same handle succeeded")
	}
	if _, ok := table.get(h); ok {
		t.Fatal("get succeeded on a dropped handle")
	}
}

func TestSessionTable_InvalidHandles(t *testing.T) {
	var table sessionTable
	table.insert(unsafe.Pointer(new(int)))

	if _, ok := table.get(0); ok {
		t.Fatal("Zero handle must never resolve")
	}
	if _, ok := table.get(99); ok {
		t.Fatal("Out-of-range handle resolved")
	}
	if _, ok := table.drop(0); ok {
		t.Fatal("Zero handle dropped")
	}
	if _, ok := table.drop(99); ok {
		t.Fatal("Out-of-range handle dropped")
	}
}

func TestSessionTable_SlotReuse(t *testing.T) {
	var table sessionTable

	h1 := table.insert(unsafe.Pointer(new(int)))
	h2 := table.insert(unsafe.Pointer(new(int)))
	table.drop(h1)

	// The freed slot is reused, so the handle value comes back.
	h3 := table.insert(unsafe.Pointer(new(int)))
	if h3 != h1 {
		t.Fatalf("Expected slot reuse to return handle %d, got %d", h1, h3)
	}
	if table.len() != 2 {
		t.Fatalf("Expected 2 live sessions, got %d", table.len())
	}

	// Dropping one slot leaves the others untouched.
	if _, ok := table.get(h2); !ok {
		t.Fatal("Untouched handle stopped resolving")
	}
}
