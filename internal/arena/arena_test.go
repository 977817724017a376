package arena

import "testing"

func TestArena_InsertGetRemove(t *testing.T) {
	a := New[uint64, string]()

	if !a.Insert(1, "one") {
		t.Fatal("Insert(1) = false, want true")
	}
	if a.Insert(1, "uno") {
		t.Error("duplicate Insert(1) = true, want false")
	}
	if v, ok := a.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %v; want one, true", v, ok)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	v, ok := a.Remove(1)
	if !ok || v != "one" {
		t.Errorf("Remove(1) = %q, %v", v, ok)
	}
	if _, ok := a.Get(1); ok {
		t.Error("Get after Remove should miss")
	}
	if _, ok := a.Remove(1); ok {
		t.Error("second Remove should miss")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArena_SlotReuse(t *testing.T) {
	a := New[uint64, int]()
	for i := uint64(0); i < 4; i++ {
		a.Insert(i, int(i))
	}
	a.Remove(1)
	a.Remove(2)
	a.Insert(10, 10)
	a.Insert(11, 11)

	if len(a.slots) != 4 {
		t.Errorf("slots = %d, want 4 (freed slots reused)", len(a.slots))
	}
	if a.Len() != 4 {
		t.Errorf("Len() = %d, want 4", a.Len())
	}
}

func TestArena_KeysAllowRemoval(t *testing.T) {
	a := New[uint64, int]()
	for i := uint64(1); i <= 5; i++ {
		a.Insert(i, int(i))
	}

	for _, k := range a.Keys() {
		a.Remove(k)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after removing all keys", a.Len())
	}
}

func TestArena_Clear(t *testing.T) {
	a := New[uint64, int]()
	a.Insert(1, 1)
	a.Insert(2, 2)
	a.Clear()

	if a.Len() != 0 {
		t.Errorf("Len() = %d after Clear", a.Len())
	}
	if !a.Insert(1, 3) {
		t.Error("Insert after Clear failed")
	}
	if v, _ := a.Get(1); v != 3 {
		t.Errorf("Get(1) = %d, want 3", v)
	}
}
