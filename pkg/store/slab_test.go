package store

import "testing"

func TestSlab_InsertUsesNextID(t *testing.T) {
	s := NewSlab[string]()

	for i, v := range []string{"a", "b", "c"} {
		next := s.NextID()
		if next != ID(i) {
			t.Fatalf("NextID() = %d, want %d", next, i)
		}
		if id := s.Insert(v); id != next {
			t.Fatalf("Insert(%q) = %d, want %d", v, id, next)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSlab_ReusesFreedSlots(t *testing.T) {
	s := NewSlab[int]()
	for i := range 4 {
		s.Insert(i * 10)
	}

	s.Remove(1)
	s.Remove(3)

	// Most recently freed slot first.
	if got := s.NextID(); got != 3 {
		t.Fatalf("NextID() after removes = %d, want 3", got)
	}
	if id := s.Insert(99); id != 3 {
		t.Errorf("Insert() = %d, want 3", id)
	}
	if id := s.Insert(98); id != 1 {
		t.Errorf("Insert() = %d, want 1", id)
	}
	if id := s.Insert(97); id != 4 {
		t.Errorf("Insert() = %d, want 4", id)
	}

	v, ok := s.Get(1)
	if !ok || *v != 98 {
		t.Errorf("Get(1) = %v, %v, want 98, true", v, ok)
	}
}

func TestSlab_VacantSlots(t *testing.T) {
	type tc struct {
		id ID
	}

	s := NewSlab[int]()
	s.Insert(1)
	s.Insert(2)
	s.Remove(0)

	tests := map[string]tc{
		"removed":        {id: 0},
		"never inserted": {id: 7},
		"negative":       {id: -3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.Get(tt.id); ok {
				t.Errorf("Get(%d) ok = true, want false", tt.id)
			}
			if _, ok := s.Replace(tt.id, 5); ok {
				t.Errorf("Replace(%d) ok = true, want false", tt.id)
			}
			if _, ok := s.Remove(tt.id); ok {
				t.Errorf("Remove(%d) ok = true, want false", tt.id)
			}
		})
	}
}

func TestSlab_Replace(t *testing.T) {
	s := NewSlab[string]()
	id := s.Insert("old")

	prev, ok := s.Replace(id, "new")
	if !ok || prev != "old" {
		t.Fatalf("Replace() = %q, %v, want \"old\", true", prev, ok)
	}
	v, _ := s.Get(id)
	if *v != "new" {
		t.Errorf("Get() = %q, want \"new\"", *v)
	}
}

func TestSlab_DrainAndAll(t *testing.T) {
	s := NewSlab[int]()
	for i := range 5 {
		s.Insert(i)
	}
	s.Remove(2)

	var ids []ID
	for id, v := range s.All() {
		if int(id) != *v {
			t.Errorf("All() yielded id %d with value %d", id, *v)
		}
		ids = append(ids, id)
	}
	if len(ids) != 4 {
		t.Fatalf("All() yielded %d values, want 4", len(ids))
	}

	got := s.Drain()
	want := []int{0, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if s.Len() != 0 || s.NextID() != 0 {
		t.Errorf("after Drain() Len = %d NextID = %d, want 0, 0", s.Len(), s.NextID())
	}
}
