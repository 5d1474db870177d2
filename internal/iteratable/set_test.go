package iteratable

import "testing"

func TestAddDedup(t *testing.T) {
	s := New()
	if !s.Add(1) {
		t.Fatal("expected first add to report new")
	}
	if s.Add(1) {
		t.Fatal("expected duplicate add to report not-new")
	}
	if s.Size() != 1 {
		t.Fatalf("size = %d, want 1", s.Size())
	}
}

func TestEqualsIgnoresOrder(t *testing.T) {
	a := New(1, 2, 3)
	b := New(3, 2, 1)
	if !a.Equals(b) {
		t.Fatal("sets with same content in different order should be equal")
	}
	c := New(1, 2)
	if a.Equals(c) {
		t.Fatal("sets with different content should not be equal")
	}
}

func TestDestructiveIterationVisitsAppendedItems(t *testing.T) {
	s := New(1)
	visited := []int{}
	s.IterateOnce()
	for s.Next() {
		v := s.Item().(int)
		visited = append(visited, v)
		if v == 1 {
			s.Add(2)
		} else if v == 2 {
			s.Add(3)
		}
	}
	if len(visited) != 3 || visited[0] != 1 || visited[1] != 2 || visited[2] != 3 {
		t.Fatalf("visited = %v, want [1 2 3]", visited)
	}
}

func TestUnionReturnsOnlyNewItems(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)
	added := a.Union(b)
	if added.Size() != 1 {
		t.Fatalf("expected 1 newly added item, got %d", added.Size())
	}
	if !a.Contains(3) {
		t.Fatal("union should have added 3 into a")
	}
}

func TestDifference(t *testing.T) {
	a := New(1, 2, 3)
	b := New(2)
	d := a.Difference(b)
	if d.Size() != 2 || !d.Contains(1) || !d.Contains(3) {
		t.Fatalf("unexpected difference contents: %v", d.Values())
	}
}
