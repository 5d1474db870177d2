package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	m := NewIntMatrix(5, 5, DefaultNull)
	m.Set(2, 3, 42)
	if v := m.Value(2, 3); v != 42 {
		t.Fatalf("Value(2,3) = %d, want 42", v)
	}
	if v := m.Value(0, 0); v != DefaultNull {
		t.Fatalf("Value(0,0) = %d, want null", v)
	}
}

func TestAddRecordsConflict(t *testing.T) {
	m := NewIntMatrix(5, 5, DefaultNull)
	m.Add(1, 1, 7)
	m.Add(1, 1, 9)
	a, b := m.Values(1, 1)
	if a != 7 || b != 9 {
		t.Fatalf("Values(1,1) = (%d,%d), want (7,9)", a, b)
	}
}

func TestValueCount(t *testing.T) {
	m := NewIntMatrix(5, 5, DefaultNull)
	m.Set(0, 0, 1)
	m.Set(1, 1, 2)
	m.Set(0, 0, 3) // overwrite, should not add a new cell
	if m.ValueCount() != 2 {
		t.Fatalf("ValueCount() = %d, want 2", m.ValueCount())
	}
}
