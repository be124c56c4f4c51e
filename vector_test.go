package isam

import (
	"math"
	"testing"
)

func TestSparseVectorAppendAndGet(t *testing.T) {
	v := NewSparseVector()
	v.Append(0, 1.5)
	v.Append(3, 2.5)
	v.Append(7, -1.0)

	tests := []struct {
		idx  int
		want float64
	}{
		{0, 1.5},
		{1, 0},
		{3, 2.5},
		{5, 0},
		{7, -1.0},
		{100, 0},
	}
	for _, tt := range tests {
		if got := v.Get(tt.idx); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Get(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
	if v.NNZ() != 3 {
		t.Errorf("NNZ() = %d, want 3", v.NNZ())
	}
	if v.First() != 0 {
		t.Errorf("First() = %d, want 0", v.First())
	}
}

func TestSparseVectorAppendNonMonotonicPanics(t *testing.T) {
	v := NewSparseVector()
	v.Append(5, 1.0)
	defer func() {
		if recover() == nil {
			t.Fatal("Append(3, ...) after Append(5, ...) should have panicked")
		}
	}()
	v.Append(3, 2.0)
}

func TestSparseVectorSetInsertsMidSequence(t *testing.T) {
	v := NewSparseVector()
	v.Append(0, 1.0)
	v.Append(4, 4.0)
	v.Set(2, 2.0)

	want := []struct {
		idx int
		val float64
	}{{0, 1.0}, {2, 2.0}, {4, 4.0}}

	it := v.Iterator()
	for _, w := range want {
		if !it.Valid() {
			t.Fatalf("iterator exhausted early, expected index %d", w.idx)
		}
		if it.Index() != w.idx || math.Abs(it.Value()-w.val) > 1e-12 {
			t.Errorf("got (%d, %v), want (%d, %v)", it.Index(), it.Value(), w.idx, w.val)
		}
		it.Next()
	}
	if it.Valid() {
		t.Error("iterator should be exhausted")
	}
}

func TestSparseVectorSetZeroRemoves(t *testing.T) {
	v := NewSparseVector()
	v.Set(1, 5.0)
	if v.NNZ() != 1 {
		t.Fatalf("NNZ() = %d, want 1", v.NNZ())
	}
	v.Set(1, 0.0)
	if v.NNZ() != 0 {
		t.Errorf("NNZ() = %d after setting to exact zero, want 0", v.NNZ())
	}
	if v.Get(1) != 0 {
		t.Errorf("Get(1) = %v after removal, want 0", v.Get(1))
	}
}

func TestSparseVectorRemove(t *testing.T) {
	v := NewSparseVector()
	v.Append(0, 1.0)
	v.Append(1, 2.0)
	v.Append(2, 3.0)

	v.Remove(1)
	if v.NNZ() != 2 {
		t.Errorf("NNZ() = %d, want 2", v.NNZ())
	}
	if v.Get(1) != 0 {
		t.Errorf("Get(1) = %v after Remove, want 0", v.Get(1))
	}
	if v.Get(0) != 1.0 || v.Get(2) != 3.0 {
		t.Error("Remove disturbed neighboring entries")
	}

	// Removing an absent index is a no-op.
	v.Remove(99)
	if v.NNZ() != 2 {
		t.Errorf("NNZ() = %d after removing absent index, want 2", v.NNZ())
	}
}

func TestSparseVectorFirstEmpty(t *testing.T) {
	v := NewSparseVector()
	if got := v.First(); got != -1 {
		t.Errorf("First() on empty vector = %d, want -1", got)
	}
}

func TestSparseVectorIteratorOrder(t *testing.T) {
	v := NewSparseVector()
	indices := []int{2, 5, 9, 40}
	for _, i := range indices {
		v.Append(i, float64(i))
	}
	var seen []int
	for it := v.Iterator(); it.Valid(); it.Next() {
		seen = append(seen, it.Index())
		if it.Value() != float64(it.Index()) {
			t.Errorf("Value() = %v at index %d, want %v", it.Value(), it.Index(), float64(it.Index()))
		}
	}
	if len(seen) != len(indices) {
		t.Fatalf("iterated %d entries, want %d", len(seen), len(indices))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Errorf("indices not strictly ascending: %v", seen)
		}
	}
}

func TestSparseVectorClone(t *testing.T) {
	v := NewSparseVector()
	v.Append(0, 1.0)
	v.Append(2, 2.0)

	c := v.Clone()
	c.Set(2, 99.0)

	if v.Get(2) != 2.0 {
		t.Errorf("mutating clone affected original: Get(2) = %v, want 2.0", v.Get(2))
	}
}
