package buffer

import "testing"

func TestNewClampsNegativeLength(t *testing.T) {
	if got := New(-3).Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if got := New(5).Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
}

func TestResizeReusesBackingArray(t *testing.T) {
	b := New(16)
	first := &b.Samples()[0]

	b.Resize(4)
	if b.Len() != 4 || b.Cap() != 16 {
		t.Fatalf("Len/Cap = %d/%d, want 4/16", b.Len(), b.Cap())
	}
	b.Resize(16)
	if &b.Samples()[0] != first {
		t.Fatal("Resize within capacity reallocated")
	}

	b.Resize(32)
	if b.Len() != 32 || b.Cap() < 32 {
		t.Fatalf("Len/Cap = %d/%d after growth", b.Len(), b.Cap())
	}
}

func TestZero(t *testing.T) {
	b := New(4)
	for i := range b.Samples() {
		b.Samples()[i] = float64(i + 1)
	}
	b.Zero()
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}
