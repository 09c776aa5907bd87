package decimate

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-decimate/internal/testutil"
)

func TestParseFactors(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		err  error
	}{
		{"5,4", []int{5, 4}, nil},
		{" 2 , 3 ", []int{2, 3}, nil},
		{"7", []int{7}, nil},
		{"", nil, nil},
		{"8", nil, ErrUnsupportedFactor},
		{"1,2", nil, ErrUnsupportedFactor},
		{"2,,3", nil, ErrUnsupportedFactor},
		{"x", nil, ErrUnsupportedFactor},
		{"2,2,2,2,2,2,2,2", []int{2, 2, 2, 2, 2, 2, 2, 2}, nil},
		{"2,2,2,2,2,2,2,2,2", nil, ErrTooManyStages},
	}
	for _, tc := range tests {
		got, err := ParseFactors(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseFactors(%q) err = %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFactors(%q) error = %v", tc.in, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("ParseFactors(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTotalFactor(t *testing.T) {
	if got := TotalFactor(nil); got != 1 {
		t.Fatalf("TotalFactor(nil) = %d, want 1", got)
	}
	if got := TotalFactor([]int{5, 4}); got != 20 {
		t.Fatalf("TotalFactor(5,4) = %d, want 20", got)
	}
}

func TestCascadeMatchesSequentialCalls(t *testing.T) {
	x := testutil.Noise(42, 1, 5000)

	want := slices.Clone(x)
	n, _ := Decimate(want, len(want), 5)
	n, _ = Decimate(want, n, 4)
	want = want[:n]

	got, err := Cascade(x, []int{5, 4})
	if err != nil {
		t.Fatalf("Cascade() error = %v", err)
	}
	if len(got) != 250 {
		t.Fatalf("len = %d, want 250", len(got))
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestCascadeLengthComposes(t *testing.T) {
	for _, npts := range []int{1, 19, 20, 21, 999, 1000} {
		out, err := Cascade(testutil.Noise(1, 1, npts), []int{5, 4})
		if err != nil {
			t.Fatalf("npts %d: %v", npts, err)
		}
		if want := OutputLen(OutputLen(npts, 5), 4); len(out) != want {
			t.Fatalf("npts %d: len = %d, want %d", npts, len(out), want)
		}
	}
}

func TestCascadeRejectsBeforeFirstStage(t *testing.T) {
	x := testutil.Ramp(1, 1, 100)
	orig := slices.Clone(x)
	out, err := Cascade(x, []int{2, 9})
	if !errors.Is(err, ErrUnsupportedFactor) {
		t.Fatalf("err = %v, want ErrUnsupportedFactor", err)
	}
	if len(out) != len(orig) || !slices.Equal(x, orig) {
		t.Fatal("input modified by rejected cascade")
	}
}

func TestCascadeEmptyListIsIdentity(t *testing.T) {
	x := []int32{1, 2, 3}
	out, err := Cascade(x, nil)
	if err != nil || !slices.Equal(out, x) {
		t.Fatalf("Cascade(nil) = %v, %v", out, err)
	}
}
