package main

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestReadSamples(t *testing.T) {
	in := "# header\n1\n\n 2.5 \n-3e2\n"
	got, err := readSamples(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readSamples() error = %v", err)
	}
	if !slices.Equal(got, []float64{1, 2.5, -300}) {
		t.Fatalf("got %v", got)
	}
}

func TestReadSamplesReportsLine(t *testing.T) {
	_, err := readSamples(strings.NewReader("1\n2\nabc\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("err = %v, want line 3", err)
	}
}

func TestReadSamplesRejectsNaN(t *testing.T) {
	for _, in := range []string{"1\nNaN\n", "1\n2\nnan\n"} {
		_, err := readSamples(strings.NewReader(in))
		if !errors.Is(err, errNaN) {
			t.Fatalf("readSamples(%q) err = %v, want errNaN", in, err)
		}
	}
}

func TestConvertSamplesInt32(t *testing.T) {
	// Ties round toward +Inf, matching decimated int32 output.
	got := convertSamples[int32]([]float64{1.5, -1.5, -2.5, 2.4, 3e10, -3e10})
	want := []int32{2, -1, -2, 2, 2147483647, -2147483648}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWriteSamples(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSamples(&buf, []int32{1, -2}, 0); err != nil {
		t.Fatalf("writeSamples() error = %v", err)
	}
	if err := writeSamples(&buf, []float32{0.1}, 32); err != nil {
		t.Fatalf("writeSamples() error = %v", err)
	}
	if got := buf.String(); got != "1\n-2\n0.1\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunCascade(t *testing.T) {
	cfg := &config{Factors: []int{2, 2}, SampleRate: 100}
	samples := make([]float64, 17)
	for i := range samples {
		samples[i] = 1
	}
	var buf bytes.Buffer
	if err := run(zap.NewNop(), cfg, samples, &buf, 64); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 5 {
		t.Fatalf("wrote %d samples, want 5", lines)
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	cfg := &config{Factors: []int{2}, SampleRate: 1}
	if err := run(zap.NewNop(), cfg, []int32{}, &bytes.Buffer{}, 0); err == nil {
		t.Fatal("expected error for empty input")
	}
}
