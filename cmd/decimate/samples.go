package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-decimate/dsp/core"
	"github.com/cwbudde/algo-decimate/dsp/decimate"
)

var errNaN = errors.New("sample is NaN")

// readSamples parses one value per line. Blank lines and lines starting
// with '#' are skipped. NaN is rejected.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if math.IsNaN(v) {
			return nil, fmt.Errorf("line %d: %w", line, errNaN)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// convertSamples narrows parsed values to T. Integer samples are rounded
// the same way the engine rounds its output.
func convertSamples[T decimate.Sample](values []float64) []T {
	out := make([]T, len(values))
	half := 0.5
	integer := T(half) == 0
	for i, v := range values {
		if integer {
			out[i] = T(core.RoundInt32(v))
		} else {
			out[i] = T(v)
		}
	}
	return out
}

func writeSamples[T decimate.Sample](w io.Writer, samples []T, bits int) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		var line string
		if bits == 0 {
			line = strconv.FormatInt(int64(s), 10)
		} else {
			line = strconv.FormatFloat(float64(s), 'g', -1, bits)
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
