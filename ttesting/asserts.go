// Package ttesting contains assertion helpers shared by the package tests.
package ttesting

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualInts(t *testing.T, name string, got, want []int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(got) != len(want) {
			t.Fatalf("got %d values; want %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("at %d: got %06x; want %06x", i, got[i], want[i])
			}
		}
	})
}

func AssertEqualBytes(t *testing.T, name string, got, want []byte) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if !bytes.Equal(got, want) {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertInRangeInt(t *testing.T, name string, got, wantMin, wantMax int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got < wantMin || got > wantMax {
			t.Errorf("got %d; want [%d,%d]", got, wantMin, wantMax)
		}
	})
}

func AssertErrorIs(t *testing.T, name string, got, want error) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if !errors.Is(got, want) {
			t.Errorf("got error %v; want %v", got, want)
		}
	})
}
