package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_SustainedPressEmitsOnce(t *testing.T) {
	s := New(1)

	var edges []Edge
	for range 8 {
		edges = append(edges, s.Sample(0, true))
	}

	presses := 0
	for i, e := range edges {
		if e == EdgePress {
			presses++
			assert.Equal(t, ConfirmSamples-1, i, "press should fire on sample %d", ConfirmSamples)
		}
		assert.NotEqual(t, EdgeRelease, e)
	}
	assert.Equal(t, 1, presses)
	assert.Equal(t, uint8(0xFF), s.Register(0))
}

func TestSample_SustainedReleaseLocksLow(t *testing.T) {
	s := New(1)
	for range 3 {
		s.Sample(0, true)
	}

	releases := 0
	for range 8 {
		if s.Sample(0, false) == EdgeRelease {
			releases++
		}
	}
	assert.Equal(t, 1, releases)
	assert.Equal(t, uint8(0x00), s.Register(0))

	// Further released samples on a clean low history emit nothing.
	for range 8 {
		assert.Equal(t, EdgeNone, s.Sample(0, false))
	}
	assert.Equal(t, uint8(0x00), s.Register(0))
}

func TestSample_PressThenRelease(t *testing.T) {
	s := New(1)
	samples := []bool{true, true, true, false, false, false}
	want := []Edge{EdgeNone, EdgeNone, EdgePress, EdgeNone, EdgeNone, EdgeRelease}

	got := make([]Edge, 0, len(samples))
	for _, p := range samples {
		got = append(got, s.Sample(0, p))
	}
	assert.Equal(t, want, got)
}

func TestSample_BounceBeforePress(t *testing.T) {
	s := New(1)
	samples := []bool{true, false, true, true, true}
	want := []Edge{EdgeNone, EdgeNone, EdgeNone, EdgeNone, EdgePress}

	for i, p := range samples {
		assert.Equal(t, want[i], s.Sample(0, p), "sample %d", i)
	}
}

func TestSample_KeysAreIndependent(t *testing.T) {
	s := New(2)
	for range 3 {
		s.Sample(0, true)
	}
	assert.Equal(t, uint8(0xFF), s.Register(0))
	assert.Equal(t, uint8(0x00), s.Register(1))

	assert.Equal(t, EdgeNone, s.Sample(1, true))
	assert.Equal(t, uint8(0x01), s.Register(1))
}

func TestSample_UnknownKey(t *testing.T) {
	s := New(1)
	tests := []struct {
		name string
		key  int
	}{
		{"negative", -1},
		{"past end", 1},
		{"far past end", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 4 {
				assert.Equal(t, EdgeNone, s.Sample(tt.key, true))
			}
			assert.Equal(t, uint8(0), s.Register(tt.key))
		})
	}
}

func TestReset(t *testing.T) {
	s := New(3)
	for k := range 3 {
		for range 3 {
			s.Sample(k, true)
		}
	}
	s.Reset()
	for k := range 3 {
		assert.Equal(t, uint8(0), s.Register(k))
	}
	assert.Equal(t, 3, s.Len())
}

func TestNew_NegativeSize(t *testing.T) {
	s := New(-4)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, EdgeNone, s.Sample(0, true))
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "none", EdgeNone.String())
	assert.Equal(t, "press", EdgePress.String())
	assert.Equal(t, "release", EdgeRelease.String())
}
