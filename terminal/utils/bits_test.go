package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet_SetAndIsSet(t *testing.T) {
	bs := NewBitSet(130)
	bs.Set(0)
	bs.Set(64)
	bs.Set(129)
	assert.True(t, bs.IsSet(0))
	assert.True(t, bs.IsSet(64))
	assert.True(t, bs.IsSet(129))
	assert.False(t, bs.IsSet(63))
	assert.Equal(t, 3, bs.Count())

	bs.Unset(64)
	assert.False(t, bs.IsSet(64))
	assert.Equal(t, 130, bs.Len())
}

func TestBitSet_SetRange(t *testing.T) {
	tcs := []struct {
		name       string
		size       int
		start, end int
	}{
		{name: "inside one word", size: 64, start: 3, end: 9},
		{name: "across words", size: 200, start: 60, end: 130},
		{name: "whole words", size: 128, start: 0, end: 128},
		{name: "empty", size: 10, start: 4, end: 4},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			bs := NewBitSet(tc.size)
			bs.SetRange(tc.start, tc.end)
			assert.Equal(t, tc.end-tc.start, bs.Count())
			for i := range tc.size {
				assert.Equal(t, i >= tc.start && i < tc.end, bs.IsSet(i), "bit %d", i)
			}
		})
	}
}

func TestBitSet_FillAndClear(t *testing.T) {
	bs := NewBitSet(70)
	bs.Fill()
	assert.Equal(t, 70, bs.Count(), "no bits past the size")
	bs.Clear()
	assert.Equal(t, 0, bs.Count())

	empty := NewBitSet(0)
	empty.Fill()
	assert.Equal(t, 0, empty.Count())
}

func TestBitSet_OutOfBoundsPanics(t *testing.T) {
	bs := NewBitSet(10)
	assert.Panics(t, func() { bs.Set(10) })
	assert.Panics(t, func() { bs.IsSet(-1) })
	assert.Panics(t, func() { bs.SetRange(5, 11) })
}
