// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package coldata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pos is a collection of interesting boundary indices to use in tests.
var pos = []int{0, 1, 7, 8, 9, 63, 64, 65, BatchSize - 1}

func TestNullAt(t *testing.T) {
	n := NewNulls(BatchSize)
	require.False(t, n.MaybeHasNulls())
	for i := 0; i < BatchSize; i++ {
		if i%3 == 0 {
			n.SetNull(i)
		}
	}
	require.True(t, n.MaybeHasNulls())
	for i := 0; i < BatchSize; i++ {
		require.Equal(t, i%3 == 0, n.NullAt(i), "NullAt(%d)", i)
	}
}

func TestUnsetNull(t *testing.T) {
	n := NewNulls(BatchSize)
	n.SetNulls()
	for _, i := range pos {
		n.UnsetNull(i)
	}
	for i := 0; i < BatchSize; i++ {
		expected := true
		for _, p := range pos {
			if p == i {
				expected = false
			}
		}
		require.Equal(t, expected, n.NullAt(i), "NullAt(%d)", i)
	}
}

func TestSetAndUnsetNulls(t *testing.T) {
	n := NewNulls(BatchSize)
	n.SetNulls()
	require.True(t, n.MaybeHasNulls())
	for i := 0; i < BatchSize; i++ {
		require.True(t, n.NullAt(i))
	}
	n.UnsetNulls()
	require.False(t, n.MaybeHasNulls())
	for i := 0; i < BatchSize; i++ {
		require.False(t, n.NullAt(i))
	}
}

func TestSetNullRange(t *testing.T) {
	for _, start := range pos {
		for _, end := range pos {
			n := NewNulls(BatchSize)
			n.SetNullRange(start, end)
			for i := 0; i < BatchSize; i++ {
				expected := i >= start && i < end
				require.Equal(t, expected, n.NullAt(i),
					"NullAt(%d) should be %t after SetNullRange(%d, %d)", i, expected, start, end)
			}
		}
	}
}

func TestNullsCopy(t *testing.T) {
	src := NewNulls(BatchSize)
	for _, i := range pos {
		src.SetNull(i)
	}
	dst := NewNulls(BatchSize)
	dst.SetNulls()
	dst.Copy(&src)
	for i := 0; i < BatchSize; i++ {
		require.Equal(t, src.NullAt(i), dst.NullAt(i), "NullAt(%d)", i)
	}
}
