// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package uint128

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	u := FromBytes(b)
	if !bytes.Equal(b, u.GetBytes()) {
		t.Errorf("roundtrip of %v failed, got %v", b, u.GetBytes())
	}
	require.Equal(t, b, u.AppendBytes(nil))
}

func TestLsh(t *testing.T) {
	testCases := []struct {
		u        Uint128
		n        uint
		expected Uint128
	}{
		{FromInts(0, 1), 0, FromInts(0, 1)},
		{FromInts(0, 1), 1, FromInts(0, 2)},
		{FromInts(0, 1), 64, FromInts(1, 0)},
		{FromInts(0, 1), 127, FromInts(1 << 63, 0)},
		{FromInts(0, 1), 128, Uint128{}},
		{FromInts(0, 0xFFFFFFFF00000000), 32, FromInts(0xFFFFFFFF, 0)},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.u.Lsh(tc.n), "%v << %d", tc.u, tc.n)
	}
}

func TestRsh(t *testing.T) {
	testCases := []struct {
		u        Uint128
		n        uint
		expected Uint128
	}{
		{FromInts(1, 0), 0, FromInts(1, 0)},
		{FromInts(1, 0), 1, FromInts(0, 1 << 63)},
		{FromInts(1, 0), 64, FromInts(0, 1)},
		{Max, 128, Uint128{}},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.u.Rsh(tc.n), "%v >> %d", tc.u, tc.n)
	}
}

func TestSubWrap(t *testing.T) {
	// 0 - 1 wraps around to all ones.
	require.Equal(t, Max, Uint128{}.Sub(1))
	// Borrow across the word boundary.
	require.Equal(t, FromInts(0, ^uint64(0)), FromInts(1, 0).Sub(1))
}

func TestAddCarry(t *testing.T) {
	require.Equal(t, FromInts(1, 0), FromInts(0, ^uint64(0)).Add(1))
	require.Equal(t, Uint128{}, Max.Add(1))
}

func TestBitOps(t *testing.T) {
	a := FromInts(0xFF00, 0x00FF)
	b := FromInts(0x0FF0, 0x0FF0)
	require.Equal(t, FromInts(0x0F00, 0x00F0), a.And(b))
	require.Equal(t, FromInts(0xFFF0, 0x0FFF), a.Or(b))
	require.Equal(t, FromInts(0xF0F0, 0x0F0F), a.Xor(b))
	require.Equal(t, Max, Uint128{}.Not())
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, FromInts(1, 1).Compare(FromInts(1, 1)))
	require.Equal(t, -1, FromInts(0, 5).Compare(FromInts(1, 0)))
	require.Equal(t, 1, FromInts(1, 0).Compare(FromInts(0, 5)))
	require.Equal(t, 1, FromInts(0, 2).Compare(FromInts(0, 1)))
}

func TestFromString(t *testing.T) {
	u, err := FromString("ffff0000ffff0000ffff0000ffff0000")
	require.NoError(t, err)
	require.Equal(t, FromInts(0xffff0000ffff0000, 0xffff0000ffff0000), u)

	_, err = FromString("ffff0000ffff0000ffff0000ffff00001")
	require.Error(t, err)
}
