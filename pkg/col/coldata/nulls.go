// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package coldata

// zeroedNulls is a zeroed out slice representing a bitmap of size
// BatchSize. This is copied to efficiently clear a nulls slice.
var zeroedNulls [(BatchSize-1)/8 + 1]byte

// filledNulls is a slice representing a bitmap of size BatchSize with
// every single bit set.
var filledNulls [(BatchSize-1)/8 + 1]byte

// bitMask[i] is a byte with a single bit set at i.
var bitMask = [8]byte{0x1, 0x2, 0x4, 0x8, 0x10, 0x20, 0x40, 0x80}

// flippedBitMask[i] is a byte with all bits set except at i.
var flippedBitMask = [8]byte{0xFE, 0xFD, 0xFB, 0xF7, 0xEF, 0xDF, 0xBF, 0x7F}

func init() {
	for i := range filledNulls {
		filledNulls[i] = 0xFF
	}
}

// Nulls represents a list of potentially nullable values using a
// bitmap. It is packed into a Vec; a set bit means the value at that
// index is null.
type Nulls struct {
	nulls []byte
	// maybeHasNulls is a best-effort representation of whether or not the
	// vector has any null values set. If it is false, there definitely
	// will be no null values. If it is true, there may or may not be null
	// values.
	maybeHasNulls bool
}

// NewNulls returns a new nulls vector, initialized with a length.
func NewNulls(len int) Nulls {
	if len > 0 {
		n := Nulls{nulls: make([]byte, (len-1)/8+1)}
		n.UnsetNulls()
		return n
	}
	return Nulls{nulls: make([]byte, 0)}
}

// MaybeHasNulls returns true if the column possibly has any null
// values, and returns false if the column definitely has no null
// values.
func (n *Nulls) MaybeHasNulls() bool {
	return n.maybeHasNulls
}

// NullAt returns true if the ith value of the column is null.
func (n *Nulls) NullAt(i int) bool {
	return n.nulls[i>>3]&bitMask[i&7] != 0
}

// SetNull sets the ith value of the column to null.
func (n *Nulls) SetNull(i int) {
	n.maybeHasNulls = true
	n.nulls[i>>3] |= bitMask[i&7]
}

// UnsetNull unsets the ith value of the column.
func (n *Nulls) UnsetNull(i int) {
	n.nulls[i>>3] &= flippedBitMask[i&7]
}

// SetNulls sets the column to have only null values.
func (n *Nulls) SetNulls() {
	n.maybeHasNulls = true
	startIdx := 0
	for startIdx < len(n.nulls) {
		startIdx += copy(n.nulls[startIdx:], filledNulls[:])
	}
}

// UnsetNulls sets the column to have no null values.
func (n *Nulls) UnsetNulls() {
	n.maybeHasNulls = false
	startIdx := 0
	for startIdx < len(n.nulls) {
		startIdx += copy(n.nulls[startIdx:], zeroedNulls[:])
	}
}

// SetNullRange sets all the values in [startIdx, endIdx) to null.
func (n *Nulls) SetNullRange(startIdx int, endIdx int) {
	if startIdx >= endIdx {
		return
	}
	n.maybeHasNulls = true
	for i := startIdx; i < endIdx; i++ {
		n.nulls[i>>3] |= bitMask[i&7]
	}
}

// Copy replaces the receiver's bitmap with a copy of the other one.
func (n *Nulls) Copy(other *Nulls) {
	n.maybeHasNulls = other.maybeHasNulls
	if cap(n.nulls) < len(other.nulls) {
		n.nulls = make([]byte, len(other.nulls))
	} else {
		n.nulls = n.nulls[:len(other.nulls)]
	}
	copy(n.nulls, other.nulls)
}
