// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package coldata

import "github.com/cockroachdb/errors"

// Bytes is a flat representation of a vector of variable-length byte
// slices. All values are stored contiguously in data, with offsets
// delimiting the individual elements.
//
// Elements must be Set in ascending index order; this keeps the
// offsets non-decreasing without a fixup on every write. Call
// UpdateOffsetsToBeNonDecreasing once writing is done if some trailing
// (or skipped) indices were never Set.
type Bytes struct {
	data    []byte
	offsets []int32
	// maxSetIdx is the largest index Set so far, -1 if none. Offsets are
	// valid through maxSetIdx+1.
	maxSetIdx int
}

// NewBytes returns a Bytes struct with enough capacity for n zero-length
// elements.
func NewBytes(n int) *Bytes {
	return &Bytes{
		offsets:   make([]int32, n+1),
		maxSetIdx: -1,
	}
}

// Len returns the number of elements.
func (b *Bytes) Len() int {
	return len(b.offsets) - 1
}

// Get returns the ith element. The returned slice aliases the internal
// buffer and must not be modified.
func (b *Bytes) Get(i int) []byte {
	if i > b.maxSetIdx {
		// Never Set; by construction the element is empty.
		return nil
	}
	return b.data[b.offsets[i]:b.offsets[i+1]]
}

// GetString returns the ith element as a string.
func (b *Bytes) GetString(i int) string {
	return string(b.Get(i))
}

// Set sets the ith element. i must be greater than any previously Set
// index.
func (b *Bytes) Set(i int, v []byte) {
	if i <= b.maxSetIdx {
		panic(errors.AssertionFailedf(
			"cannot Set index %d, %d has already been set", i, b.maxSetIdx))
	}
	end := b.offsets[b.maxSetIdx+1]
	for j := b.maxSetIdx + 2; j <= i; j++ {
		b.offsets[j] = end
	}
	b.data = append(b.data, v...)
	b.offsets[i+1] = end + int32(len(v))
	b.maxSetIdx = i
}

// SetString sets the ith element from a string.
func (b *Bytes) SetString(i int, v string) {
	b.Set(i, []byte(v))
}

// UpdateOffsetsToBeNonDecreasing fills in the offsets of all elements
// past the last Set index so that every element up to length n becomes
// readable (as empty).
func (b *Bytes) UpdateOffsetsToBeNonDecreasing(n int) {
	end := b.offsets[b.maxSetIdx+1]
	for j := b.maxSetIdx + 2; j <= n; j++ {
		b.offsets[j] = end
	}
	if n > 0 {
		b.maxSetIdx = n - 1
	}
}

// Reset clears all elements while retaining the allocated buffers.
func (b *Bytes) Reset() {
	b.data = b.data[:0]
	for i := range b.offsets {
		b.offsets[i] = 0
	}
	b.maxSetIdx = -1
}
