// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package coldata

import "github.com/stratosdb/stratos/pkg/sql/types"

// Batch is the type that columnar operators receive and produce: a
// fixed-size ordered sequence of rows, stored column-wise, with an
// optional selection vector describing the active rows.
type Batch interface {
	// Length returns the number of values in the columns in the batch.
	Length() int
	// SetLength sets the number of values in the columns in the batch.
	SetLength(int)
	// Width returns the number of columns in the batch.
	Width() int
	// ColVec returns the ith Vec in this batch.
	ColVec(i int) Vec
	// Selection returns the selection vector on this batch: the indices
	// of the active rows, in ascending order, or nil when all rows are
	// active.
	Selection() []int
	// SetSelection sets the selection vector for this batch.
	SetSelection(sel []int)
	// Sel returns the active-row set of this batch.
	Sel() Sel
}

// NewMemBatch allocates a new in-memory Batch with the given column
// types and row capacity.
func NewMemBatch(typs []*types.T, n int) Batch {
	b := &memBatch{length: n}
	b.vecs = make([]Vec, len(typs))
	for i, t := range typs {
		b.vecs[i] = NewMemColumn(t, n)
	}
	return b
}

type memBatch struct {
	length int
	vecs   []Vec
	sel    []int
}

func (m *memBatch) Length() int          { return m.length }
func (m *memBatch) SetLength(n int)      { m.length = n }
func (m *memBatch) Width() int           { return len(m.vecs) }
func (m *memBatch) ColVec(i int) Vec     { return m.vecs[i] }
func (m *memBatch) Selection() []int     { return m.sel }
func (m *memBatch) SetSelection(s []int) { m.sel = s }

func (m *memBatch) Sel() Sel {
	if m.sel != nil {
		return Rows(m.sel)
	}
	return AllRows(m.length)
}
