// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package coldata exposes the columnar vectors batches of rows are
// materialized into. A Vec is a column of a single physical type with
// an associated null bitmap; composite logical types are materialized
// as parallel per-field columns of equal length, each with its own
// null bitmap.
package coldata

import (
	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/col/coltypes"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/uint128"
)

// BatchSize is the default number of rows in a batch.
const BatchSize = 1024

// column is the raw array of a Go native type backing a Vec.
type column interface{}

// Vec is a column vector accessible by Go native types. The typed
// accessors panic when the Vec is backed by a different physical type;
// callers are expected to have consulted Type beforehand.
type Vec interface {
	// Type returns the logical type of the Vec.
	Type() *types.T
	// Length returns the number of rows.
	Length() int

	// Bool returns a bool slice.
	Bool() []bool
	// Uint8 returns a uint8 slice.
	Uint8() []uint8
	// Int64 returns an int64 slice.
	Int64() []int64
	// Int128 returns a slice of 128-bit integers.
	Int128() []uint128.Uint128
	// Bytes returns the flat bytes storage.
	Bytes() *Bytes
	// Field returns the ith field column of a composite Vec.
	Field(i int) Vec

	// Nulls returns the null bitmap.
	Nulls() *Nulls
	// MaybeHasNulls returns false when the Vec definitely holds no null
	// values.
	MaybeHasNulls() bool
}

type memColumn struct {
	t      *types.T
	length int
	col    column
	fields []Vec
	nulls  Nulls
}

var _ Vec = &memColumn{}

// NewMemColumn returns a new in-memory Vec of the given logical type,
// initialized with a length.
func NewMemColumn(t *types.T, n int) Vec {
	m := &memColumn{t: t, length: n, nulls: NewNulls(n)}
	switch t.Kind() {
	case coltypes.Bool:
		m.col = make([]bool, n)
	case coltypes.Uint8:
		m.col = make([]uint8, n)
	case coltypes.Int64:
		m.col = make([]int64, n)
	case coltypes.Int128:
		m.col = make([]uint128.Uint128, n)
	case coltypes.Bytes:
		m.col = NewBytes(n)
	case coltypes.Composite:
		m.fields = make([]Vec, len(t.Fields()))
		for i, ft := range t.Fields() {
			m.fields[i] = NewMemColumn(ft, n)
		}
	default:
		panic(errors.AssertionFailedf("unhandled type %s", t.Kind()))
	}
	return m
}

func (m *memColumn) Type() *types.T { return m.t }
func (m *memColumn) Length() int    { return m.length }

func (m *memColumn) Bool() []bool {
	return m.col.([]bool)
}

func (m *memColumn) Uint8() []uint8 {
	return m.col.([]uint8)
}

func (m *memColumn) Int64() []int64 {
	return m.col.([]int64)
}

func (m *memColumn) Int128() []uint128.Uint128 {
	return m.col.([]uint128.Uint128)
}

func (m *memColumn) Bytes() *Bytes {
	return m.col.(*Bytes)
}

func (m *memColumn) Field(i int) Vec {
	if m.fields == nil {
		panic(errors.AssertionFailedf("Field called on non-composite %s vec", m.t))
	}
	return m.fields[i]
}

func (m *memColumn) Nulls() *Nulls {
	return &m.nulls
}

func (m *memColumn) MaybeHasNulls() bool {
	return m.nulls.maybeHasNulls
}
