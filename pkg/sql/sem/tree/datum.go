// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package tree holds the runtime value representation scalar functions
// operate on, and the registry those functions are resolved from.
package tree

import (
	"strconv"
	"strings"

	"github.com/stratosdb/stratos/pkg/sql/types"
)

// Datum is a boxed runtime value with its logical type.
type Datum interface {
	// ResolvedType returns the logical type of the value.
	ResolvedType() *types.T
	String() string
}

// Datums is a slice of Datum values.
type Datums []Datum

// ArgTypes returns the ordered logical types of the values, the form
// function resolution consumes.
func (d Datums) ArgTypes() []*types.T {
	typs := make([]*types.T, len(d))
	for i, datum := range d {
		typs[i] = datum.ResolvedType()
	}
	return typs
}

// HasNulls reports whether any of the values is NULL.
func (d Datums) HasNulls() bool {
	for _, datum := range d {
		if datum == DNull {
			return true
		}
	}
	return false
}

// dNull is the NULL datum.
type dNull struct{}

// DNull is the singleton NULL Datum.
var DNull Datum = dNull{}

func (dNull) ResolvedType() *types.T { return types.Unknown }
func (dNull) String() string         { return "NULL" }

// DBool is the boolean Datum.
type DBool bool

func (d DBool) ResolvedType() *types.T { return types.Bool }
func (d DBool) String() string         { return strconv.FormatBool(bool(d)) }

// DInt is the BIGINT Datum.
type DInt int64

func (d DInt) ResolvedType() *types.T { return types.Int }
func (d DInt) String() string         { return strconv.FormatInt(int64(d), 10) }

// DString is the VARCHAR Datum.
type DString string

func (d DString) ResolvedType() *types.T { return types.String }
func (d DString) String() string         { return string(d) }

// DArray is an array Datum over a single element type.
type DArray struct {
	ParamTyp *types.T
	Array    Datums
}

// NewDArray returns an empty DArray of the given element type.
func NewDArray(paramTyp *types.T) *DArray {
	return &DArray{ParamTyp: paramTyp}
}

// Append appends a value to the array.
func (d *DArray) Append(v Datum) {
	d.Array = append(d.Array, v)
}

func (d *DArray) ResolvedType() *types.T { return types.MakeArray(d.ParamTyp) }

func (d *DArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range d.Array {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
