// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package coltypes enumerates the physical storage types a column
// vector can be backed by. Logical types (pkg/sql/types) are thin
// semantic labels over these.
package coltypes

import "fmt"

// T represents a physical storage type.
type T int

const (
	// Unhandled is the zero value and does not correspond to any
	// physical storage.
	Unhandled T = iota
	// Bool is a column of bools.
	Bool
	// Uint8 is a column of uint8s.
	Uint8
	// Int64 is a column of int64s.
	Int64
	// Int128 is a column of unsigned 128-bit integers.
	Int128
	// Bytes is a column of variable-length byte slices.
	Bytes
	// Composite is a column materialized as parallel per-field columns
	// of equal length.
	Composite
	// Array is a variable-length list of elements of a single type. It
	// has no flat columnar representation; array values only occur at
	// the datum level.
	Array
)

func (t T) String() string {
	switch t {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int64:
		return "int64"
	case Int128:
		return "int128"
	case Bytes:
		return "bytes"
	case Composite:
		return "composite"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("unhandled(%d)", int(t))
	}
}
