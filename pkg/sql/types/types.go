// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package types defines the logical type descriptors used throughout
// the engine. A logical type is a thin semantic label over a physical
// storage type: two logical types may share the same physical layout
// (e.g. IPADDRESS is stored as an int128) while remaining distinct for
// type checking and function resolution.
package types

import (
	"strings"

	"github.com/stratosdb/stratos/pkg/col/coltypes"
)

// T is an immutable logical type descriptor. A (kind, name) pair
// identifies the type. T values are shared: the predefined types below
// and every registered custom type are singletons, so pointer equality
// is usually sufficient, but Identical is the authoritative check.
type T struct {
	kind   coltypes.T
	name   string
	params []*T
	fields []*T
}

// Predefined logical types.
var (
	// Unknown is the type of the untyped NULL, with no physical storage.
	Unknown = &T{kind: coltypes.Unhandled, name: "UNKNOWN"}
	// Bool is the BOOLEAN logical type.
	Bool = &T{kind: coltypes.Bool, name: "BOOLEAN"}
	// Int is the BIGINT logical type.
	Int = &T{kind: coltypes.Int64, name: "BIGINT"}
	// TinyInt is the TINYINT logical type, stored as a uint8.
	TinyInt = &T{kind: coltypes.Uint8, name: "TINYINT"}
	// HugeInt is the HUGEINT logical type, stored as a 128-bit integer.
	HugeInt = &T{kind: coltypes.Int128, name: "HUGEINT"}
	// String is the VARCHAR logical type.
	String = &T{kind: coltypes.Bytes, name: "VARCHAR"}
)

// MakeScalar constructs a custom scalar logical type over the given
// physical storage kind. The caller is expected to retain the returned
// value as a singleton.
func MakeScalar(kind coltypes.T, name string) *T {
	return &T{kind: kind, name: strings.ToUpper(name)}
}

// MakeComposite constructs a custom composite logical type whose
// values are materialized as parallel per-field columns. The field
// list describes the physical children; it is not part of the type's
// parameter list.
func MakeComposite(name string, fields ...*T) *T {
	return &T{kind: coltypes.Composite, name: strings.ToUpper(name), fields: fields}
}

// MakeArray constructs an array type over the given element type.
func MakeArray(elem *T) *T {
	return &T{kind: coltypes.Array, name: "ARRAY", params: []*T{elem}}
}

// Kind returns the physical storage type.
func (t *T) Kind() coltypes.T { return t.kind }

// Name returns the unique logical name, e.g. "VARCHAR" or "IPPREFIX".
func (t *T) Name() string { return t.name }

// Params returns the ordered list of nested type parameters. It is
// empty for all non-parameterized types, including composites (whose
// field layout is reported by Fields instead).
func (t *T) Params() []*T { return t.params }

// Fields returns the physical field types of a composite type, nil
// otherwise.
func (t *T) Fields() []*T { return t.fields }

// Identical returns whether the two types have the same kind, name and
// parameters.
func (t *T) Identical(other *T) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind || t.name != other.name || len(t.params) != len(other.params) {
		return false
	}
	for i := range t.params {
		if !t.params[i].Identical(other.params[i]) {
			return false
		}
	}
	return true
}

func (t *T) String() string {
	if t.kind == coltypes.Array {
		return "ARRAY(" + t.params[0].String() + ")"
	}
	return t.name
}

// IdenticalArgs returns whether the two ordered argument type lists
// match exactly.
func IdenticalArgs(a, b []*T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Identical(b[i]) {
			return false
		}
	}
	return true
}
