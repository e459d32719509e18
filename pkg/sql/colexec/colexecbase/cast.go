// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package colexecbase defines the contract between the engine and the
// batch-vectorized conversions of extension-defined types.
package colexecbase

import (
	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/col/coldata"
	"github.com/stratosdb/stratos/pkg/sql/types"
)

// CastOperator is the capability a custom type implements to support
// conversions to and from other types over a batch of rows. Operators
// are stateless and safe for concurrent invocation on independent
// batches; all per-call state lives in the EvalCtx.
//
// The engine must consult the Supports predicates before invoking a
// conversion: calling CastInto/CastFrom with an unsupported pair is a
// programming error, reported as a setup-level error before any row is
// touched. Per-row data errors are recorded in the EvalCtx and never
// abort the call.
type CastOperator interface {
	// SupportsSourceType reports whether values of type t can be cast
	// into the custom type.
	SupportsSourceType(t *types.T) bool
	// SupportsDestinationType reports whether values of the custom type
	// can be cast into type t.
	SupportsDestinationType(t *types.T) bool
	// CastInto converts the active rows of input into a freshly
	// allocated column of toType, the custom type. Rows outside the
	// active set are left untouched (null); failed rows are recorded in
	// evalCtx and stay null.
	CastInto(evalCtx *EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T) (coldata.Vec, error)
	// CastFrom converts the active rows of input, a column of the custom
	// type, into a freshly allocated column of toType.
	CastFrom(evalCtx *EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T) (coldata.Vec, error)
}

// UnhandledCastError returns the setup-level error reported when a
// conversion pair has no implemented code path.
func UnhandledCastError(from, to *types.T) error {
	return errors.Newf("unhandled cast %s -> %s", from, to)
}
