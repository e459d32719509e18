// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package colexecbase

import (
	"sort"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/col/coldata"
)

// ErrRowRejected is the per-row error recorded in place of the
// detailed one when error details are suppressed. The fact of failure
// is preserved; the message is not.
var ErrRowRejected = errors.New("row value rejected")

// skipErrorDetailsDefault is the process-wide default for
// EvalCtx.SkipErrorDetails, for contexts that intentionally discard
// error text for performance.
var skipErrorDetailsDefault atomic.Bool

// SetSkipErrorDetailsDefault sets the process-wide default error
// detail mode and returns the previous value.
func SetSkipErrorDetailsDefault(skip bool) bool {
	return skipErrorDetailsDefault.Swap(skip)
}

// EvalCtx carries the per-row outcomes of a single vectorized call.
// One EvalCtx serves one call over one batch; it is not safe for
// concurrent use.
type EvalCtx struct {
	// SkipErrorDetails, when set, replaces every recorded row error with
	// ErrRowRejected.
	SkipErrorDetails bool

	rowErrs map[int]error
}

// NewEvalCtx returns an EvalCtx with the process-wide error detail
// mode.
func NewEvalCtx() *EvalCtx {
	return &EvalCtx{SkipErrorDetails: skipErrorDetailsDefault.Load()}
}

// SetRowError records a failure outcome for one row. It never aborts
// the enclosing call.
func (c *EvalCtx) SetRowError(row int, err error) {
	if c.rowErrs == nil {
		c.rowErrs = make(map[int]error)
	}
	if c.SkipErrorDetails {
		err = ErrRowRejected
	}
	c.rowErrs[row] = err
}

// RowError returns the error recorded for row, nil if the row
// succeeded.
func (c *EvalCtx) RowError(row int) error {
	return c.rowErrs[row]
}

// Failed reports whether a failure was recorded for row.
func (c *EvalCtx) Failed(row int) bool {
	_, ok := c.rowErrs[row]
	return ok
}

// NumErrors returns the number of rows that failed.
func (c *EvalCtx) NumErrors() int {
	return len(c.rowErrs)
}

// FailedRows returns the failed row indices in ascending order.
func (c *EvalCtx) FailedRows() []int {
	rows := make([]int, 0, len(c.rowErrs))
	for row := range c.rowErrs {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// ApplyToSelected invokes fn for every active row. A non-nil return is
// recorded as that row's outcome; processing always advances to the
// next active row.
func (c *EvalCtx) ApplyToSelected(rows coldata.Sel, fn func(row int) error) {
	rows.ForEach(func(row int) {
		if err := fn(row); err != nil {
			c.SetRowError(row, err)
		}
	})
}
