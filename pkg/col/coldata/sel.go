// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package coldata

// Sel marks the set of active rows a single call must process. A nil
// index list means all rows [0, n) are active. Index lists are kept in
// ascending order so that writers which require in-order access (flat
// bytes) can consume them directly.
type Sel struct {
	n    int
	idxs []int
}

// AllRows returns a Sel covering every row of an n-row batch.
func AllRows(n int) Sel {
	return Sel{n: n}
}

// Rows returns a Sel covering only the given row indices, which must
// be sorted in ascending order.
func Rows(idxs []int) Sel {
	return Sel{idxs: idxs}
}

// Len returns the number of active rows.
func (s Sel) Len() int {
	if s.idxs == nil {
		return s.n
	}
	return len(s.idxs)
}

// ForEach invokes fn for every active row, in ascending row order.
func (s Sel) ForEach(fn func(row int)) {
	if s.idxs == nil {
		for i := 0; i < s.n; i++ {
			fn(i)
		}
		return
	}
	for _, i := range s.idxs {
		fn(i)
	}
}
