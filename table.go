// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "slices"

// table is a dense jump table over the active indices of M operands,
// flattened in row-major order. Each cell is specialized for one index tuple.
type table[C any] struct {
	dims  []int
	cells []C
}

// buildTable recurses over one dimension at a time: every index of the
// current dimension is appended to the captured prefix and the remaining
// dimensions are built below it. When no dimension is left, leaf receives the
// complete captured tuple and emits the cell for it.
func buildTable[C any](dims []int, leaf func(captured []int) C) *table[C] {
	n := 1
	for _, d := range dims {
		n *= d
	}
	t := &table[C]{dims: slices.Clone(dims), cells: make([]C, 0, n)}
	t.level(make([]int, 0, len(dims)), leaf)
	return t
}

func (t *table[C]) level(captured []int, leaf func([]int) C) {
	if len(captured) == len(t.dims) {
		t.cells = append(t.cells, leaf(slices.Clone(captured)))
		return
	}
	for i := range t.dims[len(captured)] {
		t.level(append(captured, i), leaf)
	}
}

// at returns the cell for a complete tuple of active indices.
func (t *table[C]) at(idx ...int) C {
	off := 0
	for k, i := range idx {
		off = off*t.dims[k] + i
	}
	return t.cells[off]
}

// internal returns the cell for operands of which all but the last may be
// valueless. The last operand's index stands in for every valueless one, so
// lifetime operations on a transiently valueless destination still land on
// an existing cell.
func (t *table[C]) internal(idx ...int) C {
	def := idx[len(idx)-1]
	if def == Npos {
		panic("variant: internal dispatch without a holding operand")
	}
	off := 0
	for k, i := range idx {
		if i == Npos {
			i = def
		}
		off = off*t.dims[k] + i
	}
	return t.cells[off]
}

// Cell shapes of the internal tables.
type (
	unaryCell   func(p any)
	binaryCell  func(dst, src any) error
	equalCell   func(a, b any) bool
	compareCell func(a, b any) int
)

func skipBinary(any, any) error { return nil }

// unaryTable builds a one-dimensional table over n alternatives.
func unaryTable(alts []*altOps, op func(*altOps) unaryCell) *table[unaryCell] {
	return buildTable([]int{len(alts)}, func(c []int) unaryCell {
		return op(alts[c[0]])
	})
}

// pairTable builds a two-dimensional table whose diagonal runs op for the
// shared alternative and whose other cells are filled by off.
func pairTable[C any](alts []*altOps, op func(*altOps) C, off C) *table[C] {
	n := len(alts)
	return buildTable([]int{n, n}, func(c []int) C {
		if c[0] != c[1] {
			return off
		}
		return op(alts[c[0]])
	})
}
