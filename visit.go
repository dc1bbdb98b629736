// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "sync"

// Visitation.
//
// A visit over M variants selects one of prod(Size) cells of a dense table
// keyed by the operands' active indices. Each cell was built for one index
// tuple and places a pointer to each operand's active alternative into the
// argument vector handed to the callback. Tables depend only on the operand
// sizes and are shared by every visit of the same shape.

// visitCell fills args with the captured alternatives of vs.
type visitCell func(args []any, vs []Alternatives)

// maxCachedOperands bounds the shapes kept in visitTables. Visits over more
// operands build their table on every call.
const maxCachedOperands = 8

type shape struct {
	n    int
	dims [maxCachedOperands]int
}

var visitTables sync.Map // shape -> *table[visitCell]

func visitTable(vs []Alternatives) *table[visitCell] {
	dims := make([]int, len(vs))
	for k, v := range vs {
		dims[k] = v.Size()
	}
	if len(vs) > maxCachedOperands {
		return buildVisitTable(dims)
	}
	key := shape{n: len(dims)}
	copy(key.dims[:], dims)
	if t, ok := visitTables.Load(key); ok {
		return t.(*table[visitCell])
	}
	t, _ := visitTables.LoadOrStore(key, buildVisitTable(dims))
	return t.(*table[visitCell])
}

func buildVisitTable(dims []int) *table[visitCell] {
	return buildTable(dims, func(captured []int) visitCell {
		return func(args []any, vs []Alternatives) {
			for k, i := range captured {
				args[k] = vs[k].slot(i)
			}
		}
	})
}

// lookup returns the cell for the active indices of vs, all of which hold a
// value.
func (t *table[C]) lookup(vs []Alternatives) C {
	off := 0
	for k, v := range vs {
		off = off*t.dims[k] + v.Index()
	}
	return t.cells[off]
}

func checkOperands(vs []Alternatives) error {
	for _, v := range vs {
		if v == nil || v.isNil() || v.ValuelessByException() {
			return badAccess("visit", Npos, Npos)
		}
	}
	return nil
}

// Visit calls f with a pointer to the active alternative of each variant in
// vs, in operand order, and returns its result. The k-th argument is a *T for
// the alternative type T active in vs[k]; f must not retain the argument
// slice.
//
// Visit returns a *BadAccessError without calling f if any operand is nil or
// valueless.
func Visit[R any](f func(alts ...any) R, vs ...Alternatives) (R, error) {
	var zero R
	if err := checkOperands(vs); err != nil {
		return zero, err
	}
	args := acquireArgs(len(vs))
	defer releaseArgs(args)
	visitTable(vs).lookup(vs)(*args, vs)
	return f(*args...), nil
}

// Apply is Visit for callbacks without a result.
func Apply(f func(alts ...any), vs ...Alternatives) error {
	if err := checkOperands(vs); err != nil {
		return err
	}
	args := acquireArgs(len(vs))
	defer releaseArgs(args)
	visitTable(vs).lookup(vs)(*args, vs)
	f(*args...)
	return nil
}
