// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"cmp"
	"reflect"
)

// Lifecycle hooks.
//
// Go values are copied and moved bitwise. An alternative that owns state which
// must not be shared between copies, or that must observe its own destruction,
// opts in by implementing one or more of the interfaces below on its pointer
// type. Hooks are detected once per alternative type.

// Cloner is implemented by alternatives whose copies must not share state with
// the source. Clone is the copy constructor; a non-nil error aborts the copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by alternatives that cannot be relocated bitwise.
// MoveFrom is called on a zero receiver for move construction and on a live
// receiver for move assignment, in which case it must release the receiver's
// previous state itself. src must be left in a state that Destroy accepts.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Assigner is implemented by alternatives with an in-place copy assignment.
// Without it, copy assignment clones into a temporary, destroys the old value
// and moves the temporary in.
type Assigner[T any] interface {
	Assign(src *T) error
}

// Destroyer is implemented by alternatives that release resources when they
// stop being the active alternative. Destroy must accept the zero value, which
// is what a moved-from slot holds.
type Destroyer interface {
	Destroy()
}

// Equaler overrides == for alternative comparison.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Comparer supplies the ordering of an alternative that is not an ordered
// basic kind. Compare returns <0, 0 or >0.
type Comparer[T any] interface {
	Compare(other T) int
}

// altOps is the type-erased record of one alternative type: its traits and
// the operations the internal dispatch tables call. Every func takes *T
// boxed in any.
type altOps struct {
	typ reflect.Type

	trivialDestroy bool // no Destroyer, no pointers
	trivialCopy    bool // no hooks at all
	trivialMove    bool // no Mover, no Destroyer, no pointers
	nothrowCopy    bool // copy construction cannot fail
	nothrowMove    bool // move construction cannot fail

	copyConstruct func(dst, src any) error
	moveConstruct func(dst, src any) error
	copyAssign    func(dst, src any) error
	moveAssign    func(dst, src any) error
	destroy       func(p any)
	clear         func(p any)
	swap          func(a, b any) error
	equal         func(a, b any) bool
	compare       func(a, b any) int

	constructFrom func(dst, x any) error
	assignFrom    func(dst, x any) error
	temporary     func() any
}

func altOf[T any]() *altOps {
	var p *T
	_, cloner := any(p).(Cloner[T])
	_, mover := any(p).(Mover[T])
	_, assigner := any(p).(Assigner[T])
	_, destroyer := any(p).(Destroyer)
	typ := reflect.TypeFor[T]()
	pointers := hasPointers(typ)
	// a moved-from slot must not keep a second reference to what the
	// destination now owns
	clearSrc := pointers || destroyer

	return &altOps{
		typ:            typ,
		trivialDestroy: !destroyer && !pointers,
		trivialCopy:    !cloner && !mover && !assigner && !destroyer,
		trivialMove:    !mover && !clearSrc,
		nothrowCopy:    !cloner,
		nothrowMove:    !mover,

		copyConstruct: func(dst, src any) error {
			return cloneInto(dst.(*T), src.(*T))
		},
		moveConstruct: func(dst, src any) error {
			return moveInto(dst.(*T), src.(*T), clearSrc)
		},
		copyAssign: func(dst, src any) error {
			return copyAssignTo(dst.(*T), src.(*T), clearSrc)
		},
		moveAssign: func(dst, src any) error {
			return moveAssignTo(dst.(*T), src.(*T), clearSrc)
		},
		destroy: func(p any) {
			destroyAt(p.(*T))
		},
		clear: func(p any) {
			var zero T
			*p.(*T) = zero
		},
		swap: func(a, b any) error {
			return swapAt(a.(*T), b.(*T), clearSrc)
		},
		equal: func(a, b any) bool {
			return equalAt(a.(*T), b.(*T))
		},
		compare: func(a, b any) int {
			return compareAt(a.(*T), b.(*T))
		},
		constructFrom: func(dst, x any) error {
			v := valueOf[T](x)
			return cloneInto(dst.(*T), &v)
		},
		assignFrom: func(dst, x any) error {
			v := valueOf[T](x)
			return copyAssignTo(dst.(*T), &v, clearSrc)
		},
		temporary: func() any {
			return new(T)
		},
	}
}

// valueOf recovers T from a value the selector accepted for T.
// A nil x stands for the zero value of a nilable T.
func valueOf[T any](x any) T {
	if x == nil {
		var zero T
		return zero
	}
	return x.(T)
}

func cloneInto[T any](dst, src *T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = *src
	return nil
}

func moveInto[T any](dst, src *T, clearSrc bool) error {
	if m, ok := any(dst).(Mover[T]); ok {
		return m.MoveFrom(src)
	}
	*dst = *src
	if clearSrc {
		var zero T
		*src = zero
	}
	return nil
}

func copyAssignTo[T any](dst, src *T, clearSrc bool) error {
	if dst == src {
		return nil
	}
	if a, ok := any(dst).(Assigner[T]); ok {
		return a.Assign(src)
	}
	var tmp T
	if err := cloneInto(&tmp, src); err != nil {
		return err
	}
	return moveAssignTo(dst, &tmp, clearSrc)
}

func moveAssignTo[T any](dst, src *T, clearSrc bool) error {
	if dst == src {
		return nil
	}
	if m, ok := any(dst).(Mover[T]); ok {
		return m.MoveFrom(src)
	}
	if d, ok := any(dst).(Destroyer); ok {
		d.Destroy()
	}
	*dst = *src
	if clearSrc {
		var zero T
		*src = zero
	}
	return nil
}

func destroyAt[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

func swapAt[T any](a, b *T, clearSrc bool) error {
	if a == b {
		return nil
	}
	if _, ok := any(a).(Mover[T]); !ok {
		*a, *b = *b, *a
		return nil
	}
	var tmp T
	if err := moveInto(&tmp, a, clearSrc); err != nil {
		return err
	}
	if err := moveAssignTo(a, b, clearSrc); err != nil {
		return err
	}
	return moveAssignTo(b, &tmp, clearSrc)
}

func equalAt[T any](a, b *T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(*b)
	}
	return any(*a) == any(*b)
}

func compareAt[T any](a, b *T) int {
	switch x := any(a).(type) {
	case Comparer[T]:
		return x.Compare(*b)
	case *int:
		return cmp.Compare(*x, *any(b).(*int))
	case *int64:
		return cmp.Compare(*x, *any(b).(*int64))
	case *float64:
		return cmp.Compare(*x, *any(b).(*float64))
	case *string:
		return cmp.Compare(*x, *any(b).(*string))
	}
	return compareKinds(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem())
}

// compareKinds orders the basic kinds, including named types built on them.
func compareKinds(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	}
	panic("variant: alternative " + a.Type().String() + " is not ordered")
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// hasPointers reports whether values of t hold references the garbage
// collector traces.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}

// nilable reports whether nil is a value of t.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
