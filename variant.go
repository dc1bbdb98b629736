// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"reflect"
)

//go:generate go run ./cmd/variantgen --min 1 --max 8 --out .

// Npos is the index reported by a valueless variant.
const Npos = -1

// Alternatives is the arity-independent view of a variant.
// It is implemented by *Variant1 through *Variant8 and by no type outside
// this package.
type Alternatives interface {
	// Index returns the active alternative, or Npos when valueless.
	Index() int
	// ValuelessByException reports whether no alternative is live.
	ValuelessByException() bool
	// Size returns the number of alternatives.
	Size() int
	// Assign performs a converting assignment from x.
	Assign(x any) error
	// EmplaceIndex destroys the current value and constructs alternative i.
	EmplaceIndex(i int, ctor func(slot any) error) (any, error)
	// Destroy destroys the active alternative and leaves the variant valueless.
	Destroy()

	slot(i int) any
	layout() *layout
	abandon()
	construct(i int, ctor func(slot any) error) error
	isNil() bool
	baseOf() any
}

// Pointer constrains a type parameter to *V for a variant type V, letting
// the compiler infer P from V in calls such as From[Variant2[int, string]](x).
type Pointer[V any] interface {
	*V
	Alternatives
}

// base is the lifetime-managed container: an active index and the storage.
// It owns destruction of the active alternative and the valueless state.
// The zero base holds the zero value of alternative 0.
type base[S any, P slots[S]] struct {
	index   int
	storage S
}

func (b *base[S, P]) Index() int { return b.index }

func (b *base[S, P]) ValuelessByException() bool { return b.index == Npos }

func (b *base[S, P]) Size() int { return b.layout().size() }

func (b *base[S, P]) slot(i int) any { return P(&b.storage).slot(i) }

func (b *base[S, P]) layout() *layout { return layoutOf[S, P]() }

// abandon marks a fresh container as holding nothing, without destroying the
// zero value it was born with.
func (b *base[S, P]) abandon() { b.index = Npos }

func (b *base[S, P]) baseOf() any { return b }

// Destroy destroys the active alternative, if any, and leaves the variant
// valueless.
func (b *base[S, P]) Destroy() { b.destroy(b.layout()) }

func (b *base[S, P]) destroy(l *layout) {
	if b.index == Npos {
		return
	}
	if !l.trivialDestroy {
		l.destroyT.at(b.index)(b.slot(b.index))
	}
	b.index = Npos
}

// construct builds alternative i in a container that holds nothing.
// ctor always sees a zeroed slot. The index is set before ctor runs; if ctor
// returns an error or panics, the slot is cleared, the container is left
// valueless, and the failure propagates unchanged.
func (b *base[S, P]) construct(i int, ctor func(slot any) error) (err error) {
	alt := b.layout().alts[i]
	// a trivial destroy leaves the old bytes in place
	alt.clear(b.slot(i))
	b.index = i
	settled := false
	defer func() {
		if !settled {
			b.index = Npos
			alt.clear(b.slot(i))
		}
	}()
	if err = ctor(b.slot(i)); err != nil {
		return err
	}
	settled = true
	return nil
}

// emplace destroys the current value and constructs alternative i. Between
// the two steps the variant is valueless, and it stays so if ctor fails.
func (b *base[S, P]) emplace(i int, ctor func(slot any) error) error {
	b.destroy(b.layout())
	return b.construct(i, ctor)
}

// EmplaceIndex destroys the current value and constructs alternative i in
// place with ctor, which receives a *Ti pointing at the zeroed slot. A nil
// ctor leaves the zero value. It returns the slot on success; on failure the
// variant is valueless.
func (b *base[S, P]) EmplaceIndex(i int, ctor func(slot any) error) (any, error) {
	if i < 0 || i >= b.Size() {
		return nil, ErrIndexOutOfRange
	}
	if ctor == nil {
		ctor = func(any) error { return nil }
	}
	if err := b.emplace(i, ctor); err != nil {
		return nil, err
	}
	return b.slot(i), nil
}

// Assign stores x in the alternative selected for its dynamic type.
//
// If that alternative is active, it is assigned in place and the variant
// never becomes valueless. Otherwise the old value is destroyed and the new
// one constructed; see constructsDirectly for when a temporary is built
// first so that a failure leaves the old value intact.
func (b *base[S, P]) Assign(x any) error {
	l := b.layout()
	j, err := l.selectFor(x)
	if err != nil {
		return err
	}
	if j == selfSelection {
		src, err := selfOf[S, P](x)
		if err != nil {
			return err
		}
		return b.copyAssign(src)
	}
	alt := l.alts[j]
	if b.index == j {
		return alt.assignFrom(b.slot(j), x)
	}
	if constructsDirectly(alt) {
		return b.emplace(j, func(slot any) error {
			return alt.constructFrom(slot, x)
		})
	}
	tmp := alt.temporary()
	if err := alt.constructFrom(tmp, x); err != nil {
		return err
	}
	return b.emplace(j, func(slot any) error {
		return alt.moveConstruct(slot, tmp)
	})
}

// selfOf returns the base of x, a variant of the same type as b or a pointer
// to one. A value is copied bitwise first so that it is addressable.
func selfOf[S any, P slots[S]](x any) (*base[S, P], error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, &ConversionError{Type: rv.Type(), Err: ErrNoAlternative}
		}
	} else {
		cp := reflect.New(rv.Type())
		cp.Elem().Set(rv)
		rv = cp
	}
	return rv.Interface().(Alternatives).baseOf().(*base[S, P]), nil
}

// constructsDirectly is the converting-assignment policy.
//
// Direct construction into the slot is used when it cannot fail, or when the
// alternative's move construction can fail, so that a temporary would not
// protect anything. In every other case the value is completed in a
// temporary and moved in after the old value is destroyed; the move cannot
// fail, so a failure leaves the variant holding its old value.
func constructsDirectly(a *altOps) bool {
	return a.nothrowCopy || !a.nothrowMove
}

// copyConstruct makes the fresh container b a copy of src.
func (b *base[S, P]) copyConstruct(src *base[S, P]) error {
	l := b.layout()
	switch {
	case src.index == Npos:
		b.index = Npos
		return nil
	case l.trivialCopy:
		*b = *src
		return nil
	}
	b.index = Npos
	cell := l.copyT.internal(b.index, src.index)
	from := src.slot(src.index)
	return b.construct(src.index, func(slot any) error { return cell(slot, from) })
}

// moveConstruct moves src into the fresh container b. src keeps its index
// and holds the moved-from value.
func (b *base[S, P]) moveConstruct(src *base[S, P]) error {
	l := b.layout()
	switch {
	case src.index == Npos:
		b.index = Npos
		return nil
	case l.trivialMove:
		*b = *src
		return nil
	}
	b.index = Npos
	cell := l.moveT.internal(b.index, src.index)
	from := src.slot(src.index)
	return b.construct(src.index, func(slot any) error { return cell(slot, from) })
}

// copyAssign assigns a copy of src to b.
//
// A valueless src makes b valueless. Equal indices assign in place. Otherwise
// the old value is destroyed before the copy is constructed, and b stays
// valueless if that fails.
func (b *base[S, P]) copyAssign(src *base[S, P]) error {
	if b == src {
		return nil
	}
	l := b.layout()
	switch {
	case src.index == Npos:
		b.destroy(l)
		return nil
	case l.trivialCopy:
		// dead slots are never read
		*b = *src
		return nil
	case b.index == src.index:
		return l.copyAssignT.at(b.index, src.index)(b.slot(b.index), src.slot(src.index))
	}
	b.destroy(l)
	cell := l.copyT.internal(b.index, src.index)
	from := src.slot(src.index)
	return b.construct(src.index, func(slot any) error { return cell(slot, from) })
}

// moveAssign is copyAssign with moves.
func (b *base[S, P]) moveAssign(src *base[S, P]) error {
	if b == src {
		return nil
	}
	l := b.layout()
	switch {
	case src.index == Npos:
		b.destroy(l)
		return nil
	case l.trivialMove:
		*b = *src
		return nil
	case b.index == src.index:
		return l.moveAssignT.at(b.index, src.index)(b.slot(b.index), src.slot(src.index))
	}
	b.destroy(l)
	cell := l.moveT.internal(b.index, src.index)
	from := src.slot(src.index)
	return b.construct(src.index, func(slot any) error { return cell(slot, from) })
}

// swap exchanges b and o.
//
// Equal indices swap the alternatives in place. If one side is valueless,
// the other is moved across and destroyed, so ownership is transferred and
// not duplicated. Different alternatives rotate through a temporary.
func (b *base[S, P]) swap(o *base[S, P]) error {
	if b == o {
		return nil
	}
	l := b.layout()
	switch {
	case b.index == Npos && o.index == Npos:
		return nil
	case l.trivialMove:
		*b, *o = *o, *b
		return nil
	case b.index == o.index:
		return l.swapT.at(b.index, o.index)(b.slot(b.index), o.slot(o.index))
	case b.index == Npos:
		if err := b.moveAssign(o); err != nil {
			return err
		}
		o.destroy(l)
		return nil
	case o.index == Npos:
		if err := o.moveAssign(b); err != nil {
			return err
		}
		b.destroy(l)
		return nil
	}
	var tmp base[S, P]
	if err := tmp.moveConstruct(b); err != nil {
		return err
	}
	defer tmp.destroy(l)
	if err := b.moveAssign(o); err != nil {
		return err
	}
	return o.moveAssign(&tmp)
}

// String formats the active alternative as variant(index: value).
func (b *base[S, P]) String() string {
	if b.index == Npos {
		return "variant(valueless)"
	}
	return fmt.Sprintf("variant(%d: %v)", b.index, reflect.ValueOf(b.slot(b.index)).Elem())
}

// typed adapts a typed in-place constructor to a slot constructor.
func typed[T any](ctor func(*T) error) func(slot any) error {
	return func(slot any) error {
		if ctor == nil {
			return nil
		}
		return ctor(slot.(*T))
	}
}

// copied constructs a slot as a copy of x.
func copied[T any](x T) func(slot any) error {
	return func(slot any) error {
		return cloneInto(slot.(*T), &x)
	}
}
