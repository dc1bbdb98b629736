// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "reflect"

// From returns a V holding x in the alternative selected for the dynamic type
// of x: an identical alternative, otherwise the unique interface alternative
// x implements. An untyped nil selects the unique nilable alternative. A V or
// a non-nil *V is copied, as by CopyFrom, instead of being wrapped.
//
// A selection failure returns the zero V and a *ConversionError. A failed
// construction returns a valueless V and the hook's error.
func From[V any, P Pointer[V]](x any) (V, error) {
	var v V
	p := P(&v)
	l := p.layout()
	i, err := l.selectFor(x)
	if err != nil {
		return v, err
	}
	if i == selfSelection {
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return v, &ConversionError{Type: rv.Type(), Err: ErrNoAlternative}
		}
		p.abandon()
		err = p.Assign(x)
		return v, err
	}
	alt := l.alts[i]
	p.abandon()
	err = p.construct(i, func(slot any) error { return alt.constructFrom(slot, x) })
	return v, err
}

// InPlaceIndex returns a V holding alternative i, built in place by ctor.
// ctor receives a *Ti pointing at the zeroed slot; a nil ctor leaves the zero
// value. If ctor fails the returned V is valueless.
func InPlaceIndex[V any, P Pointer[V]](i int, ctor func(slot any) error) (V, error) {
	var v V
	p := P(&v)
	if i < 0 || i >= p.Size() {
		return v, ErrIndexOutOfRange
	}
	if ctor == nil {
		ctor = func(any) error { return nil }
	}
	p.abandon()
	err := p.construct(i, ctor)
	return v, err
}

// InPlaceType returns a V holding its T alternative, built in place by ctor.
// It panics if T is not exactly one of the alternatives of V.
func InPlaceType[V any, T any, P Pointer[V]](ctor func(*T) error) (V, error) {
	var v V
	p := P(&v)
	i := mustIndex[T](p)
	p.abandon()
	err := p.construct(i, typed(ctor))
	return v, err
}

// EmplaceType destroys the value held by v and builds its T alternative in
// place with ctor. On failure v is valueless. It panics if T is not exactly
// one of the alternatives of v.
func EmplaceType[T any, V any, P Pointer[V]](v P, ctor func(*T) error) (*T, error) {
	slot, err := v.EmplaceIndex(mustIndex[T](v), typed(ctor))
	if err != nil {
		return nil, err
	}
	return slot.(*T), nil
}

// Get returns the T alternative of v. It returns a *BadAccessError if v does
// not hold a T; a nil v holds nothing.
func Get[T any, V any, P Pointer[V]](v P) (T, error) {
	if p := GetIf[T, V, P](v); p != nil {
		return *p, nil
	}
	var zero T
	var at V
	active := Npos
	if v != nil {
		active = v.Index()
	}
	i, _ := P(&at).layout().uniqueIndex(reflect.TypeFor[T]())
	return zero, badAccess("get", i, active)
}

// GetIf returns a pointer to the T alternative of v, or nil if v is nil or
// does not hold a T.
func GetIf[T any, V any, P Pointer[V]](v P) *T {
	if v == nil {
		return nil
	}
	i, ok := v.layout().uniqueIndex(reflect.TypeFor[T]())
	if !ok || v.Index() != i {
		return nil
	}
	return v.slot(i).(*T)
}

// HoldsAlternative reports whether v holds its T alternative. A nil v holds
// nothing.
func HoldsAlternative[T any, V any, P Pointer[V]](v P) bool {
	if v == nil {
		return false
	}
	i, ok := v.layout().uniqueIndex(reflect.TypeFor[T]())
	return ok && v.Index() == i
}

// IndexOf returns the index of the first T alternative of v, or Npos if T is
// not an alternative. The answer depends only on the type of v, so v may be
// nil.
func IndexOf[T any, V any, P Pointer[V]](v P) int {
	var zero V
	return P(&zero).layout().indexOf(reflect.TypeFor[T]())
}

// TypeAt returns the type of alternative i of v, or nil if i is out of range
// or v is nil.
func TypeAt(v Alternatives, i int) reflect.Type {
	if v == nil || v.isNil() {
		return nil
	}
	alts := v.layout().alts
	if i < 0 || i >= len(alts) {
		return nil
	}
	return alts[i].typ
}

func mustIndex[T any](v Alternatives) int {
	t := reflect.TypeFor[T]()
	i, ok := v.layout().uniqueIndex(t)
	if !ok {
		panic("variant: " + t.String() + " is not an alternative")
	}
	return i
}
