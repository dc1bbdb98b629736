// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "reflect"

// indexOf returns the first alternative index of type t, or Npos.
func (l *layout) indexOf(t reflect.Type) int {
	if is := l.byType[t]; len(is) > 0 {
		return is[0]
	}
	return Npos
}

// uniqueIndex returns the index of t when t is an alternative, or false when
// it is not. A type listed more than once cannot be named by type.
func (l *layout) uniqueIndex(t reflect.Type) (int, bool) {
	is := l.byType[t]
	switch len(is) {
	case 0:
		return Npos, false
	case 1:
		return is[0], true
	}
	panic("variant: " + t.String() + " is not a unique alternative")
}

// selfSelection is the selection of a value that is a variant of the
// container's own type, or a pointer to one. It is copied, never wrapped.
const selfSelection = -2

var alternativesType = reflect.TypeFor[Alternatives]()

// isSelf reports whether t is a variant type over the same storage as l.
func (l *layout) isSelf(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 1 || !t.Field(0).Anonymous {
		return false
	}
	if !reflect.PointerTo(t).Implements(alternativesType) {
		return false
	}
	f, ok := t.Field(0).Type.FieldByName("storage")
	return ok && f.Type == l.storage
}

type selection struct {
	index int
	err   error
}

// selectFor picks the alternative that a converting construction or
// assignment from x targets. Results are cached per dynamic type.
func (l *layout) selectFor(x any) (int, error) {
	if x == nil {
		return l.selectType(nil)
	}
	xt := reflect.TypeOf(x)
	if s, ok := l.selections.Load(xt); ok {
		s := s.(selection)
		return s.index, s.err
	}
	idx, err := l.selectType(xt)
	l.selections.Store(xt, selection{index: idx, err: err})
	return idx, err
}

// selectType ranks candidates the way an overload set would: an identical
// alternative beats an interface the value implements. Within a rank the
// candidate must be unique. Go has no implicit numeric conversions, so no
// narrowing candidate ever appears. A variant of the container's own type is
// never a candidate for any alternative.
func (l *layout) selectType(xt reflect.Type) (int, error) {
	if xt == nil {
		var nils []int
		for i, a := range l.alts {
			if nilable(a.typ) {
				nils = append(nils, i)
			}
		}
		return pick(xt, nils)
	}
	if l.isSelf(xt) || xt.Kind() == reflect.Pointer && l.isSelf(xt.Elem()) {
		return selfSelection, nil
	}
	if exact := l.byType[xt]; len(exact) > 0 {
		return pick(xt, exact)
	}
	var ifaces []int
	for i, a := range l.alts {
		if a.typ.Kind() == reflect.Interface && xt.Implements(a.typ) {
			ifaces = append(ifaces, i)
		}
	}
	return pick(xt, ifaces)
}

func pick(xt reflect.Type, candidates []int) (int, error) {
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return Npos, &ConversionError{Type: xt, Err: ErrNoAlternative}
	}
	return Npos, &ConversionError{Type: xt, Err: ErrAmbiguousAlternative}
}
