// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "cmp"

// Relational operators.
//
// A valueless variant is the unique minimum: it equals only another valueless
// variant and is less than every variant holding a value. Between two holding
// variants the index is the primary key; equal indices compare the active
// alternatives through the layout's equality and ordering tables.

func equalOf(v, w Alternatives) bool {
	i, j := v.Index(), w.Index()
	if i != j {
		return false
	}
	if i == Npos {
		return true
	}
	return v.layout().equalT.at(i, j)(v.slot(i), w.slot(j))
}

func compareOf(v, w Alternatives) int {
	i, j := v.Index(), w.Index()
	if i != j {
		// Npos sorts below every index
		return cmp.Compare(i, j)
	}
	if i == Npos {
		return 0
	}
	return v.layout().compareT.at(i, j)(v.slot(i), w.slot(j))
}

// Equal reports whether v and w hold the same alternative with equal values,
// or are both valueless.
func Equal[V any, P Pointer[V]](v, w P) bool { return equalOf(v, w) }

// NotEqual is !Equal(v, w).
func NotEqual[V any, P Pointer[V]](v, w P) bool { return !equalOf(v, w) }

// Compare returns a negative number, zero or a positive number as v orders
// before, with or after w.
func Compare[V any, P Pointer[V]](v, w P) int { return compareOf(v, w) }

// Less reports whether v orders before w.
func Less[V any, P Pointer[V]](v, w P) bool { return compareOf(v, w) < 0 }

// Greater reports whether v orders after w.
func Greater[V any, P Pointer[V]](v, w P) bool { return compareOf(v, w) > 0 }

// LessEqual reports whether v does not order after w.
func LessEqual[V any, P Pointer[V]](v, w P) bool { return compareOf(v, w) <= 0 }

// GreaterEqual reports whether v does not order before w.
func GreaterEqual[V any, P Pointer[V]](v, w P) bool { return compareOf(v, w) >= 0 }

// Swap exchanges the contents of v and w. See the Swap method of the variant
// types for the failure behavior.
func Swap[V any, P Pointer[V]](v, w P) error {
	return any(v).(interface{ Swap(P) error }).Swap(w)
}
