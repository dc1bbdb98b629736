// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides discriminated unions over a fixed, ordered set of
// alternative types.
//
// A [Variant2] through [Variant8] holds exactly one value of one of its
// alternatives and remembers which one is active. When an operation fails
// after the old value has been destroyed and before the new one is complete,
// the variant holds nothing: it is valueless, [Npos] is its index, and every
// typed access reports [ErrBadAccess] until a later assignment succeeds.
//
// # Design Philosophy
//
// variant provides:
//   - One live alternative at a time, tracked by an index the storage never touches
//   - An explicit state machine for construction, assignment and emplacement under failure
//   - Dense dispatch tables keyed by active indices, built once per shape and reused
//
// # F-Bounded Storage
//
// Each arity has a recursive storage type storageN{head T0; rest storageN-1}
// and a container VariantN embedding base[storageN, *storageN]. The pointer
// constraint of base is F-bounded on the storage, so the compiler knows the
// concrete storage at every instantiation, and all lifetime logic is written
// once for every arity. The arity types are generated by cmd/variantgen.
//
// # Lifecycle Hooks
//
// Go copies and moves values bitwise and has neither destructors nor
// exceptions. Alternatives that need more opt in on their pointer type:
//
//   - [Cloner]: copy construction that may fail
//   - [Mover]: move construction and move assignment that may fail
//   - [Assigner]: in-place copy assignment
//   - [Destroyer]: release when the alternative stops being active
//   - [Equaler], [Comparer]: equality and ordering beyond == and the ordered kinds
//
// Hooks report failure by returning an error, which propagates unchanged, or
// by panicking. In both cases the variant first settles into a well-defined
// state: the old value if it was never touched, otherwise valueless.
//
// # Construction
//
//   - The zero value: alternative 0 holding the zero T0
//   - [From]: converting construction; an identical alternative wins over an interface x implements
//   - [InPlaceIndex], [InPlaceType]: tagged construction in place
//   - Variant2.Clone, Variant2.Move: copy and move construction
//
// # Assignment
//
//   - Variant2.CopyFrom, Variant2.MoveFrom: assign another variant of the same type
//   - [Alternatives].Assign: converting assignment
//   - Variant2.Emplace0, Variant2.Set0, [EmplaceType], [Alternatives].EmplaceIndex: destroy then build
//   - Variant2.Swap, [Swap]: exchange two variants
//
// Equal active indices assign in place and never leave the variant valueless.
// Different indices destroy the old value before the new one is built. A
// converting assignment whose copy may fail but whose move may not builds
// the new value in a temporary first, so that a failure keeps the old value.
//
// # Access
//
//   - [Alternatives].Index, [Alternatives].ValuelessByException, [Alternatives].Size
//   - Variant2.Get0, [Get]: the value, or a [*BadAccessError]
//   - Variant2.GetIf0, [GetIf]: a pointer, or nil; both accept a nil variant
//   - [HoldsAlternative], [IndexOf], [TypeAt]
//
// # Visitation
//
//   - [Visit], [Apply]: call a function with the active alternatives of any number of variants
//   - [Match2]: typed single-variant dispatch, one function per alternative
//
// Visit selects one cell of a table with one cell per combination of active
// indices. Tables depend only on the operands' sizes and are cached.
//
// # Comparison
//
//   - [Equal], [NotEqual], [Less], [Greater], [LessEqual], [GreaterEqual], [Compare]
//
// A valueless variant orders before every holding variant and equals only
// another valueless variant. Otherwise the index is compared first and the
// values second.
//
// # Example
//
//	var v variant.Variant2[int, string]
//	if err := v.Assign("hello"); err != nil {
//		return err
//	}
//	n, _ := variant.Match2(&v,
//		func(i *int) int { return *i },
//		func(s *string) int { return len(*s) },
//	)
//	// n == 5
package variant
