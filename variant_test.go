// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

func TestZeroValueHoldsFirstAlternative(t *testing.T) {
	var v variant.Variant2[int, string]
	assert.Equal(t, 0, v.Index())
	assert.False(t, v.ValuelessByException())
	got, err := v.Get0()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Equal(t, 2, v.Size())
}

func TestAssignSwitchesAlternative(t *testing.T) {
	var v variant.Variant3[int, string, float64]
	require.NoError(t, v.Assign("hello"))
	require.Equal(t, 1, v.Index())
	s, err := v.Get1()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	require.NoError(t, v.Assign(2.5))
	f, err := v.Get2()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
	_, err = v.Get1()
	assert.ErrorIs(t, err, variant.ErrBadAccess)
}

func TestAssignSameAlternativeInPlace(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set1("a")
	p := v.GetIf1()
	require.NoError(t, v.Assign("b"))
	require.Same(t, p, v.GetIf1(), "same-alternative assignment moved the slot")
	assert.Equal(t, "b", *p)
}

func TestEmplaceReturnsSlot(t *testing.T) {
	var v variant.Variant2[int, []int]
	p, err := v.Emplace1(func(s *[]int) error {
		*s = append(*s, 1, 2, 3)
		return nil
	})
	require.NoError(t, err)
	require.Same(t, v.GetIf1(), p)
	assert.Equal(t, []int{1, 2, 3}, *p)
}

func TestEmplaceNilCtorIsZero(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set0(42)
	p, err := v.Emplace1(nil)
	require.NoError(t, err)
	assert.Empty(t, *p)
}

func TestEmplaceNilCtorAfterTrivialAlternatives(t *testing.T) {
	var v variant.Variant2[int, float64]
	v.Set0(42)
	f, err := v.Emplace1(nil)
	require.NoError(t, err)
	assert.Zero(t, *f)

	n, err := v.Emplace0(nil)
	require.NoError(t, err)
	assert.Zero(t, *n, "emplacing a dead slot must not revive its old value")

	v.Set0(7)
	v.Set1(1.5)
	slot, err := v.EmplaceIndex(0, nil)
	require.NoError(t, err)
	assert.Zero(t, *slot.(*int))

	v.Set1(2.5)
	v.Set0(9)
	w, err := variant.InPlaceIndex[variant.Variant2[int, float64]](1, nil)
	require.NoError(t, err)
	assert.Zero(t, *w.GetIf1())
	g, err := v.Emplace1(func(p *float64) error {
		assert.Zero(t, *p, "the constructor sees a zeroed slot")
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, *g)
}

func TestEmplaceIndex(t *testing.T) {
	var v variant.Variant3[int, string, bool]
	slot, err := v.EmplaceIndex(2, func(slot any) error {
		*slot.(*bool) = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, *slot.(*bool))
	assert.Equal(t, 2, v.Index())

	_, err = v.EmplaceIndex(3, nil)
	require.ErrorIs(t, err, variant.ErrIndexOutOfRange)
	assert.Equal(t, 2, v.Index(), "out-of-range emplace touched the variant")
}

func TestEmplaceFailureLeavesValueless(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set0(7)
	_, err := v.Emplace1(func(*string) error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.True(t, v.ValuelessByException())
	assert.Equal(t, variant.Npos, v.Index())
	_, err = v.Get0()
	assert.ErrorIs(t, err, variant.ErrBadAccess)
	assert.Nil(t, v.GetIf0())
	assert.Nil(t, v.GetIf1())

	// a later assignment recovers
	require.NoError(t, v.Assign(3))
	assert.Equal(t, 0, v.Index())
}

func TestNilVariantAccessors(t *testing.T) {
	var v *variant.Variant2[int, string]
	assert.Nil(t, v.GetIf0())
	assert.Nil(t, variant.GetIf[string](v))
	assert.False(t, variant.HoldsAlternative[int](v))
	assert.False(t, variant.HoldsAlternative[float64](v))
	assert.Equal(t, 1, variant.IndexOf[string](v))
	assert.Equal(t, variant.Npos, variant.IndexOf[bool](v))
	assert.Nil(t, variant.TypeAt(v, 0))
	assert.Nil(t, variant.TypeAt(nil, 0))

	_, err := variant.Get[string](v)
	var bad *variant.BadAccessError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 1, bad.Index)
	assert.Equal(t, variant.Npos, bad.Active)
}

func TestGenericAccessors(t *testing.T) {
	var v variant.Variant3[int, string, bool]
	v.Set1("x")
	assert.True(t, variant.HoldsAlternative[string](&v))
	assert.False(t, variant.HoldsAlternative[int](&v))
	assert.False(t, variant.HoldsAlternative[float64](&v), "not an alternative")

	s, err := variant.Get[string](&v)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = variant.Get[bool](&v)
	var bad *variant.BadAccessError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 2, bad.Index)
	assert.Equal(t, 1, bad.Active)

	assert.Nil(t, variant.GetIf[int](&v))
	assert.Equal(t, 2, variant.IndexOf[bool](&v))
	assert.Equal(t, variant.Npos, variant.IndexOf[float64](&v))
	assert.Equal(t, reflect.TypeFor[string](), variant.TypeAt(&v, 1))
	assert.Nil(t, variant.TypeAt(&v, 3))
}

func TestDuplicateAlternativeByIndex(t *testing.T) {
	v, err := variant.InPlaceIndex[variant.Variant2[int, int]](1, func(slot any) error {
		*slot.(*int) = 5
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, v.Index())
	_, err = v.Get0()
	assert.Error(t, err, "Get0 succeeded while holding alternative 1")
	n, _ := v.Get1()
	assert.Equal(t, 5, n)
	assert.Panics(t, func() { _, _ = variant.Get[int](&v) })
}

func TestInPlaceType(t *testing.T) {
	v, err := variant.InPlaceType[variant.Variant2[int, string]](func(s *string) error {
		*s = "tagged"
		return nil
	})
	require.NoError(t, err)
	s, _ := v.Get1()
	assert.Equal(t, "tagged", s)

	_, err = variant.InPlaceType[variant.Variant2[int, string]](func(*string) error { return errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestInPlaceTypeRejectsNonAlternative(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = variant.InPlaceType[variant.Variant2[int, string], float64](nil)
	})
}

func TestInPlaceIndexFailureIsValueless(t *testing.T) {
	v, err := variant.InPlaceIndex[variant.Variant2[int, string]](1, func(any) error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.True(t, v.ValuelessByException())

	_, err = variant.InPlaceIndex[variant.Variant2[int, string]](-1, nil)
	assert.ErrorIs(t, err, variant.ErrIndexOutOfRange)
}

func TestEmplaceType(t *testing.T) {
	var v variant.Variant3[int, string, []byte]
	p, err := variant.EmplaceType(&v, func(b *[]byte) error {
		*b = []byte("raw")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "raw", string(*p))
	assert.Equal(t, 2, v.Index())

	q, err := variant.EmplaceType[string](&v, nil)
	require.NoError(t, err)
	assert.Empty(t, *q)
	assert.Equal(t, 1, v.Index())
}

func TestCloneAndCopyFrom(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set1("copy me")
	w, err := v.Clone()
	require.NoError(t, err)
	assert.True(t, w.Equal(&v), "clone %v differs from %v", &w, &v)

	var u variant.Variant2[int, string]
	require.NoError(t, u.CopyFrom(&v))
	s, _ := u.Get1()
	assert.Equal(t, "copy me", s)
	require.NoError(t, u.CopyFrom(&u))

	v.Destroy()
	w, err = v.Clone()
	require.NoError(t, err)
	assert.True(t, w.ValuelessByException())
	require.NoError(t, u.CopyFrom(&v))
	assert.True(t, u.ValuelessByException())
}

func TestMoveLeavesMovedFromValue(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set1("payload")
	w, err := v.Move()
	require.NoError(t, err)
	s, _ := w.Get1()
	assert.Equal(t, "payload", s)
	assert.Equal(t, 1, v.Index(), "moved-from variant changed index")
	s, _ = v.Get1()
	assert.Empty(t, s)

	var u variant.Variant2[int, string]
	require.NoError(t, u.MoveFrom(&w))
	s, _ = u.Get1()
	assert.Equal(t, "payload", s)
}

func TestMoveTrivialKeepsSource(t *testing.T) {
	var v variant.Variant2[int, float64]
	v.Set1(1.5)
	w, _ := v.Move()
	f, _ := w.Get1()
	assert.Equal(t, 1.5, f)
	f, _ = v.Get1()
	assert.Equal(t, 1.5, f, "trivial move changed the source")
}

func TestString(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set1("hi")
	assert.Equal(t, "variant(1: hi)", v.String())
	v.Destroy()
	assert.Equal(t, "variant(valueless)", v.String())
}

func TestVariant8Recursion(t *testing.T) {
	var v variant.Variant8[int8, int16, int32, int64, uint8, uint16, uint32, string]
	v.Set7("last")
	assert.Equal(t, 7, v.Index())
	assert.Equal(t, 8, v.Size())
	s, _ := v.Get7()
	assert.Equal(t, "last", s)

	v.Set4(200)
	n, _ := v.Get4()
	assert.Equal(t, uint8(200), n)
	assert.Nil(t, v.GetIf7())
}

func TestVariant1(t *testing.T) {
	var v variant.Variant1[string]
	v.Set0("only")
	n, err := variant.Match1(&v, func(s *string) int { return len(*s) })
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
