// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

// cellOf names the combination of active alternatives Visit dispatched to.
func cellOf(alts ...any) int {
	cell := 0
	for _, a := range alts {
		cell *= 2
		switch a.(type) {
		case *int:
		case *string:
			cell++
		default:
			panic(fmt.Sprintf("unexpected alternative %T", a))
		}
	}
	return cell
}

func set(v *variant.Variant2[int, string], i int) {
	if i == 0 {
		v.Set0(i)
		return
	}
	v.Set1("s")
}

func TestVisitTwoOperandsAllCombinations(t *testing.T) {
	var counts [4]int
	for a := range 2 {
		for b := range 2 {
			var v, w variant.Variant2[int, string]
			set(&v, a)
			set(&w, b)
			got, err := variant.Visit(func(alts ...any) int {
				c := cellOf(alts...)
				counts[c]++
				return c
			}, &v, &w)
			require.NoError(t, err)
			assert.Equal(t, a*2+b, got, "indices (%d, %d)", a, b)
		}
	}
	assert.Equal(t, [4]int{1, 1, 1, 1}, counts)
}

func TestVisitPassesSlotPointers(t *testing.T) {
	var v variant.Variant3[int, string, float64]
	v.Set1("before")
	err := variant.Apply(func(alts ...any) {
		*alts[0].(*string) = "after"
	}, &v)
	require.NoError(t, err)
	s, _ := v.Get1()
	assert.Equal(t, "after", s)
}

func TestVisitMixedArities(t *testing.T) {
	var a variant.Variant1[int]
	var b variant.Variant3[bool, string, float64]
	var c variant.Variant2[int, string]
	a.Set0(1)
	b.Set2(2.5)
	c.Set1("three")
	got, err := variant.Visit(func(alts ...any) string {
		return fmt.Sprint(*alts[0].(*int), *alts[1].(*float64), *alts[2].(*string))
	}, &a, &b, &c)
	require.NoError(t, err)
	assert.Equal(t, "1 2.5 three", got)
}

func TestVisitManyOperands(t *testing.T) {
	vs := make([]variant.Alternatives, 10)
	for k := range vs {
		v := new(variant.Variant2[int, string])
		v.Set0(k)
		vs[k] = v
	}
	sum, err := variant.Visit(func(alts ...any) int {
		s := 0
		for _, a := range alts {
			s += *a.(*int)
		}
		return s
	}, vs...)
	require.NoError(t, err)
	assert.Equal(t, 45, sum)
}

func TestVisitNoOperands(t *testing.T) {
	got, err := variant.Visit(func(alts ...any) int { return len(alts) })
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestVisitValuelessOperand(t *testing.T) {
	var v, w variant.Variant2[int, string]
	w.Destroy()
	called := false
	_, err := variant.Visit(func(...any) int {
		called = true
		return 0
	}, &v, &w)
	require.ErrorIs(t, err, variant.ErrBadAccess)
	assert.False(t, called, "callback ran for a valueless operand")
	assert.ErrorIs(t, variant.Apply(func(...any) {}, &w), variant.ErrBadAccess)
}

func TestVisitNilOperand(t *testing.T) {
	var v *variant.Variant2[int, string]
	_, err := variant.Visit(func(...any) int { return 0 }, v)
	assert.ErrorIs(t, err, variant.ErrBadAccess)
	_, err = variant.Visit(func(...any) int { return 0 }, nil)
	assert.ErrorIs(t, err, variant.ErrBadAccess)
}

func TestMatch(t *testing.T) {
	var v variant.Variant3[int, string, []byte]
	describe := func() (string, error) {
		return variant.Match3(&v,
			func(i *int) string { return fmt.Sprintf("int %d", *i) },
			func(s *string) string { return "string " + *s },
			func(b *[]byte) string { return fmt.Sprintf("bytes %d", len(*b)) },
		)
	}
	cases := []struct {
		set  func()
		want string
	}{
		{func() { v.Set0(3) }, "int 3"},
		{func() { v.Set1("x") }, "string x"},
		{func() { v.Set2([]byte("abc")) }, "bytes 3"},
	}
	for _, c := range cases {
		c.set()
		got, err := describe()
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	v.Destroy()
	_, err := describe()
	assert.ErrorIs(t, err, variant.ErrBadAccess)
	var nilV *variant.Variant2[int, string]
	_, err = variant.Match2(nilV, func(*int) int { return 0 }, func(*string) int { return 1 })
	assert.ErrorIs(t, err, variant.ErrBadAccess)
}
