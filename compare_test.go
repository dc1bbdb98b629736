// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"math"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

type pair = variant.Variant2[int, string]

func holding0(n int) *pair {
	v := new(pair)
	v.Set0(n)
	return v
}

func holding1(s string) *pair {
	v := new(pair)
	v.Set1(s)
	return v
}

func valueless() *pair {
	v := new(pair)
	v.Destroy()
	return v
}

func TestValuelessIsMinimum(t *testing.T) {
	a, b := valueless(), valueless()
	assert.True(t, variant.Equal(a, b))
	assert.Equal(t, 0, variant.Compare(a, b))

	for _, h := range []*pair{holding0(math.MinInt), holding1("")} {
		assert.False(t, variant.Equal(a, h))
		assert.True(t, variant.NotEqual(a, h))
		assert.True(t, variant.Less(a, h))
		assert.True(t, variant.Greater(h, a))
		assert.True(t, variant.LessEqual(a, h))
		assert.False(t, variant.GreaterEqual(a, h))
	}
}

func TestIndexIsPrimaryKey(t *testing.T) {
	small, large := holding0(1000), holding1("a")
	assert.True(t, small.Less(large), "alternative 0 must order before alternative 1")
	assert.Positive(t, large.Compare(small))
	assert.False(t, small.Equal(large))
}

func TestSameIndexComparesValues(t *testing.T) {
	assert.True(t, variant.Less(holding0(1), holding0(2)))
	assert.True(t, variant.Equal(holding1("x"), holding1("x")))
	assert.True(t, variant.Greater(holding1("b"), holding1("a")))
	assert.True(t, variant.LessEqual(holding0(3), holding0(3)))
	assert.True(t, variant.GreaterEqual(holding0(3), holding0(3)))
}

type version struct{ major, minor int }

func (v *version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

type caseless string

func (c *caseless) Equal(o caseless) bool {
	return len(*c) == len(o)
}

func TestHooksOrderAndEquality(t *testing.T) {
	var a, b variant.Variant2[version, caseless]
	a.Set0(version{1, 9})
	b.Set0(version{2, 0})
	assert.True(t, a.Less(&b))

	a.Set1("ABC")
	b.Set1("xyz")
	assert.True(t, a.Equal(&b), "Equal hook must replace ==")
}

func TestNamedOrderedKinds(t *testing.T) {
	type celsius float32
	var a, b variant.Variant2[celsius, bool]
	a.Set0(-3)
	b.Set0(12)
	assert.True(t, variant.Less(&a, &b))
	a.Set1(false)
	b.Set1(true)
	assert.True(t, variant.Less(&a, &b))
}

func TestUnorderedAlternativePanics(t *testing.T) {
	var a, b variant.Variant2[int, struct{ x int }]
	a.Set1(struct{ x int }{1})
	b.Set1(struct{ x int }{2})
	assert.Panics(t, func() { variant.Compare(&a, &b) })
	assert.False(t, variant.Equal(&a, &b))
}

func TestOrderingInTreeSet(t *testing.T) {
	set := treeset.NewWith(func(x, y interface{}) int {
		return variant.Compare(x.(*pair), y.(*pair))
	})
	set.Add(holding1("b"), holding0(2), valueless(), holding1("a"), holding0(-1), holding0(2))

	want := []string{
		"variant(valueless)",
		"variant(0: -1)",
		"variant(0: 2)",
		"variant(1: a)",
		"variant(1: b)",
	}
	values := set.Values()
	require.Len(t, values, len(want))
	for i, v := range values {
		assert.Equal(t, want[i], v.(*pair).String())
	}
}

func TestCloneEqualsSource(t *testing.T) {
	for _, v := range []*pair{holding0(5), holding1("five"), valueless()} {
		c, err := v.Clone()
		require.NoError(t, err)
		assert.True(t, variant.Equal(v, &c), "%v", v)
	}
}
