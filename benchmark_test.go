// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"code.hybscloud.com/variant"
)

// BenchmarkGet measures typed access to the active alternative.
func BenchmarkGet(b *testing.B) {
	var v variant.Variant4[int, string, float64, bool]
	v.Set2(1.5)
	for b.Loop() {
		_, _ = v.Get2()
	}
}

// BenchmarkSetTrivial measures emplacement over trivially destructible alternatives.
func BenchmarkSetTrivial(b *testing.B) {
	var v variant.Variant2[int, float64]
	for b.Loop() {
		_, _ = v.Set0(1)
		_, _ = v.Set1(2)
	}
}

// BenchmarkAssign measures converting assignment with a cached selection.
func BenchmarkAssign(b *testing.B) {
	var v variant.Variant2[int, string]
	for b.Loop() {
		_ = v.Assign("x")
		_ = v.Assign(1)
	}
}

// BenchmarkCopyFrom measures copy assignment across alternatives.
func BenchmarkCopyFrom(b *testing.B) {
	var v, w, u variant.Variant2[int, string]
	w.Set1("source")
	u.Set0(7)
	for b.Loop() {
		_ = v.CopyFrom(&w)
		_ = v.CopyFrom(&u)
	}
}

// BenchmarkVisit2 measures two-operand visitation through the dispatch table.
func BenchmarkVisit2(b *testing.B) {
	var v, w variant.Variant2[int, string]
	v.Set0(1)
	w.Set1("s")
	for b.Loop() {
		_, _ = variant.Visit(cellOf, &v, &w)
	}
}

// BenchmarkMatch measures typed single-variant dispatch.
func BenchmarkMatch(b *testing.B) {
	var v variant.Variant3[int, string, bool]
	v.Set1("abc")
	for b.Loop() {
		_, _ = variant.Match3(&v,
			func(i *int) int { return *i },
			func(s *string) int { return len(*s) },
			func(*bool) int { return 0 },
		)
	}
}

// BenchmarkCompare measures ordering within the same alternative.
func BenchmarkCompare(b *testing.B) {
	var v, w variant.Variant2[int, string]
	v.Set1("a")
	w.Set1("b")
	for b.Loop() {
		_ = variant.Compare(&v, &w)
	}
}
