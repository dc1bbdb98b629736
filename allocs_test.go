// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"code.hybscloud.com/variant"
	"testing"
)

func TestAccessorAllocations(t *testing.T) {
	var v variant.Variant2[int, string]
	v.Set0(42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = v.GetIf0()
		_, _ = v.Get0()
		_ = v.Index()
	})
	if allocs > 0 {
		t.Errorf("Get0/GetIf0 allocs = %v; want 0", allocs)
	}
}

func TestCompareAllocations(t *testing.T) {
	var v, w variant.Variant2[int, string]
	v.Set0(1)
	w.Set0(2)
	allocs := testing.AllocsPerRun(100, func() {
		_ = variant.Compare(&v, &w)
	})
	if allocs > 0 {
		t.Errorf("Compare allocs = %v; want 0", allocs)
	}
}
