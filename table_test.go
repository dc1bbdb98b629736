// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"slices"
	"testing"
)

func TestBuildTableRowMajor(t *testing.T) {
	tab := buildTable([]int{2, 3}, func(c []int) []int { return c })
	if len(tab.cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(tab.cells))
	}
	k := 0
	for i := range 2 {
		for j := range 3 {
			if got := tab.cells[k]; !slices.Equal(got, []int{i, j}) {
				t.Fatalf("cell %d: got %v, want [%d %d]", k, got, i, j)
			}
			if got := tab.at(i, j); !slices.Equal(got, []int{i, j}) {
				t.Fatalf("at(%d, %d): got %v", i, j, got)
			}
			k++
		}
	}
}

func TestBuildTableCapturesAreIndependent(t *testing.T) {
	tab := buildTable([]int{3, 3, 3}, func(c []int) []int { return c })
	if got := tab.at(2, 0, 1); !slices.Equal(got, []int{2, 0, 1}) {
		t.Fatalf("got %v, want [2 0 1]", got)
	}
	if got := tab.at(0, 0, 0); !slices.Equal(got, []int{0, 0, 0}) {
		t.Fatalf("got %v, want [0 0 0]", got)
	}
}

func TestBuildTableNoDimensions(t *testing.T) {
	tab := buildTable(nil, func(c []int) int { return len(c) + 7 })
	if len(tab.cells) != 1 || tab.at() != 7 {
		t.Fatalf("got %v, want one cell holding 7", tab.cells)
	}
}

func TestInternalSubstitutesLastIndex(t *testing.T) {
	tab := buildTable([]int{3, 3}, func(c []int) [2]int { return [2]int{c[0], c[1]} })
	if got := tab.internal(Npos, 2); got != [2]int{2, 2} {
		t.Fatalf("got %v, want [2 2]", got)
	}
	if got := tab.internal(0, 1); got != [2]int{0, 1} {
		t.Fatalf("got %v, want [0 1]", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("internal with a valueless last operand did not panic")
		}
	}()
	tab.internal(1, Npos)
}

func TestPairTableDiagonal(t *testing.T) {
	l := layoutOf[storage3[int, string, bool], *storage3[int, string, bool]]()
	n := l.size()
	if n != 3 {
		t.Fatalf("got size %d, want 3", n)
	}
	if len(l.equalT.cells) != n*n {
		t.Fatalf("got %d cells, want %d", len(l.equalT.cells), n*n)
	}
	a, b := "x", "x"
	if !l.equalT.at(1, 1)(&a, &b) {
		t.Fatal("diagonal equality cell reported unequal")
	}
	if l.equalT.at(0, 1)(&a, &b) {
		t.Fatal("off-diagonal equality cell reported equal")
	}
}

func TestLayoutTraits(t *testing.T) {
	flat := layoutOf[storage2[int, float64], *storage2[int, float64]]()
	if !flat.trivialDestroy || !flat.trivialCopy || !flat.trivialMove {
		t.Fatalf("int/float64 layout not trivial: %+v", flat)
	}
	str := layoutOf[storage2[int, string], *storage2[int, string]]()
	if str.trivialDestroy || !str.trivialCopy || str.trivialMove {
		t.Fatalf("int/string layout traits: destroy=%v copy=%v move=%v",
			str.trivialDestroy, str.trivialCopy, str.trivialMove)
	}
	if layoutOf[storage2[int, string], *storage2[int, string]]() != str {
		t.Fatal("layout not cached per storage type")
	}
}

type closer struct{ closed *bool }

func (c *closer) Destroy() {
	if c.closed != nil {
		*c.closed = true
	}
}

func TestAltTraits(t *testing.T) {
	a := altOf[closer]()
	if a.trivialDestroy || a.trivialMove || a.trivialCopy {
		t.Fatal("Destroyer counted as trivial")
	}
	if !a.nothrowCopy || !a.nothrowMove {
		t.Fatal("hookless copy and move must not fail")
	}
	closed := false
	c := closer{closed: &closed}
	a.destroy(&c)
	if !closed || c.closed != nil {
		t.Fatal("destroy did not run the hook and zero the slot")
	}
}

func TestHasPointers(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{0, false},
		{[4]float64{}, false},
		{struct{ a, b int }{}, false},
		{"", true},
		{[]int(nil), true},
		{struct{ p *int }{}, true},
		{[0]*int{}, false},
	}
	for _, c := range cases {
		if got := hasPointers(reflect.TypeOf(c.v)); got != c.want {
			t.Fatalf("hasPointers(%T) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestArgsPool(t *testing.T) {
	p := acquireArgs(3)
	if len(*p) != 3 {
		t.Fatalf("got len %d, want 3", len(*p))
	}
	x := 1
	(*p)[0] = &x
	releaseArgs(p)
	if len(*p) != 0 || (*p)[:1][0] != nil {
		t.Fatal("released vector still references an alternative")
	}
	big := acquireArgs(maxCachedOperands + 2)
	if len(*big) != maxCachedOperands+2 {
		t.Fatalf("got len %d, want %d", len(*big), maxCachedOperands+2)
	}
	releaseArgs(big)
}

func TestVisitTableCachedPerShape(t *testing.T) {
	var a, b Variant2[int, string]
	vs := []Alternatives{&a, &b}
	if visitTable(vs) != visitTable(vs) {
		t.Fatal("visit table rebuilt for the same shape")
	}
	var c Variant3[int, string, bool]
	if visitTable([]Alternatives{&a, &c}) == visitTable(vs) {
		t.Fatal("different shapes share a visit table")
	}
}
