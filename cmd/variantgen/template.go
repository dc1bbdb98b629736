// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// alt is one alternative of a generated arity.
type alt struct {
	K     int
	Type  string // T0, T1, ...
	Field string // storage, rest chain and head leading to slot K
}

type arity struct {
	Package    string
	N          int
	Less       int    // N-1; zero ends the storage recursion
	Last       int    // index of the last alternative
	Params     string // "T0, T1"
	RestParams string // "T1"
	Choices    string // "T0 or T1"
	Alts       []alt
}

func newArity(pkg string, n int) arity {
	a := arity{Package: pkg, N: n, Less: n - 1, Last: n - 1}
	types := make([]string, n)
	for k := range n {
		types[k] = fmt.Sprintf("T%d", k)
		a.Alts = append(a.Alts, alt{
			K:     k,
			Type:  types[k],
			Field: "storage" + strings.Repeat(".rest", k) + ".head",
		})
	}
	a.Params = strings.Join(types, ", ")
	a.RestParams = strings.Join(types[1:], ", ")
	switch n {
	case 1:
		a.Choices = types[0]
	default:
		a.Choices = strings.Join(types[:n-1], ", ") + " or " + types[n-1]
	}
	return a
}

// render returns the gofmt-formatted source of variantN.go.
func render(pkg string, n int) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, newArity(pkg, n)); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

var fileTemplate = template.Must(template.New("variant").Parse(`// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Code generated by variantgen. DO NOT EDIT.

package {{.Package}}

// storage{{.N}} is the recursive slot storage of Variant{{.N}}.
type storage{{.N}}[{{.Params}} any] struct {
	head T0
{{- if .Less}}
	rest storage{{.Less}}[{{.RestParams}}]
{{- end}}
}

func (s *storage{{.N}}[{{.Params}}]) slot(i int) any {
{{- if .Less}}
	if i == 0 {
		return &s.head
	}
	return s.rest.slot(i - 1)
{{- else}}
	return &s.head
{{- end}}
}

func (s *storage{{.N}}[{{.Params}}]) alts() []*altOps {
{{- if .Less}}
	return append([]*altOps{altOf[T0]()}, s.rest.alts()...)
{{- else}}
	return []*altOps{altOf[T0]()}
{{- end}}
}

// Variant{{.N}} holds one value of type {{.Choices}}. It is valueless only
// after a failed operation. The zero value holds the zero T0.
type Variant{{.N}}[{{.Params}} any] struct {
	base[storage{{.N}}[{{.Params}}], *storage{{.N}}[{{.Params}}]]
}

func (v *Variant{{.N}}[{{.Params}}]) isNil() bool { return v == nil }

// Clone returns a copy of v. A valueless v yields a valueless copy. If the
// active alternative fails to clone, the copy is valueless.
func (v *Variant{{.N}}[{{.Params}}]) Clone() (Variant{{.N}}[{{.Params}}], error) {
	var w Variant{{.N}}[{{.Params}}]
	err := w.copyConstruct(&v.base)
	return w, err
}

// Move returns a variant holding the value of v, leaving the moved-from
// alternative active in v.
func (v *Variant{{.N}}[{{.Params}}]) Move() (Variant{{.N}}[{{.Params}}], error) {
	var w Variant{{.N}}[{{.Params}}]
	err := w.moveConstruct(&v.base)
	return w, err
}

// CopyFrom assigns a copy of w to v. If the active indices differ, the value
// of v is destroyed first and v stays valueless if the copy fails.
func (v *Variant{{.N}}[{{.Params}}]) CopyFrom(w *Variant{{.N}}[{{.Params}}]) error {
	return v.copyAssign(&w.base)
}

// MoveFrom is CopyFrom with moves.
func (v *Variant{{.N}}[{{.Params}}]) MoveFrom(w *Variant{{.N}}[{{.Params}}]) error {
	return v.moveAssign(&w.base)
}

// Swap exchanges the contents of v and w.
func (v *Variant{{.N}}[{{.Params}}]) Swap(w *Variant{{.N}}[{{.Params}}]) error {
	return v.swap(&w.base)
}

// Equal reports whether v and w hold equal values of the same alternative.
func (v *Variant{{.N}}[{{.Params}}]) Equal(w *Variant{{.N}}[{{.Params}}]) bool {
	return equalOf(v, w)
}

// Compare orders v and w: valueless first, then by index, then by value.
func (v *Variant{{.N}}[{{.Params}}]) Compare(w *Variant{{.N}}[{{.Params}}]) int {
	return compareOf(v, w)
}

// Less reports whether v orders before w.
func (v *Variant{{.N}}[{{.Params}}]) Less(w *Variant{{.N}}[{{.Params}}]) bool {
	return compareOf(v, w) < 0
}
{{range .Alts}}
// Get{{.K}} returns the {{.Type}} alternative, or a *BadAccessError if v does
// not hold it.
func (v *Variant{{$.N}}[{{$.Params}}]) Get{{.K}}() ({{.Type}}, error) {
	if v.index != {{.K}} {
		var zero {{.Type}}
		return zero, badAccess("get", {{.K}}, v.index)
	}
	return v.{{.Field}}, nil
}

// GetIf{{.K}} returns a pointer to the {{.Type}} alternative, or nil if v is nil or
// does not hold it.
func (v *Variant{{$.N}}[{{$.Params}}]) GetIf{{.K}}() *{{.Type}} {
	if v == nil || v.index != {{.K}} {
		return nil
	}
	return &v.{{.Field}}
}

// Emplace{{.K}} destroys the value of v and builds its {{.Type}} alternative in
// place with ctor. A nil ctor leaves the zero value. On failure v is
// valueless.
func (v *Variant{{$.N}}[{{$.Params}}]) Emplace{{.K}}(ctor func(*{{.Type}}) error) (*{{.Type}}, error) {
	if err := v.emplace({{.K}}, typed(ctor)); err != nil {
		return nil, err
	}
	return &v.{{.Field}}, nil
}

// Set{{.K}} destroys the value of v and stores a copy of x as its {{.Type}}
// alternative. On failure v is valueless.
func (v *Variant{{$.N}}[{{$.Params}}]) Set{{.K}}(x {{.Type}}) (*{{.Type}}, error) {
	if err := v.emplace({{.K}}, copied(x)); err != nil {
		return nil, err
	}
	return &v.{{.Field}}, nil
}
{{end}}
// Match{{.N}} calls the function for the active alternative of v with a
// pointer to it and returns the result. It returns a *BadAccessError if v is
// nil or valueless.
func Match{{.N}}[R, {{.Params}} any](
	v *Variant{{.N}}[{{.Params}}],
{{- range .Alts}}
	f{{.K}} func(*{{.Type}}) R,
{{- end}}
) (R, error) {
	var zero R
	if v == nil || v.index == Npos {
		return zero, badAccess("match", Npos, Npos)
	}
	switch v.index {
{{- range .Alts}}
{{- if eq .K $.Last}}
	default:
{{- else}}
	case {{.K}}:
{{- end}}
		return f{{.K}}(&v.{{.Field}}), nil
{{- end}}
	}
}
`))
