// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"reflect"
	"strconv"
)

// ErrBadAccess is matched by every [*BadAccessError].
// Use errors.Is(err, ErrBadAccess) to recognize an illegal access.
var ErrBadAccess = errors.New("variant: bad variant access")

// ErrNoAlternative reports a converting construction or assignment whose
// value is accepted by no alternative.
var ErrNoAlternative = errors.New("variant: no alternative accepts the value")

// ErrAmbiguousAlternative reports a converting construction or assignment
// whose value is accepted equally well by more than one alternative.
var ErrAmbiguousAlternative = errors.New("variant: value matches more than one alternative")

// ErrIndexOutOfRange reports an index-tagged construction or emplacement
// outside [0, Size()).
var ErrIndexOutOfRange = errors.New("variant: alternative index out of range")

// BadAccessError describes an access to an alternative that is not active,
// or a visitation of a valueless variant.
type BadAccessError struct {
	Op     string // "get", "visit", "match"
	Index  int    // requested alternative, Npos for visitation
	Active int    // active alternative at the time of access
}

func (e *BadAccessError) Error() string {
	if e.Active == Npos {
		return "variant: bad variant access: " + e.Op + " on valueless variant"
	}
	if e.Index == Npos {
		return "variant: bad variant access: " + e.Op
	}
	return "variant: bad variant access: " + e.Op + " alternative " +
		strconv.Itoa(e.Index) + " while holding " + strconv.Itoa(e.Active)
}

// Is reports whether target is [ErrBadAccess].
func (e *BadAccessError) Is(target error) bool { return target == ErrBadAccess }

// ConversionError reports a failed alternative selection for a value of Type.
// It unwraps to [ErrNoAlternative] or [ErrAmbiguousAlternative].
type ConversionError struct {
	Type reflect.Type // nil for an untyped nil value
	Err  error
}

func (e *ConversionError) Error() string {
	name := "untyped nil"
	if e.Type != nil {
		name = e.Type.String()
	}
	return e.Err.Error() + ": " + name
}

func (e *ConversionError) Unwrap() error { return e.Err }

// badAccess is extracted so that accessors on the success path stay inlineable.
//
//go:noinline
func badAccess(op string, index, active int) error {
	return &BadAccessError{Op: op, Index: index, Active: active}
}
