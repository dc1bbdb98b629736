// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"sync"
)

// Storage.
//
// storageN[T0, ..., Tn-1] is {head T0; rest storageN-1[T1, ..., Tn-1]}, ending
// in storage1. The generated types implement slots. A storage never tracks
// which slot is live; the container owning it does. Slots other than the
// active one hold their zero value.

// slots is the F-bounded constraint on a storage type S: the compiler knows
// the concrete storage at every instantiation of base.
type slots[S any] interface {
	*S
	// slot returns a *Ti for slot i, with no bounds or liveness check.
	slot(i int) any
	// alts returns the traits of every alternative, in order.
	alts() []*altOps
}

// layout is the per-storage-type record shared by every container of that
// type: alternative traits, the internal dispatch tables of the lifetime
// operations, and the converting-selection cache.
type layout struct {
	storage reflect.Type
	alts    []*altOps
	byType  map[reflect.Type][]int

	trivialDestroy bool
	trivialCopy    bool
	trivialMove    bool

	destroyT    *table[unaryCell]
	copyT       *table[binaryCell]
	moveT       *table[binaryCell]
	copyAssignT *table[binaryCell]
	moveAssignT *table[binaryCell]
	swapT       *table[binaryCell]
	equalT      *table[equalCell]
	compareT    *table[compareCell]

	selections sync.Map // reflect.Type -> selection
}

var layouts sync.Map // reflect.Type of storage -> *layout

func layoutOf[S any, P slots[S]]() *layout {
	key := reflect.TypeFor[S]()
	if l, ok := layouts.Load(key); ok {
		return l.(*layout)
	}
	var s S
	l, _ := layouts.LoadOrStore(key, newLayout(key, P(&s).alts()))
	return l.(*layout)
}

func newLayout(storage reflect.Type, alts []*altOps) *layout {
	l := &layout{
		storage:        storage,
		alts:           alts,
		byType:         make(map[reflect.Type][]int, len(alts)),
		trivialDestroy: true,
		trivialCopy:    true,
		trivialMove:    true,
	}
	for i, a := range alts {
		l.byType[a.typ] = append(l.byType[a.typ], i)
		l.trivialDestroy = l.trivialDestroy && a.trivialDestroy
		l.trivialCopy = l.trivialCopy && a.trivialCopy
		l.trivialMove = l.trivialMove && a.trivialMove
	}

	l.destroyT = unaryTable(alts, func(a *altOps) unaryCell { return a.destroy })
	l.copyT = pairTable[binaryCell](alts, func(a *altOps) binaryCell { return a.copyConstruct }, skipBinary)
	l.moveT = pairTable[binaryCell](alts, func(a *altOps) binaryCell { return a.moveConstruct }, skipBinary)
	l.copyAssignT = pairTable[binaryCell](alts, func(a *altOps) binaryCell { return a.copyAssign }, skipBinary)
	l.moveAssignT = pairTable[binaryCell](alts, func(a *altOps) binaryCell { return a.moveAssign }, skipBinary)
	l.swapT = pairTable[binaryCell](alts, func(a *altOps) binaryCell { return a.swap }, skipBinary)
	l.equalT = pairTable[equalCell](alts, func(a *altOps) equalCell { return a.equal },
		func(any, any) bool { return false })
	l.compareT = pairTable[compareCell](alts, func(a *altOps) compareCell { return a.compare },
		func(any, any) int { return 0 })
	return l
}

func (l *layout) size() int { return len(l.alts) }
