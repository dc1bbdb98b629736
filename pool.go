// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "sync"

// Argument vectors for Visit and Apply.
// releaseArgs clears every element so that pooled vectors keep no
// alternative reachable after the callback returns.

var argsPool = sync.Pool{New: func() any {
	s := make([]any, 0, maxCachedOperands)
	return &s
}}

// acquireArgs returns a pooled vector of length n.
func acquireArgs(n int) *[]any {
	p := argsPool.Get().(*[]any)
	if cap(*p) < n {
		*p = make([]any, n)
	}
	*p = (*p)[:n]
	return p
}

// releaseArgs zeroes p and returns it to the pool.
func releaseArgs(p *[]any) {
	clear(*p)
	*p = (*p)[:0]
	argsPool.Put(p)
}
