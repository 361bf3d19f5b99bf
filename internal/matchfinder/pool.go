// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress (adapted from woozymasta/lzo's sliding_window_pool.go)

package matchfinder

import "sync"

// chainPool recycles Chain instances (in particular their 256KiB head
// array) across compress calls, the same way the teacher pools its sliding
// window dictionary.
var chainPool = sync.Pool{
	New: func() any {
		return &Chain{}
	},
}

func acquireChain() *Chain {
	return chainPool.Get().(*Chain)
}

func releaseChain(c *Chain) {
	if c == nil {
		return
	}

	c.src = nil
	chainPool.Put(c)
}
