// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !arm64

package cycles

import "time"

var start = time.Now()

// counter falls back to the monotonic clock where no cycle counter binding
// exists. Coarser than a real TSC but keeps the same contract: monotonic,
// always succeeds.
func counter() uint64 {
	return uint64(time.Since(start))
}
