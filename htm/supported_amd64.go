// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package htm

import (
	"runtime"

	"github.com/intel-go/cpuid"
)

var hasRTM bool

func init() {
	hasRTM = cpuid.HasExtendedFeature(cpuid.RTM)
	// With a single P there is nobody to elide against and the speculation
	// only costs aborts.
	if runtime.GOMAXPROCS(0) == 1 {
		hasRTM = false
	}
}

// Supported reports whether lock elision is worth attempting on this
// machine. Callers must gate TryLock and the Tx bindings on it: without RTM
// the instructions raise #UD.
func Supported() bool {
	return hasRTM
}
