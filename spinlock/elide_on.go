// SPDX-License-Identifier: BSD-3-Clause

//go:build htmelide

package spinlock

// Lock elision enabled. htm.Supported still decides at runtime.
const elideEnabled = true
