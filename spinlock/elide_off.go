// SPDX-License-Identifier: BSD-3-Clause

//go:build !htmelide

package spinlock

// Lock elision disabled; every Lock takes the lock word. Build with
// -tags htmelide to turn speculation on.
const elideEnabled = false
