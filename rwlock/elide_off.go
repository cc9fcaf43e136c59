// SPDX-License-Identifier: BSD-3-Clause

//go:build !htmelide

package rwlock

// Lock elision disabled; every lock takes the counter word. Build with
// -tags htmelide to turn speculation on.
const elideEnabled = false
