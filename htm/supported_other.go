// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64

package htm

// Supported reports whether lock elision is worth attempting on this
// machine. Always false off amd64.
func Supported() bool {
	return false
}
