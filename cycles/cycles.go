// SPDX-License-Identifier: BSD-3-Clause

// Package cycles reads the CPU's free-running cycle counter. It is a cheap,
// dependency-free time source for backoff jitter and coarse measurements.
package cycles

// Counter returns the current cycle count as a single 64-bit value (on
// amd64 the RDTSC lo/hi halves combined, on arm64 the virtual counter).
// Reads carry no ordering guarantee relative to surrounding instructions;
// callers that need serialization must fence themselves.
func Counter() uint64 {
	return counter()
}

// TimerCounter returns the counter used for timer bookkeeping. It is the
// same counter as Counter on every supported target.
func TimerCounter() uint64 {
	return counter()
}
