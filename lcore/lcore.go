// SPDX-License-Identifier: BSD-3-Clause

// Package lcore runs tasks on logical cores: goroutines locked to a
// dedicated OS thread, optionally named and pinned to a CPU set.
//
// An lcore executes one task at a time. Launch hands it a function and
// returns a Wait handle; Wait blocks until the task finishes and yields its
// result, or the panic it died with. Because an lcore never migrates between
// threads, code running on it may rely on thread identity, which is what the
// recursive spinlock needs.
//
//	lc := lcore.Spawn[int]()
//	defer lc.Close()
//
//	w, err := lc.Launch(func() int { return 42 })
//	...
//	v, err := w.Wait()
package lcore

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
)

// ErrBusy is returned by Launch while a previous task has not been waited
// for.
var ErrBusy = errors.New("lcore: task already in flight")

const (
	stateIdle int32 = iota
	stateRunning
)

type taskResult[R any] struct {
	val R
	err error
}

// LCore is a handle to a spawned logical core.
type LCore[R any] struct {
	state int32
	tasks chan func() R
	res   chan taskResult[R]
	tid   int
}

// Builder configures an lcore before it is spawned. The zero value applies
// no name and inherits the parent's CPU affinity.
type Builder struct {
	name string
	cpus []int
}

// NewBuilder returns a Builder with the default configuration.
func NewBuilder() Builder {
	return Builder{}
}

// Name sets the OS thread name of the lcore-to-be, as seen by ps -efL. The
// kernel caps it at 15 bytes.
func (b Builder) Name(name string) Builder {
	b.name = name
	return b
}

// Affinity restricts the lcore to the given CPUs. CPUs can be taken offline
// or be absent from the allowed set, so make no assumption about particular
// numbers being available.
func (b Builder) Affinity(cpus ...int) Builder {
	b.cpus = append([]int(nil), cpus...)
	return b
}

// Spawn starts an lcore with the default configuration, panicking when the
// thread cannot be set up. Use Builder.Spawn to handle the failure instead.
func Spawn[R any]() *LCore[R] {
	lc, err := SpawnWith[R](Builder{})
	if err != nil {
		panic(err)
	}
	return lc
}

// SpawnWith starts an lcore configured by b.
func SpawnWith[R any](b Builder) (*LCore[R], error) {
	lc := &LCore[R]{
		tasks: make(chan func() R),
		res:   make(chan taskResult[R], 1),
	}
	ready := make(chan error)
	go lc.run(b, ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return lc, nil
}

func (lc *LCore[R]) run(b Builder, ready chan<- error) {
	// The thread is dedicated: it is never unlocked, so it is destroyed
	// when the lcore closes instead of going back to the scheduler pool.
	runtime.LockOSThread()

	if err := b.apply(); err != nil {
		ready <- err
		return
	}
	lc.tid = threadID()
	ready <- nil

	for f := range lc.tasks {
		lc.res <- protect(f)
	}
}

func protect[R any](f func() R) (r taskResult[R]) {
	defer func() {
		if v := recover(); v != nil {
			r.err = fmt.Errorf("lcore: task panicked: %v", v)
		}
	}()
	r.val = f()
	return r
}

// Launch submits f to the lcore. It fails with ErrBusy while an earlier
// task's result has not been collected.
func (lc *LCore[R]) Launch(f func() R) (*Wait[R], error) {
	if !atomic.CompareAndSwapInt32(&lc.state, stateIdle, stateRunning) {
		return nil, ErrBusy
	}
	lc.tasks <- f
	return &Wait[R]{lc: lc}, nil
}

// ID returns the OS thread id of the lcore (zero on targets without thread
// ids).
func (lc *LCore[R]) ID() int {
	return lc.tid
}

// Close retires the lcore and its thread. Collect any in-flight task with
// Wait first; launching after Close panics.
func (lc *LCore[R]) Close() {
	close(lc.tasks)
}

// Wait is the continuation of a launched task.
type Wait[R any] struct {
	lc   *LCore[R]
	done bool
	r    taskResult[R]
}

// Wait blocks until the task finishes and returns its result. The error is
// non-nil when the task panicked. Calling Wait again returns the same
// result.
func (w *Wait[R]) Wait() (R, error) {
	if !w.done {
		w.r = <-w.lc.res
		atomic.StoreInt32(&w.lc.state, stateIdle)
		w.done = true
	}
	return w.r.val, w.r.err
}
