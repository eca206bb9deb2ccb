// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package pool keeps the scratch state of layout passes around between
// frames.
package pool

import "sync"

// Resetable is implemented by scratch values that can be cleared for reuse.
type Resetable interface {
	Reset()
}

// Pool hands out scratch values of type T. Every value returned by Get has
// been reset, whether it is new or reused.
type Pool[T Resetable] struct {
	scratch sync.Pool
}

// New creates a new [Pool]. fn allocates a value when none can be reused.
func New[T Resetable](fn func() T) *Pool[T] {
	return &Pool[T]{scratch: sync.Pool{New: func() any { return fn() }}}
}

// Get returns a clean value.
func (p *Pool[T]) Get() T {
	v := p.scratch.Get().(T) //nolint:errcheck
	v.Reset()
	return v
}

// Put hands v back for reuse. v must not be used afterwards.
func (p *Pool[T]) Put(v T) {
	p.scratch.Put(v)
}

// Grow returns s with length n, reusing its backing array when it is large
// enough. Every element of the returned slice is the zero value.
func Grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}
