// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

/*
Package pointer provides utilities for working with pointers in Go.

Partial-update payloads are decoded into pointer-typed structs so that an
absent JSON field (nil) can be distinguished from an explicit zero value.
These helpers keep that plumbing terse at the call sites.
*/
package pointer

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
