// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import "errors"

// ErrMalformedOptional is returned when an optional field arrives with more than one element.
var ErrMalformedOptional = errors.New("optional field holds more than one element")

// Flatten encodes an optional value as a slice of zero or one element.
func Flatten[T any](v *T) []T {
	if v == nil {
		return []T{}
	}
	return []T{*v}
}

// Unflatten decodes a slice produced by Flatten. Slices longer than one
// element are malformed.
func Unflatten[T any](s []T) (*T, error) {
	switch len(s) {
	case 0:
		return nil, nil
	case 1:
		v := s[0]
		return &v, nil
	default:
		return nil, ErrMalformedOptional
	}
}

// First returns the first element of s, or the zero value when s is empty.
// Executors on the remote side read optional fields this way.
func First[T any](s []T) T {
	if len(s) > 0 {
		return s[0]
	}
	var zero T
	return zero
}
