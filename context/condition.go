// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import "strings"

// Condition is a bitmask of the exceptional conditions an operation may
// raise.
type Condition uint32

const (
	// Inexact is raised when the result of an operation is not exact.
	Inexact Condition = 1 << iota
	// Overflow is raised when the result of an operation overflowed to
	// ±Inf.
	Overflow
)

// Inexact reports whether c has the Inexact flag set.
func (c Condition) Inexact() bool { return c&Inexact != 0 }

// Overflow reports whether c has the Overflow flag set.
func (c Condition) Overflow() bool { return c&Overflow != 0 }

func (c Condition) String() string {
	var names []string
	if c.Inexact() {
		names = append(names, "inexact")
	}
	if c.Overflow() {
		names = append(names, "overflow")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// GoError returns an error for the conditions of c that are also set in
// traps, or nil if there are none.
func (c Condition) GoError(traps Condition) error {
	if c &= traps; c != 0 {
		return &ConditionError{Cond: c}
	}
	return nil
}

// A ConditionError is the error produced by a trapped condition.
type ConditionError struct {
	Cond Condition
}

func (e *ConditionError) Error() string {
	return "bigfloat: " + e.Cond.String()
}
