// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

package swpld3

import (
	"errors"
	"fmt"
)

var (
	// ErrCapability is returned by Attach when the transport cannot do
	// byte-data register transactions.
	ErrCapability = errors.New("transport lacks byte data transactions")

	// ErrDetached is returned by any operation on a detached device.
	ErrDetached = errors.New("device detached")
)

// BusError wraps a failed transport transaction with the offending
// register.  The device was left as the transaction found it; writes to
// hardware control lines are never retried here.
type BusError struct {
	Op  string // "read" or "write"
	Reg uint8
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("swpld3 %s error: reg(0x%02x) %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

// InvalidValueError reports a Set value outside the attribute's domain.
// It is raised before any bus access, so the register is untouched.
type InvalidValueError struct {
	Attr  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q", e.Attr, e.Value)
}

// UnknownAttrError reports a Get or Set of a name absent from the
// attribute table.
type UnknownAttrError struct {
	Attr string
}

func (e *UnknownAttrError) Error() string {
	return fmt.Sprintf("%s: no such attribute", e.Attr)
}

// ReadOnlyError reports a Set of an attribute without write access.
type ReadOnlyError struct {
	Attr string
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("%s: read-only attribute", e.Attr)
}
