// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

// Package swpld3 drives the switch-port CPLD of the 7220 IXR-H4-32D
// router.  The CPLD arbitrates reset, low-power-mode, module-select,
// presence and interrupt lines for QSFP ports 17-32 plus one SFP
// management port; every line is exposed here as a named attribute
// backed by one bit of one byte-wide register.
package swpld3

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Conn is the byte-register transport bound to the CPLD's bus address.
// Calls block; any timeout belongs to the transport.  A Device owns its
// Conn exclusively from a successful Attach until Detach.
type Conn interface {
	ReadByteData(reg uint8) (uint8, error)
	WriteByteData(reg uint8, v uint8) error
	SupportsByteData() bool
	Close() error
}

// Device is one attached SWPLD3 instance.  A single mutex serializes all
// transactions against the chip, so the read-modify-write of one control
// bit can never interleave with another operation on the same device.
// Distinct devices transact independently.
type Device struct {
	mu       sync.Mutex
	conn     Conn
	id       map[string]uint8 // identification fields, immutable after Attach
	detached bool
}

// Attach validates the transport, reads the identification registers
// once, and drives the CPLD into its initial configuration: every QSFP
// port held in reset, low-power mode cleared, module select cleared.
// Ports must stay in reset until a higher layer releases them, so the
// reset registers are written first.  The first bus failure aborts the
// attach; no Device is returned and the caller keeps the transport.
func Attach(conn Conn) (*Device, error) {
	if !conn.SupportsByteData() {
		return nil, ErrCapability
	}
	d := &Device{conn: conn, id: make(map[string]uint8)}
	rev, err := d.read(codeRevReg)
	if err != nil {
		return nil, err
	}
	d.id["code_ver"] = field(rev, 0, codeRevVerWidth)
	d.id["code_type"] = field(rev, codeRevTypeBit, 1)
	for _, ident := range []struct {
		name string
		reg  uint8
	}{
		{"code_day", codeDayReg},
		{"code_month", codeMonthReg},
		{"code_year", codeYearReg},
	} {
		v, err := d.read(ident.reg)
		if err != nil {
			return nil, err
		}
		d.id[ident.name] = v
	}
	for _, w := range []struct {
		reg, val uint8
	}{
		{qsfpRstReg0, 0xff},
		{qsfpRstReg1, 0xff},
		{qsfpInitModReg0, 0x00},
		{qsfpInitModReg1, 0x00},
		{qsfpModSelReg0, 0x00},
		{qsfpModSelReg1, 0x00},
	} {
		if err := d.write(w.reg, w.val); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Detach releases the device and closes its transport.  No registers are
// written; bring-up happens only on attach.
func (d *Device) Detach() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.detached {
		return ErrDetached
	}
	d.detached = true
	return d.conn.Close()
}

// Revision returns the cached identification fields: firmware version
// and type, and the build day, month, and year.
func (d *Device) Revision() (ver, typ, day, month, year uint8) {
	return d.id["code_ver"], d.id["code_type"],
		d.id["code_day"], d.id["code_month"], d.id["code_year"]
}

// Get reads a named attribute and returns it in the attribute's textual
// encoding: "0" or "1" for control bits, hex for scratch and code_ver,
// decimal for the build date.  Identification fields are served from the
// attach-time cache.
func (d *Device) Get(name string) (string, error) {
	a, found := attrByName[name]
	if !found {
		return "", &UnknownAttrError{name}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.detached {
		return "", ErrDetached
	}
	if a.Cached {
		return fmt.Sprintf(a.Fmt, d.id[a.Name]), nil
	}
	v, err := d.read(a.Reg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(a.Fmt, field(v, a.Bit, a.Width)), nil
}

// Set writes a named attribute from its textual encoding.  Values are
// validated before any bus access; a rejected value leaves the register
// unread and unwritten.  For control bits the read and the masked write
// happen under one hold of the device mutex, so a concurrent Set of a
// sibling bit in the same register can never be lost.
func (d *Device) Set(name, value string) error {
	a, found := attrByName[name]
	if !found {
		return &UnknownAttrError{name}
	}
	if !a.Writable {
		return &ReadOnlyError{name}
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), a.Base, 8)
	if err != nil || a.Width == 1 && n > 1 {
		return &InvalidValueError{name, value}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.detached {
		return ErrDetached
	}
	if a.Width == 8 {
		return d.write(a.Reg, uint8(n))
	}
	cur, err := d.read(a.Reg)
	if err != nil {
		return err
	}
	return d.write(a.Reg, setBit(cur, a.Bit, n == 1))
}

func (d *Device) read(reg uint8) (uint8, error) {
	v, err := d.conn.ReadByteData(reg)
	if err != nil {
		return 0, &BusError{"read", reg, err}
	}
	return v, nil
}

func (d *Device) write(reg, v uint8) error {
	if err := d.conn.WriteByteData(reg, v); err != nil {
		return &BusError{"write", reg, err}
	}
	return nil
}
