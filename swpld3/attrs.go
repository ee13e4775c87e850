// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

package swpld3

import "strconv"

// Attr binds a named control point to its register, bit position, and
// textual encoding.  Width is 1 for single control bits and 8 for whole
// byte fields; no attribute spans registers.  Cached attributes are
// identification fields read once at attach and never re-read.
type Attr struct {
	Name     string
	Reg      uint8
	Bit      uint
	Width    uint
	Writable bool
	Cached   bool
	Fmt      string
	Base     int // numeric base accepted by Set
}

var attrs = attrTable()

var attrByName = func() map[string]*Attr {
	m := make(map[string]*Attr, len(attrs))
	for i := range attrs {
		m[attrs[i].Name] = &attrs[i]
	}
	return m
}()

// Attrs returns the attribute table in publication order.
func Attrs() []Attr {
	t := make([]Attr, len(attrs))
	copy(t, attrs)
	return t
}

// Names returns every attribute name in publication order.
func Names() []string {
	n := make([]string, len(attrs))
	for i := range attrs {
		n[i] = attrs[i].Name
	}
	return n
}

// Lookup returns the descriptor of a named attribute.
func Lookup(name string) (Attr, bool) {
	a, found := attrByName[name]
	if !found {
		return Attr{}, false
	}
	return *a, true
}

func attrTable() []Attr {
	t := []Attr{
		{Name: "code_ver", Reg: codeRevReg, Bit: 0,
			Width: codeRevVerWidth, Cached: true, Fmt: "0x%02x"},
		{Name: "code_type", Reg: codeRevReg, Bit: codeRevTypeBit,
			Width: 1, Cached: true, Fmt: "%x"},
		{Name: "led_test_amb", Reg: ledTestReg, Bit: ledTestAmbBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
		{Name: "led_test_grn", Reg: ledTestReg, Bit: ledTestGrnBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
		{Name: "led_test_blink", Reg: ledTestReg, Bit: ledTestBlinkBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
		{Name: "led_test_src_sel", Reg: ledTestReg, Bit: ledTestSrcSelBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
		{Name: "scratch", Reg: scratchReg,
			Width: 8, Writable: true, Fmt: "%02x", Base: 16},
		{Name: "rst_pld_soft", Reg: rstReg, Bit: rstPldSoftBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
	}
	t = append(t, qsfpAttrs("_rst", qsfpRstReg0, qsfpRstReg1, true)...)
	t = append(t, qsfpAttrs("_lpmod", qsfpInitModReg0, qsfpInitModReg1, true)...)
	t = append(t, qsfpAttrs("_modsel", qsfpModSelReg0, qsfpModSelReg1, true)...)
	t = append(t, Attr{Name: "hitless_en", Reg: hitlessReg, Bit: hitlessEnBit,
		Width: 1, Fmt: "%d"})
	t = append(t, qsfpAttrs("_prs", qsfpModPrsReg0, qsfpModPrsReg1, false)...)
	t = append(t, qsfpAttrs("_int", qsfpIntReg0, qsfpIntReg1, false)...)
	t = append(t,
		Attr{Name: "sfp_tx_fault", Reg: sfpReg0, Bit: sfpTxFaultBit,
			Width: 1, Fmt: "%d"},
		Attr{Name: "sfp_rx_los", Reg: sfpReg0, Bit: sfpRxLosBit,
			Width: 1, Fmt: "%d"},
		Attr{Name: "sfp_prs", Reg: sfpReg0, Bit: sfpPrsBit,
			Width: 1, Fmt: "%d"},
		Attr{Name: "sfp_tx_en", Reg: sfpReg1, Bit: sfpTxEnBit,
			Width: 1, Writable: true, Fmt: "%d", Base: 10},
		Attr{Name: "code_day", Reg: codeDayReg,
			Width: 8, Cached: true, Fmt: "%d"},
		Attr{Name: "code_month", Reg: codeMonthReg,
			Width: 8, Cached: true, Fmt: "%d"},
		Attr{Name: "code_year", Reg: codeYearReg,
			Width: 8, Cached: true, Fmt: "%d"},
	)
	return t
}

func qsfpAttrs(suffix string, reg0, reg1 uint8, writable bool) []Attr {
	t := make([]Attr, 0, qsfpPortLast-qsfpPortFirst+1)
	for port := qsfpPortFirst; port <= qsfpPortLast; port++ {
		a := Attr{
			Name:     "qsfp" + strconv.Itoa(port) + suffix,
			Reg:      qsfpReg(port, reg0, reg1),
			Bit:      qsfpBit(port),
			Width:    1,
			Writable: writable,
			Fmt:      "%d",
		}
		if writable {
			a.Base = 10
		}
		t = append(t, a)
	}
	return t
}
