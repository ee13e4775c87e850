// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

package swpld3

// SWPLD3 register map.  Every register is one byte wide; the read-only
// presence and interrupt registers reflect pin state.
const (
	codeRevReg      uint8 = 0x01
	ledTestReg      uint8 = 0x08
	scratchReg      uint8 = 0x0f
	rstReg          uint8 = 0x10
	qsfpRstReg0     uint8 = 0x11
	qsfpRstReg1     uint8 = 0x12
	qsfpInitModReg0 uint8 = 0x21
	qsfpInitModReg1 uint8 = 0x22
	qsfpModSelReg0  uint8 = 0x31
	qsfpModSelReg1  uint8 = 0x32
	hitlessReg      uint8 = 0x39
	qsfpModPrsReg0  uint8 = 0x51
	qsfpModPrsReg1  uint8 = 0x52
	qsfpIntReg0     uint8 = 0x61
	qsfpIntReg1     uint8 = 0x62
	sfpReg0         uint8 = 0x71
	sfpReg1         uint8 = 0x72
	codeDayReg      uint8 = 0xf0
	codeMonthReg    uint8 = 0xf1
	codeYearReg     uint8 = 0xf2
)

// Bit positions and field widths within the registers above.
const (
	codeRevVerWidth = 6 // bits 5:0 of codeRevReg
	codeRevTypeBit  = 7

	ledTestAmbBit    = 0
	ledTestGrnBit    = 1
	ledTestBlinkBit  = 3
	ledTestSrcSelBit = 7

	rstPldSoftBit = 0

	hitlessEnBit = 0

	sfpTxFaultBit = 4
	sfpRxLosBit   = 5
	sfpPrsBit     = 6
	sfpTxEnBit    = 7
)

// The QSFP control and status registers cover ports 17-32, eight ports per
// register with the lowest numbered port on the highest bit: port 17 is bit
// 7 of the first register, port 24 is bit 0, port 25 is bit 7 of the second.
const (
	qsfpPortFirst = 17
	qsfpPortLast  = 32
)

func qsfpBit(port int) uint {
	return uint(7 - (port-qsfpPortFirst)%8)
}

func qsfpReg(port int, reg0, reg1 uint8) uint8 {
	if port < qsfpPortFirst+8 {
		return reg0
	}
	return reg1
}
