// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

package swpld3

// bit reports whether bit i of v is set.
func bit(v uint8, i uint) bool { return v>>i&1 != 0 }

// field returns the w-bit unsigned field of v starting at bit i.
func field(v uint8, i, w uint) uint8 { return v >> i & uint8(1<<w-1) }

// setBit returns v with only bit i changed; the other seven bits are
// copied unchanged.
func setBit(v uint8, i uint, b bool) uint8 {
	if b {
		return v | 1<<i
	}
	return v &^ (1 << i)
}
