package word

/*
 * AGC15 - One's complement word arithmetic
 *
 * Copyright 2026, Michael Hayden
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// The native value unit is a 15 bit one's complement word. A few
// registers, notably the accumulator, carry a 16th overflow bit on top.

const (
	Mask     uint16 = 0o77777  // 15 data bits.
	SignBit  uint16 = 0o40000  // Sign bit of a 15 bit word.
	MaxPos   uint16 = 0o37777  // Largest positive value.
	NegZero  uint16 = 0o77777  // Minus zero.
	Overflow uint16 = 0o100000 // Overflow bit of 16 bit registers.
)

// Return one's complement negation of a word.
func Complement(v uint16) uint16 {
	return ^v & Mask
}

// Check sign bit of word.
func IsNegative(v uint16) bool {
	return (v & SignBit) != 0
}

// Check for plus or minus zero.
func IsZero(v uint16) bool {
	return v == 0 || v == NegZero
}

// Cycle word right one bit, bit 1 moves to bit 15.
func CycleRight(v uint16) uint16 {
	return ((v & 1) << 14) | ((v & Mask) >> 1)
}

// Cycle word left one bit, bit 15 moves to bit 1.
func CycleLeft(v uint16) uint16 {
	return ((v << 1) | ((v & Mask) >> 14)) & Mask
}

// Shift word right one bit, sign bit is duplicated.
func ShiftRight(v uint16) uint16 {
	return ((v & Mask) >> 1) | (v & SignBit)
}

// Edit transform for the EDOP register, shift right seven bits and
// clear the upper eight.
func Edit(v uint16) uint16 {
	return (v >> 7) & 0o177
}

// Plus increment of a counter cell. Reports overflow when the counter
// wraps from the largest positive value back through zero.
func Pinc(v uint16) (uint16, bool) {
	v &= Mask
	if v == MaxPos {
		return 0, true
	}
	return v + 1, false
}

// Diminish a counter cell toward zero. Reports true once the counter
// lands on plus or minus zero.
func Dinc(v uint16) (uint16, bool) {
	v &= Mask
	if IsZero(v) {
		return v, true
	}
	if IsNegative(v) {
		v++
	} else {
		v--
	}
	return v, IsZero(v)
}

// Convert a word to a native integer.
func ToInt(v uint16) int {
	if IsNegative(v) {
		return -int(Complement(v))
	}
	return int(v & Mask)
}

// Convert a native integer to a word.
func FromInt(i int) uint16 {
	if i < 0 {
		return Complement(uint16(-i) & Mask)
	}
	return uint16(i) & Mask
}
