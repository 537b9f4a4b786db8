package word

/*
 * AGC15 - One's complement word arithmetic test
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

import (
	"testing"
)

// Check one's complement negation.
func TestComplement(t *testing.T) {
	tests := []struct {
		in  uint16
		out uint16
	}{
		{0, NegZero},
		{NegZero, 0},
		{1, 0o77776},
		{MaxPos, 0o40000},
	}
	for _, test := range tests {
		r := Complement(test.in)
		if r != test.out {
			t.Errorf("Complement not correct got: %06o expected: %06o", r, test.out)
		}
	}
}

// Check cycle right and cycle left, including the round trip property.
func TestCycle(t *testing.T) {
	tests := []struct {
		in    uint16
		right uint16
		left  uint16
	}{
		{0o00001, 0o40000, 0o00002},
		{0o40000, 0o20000, 0o00001},
		{0o77777, 0o77777, 0o77777},
		{0o12345, 0o45162, 0o24712},
	}
	for _, test := range tests {
		r := CycleRight(test.in)
		if r != test.right {
			t.Errorf("CycleRight not correct got: %06o expected: %06o", r, test.right)
		}
		r = CycleLeft(test.in)
		if r != test.left {
			t.Errorf("CycleLeft not correct got: %06o expected: %06o", r, test.left)
		}
	}

	// Cycling right then left must be the identity for every word value.
	for v := uint16(0); v <= Mask; v++ {
		r := CycleLeft(CycleRight(v))
		if r != v {
			t.Errorf("Cycle round trip not correct got: %06o expected: %06o", r, v)
		}
	}
}

// Check sign preserving shift right.
func TestShiftRight(t *testing.T) {
	tests := []struct {
		in  uint16
		out uint16
	}{
		{0o00002, 0o00001},
		{0o40000, 0o60000},
		{0o77777, 0o77777},
		{0o37777, 0o17777},
	}
	for _, test := range tests {
		r := ShiftRight(test.in)
		if r != test.out {
			t.Errorf("ShiftRight not correct got: %06o expected: %06o", r, test.out)
		}
	}
}

// Check edit transform.
func TestEdit(t *testing.T) {
	tests := []struct {
		in  uint16
		out uint16
	}{
		{0o77777, 0o177},
		{0o00177, 0o00001},
		{0o00077, 0},
		{0o12345, 0o00051},
	}
	for _, test := range tests {
		r := Edit(test.in)
		if r != test.out {
			t.Errorf("Edit not correct got: %06o expected: %06o", r, test.out)
		}
	}
}

// Check counter increment with overflow.
func TestPinc(t *testing.T) {
	r, ov := Pinc(5)
	if r != 6 || ov {
		t.Errorf("Pinc not correct got: %06o expected: %06o", r, 6)
	}
	r, ov = Pinc(MaxPos)
	if r != 0 || !ov {
		t.Errorf("Pinc overflow not correct got: %06o overflow: %v", r, ov)
	}
}

// Check counter diminish toward zero.
func TestDinc(t *testing.T) {
	r, zero := Dinc(2)
	if r != 1 || zero {
		t.Errorf("Dinc not correct got: %06o expected: %06o", r, 1)
	}
	r, zero = Dinc(1)
	if r != 0 || !zero {
		t.Errorf("Dinc did not reach zero got: %06o", r)
	}
	// Minus two steps toward minus zero.
	r, zero = Dinc(0o77775)
	if r != 0o77776 || zero {
		t.Errorf("Dinc not correct got: %06o expected: %06o", r, 0o77776)
	}
	r, zero = Dinc(0o77776)
	if r != NegZero || !zero {
		t.Errorf("Dinc did not reach minus zero got: %06o", r)
	}
	// Both zeros hold.
	r, zero = Dinc(0)
	if r != 0 || !zero {
		t.Errorf("Dinc at zero not correct got: %06o", r)
	}
}

// Check integer conversions.
func TestConvert(t *testing.T) {
	tests := []struct {
		w uint16
		i int
	}{
		{0, 0},
		{5, 5},
		{MaxPos, 16383},
		{0o77776, -1},
		{0o40000, -16383},
	}
	for _, test := range tests {
		r := ToInt(test.w)
		if r != test.i {
			t.Errorf("ToInt not correct got: %d expected: %d", r, test.i)
		}
		w := FromInt(test.i)
		if w != test.w {
			t.Errorf("FromInt not correct got: %06o expected: %06o", w, test.w)
		}
	}
}
