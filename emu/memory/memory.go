package memory

/*
 * AGC15 - Banked erasable and fixed memory
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
	"errors"

	"github.com/mhayden/AGC15/emu/registers"
)

// Memory map, CPU addresses in octal:
//
//	0000-1377  unswitched erasable, a view over switched banks E0-E2
//	1400-1777  switched erasable, bank selected by EB
//	2000-3777  common fixed window, bank selected by FB plus superbank
//	4000-7777  fixed fixed, a view over common fixed banks 02 and 03
//
// Each physical memory class is one flat array. The unswitched and
// fixed fixed views are index translations into those arrays, so a
// write through either addressing path is seen through the other.
const (
	ErasableWords   = 0o400             // Words per erasable bank.
	SwitchedBanks   = 8                 // Erasable banks E0-E7.
	UnswitchedWords = 3 * ErasableWords // Directly addressable erasable.
	FixedWords      = 0o2000            // Words per fixed bank.
	FixedBanks      = 40                // Addressable fixed banks.
	RopeBanks       = 36                // Physically woven fixed banks.
	SwitchedBase    = 0o1400            // CPU base of the switched window.
	FixedBase       = 0o2000            // CPU base of the common fixed window.
	FixedFixedBase  = 0o4000            // CPU base of fixed fixed memory.
	FixedFixedWords = 2 * FixedWords    // Size of the fixed fixed view.
	superBase       = 0o30              // First bank the superbank bit shifts.
	superShift      = 0o10              // Bank displacement when it is set.
)

// NoBank marks a direct access to the unswitched or fixed fixed ranges.
const NoBank = -1

// Region selects the memory class being addressed.
type Region int

const (
	Erasable Region = 1 + iota // Read-write working memory.
	Fixed                      // Rope program memory.
)

var (
	ErrOutOfRange      = errors.New("address or bank out of range")
	ErrInvalidRegion   = errors.New("invalid memory region")
	ErrMalformedAccess = errors.New("malformed memory access")
)

// Memory holds both physical memory classes. Created once at machine
// initialization and owned by the Cpu aggregate.
type Memory struct {
	reg         *registers.File
	switched    [SwitchedBanks * ErasableWords]uint16
	commonFixed [FixedBanks * FixedWords]uint16
	super       bool // Superbank bit from I/O channel 7.
}

// Create memory tied to a register file for bank selection.
func New(reg *registers.File) *Memory {
	return &Memory{reg: reg}
}

// Translate an access to an index into one of the two flat stores.
// A direct access (bank NoBank) must fall in the unswitched range for
// erasable memory, or carry a CPU address with the fixed fixed base
// already removed (0o2000-0o3777) for fixed memory.
func (mem *Memory) index(bank int, addr int, region Region) (int, Region, error) {
	if bank < NoBank || addr < 0 {
		return 0, 0, ErrMalformedAccess
	}
	switch region {
	case Erasable:
		if bank == NoBank {
			if addr >= UnswitchedWords {
				return 0, 0, ErrOutOfRange
			}
			return addr, Erasable, nil
		}
		if bank >= SwitchedBanks || addr >= ErasableWords {
			return 0, 0, ErrOutOfRange
		}
		return bank*ErasableWords + addr, Erasable, nil
	case Fixed:
		if bank == NoBank {
			if addr < FixedWords || addr >= FixedWords+FixedFixedWords {
				return 0, 0, ErrOutOfRange
			}
			// Fixed fixed sits over common fixed banks 02 and 03.
			return addr - FixedWords + 2*FixedWords, Fixed, nil
		}
		if bank >= FixedBanks || addr >= FixedWords {
			return 0, 0, ErrOutOfRange
		}
		return bank*FixedWords + addr, Fixed, nil
	}
	return 0, 0, ErrInvalidRegion
}

// Read a word. Pass NoBank for addresses in the directly addressable
// ranges.
func (mem *Memory) Read(bank int, addr int, region Region) (uint16, error) {
	idx, cls, err := mem.index(bank, addr, region)
	if err != nil {
		return 0, err
	}
	if cls == Erasable {
		return mem.switched[idx], nil
	}
	return mem.commonFixed[idx], nil
}

// Write a word. The fixed store accepts writes so the rope loader can
// populate it through the same addressing rules.
func (mem *Memory) Write(bank int, addr int, region Region, value uint16) error {
	idx, cls, err := mem.index(bank, addr, region)
	if err != nil {
		return err
	}
	if cls == Erasable {
		mem.switched[idx] = value
	} else {
		mem.commonFixed[idx] = value
	}
	return nil
}

// Set the superbank bit, driven by writes to I/O channel 7. With the
// bit set, selected fixed banks 030-037 address 040-047 instead.
func (mem *Memory) SetSuper(on bool) {
	mem.super = on
}

// Fixed bank selected by FB with the superbank extension applied.
func (mem *Memory) fixedBank() int {
	bank := mem.reg.FixedBank()
	if mem.super && bank >= superBase {
		bank += superShift
	}
	return bank
}

// Resolve a full 12 bit CPU address using the bank selector registers
// and read the word there.
func (mem *Memory) ReadCPU(addr int) (uint16, error) {
	switch {
	case addr < 0:
		return 0, ErrOutOfRange
	case addr < SwitchedBase:
		return mem.Read(NoBank, addr, Erasable)
	case addr < FixedBase:
		return mem.Read(mem.reg.ErasableBank(), addr-SwitchedBase, Erasable)
	case addr < FixedFixedBase:
		return mem.Read(mem.fixedBank(), addr-FixedBase, Fixed)
	case addr < FixedFixedBase+FixedFixedWords:
		return mem.Read(NoBank, addr-FixedBase, Fixed)
	}
	return 0, ErrOutOfRange
}

// Resolve a full 12 bit CPU address using the bank selector registers
// and write the word there.
func (mem *Memory) WriteCPU(addr int, value uint16) error {
	switch {
	case addr < 0:
		return ErrOutOfRange
	case addr < SwitchedBase:
		return mem.Write(NoBank, addr, Erasable, value)
	case addr < FixedBase:
		return mem.Write(mem.reg.ErasableBank(), addr-SwitchedBase, Erasable, value)
	case addr < FixedFixedBase:
		return mem.Write(mem.fixedBank(), addr-FixedBase, Fixed, value)
	case addr < FixedFixedBase+FixedFixedWords:
		return mem.Write(NoBank, addr-FixedBase, Fixed, value)
	}
	return ErrOutOfRange
}

// Zero all erasable banks. Fixed memory is left alone, the woven rope
// survives a reset.
func (mem *Memory) ResetErasable() {
	for i := range mem.switched {
		mem.switched[i] = 0
	}
}
