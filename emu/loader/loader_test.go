package loader

/*
 * AGC15 - Core rope image loader test
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
	"os"
	"path/filepath"
	"testing"

	"github.com/mhayden/AGC15/emu/memory"
	"github.com/mhayden/AGC15/emu/registers"
)

func newMemory() *memory.Memory {
	return memory.New(registers.New())
}

// A two word image lands at the start of bank 02, the first bank in
// image order, with both parity bits recorded.
func TestLoadTwoWords(t *testing.T) {
	mem := newMemory()

	report, err := Load([]byte{0x00, 0x03, 0x00, 0x05}, mem)
	if err != nil {
		t.Errorf("Load failed: %v", err)
	}

	r, _ := mem.Read(2, 0, memory.Fixed)
	if r != 1 {
		t.Errorf("Bank 02 word 0 not correct got: %05o expected: %05o", r, 1)
	}
	r, _ = mem.Read(2, 1, memory.Fixed)
	if r != 2 {
		t.Errorf("Bank 02 word 1 not correct got: %05o expected: %05o", r, 2)
	}

	// Both words also show through the fixed fixed view.
	r, _ = mem.ReadCPU(0o4000)
	if r != 1 {
		t.Errorf("Fixed fixed word 0 not correct got: %05o expected: %05o", r, 1)
	}

	if !report.ParitySeen {
		t.Error("Parity flag not set")
	}
	idx := 2 * memory.FixedWords / 32
	if report.Parities[idx] != 0b11 {
		t.Errorf("Parity bitmap not correct got: %#x expected: %#x", report.Parities[idx], 0b11)
	}
	if report.Words != 2 {
		t.Errorf("Word count not correct got: %d expected: %d", report.Words, 2)
	}
}

// Banks fill in image order 02, 03, 00, 01, 04.
func TestBankOrder(t *testing.T) {
	mem := newMemory()

	// Five banks of words, each filled with its image order position.
	image := make([]byte, 5*memory.FixedWords*2)
	for i := 0; i < 5*memory.FixedWords; i++ {
		seq := uint16(i / memory.FixedWords)
		// Value in the high 15 bits, parity bit clear.
		image[i*2] = byte(seq >> 7)
		image[i*2+1] = byte(seq << 1)
	}

	report, err := Load(image, mem)
	if err != nil {
		t.Errorf("Load failed: %v", err)
	}
	if report.ParitySeen {
		t.Error("Parity flag set with no parity bits")
	}

	want := map[int]uint16{2: 0, 3: 1, 0: 2, 1: 3, 4: 4}
	for bank, seq := range want {
		r, _ := mem.Read(bank, 0o100, memory.Fixed)
		if r != seq {
			t.Errorf("Bank %02o not correct got: %05o expected: %05o", bank, r, seq)
		}
	}
}

// Precondition failures abort before memory is touched.
func TestPreconditions(t *testing.T) {
	mem := newMemory()

	_, err := Load([]byte{1, 2, 3}, mem)
	if !errors.Is(err, ErrOddImageSize) {
		t.Errorf("Odd size error not correct got: %v expected: %v", err, ErrOddImageSize)
	}

	huge := make([]byte, (memory.RopeBanks*memory.FixedWords+1)*2)
	_, err = Load(huge, mem)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("Too large error not correct got: %v expected: %v", err, ErrImageTooLarge)
	}

	for bank := 0; bank < memory.RopeBanks; bank++ {
		r, _ := mem.Read(bank, 0, memory.Fixed)
		if r != 0 {
			t.Errorf("Memory touched by rejected load at bank %02o: %05o", bank, r)
		}
	}
}

// An image of exactly full capacity loads without overflow.
func TestFullImage(t *testing.T) {
	mem := newMemory()

	image := make([]byte, memory.RopeBanks*memory.FixedWords*2)
	report, err := Load(image, mem)
	if err != nil {
		t.Errorf("Load failed: %v", err)
	}
	if report.Overflow {
		t.Error("Overflow reported for exactly full image")
	}
	if report.Words != memory.RopeBanks*memory.FixedWords {
		t.Errorf("Word count not correct got: %d expected: %d",
			report.Words, memory.RopeBanks*memory.FixedWords)
	}
}

// Loading from a file, with the .bin extension supplied when missing.
func TestLoadFile(t *testing.T) {
	mem := newMemory()

	dir := t.TempDir()
	path := filepath.Join(dir, "rope.bin")
	if err := os.WriteFile(path, []byte{0x00, 0x03, 0x00, 0x05}, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	report, err := LoadFile(filepath.Join(dir, "rope"), mem)
	if err != nil {
		t.Errorf("LoadFile failed: %v", err)
	}
	if report.Words != 2 {
		t.Errorf("Word count not correct got: %d expected: %d", report.Words, 2)
	}

	_, err = LoadFile(filepath.Join(dir, "missing"), mem)
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("Missing file error not correct got: %v expected: %v", err, ErrImageNotFound)
	}
}
