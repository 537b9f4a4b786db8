package loader

/*
 * AGC15 - Core rope image loader
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
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mhayden/AGC15/emu/memory"
)

// A rope image is a flat file of big endian 16 bit words. The low bit
// of each word is its parity bit, the high 15 bits the stored value.
// The assembler writes the first four banks in the order 02, 03, 00,
// 01 before continuing 04 upward, and that order must be reproduced or
// the loaded rope is scrambled.

var (
	ErrOddImageSize  = errors.New("rope image size is not even")
	ErrImageTooLarge = errors.New("rope image larger than fixed memory")
	ErrImageNotFound = errors.New("rope image not found")
)

// Report of one image load.
type Report struct {
	ParitySeen bool     // Any parity bit was set.
	Parities   []uint32 // Packed parity bitmap, one bit per word.
	Overflow   bool     // Image ran past the woven banks, load stopped.
	Words      int      // Words written to fixed memory.
}

// Bank fill order of the image format.
func bankOrder() []int {
	order := make([]int, memory.RopeBanks)
	for i := range order {
		order[i] = i
	}
	order[0], order[1], order[2], order[3] = 2, 3, 0, 1
	return order
}

// Load a rope image into fixed memory through the memory addressing
// layer. Precondition failures abort before any memory is touched.
func Load(image []byte, mem *memory.Memory) (Report, error) {
	report := Report{}

	if len(image)%2 != 0 {
		return report, ErrOddImageSize
	}
	words := len(image) / 2
	if words > memory.RopeBanks*memory.FixedWords {
		return report, ErrImageTooLarge
	}

	report.Parities = make([]uint32, memory.FixedBanks*memory.FixedWords/32)

	order := bankOrder()
	slot := 0
	bank := order[slot]
	addr := 0

	for i := 0; i < words; i++ {
		// When one bank is full move to the next in image order.
		if addr == memory.FixedWords {
			slot++
			if slot >= len(order) {
				report.Overflow = true
				break
			}
			bank = order[slot]
			addr = 0
		}

		value := binary.BigEndian.Uint16(image[i*2:])
		parity := uint32(value & 1)

		if err := mem.Write(bank, addr, memory.Fixed, value>>1); err != nil {
			return report, fmt.Errorf("rope write bank %02o addr %04o: %w", bank, addr, err)
		}

		report.Parities[(bank*memory.FixedWords+addr)/32] |= parity << (addr % 32)
		if parity != 0 {
			report.ParitySeen = true
		}

		report.Words++
		addr++
	}

	return report, nil
}

// Load a rope image file. A missing .bin extension is supplied.
func LoadFile(path string, mem *memory.Memory) (Report, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".bin") {
		path += ".bin"
	}

	image, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return Report{}, err
	}
	return Load(image, mem)
}
