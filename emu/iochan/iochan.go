package iochan

/*
 * AGC15 - I/O channel overlay
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

// The channel address space is separate from memory. Channels 1 and 2
// are not storage of their own, they alias the L and Q register cells.
const (
	NumChannels = 0o1000

	ChanL         = 0o01 // Aliases register L.
	ChanQ         = 0o02 // Aliases register Q.
	ChanSuperbank = 0o07 // Superbank bit for fixed addressing.
	ChanTime6     = 0o13 // Bit 15 enables the TIME6 counter.

	Time6Enable = 0o40000 // Enable bit within channel 013.
	KeyIdle     = 0o37777 // Key-not-pressed status pattern.

	superbankBit = 0o100 // Superbank bit within channel 007.
)

var ErrOutOfRange = errors.New("i/o channel out of range")

// Channels is the machine's channel cell file.
type Channels struct {
	reg   *registers.File
	cells [NumChannels]uint16

	// Called when the superbank bit changes, wired to the memory
	// subsystem by the composition root.
	Superbank func(on bool)
}

// Create the channel overlay over a register file.
func New(reg *registers.File) *Channels {
	channels := &Channels{reg: reg}
	channels.Reset()
	return channels
}

// Reinitialize every channel cell. Channels 030-033 are status line
// groups that idle at the key-not-pressed pattern.
func (channels *Channels) Reset() {
	for i := range channels.cells {
		channels.cells[i] = 0
	}
	for ch := 0o30; ch <= 0o33; ch++ {
		channels.cells[ch] = KeyIdle
	}
}

// Read a channel cell. Channels 1 and 2 come from L and Q.
func (channels *Channels) Read(ch int) (uint16, error) {
	switch {
	case ch < 0 || ch >= NumChannels:
		return 0, ErrOutOfRange
	case ch == ChanL:
		return channels.reg.Get("L")
	case ch == ChanQ:
		return channels.reg.Get("Q")
	}
	return channels.cells[ch], nil
}

// Write a channel cell. Channels 1 and 2 go to L and Q, channel 7
// feeds the superbank bit to memory addressing.
func (channels *Channels) Write(ch int, value uint16) error {
	switch {
	case ch < 0 || ch >= NumChannels:
		return ErrOutOfRange
	case ch == ChanL:
		return channels.reg.Set("L", value)
	case ch == ChanQ:
		return channels.reg.Set("Q", value)
	}
	channels.cells[ch] = value
	if ch == ChanSuperbank && channels.Superbank != nil {
		channels.Superbank((value & superbankBit) != 0)
	}
	return nil
}

// Report whether the TIME6 counter is enabled.
func (channels *Channels) Time6Enabled() bool {
	return (channels.cells[ChanTime6] & Time6Enable) != 0
}

// Clear the TIME6 enable bit, done by the hardware once TIME6 lands
// on zero and T6RUPT is requested.
func (channels *Channels) DisableTime6() {
	channels.cells[ChanTime6] &^= Time6Enable
}
