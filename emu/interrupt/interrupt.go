package interrupt

/*
 * AGC15 - Interrupt controller and vector table
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
	"strings"

	"github.com/mhayden/AGC15/emu/memory"
	"github.com/mhayden/AGC15/emu/registers"
)

// Vector addresses in fixed fixed memory, one per interrupt source.
// Table order is dispatch priority.
const (
	Boot      = 0o4000 // Power up or hardware restart.
	T6Rupt    = 0o4004 // TIME6 counted down to zero.
	T5Rupt    = 0o4010 // TIME5 overflow.
	T3Rupt    = 0o4014 // TIME3 overflow.
	T4Rupt    = 0o4020 // TIME4 overflow.
	KeyRupt1  = 0o4024 // Keyboard code received.
	KeyRupt2  = 0o4030 // Second keyboard code received.
	UpRupt    = 0o4034 // Uplink word assembled in INLINK.
	DownRupt  = 0o4040 // Downlink shift register ready.
	RadarRupt = 0o4044 // Radar data word assembled.
	HandRupt  = 0o4050 // Hand controller trap, also called RUPT10.
)

// Vector table, pure constant data.
var Vectors = []struct {
	Name string
	Addr uint16
}{
	{"BOOT", Boot},
	{"T6RUPT", T6Rupt},
	{"T5RUPT", T5Rupt},
	{"T3RUPT", T3Rupt},
	{"T4RUPT", T4Rupt},
	{"KEYRUPT1", KeyRupt1},
	{"KEYRUPT2", KeyRupt2},
	{"UPRUPT", UpRupt},
	{"DOWNRUPT", DownRupt},
	{"RADARRUPT", RadarRupt},
	{"HANDRUPT", HandRupt},
}

// Find a vector address by source name.
func Lookup(name string) (uint16, bool) {
	name = strings.ToUpper(name)
	if name == "RUPT10" {
		return HandRupt, true
	}
	for _, vector := range Vectors {
		if vector.Name == name {
			return vector.Addr, true
		}
	}
	return 0, false
}

// Controller implements the save-context and vector protocol. While a
// service routine runs further requests are denied; the interpreter's
// resume handling re-enables dispatch.
type Controller struct {
	mem     *memory.Memory
	reg     *registers.File
	enabled bool
}

// Create the interrupt controller with dispatch enabled.
func New(mem *memory.Memory, reg *registers.File) *Controller {
	return &Controller{mem: mem, reg: reg, enabled: true}
}

// Request dispatch to a vector address. Returns false, with no state
// change, while dispatch is inhibited. On dispatch the program counter
// is saved in ZRUPT, the word it addresses in BRUPT, and the hidden B
// register takes the vector.
func (irq *Controller) Request(vector uint16) bool {
	if !irq.enabled {
		return false
	}

	z, _ := irq.reg.Get("Z")
	_ = irq.reg.Set("ZRUPT", z)

	// The instruction about to execute, saved so RESUME can reenter.
	next, err := irq.mem.ReadCPU(int(z))
	if err != nil {
		next = 0
	}
	_ = irq.reg.Set("BRUPT", next)

	_ = irq.reg.Set("B", vector)
	irq.enabled = false
	return true
}

// Report whether dispatch is enabled.
func (irq *Controller) Enabled() bool {
	return irq.enabled
}

// Enable or inhibit dispatch. Called by the interpreter for RESUME,
// INHINT and RELINT handling, and by the machine reset.
func (irq *Controller) SetEnabled(on bool) {
	irq.enabled = on
}
