/*
   AGC15 - Counter register timing.

   Copyright 2026, Michael Hayden

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   MICHAEL HAYDEN BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

package cpu

import (
	"github.com/mhayden/AGC15/emu/interrupt"
	"github.com/mhayden/AGC15/emu/registers"
	"github.com/mhayden/AGC15/emu/word"
)

// The counter registers advance on fixed real time schedules kept in
// machine cycles so they stay in step with the paced cycle loop.
// TIME1 and TIME3-5 count every 10 ms, offset against one another;
// TIME6 diminishes every 1/1600 s while its channel enable is set.
const (
	mcts10ms  = 853 // 10 ms in machine cycles.
	mcts7ms5  = 640 // 7.5 ms phase offset of TIME4.
	mcts5ms   = 427 // 5 ms phase offset of TIME5.
	mctsTime6 = 53  // 1/1600 s in machine cycles.
)

// Counter identities used as event arguments.
const (
	ctrTime1 = iota
	ctrTime3
	ctrTime4
	ctrTime5
	ctrTime6
)

type counterDef struct {
	addr   int    // Counter register cell.
	period int    // Cycles between counts.
	offset int    // Phase offset of the first count.
	vector uint16 // Interrupt requested on overflow, 0 for none.
}

var counterDefs = map[int]counterDef{
	ctrTime1: {registers.TIME1, mcts10ms, 0, 0},
	ctrTime3: {registers.TIME3, mcts10ms, 0, interrupt.T3Rupt},
	ctrTime4: {registers.TIME4, mcts10ms, mcts7ms5, interrupt.T4Rupt},
	ctrTime5: {registers.TIME5, mcts10ms, mcts5ms, interrupt.T5Rupt},
	ctrTime6: {registers.TIME6, mctsTime6, 0, interrupt.T6Rupt},
}

// Schedule the first count of every counter, dropping any counts
// still pending. Called at power up and on reset.
func (cpu *Cpu) armCounters() {
	for id, def := range counterDefs {
		cpu.events.Cancel(id)
		cpu.events.Add(cpu.tickCounter, def.period+def.offset, id)
	}
}

// Advance one counter register and reschedule its next count.
func (cpu *Cpu) tickCounter(id int) {
	def := counterDefs[id]
	defer cpu.events.Add(cpu.tickCounter, def.period, id)

	if id == ctrTime6 {
		// TIME6 only counts while its channel enable is set. On
		// reaching plus or minus zero it raises T6RUPT and the
		// hardware drops the enable.
		if !cpu.IO.Time6Enabled() {
			return
		}
		value, _ := cpu.Reg.Load(def.addr)
		value, zero := word.Dinc(value)
		_ = cpu.Reg.Store(def.addr, value)
		if zero {
			cpu.IO.DisableTime6()
			cpu.Irq.Request(def.vector)
		}
		return
	}

	value, _ := cpu.Reg.Load(def.addr)
	value, overflow := word.Pinc(value)
	_ = cpu.Reg.Store(def.addr, value)
	if !overflow {
		return
	}

	if id == ctrTime1 {
		// TIME1 overflow carries into TIME2; together they are the
		// master clock.
		high, _ := cpu.Reg.Load(registers.TIME2)
		high, _ = word.Pinc(high)
		_ = cpu.Reg.Store(registers.TIME2, high)
		return
	}

	cpu.Irq.Request(def.vector)
}
