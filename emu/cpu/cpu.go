/*
   AGC15 - Machine aggregate and cycle loop.

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
	"log/slog"
	"sync"
	"time"

	"github.com/mhayden/AGC15/emu/event"
	"github.com/mhayden/AGC15/emu/interrupt"
	"github.com/mhayden/AGC15/emu/iochan"
	"github.com/mhayden/AGC15/emu/loader"
	"github.com/mhayden/AGC15/emu/master"
	"github.com/mhayden/AGC15/emu/memory"
	"github.com/mhayden/AGC15/emu/registers"
	"github.com/mhayden/AGC15/emu/scheduler"
	"github.com/mhayden/AGC15/util/debug"
)

// Interpreter is the instruction decode and execute stage, supplied
// from outside this core. Step executes one instruction against the
// machine state and returns the machine cycles it consumed, at least
// one.
type Interpreter interface {
	Step(machine *Cpu) int
}

// Cpu owns one instance of every machine component. All machine state
// is mutated only from the single cycle loop goroutine; the console
// examines it while the loop is stopped.
type Cpu struct {
	Reg   *registers.File
	Mem   *memory.Memory
	IO    *iochan.Channels
	Irq   *interrupt.Controller
	Clock *scheduler.Scheduler

	Master chan master.Packet

	wg      sync.WaitGroup
	done    chan struct{} // Signal to shut down the machine.
	running bool          // Indicate when cycles should run or not.

	events    *event.List
	interp    Interpreter
	extracode bool // Extend flag for two word instructions.

	checkParity bool     // A loaded rope carried parity bits.
	parities    []uint32 // Accumulated parity bitmap.

	cycles uint64 // Machine cycles executed.
}

// Create a machine. The program counter starts at the boot vector.
func New(masterChannel chan master.Packet) *Cpu {
	reg := registers.New()
	mem := memory.New(reg)
	channels := iochan.New(reg)
	channels.Superbank = mem.SetSuper

	cpu := &Cpu{
		Reg:    reg,
		Mem:    mem,
		IO:     channels,
		Irq:    interrupt.New(mem, reg),
		Clock:  scheduler.New(),
		Master: masterChannel,
		done:   make(chan struct{}),
		events: event.NewList(),
	}
	_ = reg.Set("Z", interrupt.Boot)
	cpu.armCounters()
	return cpu
}

// Attach the external instruction interpreter.
func (cpu *Cpu) SetInterpreter(interp Interpreter) {
	cpu.interp = interp
}

// Run the machine loop. Each permitted cycle runs one interpreter
// step and advances the counter events by the cycles it took.
func (cpu *Cpu) Start() {
	cpu.wg.Add(1)
	defer cpu.wg.Done()
	for {
		if cpu.running && cpu.Clock.Due() {
			cycles := 1
			if cpu.interp != nil {
				cycles = cpu.interp.Step(cpu)
				if cycles < 1 {
					cycles = 1
				}
			}
			// Extra cycles beyond the first delay the next Due.
			cpu.Clock.AddCycles(cycles - 1)
			cpu.events.Advance(cycles)
			cpu.cycles += uint64(cycles)
		}
		select {
		case <-cpu.done:
			return
		case packet := <-cpu.Master:
			cpu.processPacket(packet)
		default:
		}
	}
}

// Stop a running machine.
func (cpu *Cpu) Stop() {
	slog.Info("Shutting down machine")
	close(cpu.done)
	done := make(chan struct{})
	go func() {
		cpu.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for machine to finish.")
		return
	}
}

// Hardware restart. Erasable memory, channels and registers clear,
// the extracode and parity check flags drop, interrupts re-enable and
// the program counter returns to the boot vector. Fixed memory and
// the parity bitmap survive.
func (cpu *Cpu) Reset() {
	cpu.Mem.ResetErasable()
	cpu.Reg.Reset()
	cpu.IO.Reset()
	cpu.Mem.SetSuper(false)
	cpu.Irq.SetEnabled(true)
	cpu.extracode = false
	cpu.checkParity = false
	_ = cpu.Reg.Set("Z", interrupt.Boot)
	cpu.armCounters()
	slog.Info("Machine reset")
}

// Load a rope image and fold its parity state into the machine.
func (cpu *Cpu) LoadImage(path string) error {
	report, err := loader.LoadFile(path, cpu.Mem)
	if err != nil {
		return err
	}
	if cpu.parities == nil {
		cpu.parities = report.Parities
	} else {
		for i, p := range report.Parities {
			cpu.parities[i] |= p
		}
	}
	if report.ParitySeen {
		cpu.checkParity = true
	}
	if report.Overflow {
		slog.Warn("Rope image larger than woven banks, load truncated")
	}
	debug.Debugf("CPU", debug.MaskLoad, "rope %s loaded, %d words, parity %v",
		path, report.Words, report.ParitySeen)
	slog.Info("Rope image loaded", "path", path, "words", report.Words)
	return nil
}

// Extracode flag state, set by the interpreter between the EXTEND
// prefix and the instruction it extends.
func (cpu *Cpu) Extracode() bool {
	return cpu.extracode
}

func (cpu *Cpu) SetExtracode(on bool) {
	cpu.extracode = on
}

// Whether any loaded rope word carried a parity bit.
func (cpu *Cpu) ParitySeen() bool {
	return cpu.checkParity
}

// The accumulated parity bitmap, nil before any load.
func (cpu *Cpu) Parities() []uint32 {
	return cpu.parities
}

// Machine cycles executed since power up.
func (cpu *Cpu) Cycles() uint64 {
	return cpu.cycles
}

// Whether the cycle loop is executing.
func (cpu *Cpu) Running() bool {
	return cpu.running
}

// Start executing cycles.
func (cpu *Cpu) SendStart() {
	cpu.Master <- master.Packet{Msg: master.Start}
}

// Pause the cycle loop.
func (cpu *Cpu) SendStop() {
	cpu.Master <- master.Packet{Msg: master.Stop}
}

// Request a hardware restart.
func (cpu *Cpu) SendReset() {
	cpu.Master <- master.Packet{Msg: master.Reset}
}

// Request a rope image load.
func (cpu *Cpu) SendLoad(path string) {
	cpu.Master <- master.Packet{Msg: master.LoadRope, Path: path}
}

// Post an interrupt request to the machine.
func (cpu *Cpu) SendInterrupt(vector uint16) {
	cpu.Master <- master.Packet{Msg: master.Interrupt, Vector: vector}
}

// Process a control packet from the console.
func (cpu *Cpu) processPacket(packet master.Packet) {
	switch packet.Msg {
	case master.Start:
		debug.Debugf("CPU", debug.MaskCmd, "start at %d cycles", cpu.cycles)
		cpu.running = true
	case master.Stop:
		debug.Debugf("CPU", debug.MaskCmd, "stop at %d cycles", cpu.cycles)
		cpu.running = false
	case master.Reset:
		cpu.Reset()
	case master.LoadRope:
		if err := cpu.LoadImage(packet.Path); err != nil {
			slog.Error(err.Error())
		}
	case master.Interrupt:
		if cpu.Irq.Request(packet.Vector) {
			debug.Debugf("CPU", debug.MaskIrq, "interrupt dispatched to %05o", packet.Vector)
		} else {
			slog.Debug("Interrupt request denied", "vector", packet.Vector)
		}
	}
}
