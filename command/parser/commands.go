/*
 * AGC15 - Console commands.
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

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cpu "github.com/mhayden/AGC15/emu/cpu"
	"github.com/mhayden/AGC15/emu/interrupt"
	"github.com/mhayden/AGC15/emu/iochan"
	"github.com/mhayden/AGC15/emu/registers"
)

var cmdList = []cmd{
	{Name: "start", Min: 3, Process: startCommand},
	{Name: "stop", Min: 3, Process: stopCommand},
	{Name: "continue", Min: 1, Process: startCommand},
	{Name: "reset", Min: 5, Process: resetCommand},
	{Name: "load", Min: 2, Process: loadCommand},
	{Name: "interrupt", Min: 3, Process: interruptCommand, Complete: completeVector},
	{Name: "examine", Min: 1, Process: examineCommand, Complete: completeRegister},
	{Name: "deposit", Min: 1, Process: depositCommand, Complete: completeRegister},
	{Name: "show", Min: 2, Process: showCommand, Complete: completeShow},
	{Name: "quit", Min: 4, Process: quitCommand},
	{Name: "exit", Min: 4, Process: quitCommand},
}

// Begin or resume cycle execution.
func startCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	if !line.isEOL() {
		return false, errors.New("extra arguments on line")
	}
	machine.SendStart()
	return false, nil
}

// Pause the cycle loop.
func stopCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	if !line.isEOL() {
		return false, errors.New("extra arguments on line")
	}
	machine.SendStop()
	return false, nil
}

// Hardware restart.
func resetCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	if !line.isEOL() {
		return false, errors.New("extra arguments on line")
	}
	machine.SendReset()
	return false, nil
}

// Load a rope image file into fixed memory.
func loadCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	line.skipSpace()
	if line.isEOL() {
		return false, errors.New("rope image file name expected")
	}
	path := line.line[line.pos:]
	line.pos = len(line.line)
	machine.SendLoad(strings.TrimSpace(path))
	return false, nil
}

// Post an interrupt request by vector name.
func interruptCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	name := line.getWord()
	if name == "" {
		return false, errors.New("interrupt vector name expected")
	}
	vector, ok := interrupt.Lookup(name)
	if !ok {
		return false, errors.New("unknown interrupt vector: " + name)
	}
	machine.SendInterrupt(vector)
	return false, nil
}

// Kinds of examine and deposit target.
const (
	targetRegister = 1 + iota
	targetChannel
	targetMemory
)

// Resolve a target argument. Register names give the register cell, a
// "c" prefixed octal number gives an I/O channel, anything else is a
// full CPU address.
func parseTarget(line *cmdLine) (int, string, int, error) {
	line.skipSpace()
	if line.isEOL() {
		return 0, "", 0, errors.New("register name, channel or octal address expected")
	}
	start := line.pos
	w := line.getWord()
	name := strings.ToUpper(w)
	if registers.Addr(name) >= 0 {
		return targetRegister, name, 0, nil
	}
	if len(w) > 1 && w[0] == 'c' {
		ch, err := strconv.ParseInt(w[1:], 8, 32)
		if err != nil {
			return 0, "", 0, errors.New("invalid channel number: " + w[1:])
		}
		return targetChannel, "", int(ch), nil
	}
	line.pos = start
	addr, err := line.getOctal()
	if err != nil {
		return 0, "", 0, err
	}
	return targetMemory, "", addr, nil
}

// Display a register, a channel or a range of memory words.
func examineCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	kind, name, addr, err := parseTarget(line)
	if err != nil {
		return false, err
	}

	switch kind {
	case targetRegister:
		value, err := machine.Reg.Get(name)
		if err != nil {
			return false, err
		}
		fmt.Printf("%s: %05o\n", name, value)
	case targetChannel:
		value, err := machine.IO.Read(addr)
		if err != nil {
			return false, err
		}
		fmt.Printf("c%03o: %05o\n", addr, value)
	case targetMemory:
		count := 1
		if !line.isEOL() {
			count, err = line.getOctal()
			if err != nil {
				return false, err
			}
		}
		for i := 0; i < count; i++ {
			value, err := machine.Mem.ReadCPU(addr + i)
			if err != nil {
				return false, err
			}
			fmt.Printf("%05o: %05o\n", addr+i, value)
		}
	}
	return false, nil
}

// Store a value into a register, channel or memory word.
func depositCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	kind, name, addr, err := parseTarget(line)
	if err != nil {
		return false, err
	}
	value, err := line.getOctal()
	if err != nil {
		return false, err
	}
	if value < 0 || value > 0o77777 {
		return false, errors.New("value out of range")
	}

	switch kind {
	case targetRegister:
		return false, machine.Reg.Set(name, uint16(value))
	case targetChannel:
		return false, machine.IO.Write(addr, uint16(value))
	}
	return false, machine.Mem.WriteCPU(addr, uint16(value))
}

// Display machine state summaries.
func showCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	what := line.getWord()
	switch what {
	case "registers":
		for addr := 0; addr < registers.NumRegisters; addr++ {
			name := registers.Name(addr)
			if name == "" {
				continue
			}
			value, _ := machine.Reg.Load(addr)
			fmt.Printf("%-8s %05o\n", name, value)
		}
	case "channels":
		for ch := 0; ch < iochan.NumChannels; ch++ {
			value, _ := machine.IO.Read(ch)
			if value != 0 {
				fmt.Printf("%03o: %05o\n", ch, value)
			}
		}
	case "state":
		fmt.Printf("running:    %v\n", machine.Running())
		fmt.Printf("cycles:     %d\n", machine.Cycles())
		fmt.Printf("interrupts: %v\n", machine.Irq.Enabled())
		fmt.Printf("extracode:  %v\n", machine.Extracode())
		fmt.Printf("parity:     %v\n", machine.ParitySeen())
	default:
		return false, errors.New("show registers, channels or state")
	}
	return false, nil
}

// Leave the console, shutting the machine down.
func quitCommand(line *cmdLine, machine *cpu.Cpu) (bool, error) {
	return true, nil
}
