/*
 * AGC15 - Console command parser test.
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
	"strings"
	"testing"

	cpu "github.com/mhayden/AGC15/emu/cpu"
	"github.com/mhayden/AGC15/emu/interrupt"
	"github.com/mhayden/AGC15/emu/master"
)

func newMachine() *cpu.Cpu {
	// Buffered so control commands complete without a running loop.
	return cpu.New(make(chan master.Packet, 8))
}

func TestEmptyLine(t *testing.T) {
	machine := newMachine()

	quit, err := ProcessCommand("   # just a comment", machine)
	if err != nil {
		t.Errorf("Comment line failed: %v", err)
	}
	if quit {
		t.Error("Comment line requested quit")
	}
}

func TestUnknownCommand(t *testing.T) {
	machine := newMachine()

	_, err := ProcessCommand("bogus", machine)
	if err == nil {
		t.Error("Unknown command not rejected")
	}
	// "st" is ambiguous between start and stop.
	_, err = ProcessCommand("st", machine)
	if err == nil {
		t.Error("Ambiguous command not rejected")
	}
}

func TestQuit(t *testing.T) {
	machine := newMachine()

	quit, err := ProcessCommand("quit", machine)
	if err != nil {
		t.Errorf("Quit failed: %v", err)
	}
	if !quit {
		t.Error("Quit not requested")
	}
}

func TestDepositExamineRegister(t *testing.T) {
	machine := newMachine()

	_, err := ProcessCommand("deposit a 123", machine)
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	v, _ := machine.Reg.Get("A")
	if v != 0o123 {
		t.Errorf("Register A not correct got: %05o expected: %05o", v, 0o123)
	}

	_, err = ProcessCommand("examine a", machine)
	if err != nil {
		t.Errorf("Examine failed: %v", err)
	}
}

func TestDepositMemory(t *testing.T) {
	machine := newMachine()

	_, err := ProcessCommand("deposit 1234 456", machine)
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	v, _ := machine.Mem.ReadCPU(0o1234)
	if v != 0o456 {
		t.Errorf("Memory word not correct got: %05o expected: %05o", v, 0o456)
	}

	_, err = ProcessCommand("deposit 1234 177777", machine)
	if err == nil {
		t.Error("Out of range value not rejected")
	}
	_, err = ProcessCommand("deposit 1234", machine)
	if err == nil {
		t.Error("Missing value not rejected")
	}
}

func TestDepositChannel(t *testing.T) {
	machine := newMachine()

	_, err := ProcessCommand("deposit c5 123", machine)
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	v, _ := machine.IO.Read(0o5)
	if v != 0o123 {
		t.Errorf("Channel 005 not correct got: %05o expected: %05o", v, 0o123)
	}

	// Channel 1 aliases register L.
	_, err = ProcessCommand("deposit c1 321", machine)
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	v, _ = machine.Reg.Get("L")
	if v != 0o321 {
		t.Errorf("Register L not correct got: %05o expected: %05o", v, 0o321)
	}

	_, err = ProcessCommand("examine c1", machine)
	if err != nil {
		t.Errorf("Examine failed: %v", err)
	}
}

func TestControlPackets(t *testing.T) {
	machine := newMachine()

	cases := []struct {
		line   string
		msg    int
		vector uint16
		path   string
	}{
		{"start", master.Start, 0, ""},
		{"sto", master.Stop, 0, ""},
		{"c", master.Start, 0, ""},
		{"reset", master.Reset, 0, ""},
		{"interrupt t3rupt", master.Interrupt, interrupt.T3Rupt, ""},
		{"interrupt rupt10", master.Interrupt, interrupt.HandRupt, ""},
		{"load luminary099", master.LoadRope, 0, "luminary099"},
	}

	for _, test := range cases {
		_, err := ProcessCommand(test.line, machine)
		if err != nil {
			t.Fatalf("Command %q failed: %v", test.line, err)
		}
		packet := <-machine.Master
		if packet.Msg != test.msg {
			t.Errorf("Command %q message not correct got: %d expected: %d",
				test.line, packet.Msg, test.msg)
		}
		if packet.Vector != test.vector {
			t.Errorf("Command %q vector not correct got: %05o expected: %05o",
				test.line, packet.Vector, test.vector)
		}
		if packet.Path != test.path {
			t.Errorf("Command %q path not correct got: %s expected: %s",
				test.line, packet.Path, test.path)
		}
	}

	_, err := ProcessCommand("interrupt bogus", machine)
	if err == nil {
		t.Error("Unknown interrupt vector not rejected")
	}
}

func TestCompletion(t *testing.T) {
	out := CompleteCmd("sho")
	if len(out) != 1 || out[0] != "show " {
		t.Errorf("Command completion not correct got: %v", out)
	}

	out = CompleteCmd("interrupt t3")
	if len(out) != 1 || !strings.HasSuffix(out[0], "t3rupt") {
		t.Errorf("Vector completion not correct got: %v", out)
	}

	out = CompleteCmd("examine cy")
	if len(out) != 2 {
		t.Errorf("Register completion not correct got: %v", out)
	}
}
