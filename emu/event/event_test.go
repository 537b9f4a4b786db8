package event

/*
 * AGC15 - Cycle count event scheduler test
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

type eventTest struct {
	fired []int
}

func (test *eventTest) record(iarg int) {
	test.fired = append(test.fired, iarg)
}

// Events must fire in time order regardless of insertion order.
func TestOrder(t *testing.T) {
	list := NewList()
	test := &eventTest{}

	list.Add(test.record, 30, 3)
	list.Add(test.record, 10, 1)
	list.Add(test.record, 20, 2)

	for i := 0; i < 30; i++ {
		list.Advance(1)
	}

	if len(test.fired) != 3 {
		t.Errorf("Fired count not correct got: %d expected: %d", len(test.fired), 3)
	}
	for i, want := range []int{1, 2, 3} {
		if i < len(test.fired) && test.fired[i] != want {
			t.Errorf("Fire order not correct got: %d expected: %d", test.fired[i], want)
		}
	}
}

// A zero delay fires immediately.
func TestImmediate(t *testing.T) {
	list := NewList()
	test := &eventTest{}

	list.Add(test.record, 0, 9)
	if len(test.fired) != 1 || test.fired[0] != 9 {
		t.Errorf("Immediate event did not fire got: %v", test.fired)
	}
	if list.Any() {
		t.Error("Event left pending after immediate fire")
	}
}

// A canceled event must not fire, and its delay must flow to the next.
func TestCancel(t *testing.T) {
	list := NewList()
	test := &eventTest{}

	list.Add(test.record, 10, 1)
	list.Add(test.record, 20, 2)
	list.Add(test.record, 30, 3)

	list.Cancel(2)

	for i := 0; i < 30; i++ {
		list.Advance(1)
	}

	if len(test.fired) != 2 {
		t.Errorf("Fired count not correct got: %d expected: %d", len(test.fired), 2)
	}
	for i, want := range []int{1, 3} {
		if i < len(test.fired) && test.fired[i] != want {
			t.Errorf("Fire order not correct got: %d expected: %d", test.fired[i], want)
		}
	}
	if list.Any() {
		t.Error("Events left pending after advance")
	}
}

// Advancing by more than one cycle carries overshoot into later
// events.
func TestAdvanceOvershoot(t *testing.T) {
	list := NewList()
	test := &eventTest{}

	list.Add(test.record, 10, 1)
	list.Add(test.record, 12, 2)

	list.Advance(11)
	if len(test.fired) != 1 {
		t.Errorf("Fired count not correct got: %d expected: %d", len(test.fired), 1)
	}
	list.Advance(1)
	if len(test.fired) != 2 {
		t.Errorf("Fired count not correct got: %d expected: %d", len(test.fired), 2)
	}
}

// A callback may reschedule itself, the periodic counter pattern.
func TestPeriodic(t *testing.T) {
	list := NewList()

	count := 0
	var tick Callback
	tick = func(iarg int) {
		count++
		list.Add(tick, 5, iarg)
	}
	list.Add(tick, 5, 0)

	for i := 0; i < 25; i++ {
		list.Advance(1)
	}
	if count != 5 {
		t.Errorf("Periodic count not correct got: %d expected: %d", count, 5)
	}
}
