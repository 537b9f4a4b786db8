package scheduler

/*
 * AGC15 - Machine cycle pacing
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
	"time"
)

// MCT is one machine cycle, the base instruction timing unit. The
// period is far below OS sleep granularity, so pacing spin-polls the
// monotonic clock instead of sleeping. This is the only place wall
// clock time enters the emulator.
const MCT = 11720 * time.Nanosecond

// Scheduler decides when a new machine cycle may begin.
type Scheduler struct {
	cycleStart  time.Time
	extraCycles int // Cycle debt from multi cycle instructions.
}

// Create a scheduler with the cycle clock started.
func New() *Scheduler {
	return &Scheduler{cycleStart: time.Now()}
}

// Check whether the next machine cycle is due. When enough real time
// has passed, including any extra cycle debt, the cycle clock restarts
// and the debt clears. Otherwise nothing changes.
func (sched *Scheduler) Due() bool {
	need := MCT * time.Duration(1+sched.extraCycles)
	if time.Since(sched.cycleStart) < need {
		return false
	}
	sched.cycleStart = time.Now()
	sched.extraCycles = 0
	return true
}

// Charge extra machine cycles against the next Due check. Called by
// the interpreter after executing an instruction that takes more than
// one MCT.
func (sched *Scheduler) AddCycles(cycles int) {
	if cycles > 0 {
		sched.extraCycles += cycles
	}
}

// Pending extra cycle debt.
func (sched *Scheduler) ExtraCycles() int {
	return sched.extraCycles
}

// Spin until the given number of machine cycles has elapsed from the
// call. Used to make an instruction occupy real time synchronously.
func (sched *Scheduler) BlockFor(cycles int) {
	start := time.Now()
	need := MCT * time.Duration(cycles)
	for time.Since(start) < need {
	}
}
