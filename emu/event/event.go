package event

/*
 * AGC15 - Cycle count event scheduler
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

// Events fire after a number of machine cycles. The list keeps delta
// times, each entry relative to the one before it, so Advance only
// touches the head.

type Callback = func(iarg int)

type Event struct {
	time int      // Cycles to event, relative to previous entry.
	cb   Callback // Function to call back.
	iarg int      // Integer argument.
	prev *Event
	next *Event
}

// List is an event queue owned by one machine.
type List struct {
	head *Event
	tail *Event
}

// Create an empty event list.
func NewList() *List {
	return &List{}
}

// Add an event to fire cycles from now. A zero delay fires at once.
func (list *List) Add(cb Callback, cycles int, iarg int) {
	// If time is 0 process event immediately.
	if cycles == 0 {
		cb(iarg)
		return
	}

	ev := &Event{cb: cb, time: cycles, iarg: iarg}

	evptr := list.head
	// If empty put on head.
	if evptr == nil {
		list.head = ev
		list.tail = ev
		return
	}

	// Scan for place to install it.
	for evptr != nil {
		// Event before next event.
		if ev.time <= evptr.time {
			// Remove current time from next time.
			evptr.time -= ev.time
			ev.prev = evptr.prev
			ev.next = evptr
			evptr.prev = ev
			if ev.prev != nil {
				ev.prev.next = ev
			} else {
				list.head = ev
			}
			// All done.
			return
		}
		// Make new event relative to head of list.
		ev.time -= evptr.time
		evptr = evptr.next
	}

	// Get here, put it on tail of list.
	ev.prev = list.tail
	list.tail.next = ev
	list.tail = ev
}

// Cancel the first pending event with the given argument.
func (list *List) Cancel(iarg int) {
	evptr := list.head

	// Scan list.
	for evptr != nil {
		if evptr.iarg == iarg {
			nxt := evptr.next
			// If next event give time to next event.
			if nxt != nil {
				nxt.time += evptr.time
				nxt.prev = evptr.prev
			} else {
				// No next event, point tail to previous.
				list.tail = evptr.prev
			}

			// Point previous event next to next.
			if evptr.prev != nil {
				evptr.prev.next = evptr.next
			} else {
				// No previous, at head of list.
				list.head = evptr.next
			}
			return
		}
		evptr = evptr.next
	}
}

// Check whether any event is pending.
func (list *List) Any() bool {
	return list.head != nil
}

// Advance time by a number of machine cycles, firing whatever comes
// due.
func (list *List) Advance(cycles int) {
	evptr := list.head
	if evptr == nil {
		return
	}
	evptr.time -= cycles
	for evptr != nil && evptr.time <= 0 {
		carry := evptr.time
		list.head = evptr.next
		if list.head != nil {
			list.head.prev = nil
			// Overshoot carries into the next event.
			list.head.time += carry
		} else {
			list.tail = nil
		}
		evptr.cb(evptr.iarg)
		evptr = list.head
	}
}
