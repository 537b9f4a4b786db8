package registers

/*
 * AGC15 - Central register file
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

	"github.com/mhayden/AGC15/emu/word"
)

// Register cell addresses. Registers live at the bottom of erasable
// memory, one word each, addressed here in octal.
const (
	A         = 0o00 // Accumulator, 16 bits.
	L         = 0o01 // Lower accumulator, aliased by I/O channel 1.
	Q         = 0o02 // Return address register, aliased by I/O channel 2.
	EB        = 0o03 // Erasable bank selector, 000 0EE E00 000 000.
	FB        = 0o04 // Fixed bank selector, FFF FF0 000 000 000.
	Z         = 0o05 // Program counter.
	BB        = 0o06 // Both banks, FFF FF0 000 000 EEE.
	Zeroes    = 0o07 // Hardwired to plus zero.
	ARUPT     = 0o10 // Interrupt save for A.
	LRUPT     = 0o11 // Interrupt save for L.
	QRUPT     = 0o12 // Interrupt save for Q.
	SAMPTIME1 = 0o13 // Sampled copy of TIME1.
	SAMPTIME2 = 0o14 // Sampled copy of TIME2.
	ZRUPT     = 0o15 // Interrupt save for Z.
	BBRUPT    = 0o16 // Interrupt save for BB.
	BRUPT     = 0o17 // Interrupt save of the next instruction word.
	CYR       = 0o20 // Cycles right when written.
	SR        = 0o21 // Shifts right when written.
	CYL       = 0o22 // Cycles left when read.
	EDOP      = 0o23 // Edit transform when written.
	TIME2     = 0o24 // High part of the master clock.
	TIME1     = 0o25 // Low part of the master clock, 10 ms counts.
	TIME3     = 0o26 // Waitlist timer, T3RUPT on overflow.
	TIME4     = 0o27 // Display timer, T4RUPT on overflow.
	TIME5     = 0o30 // Autopilot timer, T5RUPT on overflow.
	TIME6     = 0o31 // Jet timing counter, T6RUPT at zero.
	CDUX      = 0o32 // Inner gimbal angle.
	CDUY      = 0o33 // Middle gimbal angle.
	CDUZ      = 0o34 // Outer gimbal angle.
	OPTY      = 0o35 // Optics trunnion angle.
	OPTX      = 0o36 // Optics shaft angle.
	PIPAX     = 0o37 // Accelerometer X count.
	PIPAY     = 0o40 // Accelerometer Y count.
	PIPAZ     = 0o41 // Accelerometer Z count.
	RHCP      = 0o42 // Hand controller pitch.
	RHCY      = 0o43 // Hand controller yaw.
	RHCR      = 0o44 // Hand controller roll.
	INLINK    = 0o45 // Uplink assembly register.
	RNRAD     = 0o46 // Radar return register.
	GYROCTR   = 0o47 // Gyro torquing counter.
	CDUXCMD   = 0o50 // IMU coarse align command X.
	CDUYCMD   = 0o51 // IMU coarse align command Y.
	CDUZCMD   = 0o52 // IMU coarse align command Z.
	OPTYCMD   = 0o53 // Optics trunnion command.
	OPTXCMD   = 0o54 // Optics shaft command.
	THRUST    = 0o55 // Descent engine throttle.
	LEMONM    = 0o56 // LM telemetry register.
	OUTLINK   = 0o57 // Unused downlink register.
	ALTM      = 0o60 // Altitude meter register.

	NumRegisters = 0o61
)

// Access effects applied by Get and Set. Adding a register with a new
// side effect is a table entry, not new control flow.
type effect int

const (
	plain      effect = iota // Pass through storage.
	cycleRight               // Value cycles right one bit when stored.
	shiftRight               // Value shifts right one bit when stored.
	cycleLeft                // Stored value cycles left one bit when read.
	edit                     // Value edited for the interpreter when stored.
	bankPair                 // Stored value mirrors between EB, FB and BB.
	alwaysZero               // Reads as plus zero, writes are dropped.
)

type descriptor struct {
	addr int    // Cell address, -1 when not addressable.
	fx   effect // Access side effect.
}

var table = map[string]descriptor{
	"A":         {A, plain},
	"L":         {L, plain},
	"Q":         {Q, plain},
	"EB":        {EB, bankPair},
	"FB":        {FB, bankPair},
	"Z":         {Z, plain},
	"BB":        {BB, bankPair},
	"ZEROES":    {Zeroes, alwaysZero},
	"ARUPT":     {ARUPT, plain},
	"LRUPT":     {LRUPT, plain},
	"QRUPT":     {QRUPT, plain},
	"SAMPTIME1": {SAMPTIME1, plain},
	"SAMPTIME2": {SAMPTIME2, plain},
	"ZRUPT":     {ZRUPT, plain},
	"BBRUPT":    {BBRUPT, plain},
	"BRUPT":     {BRUPT, plain},
	"CYR":       {CYR, cycleRight},
	"SR":        {SR, shiftRight},
	"CYL":       {CYL, cycleLeft},
	"EDOP":      {EDOP, edit},
	"TIME2":     {TIME2, plain},
	"TIME1":     {TIME1, plain},
	"TIME3":     {TIME3, plain},
	"TIME4":     {TIME4, plain},
	"TIME5":     {TIME5, plain},
	"TIME6":     {TIME6, plain},
	"CDUX":      {CDUX, plain},
	"CDUY":      {CDUY, plain},
	"CDUZ":      {CDUZ, plain},
	"OPTY":      {OPTY, plain},
	"OPTX":      {OPTX, plain},
	"PIPAX":     {PIPAX, plain},
	"PIPAY":     {PIPAY, plain},
	"PIPAZ":     {PIPAZ, plain},
	"RHCP":      {RHCP, plain},
	"RHCY":      {RHCY, plain},
	"RHCR":      {RHCR, plain},
	"INLINK":    {INLINK, plain},
	"RNRAD":     {RNRAD, plain},
	"GYROCTR":   {GYROCTR, plain},
	"CDUXCMD":   {CDUXCMD, plain},
	"CDUYCMD":   {CDUYCMD, plain},
	"CDUZCMD":   {CDUZCMD, plain},
	"OPTYCMD":   {OPTYCMD, plain},
	"OPTXCMD":   {OPTXCMD, plain},
	"THRUST":    {THRUST, plain},
	"LEMONM":    {LEMONM, plain},
	"OUTLINK":   {OUTLINK, plain},
	"ALTM":      {ALTM, plain},

	// Hidden interrupt target register, set by the interrupt controller
	// when a request vectors, never visible at a cell address.
	"B": {-1, plain},
}

// Reverse map from cell address to descriptor name.
var names [NumRegisters]string

func init() {
	for name, desc := range table {
		if desc.addr >= 0 {
			names[desc.addr] = name
		}
	}
}

var ErrUnknownRegister = errors.New("unknown register")

// File holds the register cells. Created once at machine
// initialization, owned by the Cpu aggregate.
type File struct {
	cells [NumRegisters]uint16
	b     uint16 // Hidden interrupt target register.
}

// Create a zeroed register file.
func New() *File {
	return &File{}
}

// Zero every register cell.
func (file *File) Reset() {
	for i := range file.cells {
		file.cells[i] = 0
	}
	file.b = 0
}

// Read a register by name, applying any read side effect.
func (file *File) Get(name string) (uint16, error) {
	desc, ok := table[name]
	if !ok {
		return 0, ErrUnknownRegister
	}
	if desc.addr < 0 {
		return file.b, nil
	}
	return file.read(desc), nil
}

// Write a register by name, applying any write side effect.
func (file *File) Set(name string, value uint16) error {
	desc, ok := table[name]
	if !ok {
		return ErrUnknownRegister
	}
	if desc.addr < 0 {
		file.b = value
		return nil
	}
	file.write(desc, value)
	return nil
}

// Read a register cell by address, applying any read side effect.
func (file *File) Load(addr int) (uint16, error) {
	if addr < 0 || addr >= NumRegisters {
		return 0, ErrUnknownRegister
	}
	return file.read(table[names[addr]]), nil
}

// Write a register cell by address, applying any write side effect.
func (file *File) Store(addr int, value uint16) error {
	if addr < 0 || addr >= NumRegisters {
		return ErrUnknownRegister
	}
	file.write(table[names[addr]], value)
	return nil
}

// Name of the register at a cell address, empty if out of range.
func Name(addr int) string {
	if addr < 0 || addr >= NumRegisters {
		return ""
	}
	return names[addr]
}

// Address of a named register, -1 when unknown or not addressable.
func Addr(name string) int {
	desc, ok := table[name]
	if !ok {
		return -1
	}
	return desc.addr
}

func (file *File) read(desc descriptor) uint16 {
	value := file.cells[desc.addr]
	switch desc.fx {
	case cycleLeft:
		return word.CycleLeft(value)
	case alwaysZero:
		return 0
	}
	return value
}

func (file *File) write(desc descriptor, value uint16) {
	switch desc.fx {
	case cycleRight:
		value = word.CycleRight(value)
	case shiftRight:
		value = word.ShiftRight(value)
	case edit:
		value = word.Edit(value)
	case alwaysZero:
		return
	}
	file.cells[desc.addr] = value
	if desc.fx == bankPair {
		file.syncBanks(desc.addr)
	}
}

// Keep BB mirroring the selector fields of EB and FB. EB carries its
// bank in bits 9-11, FB in bits 11-15, BB packs FB's field with EB's
// bank in its low three bits.
func (file *File) syncBanks(addr int) {
	switch addr {
	case EB:
		file.cells[BB] = (file.cells[BB] &^ 0o7) | ((file.cells[EB] >> 8) & 0o7)
	case FB:
		file.cells[BB] = (file.cells[FB] & 0o76000) | (file.cells[BB] & 0o7)
	case BB:
		file.cells[EB] = (file.cells[BB] & 0o7) << 8
		file.cells[FB] = file.cells[BB] & 0o76000
	}
}

// Erasable bank selected by EB.
func (file *File) ErasableBank() int {
	return int((file.cells[EB] >> 8) & 0o7)
}

// Fixed bank selected by FB, before any superbank extension.
func (file *File) FixedBank() int {
	return int((file.cells[FB] >> 10) & 0o37)
}
