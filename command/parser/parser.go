/*
 * AGC15 - Console command parser.
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
	"strconv"
	"strings"
	"unicode"

	cpu "github.com/mhayden/AGC15/emu/cpu"
)

type cmd struct {
	Name     string // Command name.
	Min      int    // Minimum match size.
	Process  func(*cmdLine, *cpu.Cpu) (bool, error)
	Complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Execute the command line given.
func ProcessCommand(commandLine string, machine *cpu.Cpu) (bool, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()
	if command == "" {
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].Process(&line, machine)
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.Name) {
		return false
	}
	l := 0
	for l = 0; l < len(command); l++ {
		if match.Name[l] != command[l] {
			return false
		}
	}
	return (l + 1) >= match.Min
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// Try and match one command.
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Return next word in lower case, empty when at end of line.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return strings.ToLower(line.line[start:line.pos])
}

// Return next word as an octal number.
func (line *cmdLine) getOctal() (int, error) {
	w := line.getWord()
	if w == "" {
		return 0, errors.New("octal value expected")
	}
	value, err := strconv.ParseInt(w, 8, 32)
	if err != nil {
		return 0, errors.New("invalid octal value: " + w)
	}
	return int(value), nil
}
