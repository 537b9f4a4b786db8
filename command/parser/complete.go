/*
 * AGC15 - Console command completion.
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

	"github.com/mhayden/AGC15/emu/interrupt"
	"github.com/mhayden/AGC15/emu/registers"
)

// Produce completion candidates for a partial console line.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	command := line.getWord()

	// Still typing the command word itself.
	if line.isEOL() && !strings.HasSuffix(commandLine, " ") {
		var out []string
		for _, m := range cmdList {
			if strings.HasPrefix(m.Name, command) {
				out = append(out, m.Name+" ")
			}
		}
		return out
	}

	match := matchList(command)
	if len(match) != 1 || match[0].Complete == nil {
		return nil
	}

	prefix := commandLine[:line.pos]
	var out []string
	for _, word := range match[0].Complete(&line) {
		out = append(out, prefix+" "+word)
	}
	return out
}

// Match the partial word at the current position against a candidate
// list, keeping the candidate case.
func completeWords(line *cmdLine, words []string) []string {
	partial := strings.ToUpper(line.getWord())
	var out []string
	for _, word := range words {
		if strings.HasPrefix(strings.ToUpper(word), partial) {
			out = append(out, word)
		}
	}
	return out
}

// Interrupt vector names.
func completeVector(line *cmdLine) []string {
	var words []string
	for _, vector := range interrupt.Vectors {
		words = append(words, strings.ToLower(vector.Name))
	}
	return completeWords(line, words)
}

// Register names for examine and deposit.
func completeRegister(line *cmdLine) []string {
	var words []string
	for addr := 0; addr < registers.NumRegisters; addr++ {
		if name := registers.Name(addr); name != "" {
			words = append(words, name)
		}
	}
	return completeWords(line, words)
}

// Subcommands of show.
func completeShow(line *cmdLine) []string {
	return completeWords(line, []string{"registers", "channels", "state"})
}
