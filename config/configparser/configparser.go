/*
 * AGC15 - Configuration file parser
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Extra option on a configuration line, NAME or NAME=value.
type Option struct {
	Name     string // Name of option.
	EqualOpt string // Value of string after =.
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <name> <whitespace> <value> *(<whitespace> <option>) |
 *           <name> <whitespace> <quoteopt> |
 *           <name>
 * <option> ::= <string> | <string> '=' <quoteopt>
 * <quoteopt> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <string> ::= *(<letter> | <number> | <punct>)
 */

const (
	TypeOption = 1 + iota // Accepts a value plus extra options.
	TypeFile              // Accepts a single file name.
	TypeSwitch            // Option only used to set a flag.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var options = map[string]optionDef{}

var lineNumber int

// Register should be called from init functions.
func RegisterOption(name string, fn func(string, []Option) error) {
	options[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeOption}
}

// Register should be called from init functions.
func RegisterFile(name string, fn func(string, []Option) error) {
	options[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeFile}
}

// Register should be called from init functions.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	options[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeSwitch}
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	name := line.parseName()
	if name == "" {
		return nil
	}

	def, ok := options[name]
	if !ok {
		return fmt.Errorf("no option: %s registered, line: %d", name, lineNumber)
	}

	switch def.ty {
	case TypeFile:
		value, ok := line.parseQuoteString()
		if !ok || value == "" {
			return fmt.Errorf("option: %s requires a file name, line: %d", name, lineNumber)
		}
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("option: %s followed by extra text, line: %d", name, lineNumber)
		}
		return def.create(value, nil)

	case TypeOption:
		value, ok := line.parseQuoteString()
		if !ok || value == "" {
			return fmt.Errorf("option: %s not followed by value, line: %d", name, lineNumber)
		}
		extra, err := line.parseOptions()
		if err != nil {
			return err
		}
		return def.create(value, extra)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by options, line: %d", name, lineNumber)
		}
		return def.create("", nil)
	}
	return nil
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
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
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Parse leading option name, upper cased.
func (line *optionLine) parseName() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	name := ""
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			name += string([]byte{by})
			line.pos++
			continue
		}
		break
	}
	return strings.ToUpper(name)
}

// Parse string that is "string" or just string.
func (line *optionLine) parseQuoteString() (string, bool) {
	line.skipSpace()
	if line.isEOL() {
		return "", false
	}

	value := ""
	if line.line[line.pos] == '"' {
		line.pos++
		for {
			if line.pos >= len(line.line) || line.line[line.pos] == '\n' {
				// Hit end of line inside quotes.
				return value, false
			}
			by := line.line[line.pos]
			line.pos++
			if by == '"' {
				// Doubled quote stands for a single quote.
				if line.pos < len(line.line) && line.line[line.pos] == '"' {
					line.pos++
					value += "\""
					continue
				}
				return value, true
			}
			value += string([]byte{by})
		}
	}

	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsSpace(rune(by)) {
			break
		}
		value += string([]byte{by})
		line.pos++
	}
	return value, true
}

// Parse one extra option, NAME or NAME=value.
func (line *optionLine) parseOption() (*Option, error) {
	line.skipSpace()
	if line.isEOL() {
		return nil, nil
	}

	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return nil, fmt.Errorf("invalid option encountered line: %d [%d]", lineNumber, line.pos)
	}

	option := Option{}
	for !line.isEOL() {
		by = line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			option.Name += string([]byte{by})
			line.pos++
			continue
		}
		break
	}
	option.Name = strings.ToUpper(option.Name)

	if !line.isEOL() && line.line[line.pos] == '=' {
		line.pos++
		value, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("invalid quoted string line: %d [%d]", lineNumber, line.pos)
		}
		option.EqualOpt = value
	}
	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	opts := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		opts = append(opts, *option)
	}
	return opts, nil
}
