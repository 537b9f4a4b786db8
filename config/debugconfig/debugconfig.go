/*
 * AGC15 - Debug trace configuration
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

package debugconfig

import (
	"fmt"
	"os"
	"strconv"

	config "github.com/mhayden/AGC15/config/configparser"
	"github.com/mhayden/AGC15/util/debug"
)

// Register the debug options on initialize.
func init() {
	config.RegisterFile("DEBUGFILE", createFile)
	config.RegisterOption("DEBUG", setMask)
}

// Open the debug trace file.
func createFile(fileName string, _ []config.Option) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", fileName)
	}
	return debug.SetFile(file)
}

// Enable tracing for a module, all classes unless a MASK option gives
// an octal class mask.
func setMask(module string, opts []config.Option) error {
	mask := debug.MaskAll
	for _, opt := range opts {
		if opt.Name != "MASK" {
			return fmt.Errorf("unknown debug option: %s", opt.Name)
		}
		value, err := strconv.ParseInt(opt.EqualOpt, 8, 32)
		if err != nil {
			return fmt.Errorf("invalid debug mask: %s", opt.EqualOpt)
		}
		mask = int(value)
	}
	debug.SetMask(module, mask)
	return nil
}
