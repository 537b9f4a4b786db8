/*
 * AGC15 - Log debug data to a file
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

package debug

import (
	"fmt"
	"os"
	"strings"
)

// Trace classes. A module's mask selects which classes reach the
// debug file.
const (
	MaskCmd  = 1 << iota // Console control packets.
	MaskIrq              // Interrupt dispatch.
	MaskIO               // Channel traffic.
	MaskLoad             // Rope image loading.

	MaskAll = MaskCmd | MaskIrq | MaskIO | MaskLoad
)

var (
	logFile *os.File
	masks   = map[string]int{}
)

// Set the trace mask for one module.
func SetMask(module string, mask int) {
	masks[strings.ToUpper(module)] = mask
}

// Attach the debug output file, at most one per run.
func SetFile(file *os.File) error {
	if logFile != nil {
		return fmt.Errorf("can't have more than one debug file, previous: %s", logFile.Name())
	}
	logFile = file
	return nil
}

// Generic debug message, dropped unless the module's mask enables the
// message class and a debug file is attached.
func Debugf(module string, class int, format string, a ...interface{}) {
	if logFile == nil {
		return
	}
	if (masks[module] & class) == 0 {
		return
	}
	fmt.Fprintf(logFile, module+": "+format+"\n", a...)
}
