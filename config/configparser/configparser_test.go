/*
 * AGC15 - Configuration file parser test.
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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agc15.cfg")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestFileOption(t *testing.T) {
	got := ""
	RegisterFile("TESTROPE", func(value string, _ []Option) error {
		got = value
		return nil
	})

	path := writeConfig(t, "# boot rope\ntestrope \"luminary 099\"\n")
	if err := LoadConfigFile(path); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if got != "luminary 099" {
		t.Errorf("File value not correct got: %s expected: %s", got, "luminary 099")
	}
}

func TestOptionWithExtras(t *testing.T) {
	got := ""
	var extras []Option
	RegisterOption("TESTDEBUG", func(value string, opts []Option) error {
		got = value
		extras = opts
		return nil
	})

	path := writeConfig(t, "testdebug trace mask=77 echo\n")
	if err := LoadConfigFile(path); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if got != "trace" {
		t.Errorf("Option value not correct got: %s expected: %s", got, "trace")
	}
	if len(extras) != 2 {
		t.Fatalf("Extra options not correct got: %d expected: %d", len(extras), 2)
	}
	if extras[0].Name != "MASK" || extras[0].EqualOpt != "77" {
		t.Errorf("Equal option not correct got: %s=%s expected: MASK=77",
			extras[0].Name, extras[0].EqualOpt)
	}
	if extras[1].Name != "ECHO" || extras[1].EqualOpt != "" {
		t.Errorf("Flag option not correct got: %s=%s expected: ECHO=",
			extras[1].Name, extras[1].EqualOpt)
	}
}

func TestSwitchOption(t *testing.T) {
	hit := false
	RegisterSwitch("TESTFLAG", func(_ string, _ []Option) error {
		hit = true
		return nil
	})

	path := writeConfig(t, "\n   # comment only\ntestflag   # trailing comment\n")
	if err := LoadConfigFile(path); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if !hit {
		t.Error("Switch option not invoked")
	}
}

func TestUnknownOption(t *testing.T) {
	path := writeConfig(t, "bogus value\n")
	if err := LoadConfigFile(path); err == nil {
		t.Error("Unregistered option not rejected")
	}
}

func TestMissingValue(t *testing.T) {
	RegisterFile("TESTLOG", func(_ string, _ []Option) error { return nil })
	path := writeConfig(t, "testlog\n")
	if err := LoadConfigFile(path); err == nil {
		t.Error("File option without file name not rejected")
	}
}
