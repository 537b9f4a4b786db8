/*
 * AGC15 - Main process.
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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	reader "github.com/mhayden/AGC15/command/reader"
	config "github.com/mhayden/AGC15/config/configparser"
	cpu "github.com/mhayden/AGC15/emu/cpu"
	master "github.com/mhayden/AGC15/emu/master"
	logger "github.com/mhayden/AGC15/util/logger"

	_ "github.com/mhayden/AGC15/config/debugconfig"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optRope := getopt.StringLong("rope", 'r', "", "Rope image to load")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug))
	slog.SetDefault(Logger)

	Logger.Info("AGC15 Started")

	// Rope images can come from the configuration file or the command
	// line. They load once the machine exists.
	ropes := []string{}
	config.RegisterFile("ROPE", func(path string, _ []config.Option) error {
		ropes = append(ropes, path)
		return nil
	})

	// A LOGFILE line redirects the log unless -l already did.
	config.RegisterFile("LOGFILE", func(path string, _ []config.Option) error {
		if file != nil {
			return nil
		}
		logFile, err := os.Create(path)
		if err != nil {
			return err
		}
		file = logFile
		handler := logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug)
		slog.SetDefault(slog.New(handler))
		return nil
	})

	if *optConfig != "" {
		_, err := os.Stat(*optConfig)
		if os.IsNotExist(err) {
			Logger.Error("Configuration file " + *optConfig + " can't be found")
			os.Exit(0)
		}
		err = config.LoadConfigFile(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(0)
		}
		// A LOGFILE line may have installed a new handler.
		Logger = slog.Default()
	}
	if *optRope != "" {
		ropes = append(ropes, *optRope)
	}

	masterChannel := make(chan master.Packet)

	// Create new routine to run the machine.
	machine := cpu.New(masterChannel)

	for _, rope := range ropes {
		if err := machine.LoadImage(rope); err != nil {
			Logger.Error(err.Error())
			os.Exit(0)
		}
	}

	// Start main emulator.
	go machine.Start()

	msg := make(chan string, 1)
	go func() {
		reader.ConsoleReader(machine)
		msg <- ""
	}()

	// Wait on shutdown option
	<-msg

	machine.Stop()
	Logger.Info("Machine stopped.")
}
