// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command svcsim runs a Starlark program on the simulated runtime and
// exits with the program's exit status.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/ezrec/svcsim/emulator"
	"github.com/ezrec/svcsim/internal/logger"
	"github.com/ezrec/svcsim/rt"
)

func main() {
	var config string
	var stack uint
	var heap uint
	var limit int
	var debug int
	var output string
	var verbose bool
	var noColor bool
	var dev bool

	flag.StringVar(&config, "c", "", "TOML configuration file")
	flag.UintVar(&stack, "stack", 0, "Stack size in bytes")
	flag.UintVar(&heap, "heap", 0, "Heap size in bytes")
	flag.IntVar(&limit, "limit", 0, "Bytes accepted per write, 0 for unlimited")
	flag.IntVar(&debug, "d", 0, "Level of debug information")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "Disable colored logging")
	flag.BoolVar(&dev, "dev", false, "Re-run the program whenever it changes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-c config.toml] [-stack N] [-heap N] [-d level] [-v] [-dev] <program.star>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
	}
	program := flag.Arg(0)

	cfg := emulator.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = emulator.LoadConfig(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", config, err)
			os.Exit(2)
		}
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "stack":
			cfg.Stack = uint32(stack)
		case "heap":
			cfg.Heap = uint32(heap)
		case "limit":
			cfg.Limit = limit
		case "d":
			cfg.Debug = debug
		case "v":
			cfg.Verbose = verbose
		}
	})

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		noColor = true
	}
	logger.Init(cfg.Debug > 1 || cfg.Verbose, noColor)

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var ouf *os.File
	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatal(err, "output", output)
		}
		emu.Console.Output = ouf
	}

	var status int32
	if dev {
		err = devMode(emu, program)
		if err != nil {
			log.Error(err)
			status = int32(rt.CODE_SUPERVISOR_FAULT)
		}
	} else {
		status, err = run(emu, program)
		if err != nil {
			log.Error(err)
		}
	}

	if ouf != nil {
		os.Exit(exitStatus(status, ouf))
	}
	os.Exit(exitStatus(status, nil))
}

// exitStatus closes the program output, if any, and returns the process
// exit status. A failed close turns success into a fault.
func exitStatus(status int32, output io.Closer) int {
	if output != nil {
		if err := output.Close(); err != nil {
			log.Error(err)
			if status == 0 {
				status = int32(rt.CODE_SUPERVISOR_FAULT)
			}
		}
	}

	return int(status)
}

// run executes the program file once, printing a summary at debug
// level 1 and above.
func run(emu *emulator.Emulator, program string) (status int32, err error) {
	src, err := os.ReadFile(program)
	if err != nil {
		status = int32(rt.CODE_SUPERVISOR_FAULT)
		return
	}

	if emu.Config.Debug >= 1 {
		log.Infof("debug level %d", emu.Config.Debug)
	}

	start := time.Now()
	status, err = emu.Run(program, src)
	elapsed := time.Since(start)
	if err != nil {
		return
	}

	if emu.Config.Debug >= 1 {
		fmt.Fprintf(os.Stderr, "\nProgram exited with code: %d\n", status)
		fmt.Fprintf(os.Stderr, "Simulator run %d cycles in %v seconds\n", emu.Ticks(), elapsed.Seconds())
	}

	return
}
