// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/preferences"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/performance/limiter"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/scripthook"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/terminal/easyterm"
	"github.com/jetsetilly/gophernes/version"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("COMPILE", "DUMP", "RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "COMPILE":
		err = compile(md)

	case "DUMP":
		err = dump(md)

	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		version.Write(md.Output)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// malformed rules have their own exit code
		var perr *rules.ParseError
		if errors.As(err, &perr) {
			fmt.Println(perr.Diagnostic())
			os.Exit(10)
		}
		os.Exit(20)
	}
}

// echoLog sends log entries to stdout as they are created. The output is
// colored when stdout is a terminal.
func echoLog() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(os.Stdout)
	}
}

// newPreferences applies the command line preferences string. Preferences
// that were not used are reported.
func newPreferences(output io.Writer, cl string) (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(cl)
	p, err := preferences.NewPreferences()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}
	return p, nil
}

func compile(md *modalflag.Modes) error {
	md.NewMode()

	out := md.AddString("o", "", "write the compiled dictionary to file")
	maxBlocks := md.AddInt("maxblocks", 0, "capacity of the block pool (default from preferences)")
	maxData := md.AddInt("maxdata", 0, "capacity of the data pool in bytes (default from preferences)")
	tree := md.AddBool("tree", false, "print the compiled trie")
	cl := md.AddString("prefs", "", "preferences for the compiler (key::value; key::value)")
	log := md.AddBool("log", false, "echo log entries to stdout")

	md.AdditionalHelp("With no rules files the built-in NES 6502 rules are compiled.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	pr, err := newPreferences(md.Output, *cl)
	if err != nil {
		return err
	}
	if *maxBlocks > 0 {
		if err := pr.MaxBlocks.Set(*maxBlocks); err != nil {
			return err
		}
	}
	if *maxData > 0 {
		if err := pr.MaxData.Set(*maxData); err != nil {
			return err
		}
	}

	blob, cst, err := compileRules(pr, md.RemainingArgs()...)
	if err != nil {
		return err
	}

	d, err := dictionary.Load(blob.Bytes())
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d patterns (%d promotions, %d shadowed)\n", cst.Patterns, cst.Promotions, cst.Shadowed)
	writeStats(md.Output, d.Stats())

	if *tree {
		dictionary.Inspect(d).Write(md.Output)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return curated.Errorf("compile: %v", err)
		}
		defer f.Close()

		n, err := blob.WriteTo(f)
		if err != nil {
			return curated.Errorf("compile: %v", err)
		}
		fmt.Fprintf(md.Output, "%d bytes written to %s\n", n, *out)
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("memviz", "", "write a graphviz file of the decoded trie")
	tree := md.AddBool("tree", false, "print the trie")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single dictionary file is required for %s mode", md)
	}

	d, err := readDictionary(md.GetArg(0))
	if err != nil {
		return err
	}

	writeStats(md.Output, d.Stats())

	n := dictionary.Inspect(d)
	if *tree {
		n.Write(md.Output)
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("dump: %v", err)
		}
		defer f.Close()
		memviz.Map(f, n)
		fmt.Fprintf(md.Output, "graph written to %s\n", *viz)
	}

	return nil
}

func writeStats(output io.Writer, st dictionary.Stats) {
	fmt.Fprintf(output, "%d blocks (%d branches, %d leaves, %d empty)\n", st.Blocks, st.Branches, st.Leaves, st.Empty)
	fmt.Fprintf(output, "%d records in %d bytes\n", st.Records, st.DataLength)
}

// flags shared by the RUN and PERFORMANCE modes.
type nesFlags struct {
	dict   *string
	mapper *int
	chr    *string
	prefs  *string
	log    *bool
}

func addNESFlags(md *modalflag.Modes) nesFlags {
	return nesFlags{
		dict:   md.AddString("dict", "", "compiled dictionary (default is to compile the built-in rules)"),
		mapper: md.AddInt("mapper", -1, "force use of mapper number"),
		chr:    md.AddString("chr", "", "CHR data for a headerless PRG file"),
		prefs:  md.AddString("prefs", "", "preferences for the translator (key::value; key::value)"),
		log:    md.AddBool("log", false, "echo log entries to stdout"),
	}
}

// newNES creates the NES described by the flags and the PRG file named as
// the only remaining argument.
func newNES(md *modalflag.Modes, fl nesFlags) (*hardware.NES, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *fl.log {
		echoLog()
	}

	pr, err := newPreferences(md.Output, *fl.prefs)
	if err != nil {
		return nil, err
	}

	var d *dictionary.Dictionary
	if *fl.dict == "" {
		blob, _, err := compileRules(pr)
		if err != nil {
			return nil, err
		}
		d, err = dictionary.Load(blob.Bytes())
		if err != nil {
			return nil, err
		}
	} else {
		d, err = readDictionary(*fl.dict)
		if err != nil {
			return nil, err
		}
	}

	cart, err := loadCartridge(md.GetArg(0), *fl.chr, *fl.mapper)
	if err != nil {
		return nil, err
	}

	nes, err := hardware.NewNES(d, cart, pr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(md.Output, "%s\n", cart)

	return nes, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fl := addNESFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	script := md.AddString("script", "", "Lua script attached to the expansion area")
	interactive := md.AddBool("interactive", false, "stop when a key is pressed")
	stats := md.AddString("statsview", "", fmt.Sprintf("run stats server on address (eg. %s)", statsview.DefaultAddress))
	profile := md.AddString("profile", "none", "create profiling reports: cpu, mem, trace, all")
	fpsCap := md.AddBool("fpscap", false, "limit the emulation to the NTSC frame rate")
	units := md.AddBool("units", false, "disassemble the translated units on completion")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	nes, err := newNES(md, fl)
	if err != nil {
		return err
	}
	defer nes.Release()

	var sh *scripthook.Script
	if *script != "" {
		sh, err = scripthook.LoadFile(*script, nes.Space)
		if err != nil {
			return err
		}
		defer sh.Close()

		err = nes.Attach(memorymap.OriginExpansion, memorymap.MemtopExpansion, sh)
		if err != nil {
			return err
		}
	}

	if *stats != "" {
		if err := statsview.Launch(md.Output, *stats); err != nil {
			return err
		}
	}

	var lim *limiter.FpsLimiter
	if *fpsCap {
		lim, err = limiter.NewFPSLimiter(int(math.Round(performance.FramesPerSecond)))
		if err != nil {
			return err
		}
		defer lim.Close()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var keys <-chan uint8
	if *interactive {
		var et easyterm.Terminal
		if err := et.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer et.CleanUp()
		et.CBreakMode()
		keys = et.Keys()
		et.Print("press any key to stop\n")
	}

	runner := func() error {
		for n := 0; *frames == 0 || n < *frames; n++ {
			if lim != nil {
				lim.Wait()
			}

			if err := nes.RunFrame(); err != nil {
				return err
			}

			if sh != nil {
				sh.EndFrame()
				if err := sh.Err(); err != nil {
					return err
				}
			}

			select {
			case <-intChan:
				fmt.Fprint(md.Output, "\r")
				return nil
			case k, ok := <-keys:
				if !ok {
					keys = nil
					break // select
				}
				if k == easyterm.KeySuspend {
					easyterm.SuspendProcess()
					break // select
				}
				return nil
			default:
			}
		}
		return nil
	}

	err = performance.RunProfiler(prof, "gophernes", runner)

	fmt.Fprintf(md.Output, "%s\n", nes.Stats())
	if *units {
		if derr := nes.Disassemble(md.Output); derr != nil && err == nil {
			err = derr
		}
	}

	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fl := addNESFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "create profiling reports: cpu, mem, trace, all")
	fpsCap := md.AddBool("fpscap", false, "limit the emulation to the NTSC frame rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	nes, err := newNES(md, fl)
	if err != nil {
		return err
	}
	defer nes.Release()

	return performance.Check(md.Output, prof, nes, *duration, *fpsCap)
}
