// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/accum/cpu"
	"github.com/ezrec/accum/emulator"
	"github.com/ezrec/accum/translate"
)

// defines collects -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	return fmt.Sprintf("%v", map[string]string(d))
}

func (d defines) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok || len(name) == 0 {
		return errors.New(translate.From("%q is not NAME=VALUE", value))
	}
	d[name] = val
	return nil
}

func main() {
	var compile string
	var binary string
	var listing string
	var result string
	var lang string
	var verbose bool
	predefine := defines{}

	flag.StringVar(&compile, "c", "test_program.txt", "program source to assemble, empty to run an existing binary")
	flag.StringVar(&binary, "o", "assembled.bin", "binary instruction stream")
	flag.StringVar(&listing, "l", "assembler_log.json", "assembler trace output, empty to skip")
	flag.StringVar(&result, "r", "result.json", "execution result output, empty to skip execution")
	flag.StringVar(&lang, "L", "", "message locale (default from environment)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(predefine, "D", "predefine an equate as NAME=VALUE (repeatable)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocales(lang)
	}
	if verbose {
		log.Printf("%v: locale %v", os.Args[0], translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		for name, value := range predefine {
			asm.Predefine(name, value)
		}

		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog

		ouf, err := os.Create(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		emu.Tape.Output = ouf
		err = emu.Tape.Send(prog.Binary()...)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}

		if len(listing) != 0 {
			tr, err := emulator.Listing(prog)
			if err != nil {
				log.Fatalf("%v: %v", listing, err)
			}
			writeFile(listing, tr.WriteTo)
		}
	}

	if len(result) == 0 {
		return
	}

	// Execute the stream as written, not the in-memory listing.
	inf, err := os.Open(binary)
	if err != nil {
		log.Fatalf("%v: %v", binary, err)
	}
	defer inf.Close()
	emu.Tape.Input = inf

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", binary, err)
	}
	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", binary, err)
	}

	writeFile(result, emu.Result().WriteTo)

	if verbose {
		fmt.Print(emu.String())
	}
}

// writeFile creates a file and fills it with a writer function.
func writeFile(path string, write func(w io.Writer) (int64, error)) {
	ouf, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	_, err = write(ouf)
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
