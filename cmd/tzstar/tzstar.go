// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The tzstar command interprets a Starlark file with the tz module
// predeclared. With no arguments, it starts a read-eval-print loop.
//
//	tzstar -offset 19800       # prints UTC+05:30
//	tzstar -c 'print(tz.parse_offset("-0045").offset)'
//	tzstar zones.star
package main // import "github.com/tzoffset/tzoffset/cmd/tzstar"

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.starlark.net/lib/json"
	"go.starlark.net/lib/math"
	libtime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"golang.org/x/term"

	"github.com/tzoffset/tzoffset/fixedoffset"
	"github.com/tzoffset/tzoffset/lib/tz"
	"github.com/tzoffset/tzoffset/repl"
)

// flags
var (
	showenv  = flag.Bool("showenv", false, "on success, print final global environment")
	execprog = flag.String("c", "", "execute program `prog`")
	offset   = flag.String("offset", "", "print the canonical name of the zone `offset` and exit; a designator (Z, ±HH, ±HHMM, ±HH:MM) if it parses as one, else seconds east of UTC")
	history  = flag.String("history", "", "REPL history `file`")
)

func main() {
	log.SetPrefix("tzstar: ")
	log.SetFlags(0)
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout))
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		tz.ModuleName: tz.Module,
		"time":        libtime.Module,
		"json":        json.Module,
		"math":        math.Module,
	}
}

func run(args []string, stdout io.Writer) int {
	if *offset != "" {
		return printName(*offset, stdout)
	}

	env := predeclared()
	load := repl.MakeLoad(map[string]func() (starlark.StringDict, error){
		"tz.star": tz.LoadModule,
	}, env)
	thread := &starlark.Thread{
		Load:  load,
		Print: func(_ *starlark.Thread, msg string) { fmt.Fprintln(stdout, msg) },
	}
	globals := make(starlark.StringDict)

	switch {
	case len(args) == 1 || *execprog != "":
		var (
			filename string
			src      interface{}
			err      error
		)
		if *execprog != "" {
			filename = "cmdline"
			src = *execprog
		} else {
			filename = args[0]
		}
		thread.Name = "exec " + filename
		globals, err = starlark.ExecFile(thread, filename, src, env)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
	case len(args) == 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(stdout, "Welcome to Starlark with fixed-offset timezones")
		}
		thread.Name = "REPL"
		for k, v := range env {
			globals[k] = v
		}
		repl.REPL(thread, globals, repl.Options{HistoryFile: *history, Stdout: stdout})
		return 0
	default:
		log.Print("want at most one Starlark file name")
		return 1
	}

	if *showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, globals[name])
			}
		}
	}
	return 0
}

// printName prints the canonical name of the zone given by arg.
func printName(arg string, stdout io.Writer) int {
	z, err := parseZone(arg)
	if err != nil {
		log.Print(err)
		return 1
	}
	fmt.Fprintln(stdout, z)
	return 0
}

// parseZone reads arg as an offset designator if it is one, and
// otherwise as a number of seconds east of UTC. So "-0045" is
// forty-five minutes west while "-2700", which is not a valid
// designator, is 2700 seconds west.
func parseZone(arg string) (fixedoffset.FixedOffset, error) {
	z, derr := fixedoffset.ParseDesignator(arg)
	if derr == nil {
		return z, nil
	}
	if err := z.UnmarshalText([]byte(arg)); err != nil {
		if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
			return z, derr
		}
		return z, err
	}
	return z, nil
}
