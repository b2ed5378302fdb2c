// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for Starlark programs
// that use the tz module.
//
// It supports readline-style command editing and history, and
// interrupts through Control-C.
//
// An input that parses as a single expression is evaluated and its
// value printed, so typing
//
//	tz.fixed_offset(19800)
//
// prints UTC+05:30. Other input is read until a blank line and then
// executed as a list of statements.
package repl // import "github.com/tzoffset/tzoffset/repl"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	prompt             = ">>> "
	continuationPrompt = "... "
)

// Options configures a REPL.
type Options struct {
	// HistoryFile, if set, persists input lines across sessions.
	HistoryFile string
	// Stdout receives printed values; it defaults to os.Stdout.
	Stdout io.Writer
}

// REPL executes a read, eval, print loop until end of input.
//
// Before evaluating each item, it sets the Starlark thread local
// variable named "context" to a context.Context that is cancelled by a
// SIGINT (Control-C).
func REPL(thread *starlark.Thread, globals starlark.StringDict, opts Options) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: opts.HistoryFile,
	})
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()

	for {
		err := rep(rl, thread, globals, out, interrupted)
		if err == readline.ErrInterrupt {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			break
		}
	}
	fmt.Fprintln(out)
}

// rep reads, evaluates, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Starlark errors are printed.
func rep(rl *readline.Instance, thread *starlark.Thread, globals starlark.StringDict, out io.Writer, interrupted <-chan os.Signal) error {
	// During Readline calls, Control-C makes Readline return
	// ErrInterrupt rather than raising SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()
	thread.SetLocal("context", ctx)

	eof := false
	rl.SetPrompt(prompt)
	readLine := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt(continuationPrompt)
		if err != nil {
			if err == io.EOF {
				eof = true
			}
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", readLine)
	if err != nil {
		if eof {
			return io.EOF
		}
		if errors.Is(err, readline.ErrInterrupt) {
			return readline.ErrInterrupt
		}
		PrintError(err)
		return nil
	}

	return Eval(thread, f, globals, out)
}

// Eval evaluates one parsed REPL item against globals, printing the
// value of a sole expression to out. Starlark errors are printed to
// stderr and are not returned.
func Eval(thread *starlark.Thread, f *syntax.File, globals starlark.StringDict, out io.Writer) error {
	// Treat load bindings as global in the REPL.
	defer func(prev bool) { resolve.LoadBindsGlobally = prev }(resolve.LoadBindsGlobally)
	resolve.LoadBindsGlobally = true

	if expr := soleExpr(f); expr != nil {
		v, err := starlark.EvalExpr(thread, expr, globals)
		if err != nil {
			PrintError(err)
			return nil
		}
		if v != starlark.None {
			fmt.Fprintln(out, v)
		}
		return nil
	}
	if err := starlark.ExecREPLChunk(f, thread, globals); err != nil {
		PrintError(err)
	}
	return nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints the error to stderr,
// or its backtrace if it is a Starlark evaluation error.
func PrintError(err error) {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		fmt.Fprintln(os.Stderr, evalErr.Backtrace())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

// MakeLoad returns a sequential implementation of module loading for
// the REPL. Modules named in builtins are returned as is; any other
// module is executed as a Starlark file with predeclared in scope.
// Each function returned by MakeLoad has its own private cache.
func MakeLoad(builtins map[string]func() (starlark.StringDict, error), predeclared starlark.StringDict) func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	type entry struct {
		globals starlark.StringDict
		err     error
	}

	cache := make(map[string]*entry)

	return func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
		if load, ok := builtins[module]; ok {
			return load()
		}
		e, ok := cache[module]
		if e == nil {
			if ok {
				// loading of module is in progress
				return nil, fmt.Errorf("cycle in load graph")
			}
			cache[module] = nil

			thread := &starlark.Thread{Name: "exec " + module, Load: thread.Load}
			globals, err := starlark.ExecFile(thread, module, nil, predeclared)
			e = &entry{globals, err}
			cache[module] = e
		}
		return e.globals, e.err
	}
}
