// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/tzoffset/tzoffset/lib/tz"
	"github.com/tzoffset/tzoffset/repl"
)

func eval(t *testing.T, thread *starlark.Thread, globals starlark.StringDict, src string) string {
	t.Helper()
	f, err := syntax.Parse("<stdin>", src, 0)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var out bytes.Buffer
	if err := repl.Eval(thread, f, globals, &out); err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return out.String()
}

func TestEval(t *testing.T) {
	thread := &starlark.Thread{Name: "REPL"}
	globals := starlark.StringDict{"tz": tz.Module}

	if got := eval(t, thread, globals, "tz.fixed_offset(19800)\n"); got != "UTC+05:30\n" {
		t.Errorf("expression printed %q", got)
	}
	if got := eval(t, thread, globals, "z = tz.parse_offset(\"-00:45\")\n"); got != "" {
		t.Errorf("statement printed %q", got)
	}
	if got := eval(t, thread, globals, "z.offset\n"); got != "-2700\n" {
		t.Errorf("z.offset printed %q", got)
	}
	if got := eval(t, thread, globals, "z.dst()\n"); got != "" {
		t.Errorf("None printed %q", got)
	}
}

func TestMakeLoad(t *testing.T) {
	dir := t.TempDir()
	module := filepath.Join(dir, "zones.star")
	src := `load("tz.star", "tz")
india = tz.fixed_offset(19800)
zones = [india]
`
	if err := os.WriteFile(module, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	load := repl.MakeLoad(map[string]func() (starlark.StringDict, error){
		"tz.star": tz.LoadModule,
	}, nil)
	thread := &starlark.Thread{Name: "test", Load: load}

	globals, err := load(thread, module)
	if err != nil {
		t.Fatal(err)
	}
	if got := globals["india"].String(); got != "UTC+05:30" {
		t.Errorf("india = %s", got)
	}
	again, err := load(thread, module)
	if err != nil {
		t.Fatal(err)
	}
	if again["zones"] != globals["zones"] {
		t.Error("second load was not served from the cache")
	}

	if _, err := load(thread, filepath.Join(dir, "missing.star")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
