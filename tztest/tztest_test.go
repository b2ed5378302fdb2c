// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tztest_test

import (
	"fmt"
	"strings"
	"testing"

	"go.starlark.net/starlark"

	"github.com/tzoffset/tzoffset/tztest"
)

type recorder struct {
	errors []string
}

func (r *recorder) Error(args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func TestLoadAssertModule(t *testing.T) {
	assert, err := tztest.LoadAssertModule()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := assert["assert"]; !ok {
		t.Fatalf("assert module lacks 'assert': %v", assert.Keys())
	}
	again, _ := tztest.LoadAssertModule()
	if again["assert"] != assert["assert"] {
		t.Error("LoadAssertModule is not idempotent")
	}
}

func TestAssertReports(t *testing.T) {
	assert, err := tztest.LoadAssertModule()
	if err != nil {
		t.Fatal(err)
	}
	r := new(recorder)
	thread := &starlark.Thread{Name: "test"}
	tztest.SetReporter(thread, r)

	const src = `
assert.eq(1, 1)
assert.eq("UTC", "UTC+00:00")
assert.fails(lambda: fail("boom"), "boom")
assert.fails(lambda: None, "never")
`
	predeclared := starlark.StringDict{
		"assert": assert["assert"],
		"fail":   starlark.NewBuiltin("fail", failBuiltin),
	}
	if _, err := starlark.ExecFile(thread, "check.star", src, predeclared); err != nil {
		t.Fatal(err)
	}
	if len(r.errors) != 2 {
		t.Fatalf("got %d reported errors, want 2: %q", len(r.errors), r.errors)
	}
	if !strings.Contains(r.errors[0], `"UTC" != "UTC+00:00"`) {
		t.Errorf("first error = %q", r.errors[0])
	}
	if !strings.Contains(r.errors[1], "evaluation succeeded unexpectedly") {
		t.Errorf("second error = %q", r.errors[1])
	}
}

func failBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var msg string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &msg); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%s", msg)
}

func TestGetReporterPanicsWithoutSet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetReporter did not panic")
		}
	}()
	tztest.GetReporter(new(starlark.Thread))
}
