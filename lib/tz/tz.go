// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tz // import "github.com/tzoffset/tzoffset/lib/tz"

import (
	"fmt"
	"sort"
	"time"

	libtime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/tzoffset/tzoffset/fixedoffset"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "tz"

// Module tz is a Starlark module of fixed-offset timezones.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"fixed_offset": starlark.NewBuiltin("fixed_offset", newFixedOffset),
		"parse_offset": starlark.NewBuiltin("parse_offset", parseOffset),

		"utc": FixedOffset(fixedoffset.UTC),
	},
}

// LoadModule loads the tz module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

func newFixedOffset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var offset int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "offset", &offset); err != nil {
		return nil, err
	}
	z, err := fixedoffset.New(offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	return FixedOffset(z), nil
}

func parseOffset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	z, err := fixedoffset.ParseDesignator(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	return FixedOffset(z), nil
}

// FixedOffset is a Starlark representation of a fixed-offset timezone.
type FixedOffset fixedoffset.FixedOffset

var (
	_ starlark.HasAttrs   = FixedOffset{}
	_ starlark.Comparable = FixedOffset{}
	_ starlark.Unpacker   = (*FixedOffset)(nil)
)

// Zone returns the Go value of z.
func (z FixedOffset) Zone() fixedoffset.FixedOffset { return fixedoffset.FixedOffset(z) }

// Unpack lets Go builtins outside this module take a zone argument via
// starlark.UnpackArgs with a *FixedOffset. It accepts a fixed_offset, an
// int number of seconds, or an offset designator string. The module's own
// constructors are stricter: fixed_offset takes only an int and
// parse_offset only a designator.
func (z *FixedOffset) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case FixedOffset:
		*z = x
		return nil
	case starlark.Int:
		i, err := starlark.AsInt32(x)
		if err != nil {
			return err
		}
		zone, err := fixedoffset.New(i)
		if err != nil {
			return err
		}
		*z = FixedOffset(zone)
		return nil
	case starlark.String:
		zone, err := fixedoffset.ParseDesignator(string(x))
		if err != nil {
			return err
		}
		*z = FixedOffset(zone)
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), z.Type())
}

// String implements the Stringer interface. It returns the canonical name.
func (z FixedOffset) String() string { return z.Zone().String() }

// Type returns "tz.fixed_offset".
func (z FixedOffset) Type() string { return "tz.fixed_offset" }

// Freeze renders z immutable. required by starlark.Value interface
// because FixedOffset is already immutable this is a no-op.
func (z FixedOffset) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (z FixedOffset) Hash() (uint32, error) {
	return uint32(z.Zone().Offset()), nil
}

// Truth reports true for every zone, UTC included.
func (z FixedOffset) Truth() starlark.Bool { return starlark.True }

// MarshalJSON encodes z as its offset in seconds.
func (z FixedOffset) MarshalJSON() ([]byte, error) { return z.Zone().MarshalJSON() }

// Attr gets a value for a string attribute, implementing dot expression
// support in starlark. required by starlark.HasAttrs interface.
func (z FixedOffset) Attr(name string) (starlark.Value, error) {
	if name == "offset" {
		return starlark.MakeInt(z.Zone().Offset()), nil
	}
	return builtinAttr(z, name, zoneMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (z FixedOffset) AttrNames() []string {
	names := append(builtinAttrNames(zoneMethods), "offset")
	sort.Strings(names)
	return names
}

// CompareSameType orders zones by offset. required by
// starlark.Comparable interface.
func (z FixedOffset) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x := z.Zone().Offset()
	y := yV.(FixedOffset).Zone().Offset()
	cp := 0
	if x < y {
		cp = -1
	} else if x > y {
		cp = 1
	}
	return threeway(op, cp), nil
}

var zoneMethods = map[string]builtinMethod{
	"utcoffset":   zoneUTCOffset,
	"dst":         zoneDST,
	"tzname":      zoneTZName,
	"getinitargs": zoneInitArgs,
	"localize":    zoneLocalize,
}

func zoneUTCOffset(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := unpackInstant(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	return libtime.Duration(recV.(FixedOffset).Zone().UTCOffset(t)), nil
}

func zoneDST(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := unpackInstant(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	if d, ok := recV.(FixedOffset).Zone().DST(t); ok {
		return libtime.Duration(d), nil
	}
	return starlark.None, nil
}

func zoneTZName(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := unpackInstant(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(recV.(FixedOffset).Zone().TZName(t)), nil
}

func zoneInitArgs(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Tuple{starlark.MakeInt(recV.(FixedOffset).Zone().Reduce())}, nil
}

func zoneLocalize(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var t libtime.Time
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &t); err != nil {
		return nil, err
	}
	return libtime.Time(recV.(FixedOffset).Zone().In(time.Time(t))), nil
}

// unpackInstant unpacks the optional instant argument of the query
// methods. The answer never depends on it, but its type is checked.
func unpackInstant(fnname string, args starlark.Tuple, kwargs []starlark.Tuple) (time.Time, error) {
	var v starlark.Value = starlark.None
	if err := starlark.UnpackArgs(fnname, args, kwargs, "t?", &v); err != nil {
		return time.Time{}, err
	}
	switch x := v.(type) {
	case starlark.NoneType:
		return time.Time{}, nil
	case libtime.Time:
		return time.Time(x), nil
	}
	return time.Time{}, fmt.Errorf("%s: got %s, want time.time or None", fnname, v.Type())
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
