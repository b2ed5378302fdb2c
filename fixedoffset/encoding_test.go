// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/tzoffset/tzoffset/fixedoffset"
)

var sampleOffsets = []int{-86399, -36000, -2700, -1, 0, 59, 3600, 19800, 86399}

type stamp struct {
	Label string
	Zone  fixedoffset.FixedOffset
}

func TestTextEncoding(t *testing.T) {
	for _, o := range sampleOffsets {
		z := fixedoffset.MustNew(o)
		text, err := z.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got fixedoffset.FixedOffset
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if diff := cmp.Diff(z, got); diff != "" {
			t.Errorf("text round trip of %d (-want +got):\n%s", o, diff)
		}
	}

	var z fixedoffset.FixedOffset
	if err := z.UnmarshalText([]byte("86400")); !errors.Is(err, fixedoffset.ErrInvalidOffset) {
		t.Errorf("UnmarshalText(86400) = %v, want ErrInvalidOffset", err)
	}
	if err := z.UnmarshalText([]byte("+05:30")); err == nil {
		t.Error("UnmarshalText accepted a designator")
	}
}

func TestJSONEncoding(t *testing.T) {
	want := []stamp{
		{"kolkata", fixedoffset.MustNew(19800)},
		{"utc", fixedoffset.UTC},
		{"marquesas", fixedoffset.MustNew(-34200)},
	}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	const wantJSON = `[{"Label":"kolkata","Zone":19800},{"Label":"utc","Zone":0},{"Label":"marquesas","Zone":-34200}]`
	if string(data) != wantJSON {
		t.Errorf("json.Marshal = %s, want %s", data, wantJSON)
	}
	var got []stamp
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON round trip (-want +got):\n%s", diff)
	}

	for _, bad := range []string{`{"Zone":-86400}`, `{"Zone":"UTC"}`, `{"Zone":1.5}`} {
		var s stamp
		if err := json.Unmarshal([]byte(bad), &s); err == nil {
			t.Errorf("json.Unmarshal(%s) succeeded: %v", bad, s)
		}
	}
}

func TestJSONNullLeavesZoneUnchanged(t *testing.T) {
	s := stamp{Label: "paris", Zone: fixedoffset.MustNew(3600)}
	if err := json.Unmarshal([]byte(`{"Zone":null}`), &s); err != nil {
		t.Fatal(err)
	}
	if want := fixedoffset.MustNew(3600); s.Zone != want {
		t.Errorf("after null, Zone = %v, want %v", s.Zone, want)
	}
}

func TestBinaryEncodingIsInt32Value(t *testing.T) {
	for _, o := range sampleOffsets {
		data, err := fixedoffset.MustNew(o).MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		var msg wrapperspb.Int32Value
		if err := proto.Unmarshal(data, &msg); err != nil {
			t.Fatalf("proto.Unmarshal: %v", err)
		}
		if int(msg.GetValue()) != o {
			t.Errorf("MarshalBinary(%d) decodes to %d", o, msg.GetValue())
		}
		var got fixedoffset.FixedOffset
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatal(err)
		}
		if got.Offset() != o {
			t.Errorf("binary round trip of %d gave %d", o, got.Offset())
		}
	}

	data, err := proto.Marshal(wrapperspb.Int32(-90000))
	if err != nil {
		t.Fatal(err)
	}
	var z fixedoffset.FixedOffset
	if err := z.UnmarshalBinary(data); !errors.Is(err, fixedoffset.ErrInvalidOffset) {
		t.Errorf("UnmarshalBinary(-90000) = %v, want ErrInvalidOffset", err)
	}
	if err := z.UnmarshalBinary([]byte{0xff}); err == nil {
		t.Error("UnmarshalBinary accepted garbage")
	}
}

func TestGobRoundTrip(t *testing.T) {
	var want []stamp
	for _, o := range sampleOffsets {
		want = append(want, stamp{Label: fixedoffset.MustNew(o).String(), Zone: fixedoffset.MustNew(o)})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(want); err != nil {
		t.Fatal(err)
	}
	var got []stamp
	if err := gob.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("gob round trip (-want +got):\n%s", diff)
	}
}
