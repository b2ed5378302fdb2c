// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset

// This file defines the persisted forms of a FixedOffset.
// Each encodes exactly the argument to New, and each decoder
// validates through New.

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	_ encoding.TextMarshaler     = FixedOffset{}
	_ encoding.TextUnmarshaler   = (*FixedOffset)(nil)
	_ encoding.BinaryMarshaler   = FixedOffset{}
	_ encoding.BinaryUnmarshaler = (*FixedOffset)(nil)
	_ json.Marshaler             = FixedOffset{}
	_ json.Unmarshaler           = (*FixedOffset)(nil)
)

// MarshalText encodes z as its offset in decimal.
func (z FixedOffset) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(z.offset), 10), nil
}

// UnmarshalText decodes a decimal offset as written by MarshalText.
func (z *FixedOffset) UnmarshalText(text []byte) error {
	offset, err := strconv.Atoi(string(text))
	if err != nil {
		return fmt.Errorf("fixedoffset: decoding text: %v", err)
	}
	return z.set(offset)
}

// MarshalJSON encodes z as a JSON number of seconds.
func (z FixedOffset) MarshalJSON() ([]byte, error) {
	return z.MarshalText()
}

// UnmarshalJSON decodes a JSON number of seconds.
// A JSON null leaves z unchanged.
func (z *FixedOffset) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var offset int
	if err := json.Unmarshal(data, &offset); err != nil {
		return fmt.Errorf("fixedoffset: decoding JSON: %v", err)
	}
	return z.set(offset)
}

// MarshalBinary encodes z as a google.protobuf.Int32Value message.
// It also serves encoding/gob.
func (z FixedOffset) MarshalBinary() ([]byte, error) {
	return proto.Marshal(wrapperspb.Int32(z.offset))
}

// UnmarshalBinary decodes a google.protobuf.Int32Value message.
func (z *FixedOffset) UnmarshalBinary(data []byte) error {
	var msg wrapperspb.Int32Value
	if err := proto.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("fixedoffset: decoding binary: %v", err)
	}
	return z.set(int(msg.GetValue()))
}

func (z *FixedOffset) set(offset int) error {
	v, err := New(offset)
	if err != nil {
		return err
	}
	*z = v
	return nil
}
