// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixedoffset defines FixedOffset, a timezone that is a constant
// number of seconds away from UTC.
//
// A FixedOffset is a small immutable value. It never observes daylight
// saving time and its answers never depend on the instant being asked
// about; the instant parameters exist so that a FixedOffset satisfies
// TimezoneProvider, the interface a timestamp type uses to accept any
// timezone-like value.
//
// Offsets are validated on construction and must lie strictly within one
// day of UTC:
//
//	z, err := fixedoffset.New(5*3600 + 30*60)
//	if err != nil {
//		return err
//	}
//	fmt.Println(z) // UTC+05:30
//
// The zero FixedOffset is UTC.
package fixedoffset // import "github.com/tzoffset/tzoffset/fixedoffset"

import (
	"errors"
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// MaxOffset is the largest offset, in seconds, accepted by New.
	// The smallest is -MaxOffset.
	MaxOffset = 24*secondsPerHour - 1
)

// ErrInvalidOffset is matched (via errors.Is) by every error reporting an
// offset outside the range (-86400, 86400).
var ErrInvalidOffset = errors.New("offset must be an integer in the range (-86400, 86400), exclusive")

// An InvalidOffsetError records an offset rejected by New.
type InvalidOffsetError struct {
	Offset int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid offset %d: %v", e.Offset, ErrInvalidOffset)
}

func (e *InvalidOffsetError) Is(target error) bool { return target == ErrInvalidOffset }

// A FixedOffset is a timezone whose offset from UTC is the same at every
// instant. Two FixedOffsets with the same offset are equal under ==.
type FixedOffset struct {
	offset int32 // seconds east of UTC, in (-86400, 86400)
}

// UTC is the FixedOffset with a zero offset.
var UTC = FixedOffset{}

var _ TimezoneProvider = FixedOffset{}

// New returns the FixedOffset that is offset seconds east of UTC.
// Negative offsets are west of UTC.
// It fails with an *InvalidOffsetError unless -86400 < offset < 86400.
func New(offset int) (FixedOffset, error) {
	if !valid(offset) {
		return FixedOffset{}, &InvalidOffsetError{Offset: offset}
	}
	return newUnchecked(offset), nil
}

// MustNew is like New but panics if the offset is invalid.
// It is intended for package-level variables with constant offsets.
func MustNew(offset int) FixedOffset {
	z, err := New(offset)
	if err != nil {
		panic(err)
	}
	return z
}

// newUnchecked returns a FixedOffset without range-checking offset.
// The caller must guarantee -86400 < offset < 86400, for example because
// offset was assembled from hour and minute fields that were already
// checked. It must never be applied to untrusted input.
func newUnchecked(offset int) FixedOffset {
	return FixedOffset{offset: int32(offset)}
}

func valid(offset int) bool {
	return -MaxOffset <= offset && offset <= MaxOffset
}

// FromTime returns the FixedOffset of t's zone at instant t.
// Zones derived from a timezone database are collapsed to their current
// offset; any later daylight-saving transition is not represented.
func FromTime(t time.Time) (FixedOffset, error) {
	_, offset := t.Zone()
	return New(offset)
}

// Offset returns the number of seconds east of UTC.
func (z FixedOffset) Offset() int { return int(z.offset) }

// UTCOffset returns the offset from UTC as a duration.
// The instant is ignored.
func (z FixedOffset) UTCOffset(time.Time) time.Duration {
	return time.Duration(z.offset) * time.Second
}

// DST reports the daylight-saving adjustment in effect at an instant.
// A FixedOffset never has one, so DST always returns (0, false).
func (z FixedOffset) DST(time.Time) (time.Duration, bool) {
	return 0, false
}

// Reduce returns the argument that, passed to New, reconstructs z.
func (z FixedOffset) Reduce() int { return int(z.offset) }

// Location returns a *time.Location for z, suitable for time.Time.In and
// time.Date. Its zone abbreviation is z's canonical name.
func (z FixedOffset) Location() *time.Location {
	return cachedLocation(z)
}

// In returns t with its location set to z. The instant is unchanged.
func (z FixedOffset) In(t time.Time) time.Time {
	return t.In(z.Location())
}

// Equal reports whether z and other have the same offset.
// It is equivalent to z == other.
func (z FixedOffset) Equal(other FixedOffset) bool { return z.offset == other.offset }
