// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset

import (
	"errors"
	"fmt"
)

// ErrInvalidDesignator is matched (via errors.Is) by errors from
// ParseDesignator.
var ErrInvalidDesignator = errors.New("invalid UTC offset designator")

// ParseDesignator parses the UTC offset designator of an ISO 8601
// timestamp and returns the corresponding FixedOffset.
//
// Accepted forms are "Z" (or "z") for UTC and a sign followed by hours,
// optionally followed by minutes with or without a colon:
//
//	+05  +0530  +05:30  -00:45
//
// Hours must be less than 24 and minutes less than 60.
func ParseDesignator(s string) (FixedOffset, error) {
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	if len(s) < 3 {
		return FixedOffset{}, designatorError(s)
	}

	var sign int
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return FixedOffset{}, designatorError(s)
	}

	rest := s[1:]
	hours, ok := twoDigits(rest)
	if !ok {
		return FixedOffset{}, designatorError(s)
	}
	rest = rest[2:]

	var minutes int
	switch len(rest) {
	case 0:
	case 2, 3:
		if len(rest) == 3 {
			if rest[0] != ':' {
				return FixedOffset{}, designatorError(s)
			}
			rest = rest[1:]
		}
		if minutes, ok = twoDigits(rest); !ok {
			return FixedOffset{}, designatorError(s)
		}
	default:
		return FixedOffset{}, designatorError(s)
	}

	if hours >= 24 || minutes >= 60 {
		return FixedOffset{}, fmt.Errorf("%w %q: out of range", ErrInvalidDesignator, s)
	}
	// hours < 24 and minutes < 60 keep the offset within the valid range.
	return newUnchecked(sign * (hours*secondsPerHour + minutes*secondsPerMinute)), nil
}

func designatorError(s string) error {
	return fmt.Errorf("%w %q", ErrInvalidDesignator, s)
}

// twoDigits decodes the two leading decimal digits of s.
func twoDigits(s string) (int, bool) {
	if len(s) < 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
