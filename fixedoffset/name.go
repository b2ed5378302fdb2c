// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset

import (
	"strconv"
	"time"
)

// TZName returns the canonical name of z: "UTC" for a zero offset,
// otherwise "UTC" followed by a sign and a zero-padded hours:minutes
// offset, such as "UTC+05:30" or "UTC-00:45".
// Seconds that do not make up a whole minute are not shown.
// The instant is ignored.
func (z FixedOffset) TZName(time.Time) string {
	return z.name()
}

// String returns the canonical name of z; see TZName.
func (z FixedOffset) String() string { return z.name() }

func (z FixedOffset) name() string {
	offset := int(z.offset)
	if offset == 0 {
		return "UTC"
	}
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / secondsPerHour
	minutes := offset / secondsPerMinute % 60

	buf := make([]byte, 0, len("UTC+hh:mm"))
	buf = append(buf, "UTC"...)
	buf = append(buf, sign)
	buf = appendTwoDigits(buf, hours)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, minutes)
	return string(buf)
}

// appendTwoDigits appends n, which must be in [0, 100), padded to two digits.
func appendTwoDigits(buf []byte, n int) []byte {
	if n < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(n), 10)
}
