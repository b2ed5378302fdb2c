// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset

import "time"

// A TimezoneProvider is the capability a timestamp type needs from the
// timezone attached to it. Implementations must be safe for concurrent use.
type TimezoneProvider interface {
	// UTCOffset returns the offset from UTC in effect at the instant.
	UTCOffset(t time.Time) time.Duration

	// DST returns the daylight-saving adjustment in effect at the
	// instant. The boolean is false if the zone has no notion of
	// daylight saving time at t, in which case the duration is zero.
	DST(t time.Time) (time.Duration, bool)

	// TZName returns the display name of the zone at the instant.
	TZName(t time.Time) string

	// Reduce returns the minimal state from which an equivalent
	// provider can be reconstructed.
	Reduce() int
}
