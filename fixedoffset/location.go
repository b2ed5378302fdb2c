// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedoffset

import (
	"sync"
	"time"
)

// locations caches the *time.Location of each offset seen so far,
// keyed by int32 offset.
var locations sync.Map

func cachedLocation(z FixedOffset) *time.Location {
	if z.offset == 0 {
		return time.UTC
	}
	if loc, ok := locations.Load(z.offset); ok {
		return loc.(*time.Location)
	}
	loc, _ := locations.LoadOrStore(z.offset, time.FixedZone(z.name(), int(z.offset)))
	return loc.(*time.Location)
}
