// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tz defines fixed-offset timezones for Starlark, for use with the
time values of go.starlark.net/lib/time.

	outline: tz
	  tz defines timezones that are a constant offset from UTC
	  path: tz
	  functions:
	    fixed_offset(offset) fixed_offset
	      the zone offset seconds east of UTC; fails unless
	      -86400 < offset < 86400
	    parse_offset(string) fixed_offset
	      parse an ISO 8601 UTC offset designator such as "Z", "+05:30"
	      or "-0045"
	  values:
	    utc fixed_offset
	      the zone with a zero offset

	  types:
	    fixed_offset
	      fields:
	        offset int
	      functions:
	        utcoffset(t=None) duration
	          the offset from UTC; t is a time and is ignored
	        dst(t=None) None
	          a fixed offset never observes daylight saving time
	        tzname(t=None) string
	          "UTC" or a name of the form "UTC+05:30"
	        getinitargs() tuple
	          the arguments to fixed_offset that reconstruct the zone
	        localize(t) time
	          the same instant as t, in this zone
	      operators:
	        fixed_offset == fixed_offset = boolean
	        fixed_offset < fixed_offset = boolean
*/
package tz
