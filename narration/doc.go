// Package narration holds the line-correlation table that ties trace
// snapshots to a simulated source listing.
//
// The trace generator only emits structured data: a Point naming the
// statement being narrated and a set of named variables. A Table maps each
// Point to the listing lines to highlight and each variable to the line that
// declares it. Presentation layers pick or load the table; the algorithm
// never hard-codes line numbers.
//
// Tables come from Default (the stock Java-style listing) or from YAML:
//
//	points:
//	  method-def: [2]
//	  bounds-check: [34, 35]
//	variables:
//	  fresh: 6
//	  minutes: 19
//
// Errors:
//
//   - ErrUnknownPoint: a YAML key names no Point.
//   - ErrMissingPoint: a Point has no lines.
//   - ErrInvalidLine:  a line number is not positive.
//   - ErrDecode:       the YAML document is malformed.
package narration
