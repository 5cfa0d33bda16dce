// Package duration formats durations into short human readable strings like
// "1 week 2 days 3 hours" or "1m 3s 234ms".
//
// # Sources
//
// Anything that can report its length as a number of milliseconds
// (ToMilliseconds) or microseconds (ToMicroseconds) can be formatted. Adapters
// exist for float seconds (FloatSeconds), time.Duration (Std), raw counts
// (Millis, Micros) and the distance between two points in time (Span).
//
// # Precision
//
// The precision names the finest unit that is still printed. Everything below
// it is dropped, not rounded.
//
// # Thresholds
//
// A unit is only printed when the remaining value is strictly greater than one
// of it. Exactly 1000 milliseconds are printed as "1000ms", not as "1s".
//
// # Unit names
//
// Long unit names are separated from their quantity by a space in both the
// millisecond and the microsecond scheme, e.g. "3 microseconds". Short names
// are not, e.g. "3µs".
package duration
