// Package julian converts proleptic Gregorian calendar instants to
// fractional Julian Dates.
//
// The conversion is the closed-form Meeus-style formula. Month and day
// fields are not range checked: out-of-range values flow through the
// arithmetic and yield a consistent, if calendrically odd, day count.
//
// Numeric behavior matches the reference tool exactly:
//   - century terms use floor division
//   - the 365.25 and 30.6001 day terms truncate toward zero
//   - all real arithmetic is float64 in the reference operation order
package julian
