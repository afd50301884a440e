// Package prompt implements the operator dialogue used to settle ambiguous
// title groups.
//
// The dialogue lists the candidates with 1-based numbers and accepts "+"
// (keep all), "-" (remove all) or a comma-separated list of the numbers to
// keep. Invalid answers are rejected with a fixed message and asked again
// until a valid one arrives. The wording is a user-facing contract and must
// not drift.
package prompt
