// Package tracking records how edits move document positions.
//
// Every edit step produces a [StepMap] describing the span it replaced. A
// [Mapping] collects the step maps of a transaction in application order and
// translates any position that was valid before the transaction into the
// corresponding position afterwards.
//
// # Association
//
// A position that sits exactly where text was inserted is ambiguous: it can
// stay before the insertion or move after it. Map takes an association bias
// to decide. Negative values stick to the left, positive values to the right:
//
//	m := tracking.NewStepMap(3, 0, 2) // insert two bytes at 3
//	m.Map(3, -1) // 3
//	m.Map(3, 1)  // 5
//
// Positions strictly inside a replaced span are reported as deleted by
// MapResult and land on the left or right edge of the replacement depending
// on the bias.
package tracking
