// Package kernel holds the value objects shared by every aggregate of the
// dispatch domain: identifiers and postal addresses.
//
// Values in this package are immutable. Their zero values are invalid and
// fail Validate, so aggregates can reject identifiers or addresses that were
// declared rather than constructed.
package kernel
