// Package driver provides the Driver aggregate: the truck driver a dispatch is
// assigned to, reduced to what dispatch orchestration needs (identity, name and an
// availability status machine).
//
// A driver operates at most one dispatch at a time. The DispatchCoordinator in the
// services package is the only code that moves a driver in or out of Operating.
package driver
