// Package kernel provides shared value objects used across the order domain:
// UUID identity, exact-decimal Price for monetary amounts, and a constructor
// guard that makes zero-value instances detectable.
//
// All kernel types are immutable value objects. Their zero values are invalid
// and must be created through the provided constructor functions; Validate
// reports whether an instance was properly constructed.
package kernel
