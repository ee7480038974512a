// Package kernel holds value objects shared by every aggregate of the market
// domain: identifiers (UUID) and monetary amounts (Money).
//
// Both types are immutable. Their zero values are invalid and are rejected by
// Validate, so aggregates can tell a missing value from a real one.
package kernel
