// Package services provides domain services that coordinate business rules
// spanning more than one aggregate of the market domain.
//
// The package includes:
//   - ProductAttacher: places orders and attaches catalog products to them
//
// Services are stateless; they validate their inputs, delegate state changes
// to the aggregates and never touch persistence.
package services
