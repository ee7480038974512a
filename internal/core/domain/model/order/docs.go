// Package order implements the Order aggregate and its delivery status state
// machine.
//
// The package includes:
//   - Order: the aggregate root holding owner, status, total and lines
//   - Line: one product attached to an order, with its price
//   - Status: the four delivery statuses and the transition table
//
// Key business rules:
//   - Orders start in PREPARING_FOR_DELIVERY
//   - PREPARING_FOR_DELIVERY -> IN_PROGRESS | CANCELLED, IN_PROGRESS -> DELIVERED
//   - DELIVERED and CANCELLED are terminal; self transitions are rejected
//   - Products can be added in any status but removed only in PREPARING_FOR_DELIVERY
//   - Only the owner can cancel, and only in PREPARING_FOR_DELIVERY
//   - The total always equals the sum of the attached product prices
package order
