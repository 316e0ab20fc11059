// Package order provides the Order aggregate root and the value objects it
// is built from.
//
// The package includes:
//   - Order: the aggregate root that owns the delivery lifecycle
//   - Status: the lifecycle state machine
//   - Category, Weight, Stop: validated order attributes
//   - Pricing: the fare breakdown frozen at creation time
//   - HistoryEntry: one immutable line of the status audit trail
//   - ChangedEvent: the domain event raised on every lifecycle change
//
// Key business rules:
//   - Lifecycle: pending -> assigned -> picked_up -> in_transit -> delivered
//   - An assigned shipper may release the order back to pending with a reason
//   - Admins may set any status; pending and cancelled clear the shipper
//   - An order has a shipper exactly when its status is assigned, picked_up,
//     in_transit or delivered
//   - Pricing is computed once and never recalculated
package order
