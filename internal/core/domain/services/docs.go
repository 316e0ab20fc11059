// Package services provides the domain services of the delivery system:
// logic that needs more than one aggregate or no aggregate at all.
//
// The package includes:
//   - PricingEngine: turns a distance into a fare breakdown
//   - OrderDispatcher: availability rules and order/shipper assignment
//   - Authorize: the closed role-to-action permission table
package services
