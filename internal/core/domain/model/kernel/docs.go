// Package kernel provides the shared value objects of the delivery domain.
//
// The package includes:
//   - Location: a validated latitude/longitude pair
//   - Role: the closed set of account roles (customer, shipper, admin)
//   - Actor: the authenticated (id, role) pair every use case receives
//
// Values are immutable and only valid when built through their constructors.
package kernel
