// Package order provides the domain model for customer order lifecycle
// management: the Order aggregate root, its owned Item lines, and the
// Status state machine.
//
// Key business rules:
//   - Orders are created in Pending status with a fixed creation instant
//   - Items are validated at construction and owned exclusively by the order
//     (replace-all semantics, no independent persistence)
//   - Cancellation is only permitted while the order is Pending
//   - The periodic sweep advances Pending orders to Processing
//   - Delivered and Cancelled are terminal statuses
//   - Administrative status updates accept any valid status value and are
//     the documented exception to the lifecycle diagram
//
// The package follows Domain-Driven Design principles: private fields,
// factory constructors that fail instead of producing partially-invalid
// aggregates, and identity-based equality.
package order
