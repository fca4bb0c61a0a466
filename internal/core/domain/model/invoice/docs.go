// Package invoice provides domain entities and business logic for invoice
// lifecycle management in the fulfillment system. It implements the Invoice
// aggregate root with its status machines and line items.
//
// The package includes:
//   - Invoice: The aggregate root holding identity, line items, and lifecycle state
//   - Status: A state machine enforcing the fulfillment workflow transitions
//   - BillingStatus: The parallel correction dimension (Normal/Review/ReInvoiced)
//   - InvoiceItem: Line items owned exclusively by their invoice
//   - Customer: A value object identifying the ordering customer
//
// Key business rules:
//   - Invoices must have a unique, immutable invoice number and at least one item
//   - Status follows the workflow Invoiced -> Picking -> Picked -> Packing ->
//     Packed -> Dispatched -> Delivered, with a Review side state reachable from
//     the five intermediate statuses
//   - No operation may skip a stage; Delivered is terminal
//   - Resolving a review reopens the stage the invoice was returned from and
//     never advances past it
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package invoice
