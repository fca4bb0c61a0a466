// Package invoicereturn holds the return-to-billing record.
//
// An InvoiceReturn is opened when a fulfillment operator sends an invoice
// back to billing and closed when billing resolves it. The record keeps the
// section the invoice was returned from, which decides where fulfillment
// restarts after the correction.
package invoicereturn
