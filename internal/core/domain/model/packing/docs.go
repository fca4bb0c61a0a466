// Package packing holds the box model produced by packing sessions.
//
// A Box is one physical carton: it belongs to a packing session, carries a
// sequential number within that session, and assigns decimal quantities of
// invoice line items to the carton. Boxes are sealed when the packing session
// completes and are immutable from then on.
package packing
