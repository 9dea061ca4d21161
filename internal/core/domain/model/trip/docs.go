// Package trip implements the trip aggregate: the canonical trip and stop
// status model, the legal-transition rules consulted before every mutating
// action, and the route-sequencing invariants (dense ascending sequence
// numbers, terminal stops ordered after pending ones).
//
// The aggregate held by the client is a read-mostly projection of the
// dispatch backend's system of record. Mutating methods here either
// pre-validate a transition before the corresponding network call is issued,
// or apply the optimistic local patch after that call succeeded. routeVersion
// is owned by the server and is never incremented locally.
package trip
