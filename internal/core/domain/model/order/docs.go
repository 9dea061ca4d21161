// Package order models a customer order as seen by the coordination engine:
// an identifier, stop templates, and the assigned/unassigned lifecycle flag.
// An order's stops, once accepted onto a trip, become that trip's Stop
// entities; only the templates remain here.
package order
