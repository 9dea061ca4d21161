// Package kernel contains the shared value objects of the domain model:
// entity identifiers, geographic coordinates, and location samples. All types
// here are immutable and validated at construction.
package kernel
