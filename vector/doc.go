// Package vector provides Vector, a dynamically resizable array built on an
// exclusively owned [owned.Buffer].
//
// A Vector tracks a logical size (live elements) and a capacity (allocated
// slots). Slots in [Size, Capacity) are allocated but logically absent and
// are never read through the public API.
//
// # Growth
//
// Appends and inserts that run out of room reallocate to
//
//	max(required, max(MinCapacity, Capacity*GrowthFactor))
//
// which with the defaults (factor 2, floor 1) gives the capacity sequence
// 1, 2, 4, 8, ... and amortized O(1) appends. Reserve is the one exact
// reallocation: it grows to precisely the requested capacity and never
// shrinks.
//
// # Errors
//
// Checked access ([Vector.At], [Vector.AtRef]) returns an error wrapping
// [ErrOutOfRange]. Violated preconditions (unchecked access past the
// allocation, PopBack on an empty vector, invalid or foreign cursors) panic.
//
// # Ownership
//
// A Vector must not be copied by value; go vet reports such copies. Use
// [Vector.Clone] for an independent copy and [Vector.Move] or
// [Vector.MoveFrom] to transfer storage.
//
// A Vector is not safe for concurrent use.
package vector
