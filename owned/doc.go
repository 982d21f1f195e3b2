// Package owned provides Buffer, a fixed-length slot array with a single
// owner. A Buffer is never duplicated: ownership moves between buffers with
// Move, MoveFrom and Swap, or is handed to the caller with Release.
//
// Buffers must not be copied by value. The type embeds a marker that
// go vet's copylocks check reports on every value copy, so pass *Buffer.
//
// Index access is unchecked beyond Go's own slice bounds check: reading past
// the allocation panics and is a programming error, not a recoverable one.
package owned
