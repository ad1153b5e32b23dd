// Package engine provides the low-level boundary to the native voikko
// linguistic library.
//
// This package wraps the C API behind the Engine interface so that no
// foreign pointer, allocation, or encoding detail is visible above it.
// Everything the interface returns is an owned Go value; everything the
// native side allocated is released before the call returns.
//
// # Architecture
//
// The package provides two main pieces:
//
//	Engine - the boundary contract consumed by the voikko package
//	Native - the Engine implementation linked against libvoikko
//
// Sessions are identified by integer Handles backed by an internal
// session table, so the C session pointer never leaves this package.
//
// # Call Flow
//
//  1. Native.Init creates a C session and registers it in the table
//  2. Operations look the session up by Handle and call into C
//  3. Engine-allocated buffers are copied and freed before returning
//  4. Native.Terminate drops the table entry and destroys the session
//
// Strings passed to Engine methods must not contain NUL bytes; the
// voikko package validates inputs before they reach this boundary.
package engine
