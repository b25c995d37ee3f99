// Package puzzle defines the puzzle snapshot the bridge hands to its session
// collaborator, the textual puzzle definition parser, and the Session
// contract itself.
//
// The bridge owns a Snapshot only until bootstrap hands it to the Session;
// grid semantics, cell state, and solved-ness belong to the session from
// then on. Grid is a minimal in-process session for the dev harness and
// tests; auto-solving is deliberately absent.
package puzzle
