// Package errors provides structured error types for the host/runtime bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries bridge context: the state machine's state
// name, the host event kind involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBootstrap, errors.KindOutOfOrder).
//		State("awaiting_canvas").
//		Event("puzzle_data_loaded").
//		Detail("puzzle data arrived before the canvas").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ChannelFull(64)
//	err := errors.OutOfOrder("failed", "canvas_ready")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so sentinel comparisons work without sharing
// instances:
//
//	errors.Is(err, errors.ChannelFull(0)) // true for any channel_full error
package errors
