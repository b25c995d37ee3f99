// Package bridge coordinates the browser's event-driven host environment
// with the game's tick-driven simulation.
//
// Host completions (canvas attach, puzzle fetch, resize, UI commands) are
// encoded as events and pushed into a bounded channel by the host adapter.
// Once per tick, before any system reads bridge state, the Scheduler drains
// the channel and folds every event into the bootstrap state machine:
//
//	uninitialized --Begin--> awaiting_canvas
//	uninitialized | awaiting_canvas --CanvasReady--> awaiting_puzzle_data
//	awaiting_puzzle_data --PuzzleDataLoaded--> ready
//	uninitialized | awaiting_canvas | awaiting_puzzle_data --LoadFailed--> failed
//	ready --HostResize--> ready (viewport updated)
//	ready --ExternalCommand--> ready (forwarded to input systems)
//
// Any state/event pair outside the table is dropped with a diagnostic;
// ordering between host and bridge is a structural invariant, not
// best-effort. Failed is terminal: the module stays alive to render the
// failure, and a retry means building a fresh scheduler.
//
// When bootstrap reaches ready, the scheduler hands the parsed puzzle
// snapshot to the session collaborator exactly once, guarded by a consumed
// flag rather than by re-checking external conditions.
package bridge
