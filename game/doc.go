// Package game holds the simulation-side systems that run once the bridge
// reports ready: board layout, pointer-to-tile input mapping, clue marks,
// host command routing, and the per-tick Runner tying them to the bridge
// scheduler.
//
// Nothing in this package touches the host environment. Front ends (the
// browser adapter, the terminal harness) drive Runner.Tick from their frame
// callback and render from the resulting state.
package game
