// Package event defines the host events carried across the bridge.
//
// Each variant is a small immutable value implementing Event. The bridge
// scheduler type-switches on the concrete type; Kind exists for diagnostics
// so dropped or out-of-order events can be named without reflection.
package event
