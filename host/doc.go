// Package host adapts the browser environment to the bridge.
//
// The adapter is the only code in the module that calls into host APIs. It
// observes asynchronous host completions (canvas lookup, puzzle fetch,
// resize, page messages) and encodes each as an event sent into the bounded
// bridge channel; it never touches simulation state. Host API failures are
// translated into LoadFailed events rather than propagated, so a missing
// canvas or a rejected fetch can never take the page down.
//
// The browser implementation builds only for js/wasm. The terminal harness
// under cmd/picross-tui plays the same role against a tty without importing
// this package.
package host
