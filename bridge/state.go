package bridge

// State tracks bootstrap progress. Exactly one instance exists per
// scheduler; it moves strictly forward and only the scheduler mutates it.
// Failed is terminal: re-bootstrap means constructing a fresh scheduler.
type State uint8

const (
	StateUninitialized State = iota
	StateAwaitingCanvas
	StateAwaitingPuzzleData
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAwaitingCanvas:
		return "awaiting_canvas"
	case StateAwaitingPuzzleData:
		return "awaiting_puzzle_data"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state accepts no further bootstrap
// transitions.
func (s State) Terminal() bool {
	return s == StateFailed
}

// Viewport is the render surface size in host pixel units.
type Viewport struct {
	Width  int
	Height int
}
