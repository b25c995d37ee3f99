package event

// Kind names a host event variant for diagnostics and logging.
type Kind string

const (
	KindCanvasReady      Kind = "canvas_ready"
	KindPuzzleDataLoaded Kind = "puzzle_data_loaded"
	KindLoadFailed       Kind = "load_failed"
	KindHostResize       Kind = "host_resize"
	KindExternalCommand  Kind = "external_command"
)

// Event is one occurrence originating outside the simulation tick loop.
// Events are immutable value types: the message channel owns an event from
// Send until Drain hands it to the bridge scheduler.
type Event interface {
	Kind() Kind
}

// CanvasReady reports that the host's render surface is attached. Handle is
// opaque to the bridge: a js.Value wrapping the canvas element in the
// browser, something else under other hosts. Width and Height are the
// surface's client dimensions at attach time; later changes arrive as
// HostResize.
type CanvasReady struct {
	Handle any
	Width  int
	Height int
}

func (CanvasReady) Kind() Kind { return KindCanvasReady }

// PuzzleDataLoaded carries the raw bytes of a puzzle definition resolved by
// the host (fetch completion, file read).
type PuzzleDataLoaded struct {
	Data []byte
}

func (PuzzleDataLoaded) Kind() Kind { return KindPuzzleDataLoaded }

// LoadFailed reports a recoverable host-side failure: missing canvas
// element, rejected fetch. It drives the bridge to its terminal Failed
// state; it never crashes the module.
type LoadFailed struct {
	Reason string
}

func (LoadFailed) Kind() Kind { return KindLoadFailed }

// HostResize reports new render-surface dimensions in host pixel units.
type HostResize struct {
	Width  int
	Height int
}

func (HostResize) Kind() Kind { return KindHostResize }

// ExternalCommand is an opaque command payload from host-side UI controls.
// Verb selects the handler; Data is verb-specific. Unknown verbs are logged
// and ignored by the command router rather than faulted.
type ExternalCommand struct {
	Verb string
	Data string
}

func (ExternalCommand) Kind() Kind { return KindExternalCommand }
