package host

// Config selects the host page elements the adapter binds to.
type Config struct {
	// CanvasID is the element id of the render canvas.
	CanvasID string
	// PuzzleURL is fetched for the initial puzzle definition.
	PuzzleURL string
}

func (c Config) withDefaults() Config {
	if c.CanvasID == "" {
		c.CanvasID = "picross-canvas"
	}
	if c.PuzzleURL == "" {
		c.PuzzleURL = "assets/puzzle.txt"
	}
	return c
}
