//go:build js && wasm

package host

import (
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/event"
	"github.com/BluAtlas/Picross-W-WASM/game"
)

// maxSurfaceDim caps client dimensions times devicePixelRatio; larger
// backing stores fail to allocate on some mobile GPUs.
const maxSurfaceDim = 4096.0

// PointerState is the pointer input sampled once per frame by the tick
// loop, mirroring how the simulation reads input as per-tick state rather
// than as events.
type PointerState struct {
	X, Y        float64
	Button      game.Button
	Pressed     bool
	JustPressed bool
}

// Adapter binds the browser page to the bridge channel.
type Adapter struct {
	cfg    Config
	queue  *channel.Queue[event.Event]
	outbox *channel.Queue[game.Message]
	log    *zap.Logger

	canvas  js.Value
	pointer PointerState

	// retained so the GC cannot collect callbacks the page still holds
	funcs []js.Func
}

// NewAdapter creates a browser adapter feeding queue and draining outbox.
func NewAdapter(cfg Config, queue *channel.Queue[event.Event], outbox *channel.Queue[game.Message], log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		cfg:    cfg.withDefaults(),
		queue:  queue,
		outbox: outbox,
		log:    log,
	}
}

// Start wires the host environment: message hooks, resize watching, canvas
// lookup, and the initial puzzle fetch. Failures surface as LoadFailed
// events on the bridge channel.
func (a *Adapter) Start() {
	a.exportHooks()
	a.watchResize()
	a.watchPointer()
	if a.attachCanvas() {
		a.fetchPuzzle()
	}
}

// Surface returns the canvas element, or an undefined value before attach.
func (a *Adapter) Surface() js.Value {
	return a.canvas
}

// PointerSample returns the pointer state for this frame and consumes the
// just-pressed edge.
func (a *Adapter) PointerSample() PointerState {
	s := a.pointer
	a.pointer.JustPressed = false
	return s
}

// send delivers an event best-effort. The channel is bounded and fail-fast;
// a full queue means the simulation is stalled, and for every event the
// bridge accepts here a newer one can supersede it, so dropping is safe.
func (a *Adapter) send(e event.Event) {
	if err := a.queue.Send(e); err != nil {
		a.log.Warn("bridge channel full, dropping event",
			zap.String("event", string(e.Kind())))
	}
}

func (a *Adapter) attachCanvas() bool {
	doc := js.Global().Get("document")
	elm := doc.Call("getElementById", a.cfg.CanvasID)
	if !elm.Truthy() {
		a.send(event.LoadFailed{
			Reason: fmt.Sprintf("canvas element %q not found", a.cfg.CanvasID),
		})
		return false
	}
	a.canvas = elm

	w, h := a.clientSize()
	a.send(event.CanvasReady{Handle: elm, Width: w, Height: h})
	return true
}

// clientSize reads the canvas client dimensions, clamped so that the
// physical backing store stays within maxSurfaceDim.
func (a *Adapter) clientSize() (int, int) {
	dpr := js.Global().Get("devicePixelRatio").Float()
	if dpr <= 0 {
		dpr = 1
	}
	w := float64(a.canvas.Get("clientWidth").Int())
	h := float64(a.canvas.Get("clientHeight").Int())
	if w*dpr > maxSurfaceDim {
		w = maxSurfaceDim / dpr
	}
	if h*dpr > maxSurfaceDim {
		h = maxSurfaceDim / dpr
	}
	return int(w), int(h)
}

func (a *Adapter) fetchPuzzle() {
	fail := func(reason string) {
		a.send(event.LoadFailed{Reason: reason})
	}

	onData := a.fn(func(this js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(args[0])
		data := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(data, buf)
		a.send(event.PuzzleDataLoaded{Data: data})
		return nil
	})

	onResponse := a.fn(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			fail(fmt.Sprintf("puzzle fetch returned status %d", resp.Get("status").Int()))
			return nil
		}
		resp.Call("arrayBuffer").Call("then", onData, a.onReject("puzzle body read"))
		return nil
	})

	js.Global().Call("fetch", a.cfg.PuzzleURL).
		Call("then", onResponse, a.onReject("puzzle fetch"))
}

// onReject builds a promise rejection handler that fails the load.
func (a *Adapter) onReject(what string) js.Func {
	return a.fn(func(this js.Value, args []js.Value) any {
		reason := what + " rejected"
		if len(args) > 0 && args[0].Truthy() {
			reason = fmt.Sprintf("%s: %s", reason, args[0].Call("toString").String())
		}
		a.send(event.LoadFailed{Reason: reason})
		return nil
	})
}

func (a *Adapter) watchResize() {
	onResize := a.fn(func(this js.Value, args []js.Value) any {
		if !a.canvas.Truthy() {
			return nil
		}
		w, h := a.clientSize()
		a.send(event.HostResize{Width: w, Height: h})
		return nil
	})
	js.Global().Call("addEventListener", "resize", onResize)
}

func (a *Adapter) watchPointer() {
	buttonOf := func(e js.Value) game.Button {
		switch e.Get("button").Int() {
		case 2:
			return game.ButtonSecondary
		case 1:
			return game.ButtonMiddle
		default:
			return game.ButtonPrimary
		}
	}
	position := func(e js.Value) (float64, float64) {
		rect := a.canvas.Call("getBoundingClientRect")
		return e.Get("clientX").Float() - rect.Get("left").Float(),
			e.Get("clientY").Float() - rect.Get("top").Float()
	}

	onDown := a.fn(func(this js.Value, args []js.Value) any {
		if !a.canvas.Truthy() {
			return nil
		}
		e := args[0]
		a.pointer.X, a.pointer.Y = position(e)
		a.pointer.Button = buttonOf(e)
		a.pointer.Pressed = true
		a.pointer.JustPressed = true
		return nil
	})
	onMove := a.fn(func(this js.Value, args []js.Value) any {
		if !a.canvas.Truthy() || !a.pointer.Pressed {
			return nil
		}
		a.pointer.X, a.pointer.Y = position(args[0])
		return nil
	})
	onUp := a.fn(func(this js.Value, args []js.Value) any {
		a.pointer.Pressed = false
		return nil
	})
	noMenu := a.fn(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	})

	g := js.Global()
	g.Call("addEventListener", "mousedown", onDown)
	g.Call("addEventListener", "mousemove", onMove)
	g.Call("addEventListener", "mouseup", onUp)
	g.Call("addEventListener", "contextmenu", noMenu)
}

// exportHooks publishes the page-facing functions: send_wasm pushes a host
// command at the bridge, recv_wasm polls one outbound message, formatted as
// verb SPLIT data, empty string when none is pending.
func (a *Adapter) exportHooks() {
	sendWASM := a.fn(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return nil
		}
		a.send(event.ExternalCommand{
			Verb: args[0].String(),
			Data: args[1].String(),
		})
		return nil
	})
	recvWASM := a.fn(func(this js.Value, args []js.Value) any {
		msg, ok := a.outbox.Pop()
		if !ok {
			return ""
		}
		return msg.Verb + game.SplitMarker + msg.Data
	})

	js.Global().Set("send_wasm", sendWASM)
	js.Global().Set("recv_wasm", recvWASM)
}

// ExportBoard publishes board_wasm, returning the current flat board glyph
// string so the page can render without polling the simulation directly.
func (a *Adapter) ExportBoard(board func() string) {
	boardWASM := a.fn(func(this js.Value, args []js.Value) any {
		return board()
	})
	js.Global().Set("board_wasm", boardWASM)
}

// RunFrames schedules tick on every animation frame. It returns
// immediately; the caller parks the main goroutine.
func (a *Adapter) RunFrames(tick func()) {
	var frame js.Func
	frame = a.fn(func(this js.Value, args []js.Value) any {
		tick()
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
}

func (a *Adapter) fn(f func(this js.Value, args []js.Value) any) js.Func {
	jf := js.FuncOf(f)
	a.funcs = append(a.funcs, jf)
	return jf
}
