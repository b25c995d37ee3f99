package main

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/event"
	"github.com/BluAtlas/Picross-W-WASM/game"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// The terminal stands in for the browser: window-size messages play the
// canvas, a file read plays the puzzle fetch, and key/mouse input plays the
// pointer. Everything reaches the simulation through the same bridge
// channel the wasm build uses.
type model struct {
	cfg config
	log *zap.Logger

	queue  *channel.Queue[event.Event]
	outbox *channel.Queue[game.Message]
	grid   *puzzle.Grid
	sched  *bridge.Scheduler
	runner *game.Runner

	spin  spinner.Model
	state bridge.State

	width, height int
	canvasSent    bool

	cursorX, cursorY int
	dragging         bool
	dragAction       game.Action
}

type tickMsg time.Time

func newModel(cfg config, log *zap.Logger) *model {
	queue := channel.New[event.Event](cfg.ChannelCap)
	outbox := channel.New[game.Message](cfg.ChannelCap)
	grid := puzzle.NewGrid()
	sched := bridge.New(queue, grid, bridge.WithLogger(log))
	runner := game.NewRunner(sched, grid, outbox, game.WithRunnerLogger(log))

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	sched.Begin()

	return &model{
		cfg:    cfg,
		log:    log,
		queue:  queue,
		outbox: outbox,
		grid:   grid,
		sched:  sched,
		runner: runner,
		spin:   spin,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.tick())
}

func (m *model) tick() tea.Cmd {
	rate := m.cfg.TickRate
	if rate <= 0 {
		rate = 30
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadPuzzle plays the host's asynchronous fetch: it resolves off the tick
// loop and reports completion by sending into the bridge channel.
func (m *model) loadPuzzle() tea.Msg {
	data, err := os.ReadFile(m.cfg.Puzzle)
	if err != nil {
		m.send(event.LoadFailed{Reason: err.Error()})
		return nil
	}
	m.send(event.PuzzleDataLoaded{Data: data})
	return nil
}

func (m *model) send(e event.Event) {
	if err := m.queue.Send(e); err != nil {
		m.log.Warn("bridge channel full, dropping event",
			zap.String("event", string(e.Kind())))
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.canvasSent {
			m.canvasSent = true
			m.send(event.CanvasReady{Handle: "terminal", Width: msg.Width, Height: msg.Height})
			// the canvas is attached; now the "fetch" may resolve
			return m, m.loadPuzzle
		}
		m.send(event.HostResize{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tickMsg:
		m.state = m.runner.Tick()
		for _, out := range m.outbox.Drain() {
			m.log.Info("outbound message",
				zap.String("verb", out.Verb),
				zap.String("data", out.Data))
		}
		return m, m.tick()

	case spinner.TickMsg:
		if m.state == bridge.StateReady || m.state == bridge.StateFailed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	board := m.runner.Board()
	if board == nil {
		return m, nil
	}
	snap := board.Snapshot()

	switch msg.String() {
	case "up", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "j":
		if m.cursorY < snap.Height-1 {
			m.cursorY++
		}
	case "left", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "l":
		if m.cursorX < snap.Width-1 {
			m.cursorX++
		}
	case " ", "enter":
		m.act(board, game.ButtonPrimary)
	case "x":
		m.act(board, game.ButtonSecondary)
	case "e":
		m.act(board, game.ButtonMiddle)
	case "tab":
		// the control tile flips the primary action
		board.Apply(0, 0, game.ActionFill, true)
	}
	return m, nil
}

// act applies a button press at the cursor through the same resolve path
// pointer input uses, so re-pressing a matching cell clears it.
func (m *model) act(board *game.Board, btn game.Button) {
	l := board.Layout()
	bx, by := m.cursorX+l.ClueCols, m.cursorY+l.ClueRows
	board.Apply(bx, by, board.Resolve(bx, by, btn), true)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	board := m.runner.Board()
	if board == nil {
		return
	}

	x, y, ok := m.tileAtCell(board, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return
		}
		btn := game.ButtonPrimary
		switch msg.Button {
		case tea.MouseButtonRight:
			btn = game.ButtonSecondary
		case tea.MouseButtonMiddle:
			btn = game.ButtonMiddle
		}
		m.dragging = true
		m.dragAction = board.Resolve(x, y, btn)
		board.Apply(x, y, m.dragAction, true)
		if l := board.Layout(); l.RegionAt(x, y) == game.RegionGrid {
			gx, gy := l.GridCell(x, y)
			m.cursorX, m.cursorY = gx, gy
		}

	case tea.MouseActionMotion:
		if !m.dragging || !ok {
			return
		}
		if board.Layout().RegionAt(x, y) != game.RegionControl {
			board.Apply(x, y, m.dragAction, true)
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}
}

// tileAtCell maps a terminal cell to board tile coordinates. Tiles render
// two columns wide and one row tall below the header line.
func (m *model) tileAtCell(board *game.Board, cx, cy int) (int, int, bool) {
	l := board.Layout()
	x := (cx - boardLeft) / tileWidth
	y := cy - boardTop
	if x < 0 || x >= l.Columns || y < 0 || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}
