package ui

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"jeopardy/internal/board"
	"jeopardy/internal/quiz"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

type boardKeyMap struct {
	Close key.Binding
	Quit  key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close, k.Quit}}
}

// Root is the bubbletea model for the terminal frontend and the
// board.Presenter the state machine draws through. One board pixel is one
// terminal cell.
type Root struct {
	theme  Theme
	title  string
	debug  bool
	logger *clog.Logger
	help   help.Model
	keymap boardKeyMap
	played progress.Model

	mu      sync.Mutex
	program *tea.Program
	running bool

	board  Board
	ready  bool
	layout LayoutMode
	cols   int
	rows   int

	next     board.Handle
	elements map[board.Handle]*element
	order    []board.Handle

	pointer    board.Point
	hasPointer bool
	pressed    bool

	status         string
	lastInputEvent string
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "jeopardy-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	theme := ThemeForVariant(normalizeStyleVariant(opts.StyleVariant))
	played := progress.New(
		progress.WithWidth(20),
		progress.WithColors(theme.Progress...),
		progress.WithScaled(true),
	)

	r := &Root{
		theme:    theme,
		played:   played,
		title:    opts.Title,
		debug:    opts.Debug,
		logger:   logger,
		help:     h,
		board:    opts.Board,
		layout:   LayoutWide,
		elements: map[board.Handle]*element{},
	}
	r.keymap = boardKeyMap{
		Close: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "close clue")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	return r
}

func (r *Root) SetBoard(b Board) {
	r.board = b
}

func (r *Root) Palette() board.Palette {
	return r.theme.Board
}

func (r *Root) Init() tea.Cmd {
	return nil
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			panic(rec)
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		if !r.ready && r.board != nil && r.layout != LayoutTooSmall {
			r.board.Setup()
			r.ready = true
		}
		return r, nil
	case tea.MouseClickMsg:
		return r.handleMouseClick(msg)
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	r.recordInputEvent(fmt.Sprintf("mouse_click:%d,%d button:%v", mouse.X, mouse.Y, mouse.Button))
	if mouse.Button != tea.MouseLeft || !r.ready {
		return r, nil
	}
	r.pointer = r.toBoard(mouse.X, mouse.Y)
	r.hasPointer = true
	r.pressed = true
	r.tick()
	return r, nil
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q", msg.Code, msg.Mod, msg.Text))

	if key.Matches(msg, r.keymap.Quit) {
		return r, tea.Quit
	}
	// Space closes an open clue without needing the mouse.
	if key.Matches(msg, r.keymap.Close) && r.ready && r.board.State().Showing {
		r.pressed = true
		r.tick()
	}
	return r, nil
}

func (r *Root) tick() {
	switch r.board.Tick() {
	case board.Revealed:
		r.status = fmt.Sprintf("clue %d open", r.board.State().Cell)
	case board.Closed:
		r.status = fmt.Sprintf("%d clues left", r.board.Remaining())
	default:
		r.logger.Debug("press missed every open cell", "x", r.pointer.X, "y", r.pointer.Y)
	}
}

// toBoard maps a terminal cell to the centre of that cell in board pixels.
func (r *Root) toBoard(x, y int) board.Point {
	return board.Point{X: float64(x) + 0.5, Y: float64(r.boardRows()-y) - 0.5}
}

func (r *Root) boardRows() int {
	return max(0, r.rows-footerRows)
}

func (r *Root) View() tea.View {
	var content string
	switch {
	case r.cols < 1 || r.rows < 1:
		content = ""
	case r.layout == LayoutTooSmall:
		msg := fmt.Sprintf("Terminal too small (%dx%d). Resize to at least 48x16.", r.cols, r.rows)
		content = r.theme.Warning.Render(trimForWidth(msg, r.cols))
	default:
		content = r.renderBoard() + "\n" + r.renderFooter()
	}
	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (r *Root) renderBoard() string {
	c := newCanvas(r.cols, r.boardRows())
	for _, h := range r.order {
		if e := r.elements[h]; e.visible {
			c.draw(e)
		}
	}
	return c.String()
}

func (r *Root) renderFooter() string {
	left := r.help.View(r.keymap)
	if r.layout == LayoutWide && r.title != "" {
		left = r.title + "  " + left
	}
	right := r.status
	if right == "" && r.board != nil && r.ready {
		right = fmt.Sprintf("%d clues left", r.board.Remaining())
	}
	if r.ready && r.board != nil {
		right = r.playedBar(r.cols/5) + " " + right
	}
	left = trimForWidth(left, r.cols)
	gap := r.cols - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return r.theme.Footer.Width(r.cols).Render(left)
	}
	return r.theme.Footer.Render(left+strings.Repeat(" ", gap)) + r.theme.Status.Render(right)
}

// playedBar shows how much of the board has been opened.
func (r *Root) playedBar(width int) string {
	m := r.played
	m.SetWidth(clamp(width, 8, 30))
	return m.ViewAs(r.playedPercent())
}

func (r *Root) playedPercent() float64 {
	if r.board == nil {
		return 0
	}
	total := quiz.NumCategories * quiz.NumClues
	return float64(total-r.board.Remaining()) / float64(total)
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()
	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"messageType", msgType,
		"cols", r.cols,
		"rows", r.rows,
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*Root)(nil)
var _ board.Presenter = (*Root)(nil)
