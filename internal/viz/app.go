package viz

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifeterm/internal/config"
	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/seed"
)

const (
	title           = "Conway's Game of Life"
	headerRows      = 2
	footerRows      = 1
	chartRows       = 5
	historyCapacity = 600
)

type frameMsg time.Time

// App is the interactive shell around a life.Grid. It decides when to tick
// and when to preview; the grid itself knows nothing about time.
type App struct {
	cfg      *config.Config
	grid     *life.Grid
	origin   life.Cell
	index    int
	playing  bool
	lastTick time.Time
	theme    Theme
	glyphs   life.Glyphs
	colored  bool

	width, height int
	cellWidth     int // terminal columns per cell, from the glyph set
	sized         bool
	showChart     bool
	history       []float64
}

func NewApp(cfg *config.Config) *App {
	gl := glyphsFor(cfg.Glyphs)
	return &App{
		cfg:       cfg,
		grid:      life.New(0, 0),
		index:     int(cfg.StartPattern()),
		theme:     GetTheme(cfg.Theme),
		glyphs:    gl,
		colored:   cfg.Glyphs != "emoji",
		cellWidth: max(lipgloss.Width(gl.Live), 1),
		history:   make([]float64, 0, historyCapacity),
	}
}

// Grid exposes the board for inspection.
func (a *App) Grid() *life.Grid      { return a.grid }
func (a *App) Origin() life.Cell     { return a.origin }
func (a *App) Pattern() seed.Pattern { return seed.ByIndex(a.index) }
func (a *App) Playing() bool         { return a.playing }

func (a *App) frame() tea.Cmd {
	return tea.Tick(a.cfg.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) Init() tea.Cmd { return a.frame() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case frameMsg:
		a.advance(time.Time(msg))
		return a, a.frame()
	}
	return a, nil
}

// advance ticks when playing and the tick interval has passed since the
// last tick; otherwise it refreshes the preview.
func (a *App) advance(now time.Time) {
	if !a.playing {
		a.preview()
		return
	}
	if now.Sub(a.lastTick) < a.cfg.TickInterval {
		return
	}
	a.grid.Tick()
	a.lastTick = now
	a.record()
}

func (a *App) record() {
	a.history = append(a.history, float64(a.grid.Population()))
	if len(a.history) > historyCapacity {
		a.history = a.history[1:]
	}
}

func (a *App) preview() { a.grid.SetPreview(a.Pattern(), a.origin) }

func (a *App) place(at life.Cell) {
	a.grid.Seed(a.Pattern(), at)
	log.Printf("seeded %s at (%d,%d), population %d", a.Pattern(), at.X, at.Y, a.grid.Population())
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "esc", "q", "Q", "ctrl+c":
		return tea.Quit
	case "p", "P":
		a.playing = !a.playing
		if !a.playing {
			a.preview()
		}
	case " ", "space", "insert":
		a.place(a.origin)
	case "left", "right", "up", "down":
		a.move(key, a.cfg.MoveStep)
	case "shift+left", "shift+right", "shift+up", "shift+down":
		a.move(strings.TrimPrefix(key, "shift+"), a.cfg.FastMoveStep)
	case "delete":
		a.grid.Clear()
		a.history = a.history[:0]
	case "enter":
		if a.playing {
			a.playing = false
			a.preview()
		} else {
			a.grid.Tick()
			a.record()
		}
	case "t":
		a.theme = NextTheme(a.theme.Name)
	case "g":
		a.showChart = !a.showChart
		a.resize(a.width, a.height)
	default:
		if i, ok := hexDigit(key); ok {
			a.index = i
			if a.index > seed.MaxIndex {
				a.index = 0
			}
			a.preview()
		}
	}
	return nil
}

// move shifts the cursor. Left and up saturate at 0; right and down stop
// once a step would pass the grid edge.
func (a *App) move(dir string, step uint) {
	switch dir {
	case "left":
		a.origin = a.origin.Offset(-int(step), 0)
	case "up":
		a.origin = a.origin.Offset(0, -int(step))
	case "right":
		if a.origin.X+step <= a.grid.Width() {
			a.origin.X += step
		}
	case "down":
		if a.origin.Y+step <= a.grid.Height() {
			a.origin.Y += step
		}
	}
	a.preview()
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		a.index = seed.Next(a.index)
		a.preview()
		return
	case msg.Button == tea.MouseButtonWheelUp:
		a.index = seed.Prev(a.index)
		a.preview()
		return
	}

	at, ok := a.cellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.origin = at
		a.place(at)
	case msg.Action == tea.MouseActionMotion:
		a.origin = at
		a.preview()
	}
}

// cellAt converts a terminal position to a board cell.
func (a *App) cellAt(x, y int) (life.Cell, bool) {
	if x < 0 || y < headerRows {
		return life.Cell{}, false
	}
	c := life.Cell{X: uint(x / a.cellWidth), Y: uint((y - headerRows) / a.cfg.CellHeight)}
	return c, c.In(a.grid.Width(), a.grid.Height())
}

// resize fits the board to the terminal area left after the chrome. The
// first resize also places the cursor and the configured scene.
func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	rows := height - headerRows - footerRows
	if a.showChart {
		rows -= chartRows
	}
	w := uint(max(width/a.cellWidth, 0))
	h := uint(max(rows/a.cfg.CellHeight, 0))
	a.grid.Resize(w, h)
	log.Printf("resized to %dx%d chars, board %dx%d", width, height, w, h)

	if a.sized || w == 0 || h == 0 {
		return
	}
	a.sized = true
	a.origin = life.Cell{X: w / 2, Y: h/2 - h/15}
	for _, p := range a.cfg.Scene {
		pat, err := seed.Parse(p.Pattern)
		if err != nil {
			continue
		}
		a.grid.Seed(pat, life.Cell{X: p.X, Y: p.Y})
	}
	a.preview()
}

func hexDigit(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.viewTitle() + "\n")
	b.WriteString(a.viewStatus() + "\n")
	b.WriteString(renderBoard(a.grid, a.glyphs, a.theme, a.colored))

	if a.showChart {
		b.WriteString("\n" + a.viewChart())
	}
	b.WriteString("\n" + a.viewHelp())
	return b.String()
}

func (a *App) viewTitle() string {
	text := GradientText(title, a.theme.Primary, a.theme.Secondary)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, text)
}

func (a *App) viewStatus() string {
	state := StatusPaused.Render("PAUSED")
	if a.playing {
		state = StatusRunning.Render("PLAYING")
	}
	p := a.Pattern()
	field := func(label, value string) string {
		return MetricLabel.Render(label+" ") + MetricValue.Render(value)
	}
	return strings.Join([]string{
		state,
		field("gen", fmt.Sprintf("%d", a.grid.Generation())),
		field("pop", fmt.Sprintf("%d", a.grid.Population())),
		field("seed", fmt.Sprintf("%X %s (%s)", a.index, p, p.Category())),
		field("at", fmt.Sprintf("%d,%d", a.origin.X, a.origin.Y)),
		field("theme", a.theme.Name),
	}, "  ")
}

func (a *App) viewChart() string {
	if len(a.history) < 2 {
		return strings.Repeat("\n", chartRows-1)
	}
	width := min(max(a.width-12, 10), 80)
	chart := asciigraph.Plot(a.history,
		asciigraph.Height(chartRows-1),
		asciigraph.Width(width),
		asciigraph.Caption("population"))
	return graphStyle.Render(chart)
}

func (a *App) viewHelp() string {
	keys := []struct{ key, desc string }{
		{"esc/q", "quit"},
		{"0-9 a-f", "select seed"},
		{"arrows", "move"},
		{"shift+arrows", "move faster"},
		{"space", "place"},
		{"p", "play/pause"},
		{"enter", "tick"},
		{"del", "clear"},
		{"t", "theme"},
		{"g", "graph"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = KeyName.Render(k.key) + " " + KeyHint.Render(k.desc)
	}
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, strings.Join(parts, " | "))
}

// Run starts the interactive program and blocks until the user quits.
func Run(cfg *config.Config) error {
	if !HasTheme(cfg.Theme) {
		return fmt.Errorf("%w: theme %q (available: %v)", config.ErrInvalidConfig, cfg.Theme, ThemeNames())
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "lifeterm")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
