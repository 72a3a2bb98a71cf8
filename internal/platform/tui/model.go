package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/platform"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

// Model is the Bubble Tea model running one game.
//
// Terminals only report key presses (plus auto-repeat), never releases, so
// the model keeps a key down until no press for it has arrived for keyHold.
type Model struct {
	driver   *platform.Driver
	game     registry.Game
	screen   *core.Screen
	canvas   *core.ScreenCanvas
	keys     KeyMap
	help     help.Model
	tickRate int
	keyHold  time.Duration
	held     map[core.KeyCode]time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for game and resets it.
func NewModel(game registry.Game, opts registry.RunOptions) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	keyHold := opts.Config.Terminal.KeyHold
	if keyHold <= 0 {
		keyHold = config.DefaultPongConfig().Terminal.KeyHold
	}

	field := game.Field()
	screen := core.NewScreen(rt.ScreenW, playfieldRows(rt.ScreenH))

	return Model{
		driver:   platform.NewDriver(game, rt, opts.Logger),
		game:     game,
		screen:   screen,
		canvas:   core.NewScreenCanvas(screen, field.X, field.Y),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: rt.TickRate,
		keyHold:  keyHold,
		held:     make(map[core.KeyCode]time.Time),
		now:      time.Now,
	}
}

// playfieldRows leaves the bottom row for the status line.
func playfieldRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.BlurMsg:
		return m.handleBlur()
	}

	return m, nil
}

// handleKey turns a press into a KeyDown the first time and refreshes the
// hold timer on auto-repeat.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	code := m.keys.Code(msg)
	if code == core.KeyUnknown {
		return m, nil
	}

	if _, down := m.held[code]; !down {
		m.driver.Handle(core.Pressed(code))
	}
	m.held[code] = m.now()

	if m.driver.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rescales the playfield to the new terminal size. Unlike a
// restart, the match keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleBlur drops every held key: once the terminal loses focus no more
// repeats arrive, and keys must not stay down until the hold expires.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	m.driver.ReleaseAll()
	clear(m.held)
	return m, nil
}

// handleTick releases stale keys and advances one frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.releaseStale(t)
	m.driver.Frame()
	return m, tickCmd(m.tickRate)
}

// releaseStale synthesizes KeyUp for keys not repeated within keyHold.
func (m Model) releaseStale(t time.Time) {
	for code, last := range m.held {
		if t.Sub(last) >= m.keyHold {
			m.driver.Handle(core.Released(code))
			delete(m.held, code)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw rasterizes the current frame into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.game.Draw(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	st := m.game.Status()
	status := fmt.Sprintf(" %2d : %-2d  ", st.LeftScore, st.RightScore)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Backend runs games in the terminal.
type Backend struct{}

// Name returns the backend identifier.
func (Backend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "terminal (Bubble Tea)"
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func (Backend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),    // Use alternate screen buffer
		tea.WithReportFocus(), // Needed for BlurMsg
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.RegisterBackend("tui", func() registry.Backend { return Backend{} })
}
