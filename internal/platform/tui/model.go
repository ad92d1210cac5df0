package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/clock"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/logging"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
	"github.com/vovakirdan/flappy-arcade/internal/trace"
)

// Options configures a game Model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig

	// SpritePath overrides the embedded sprite sheet.
	SpritePath string

	// Bank plays sound cues. Nil mutes the game and skips sound loading.
	Bank *audio.Bank

	// Store receives the session trace on quit when Record is set.
	Store  *storage.Store
	Record bool

	Logger *log.Logger
}

// assetMsg carries one loader result into Update.
type assetMsg struct {
	res assets.Result
}

// assetsDoneMsg is sent once the loader channel closes.
type assetsDoneMsg struct{}

// Model is the Bubble Tea model for a flappy session.
type Model struct {
	opts     Options
	sched    *Scheduler
	recorder *trace.Recorder
	session  *flappy.Session

	tracker *assets.Tracker
	sprites *assets.SpriteSheet
	results <-chan assets.Result
	cancel  context.CancelFunc

	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	logger  *log.Logger

	status   string
	quitting bool
}

// NewModel creates the model and starts loading assets in the background.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	sched := NewScheduler(opts.Runtime.TickRate)
	var host clock.Scheduler = sched
	var recorder *trace.Recorder
	if opts.Record {
		recorder = trace.NewRecorder(sched, clock.Real{})
		host = recorder
	}

	jobs := assets.SpriteJobs(opts.SpritePath,
		flappy.SpriteBird, flappy.SpritePipeUpper, flappy.SpritePipeLower, flappy.SpriteGround)
	cues := core.CuePlayer(core.NopCuePlayer{})
	if opts.Bank != nil {
		cues = opts.Bank
		if !opts.Bank.Muted() && opts.Game.Audio.Enabled {
			jobs = append(jobs, audio.Jobs(opts.Game.Audio.Volume)...)
		}
	}
	tracker := assets.NewTracker(assets.Names(jobs)...)
	tracker.OnReady(func() {
		logger.Info("assets ready", "failed", tracker.Failed())
	})

	session := flappy.NewSession(opts.Game, host,
		flappy.WithSeed(opts.Runtime.Seed),
		flappy.WithReadiness(tracker),
		flappy.WithCues(cues),
		flappy.WithObserver(func(ev flappy.Event) {
			logger.Debug("session event", "event", ev)
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	results := assets.NewLoader(logger).Load(ctx, jobs)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:     opts,
		sched:    sched,
		recorder: recorder,
		session:  session,
		tracker:  tracker,
		sprites:  assets.NewSpriteSheet(),
		results:  results,
		cancel:   cancel,
		screen:   core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		spinner:  sp,
		logger:   logger,
	}
}

// Init starts the spinner and waits for the first asset.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForAsset(m.results))
}

// waitForAsset returns a command that delivers the next loader result.
func waitForAsset(results <-chan assets.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return assetsDoneMsg{}
		}
		return assetMsg{res: res}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sched.Update(msg) {
		return m, m.sched.Drain()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action, source := MapMouse(msg); action == core.ActionFlap {
			m.flap(source)
		}
		return m, m.sched.Drain()

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case assetMsg:
		return m.handleAsset(msg.res)

	case assetsDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if m.tracker.Ready() {
			return m, nil // stop spinning
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, source := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quit()
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case core.ActionFlap:
		m.flap(source)
	}

	return m, m.sched.Drain()
}

// flap forwards an input to the session. Inputs before assets are ready
// are dropped here so they never enter a trace.
func (m *Model) flap(source core.InputSource) {
	if !m.session.Loaded() {
		return
	}
	if m.recorder != nil {
		m.recorder.Input(trace.KindFlap)
	}
	m.logger.Debug("flap", "source", source, "state", m.session.State())
	m.session.Flap()
}

func (m Model) handleAsset(res assets.Result) (tea.Model, tea.Cmd) {
	if !m.sprites.Apply(res) && m.opts.Bank != nil {
		m.opts.Bank.Apply(res)
	}
	m.tracker.Resolve(res.Name, res.Err)
	return m, waitForAsset(m.results)
}

// quit stops a running session and persists the trace.
func (m *Model) quit() {
	m.quitting = true
	m.cancel()

	if m.session.State() == flappy.StateRunning {
		if m.recorder != nil {
			m.recorder.Input(trace.KindStop)
		}
		m.session.Stop()
	}
	m.saveTrace()
}

func (m *Model) saveTrace() {
	if m.recorder == nil || m.opts.Store == nil || m.recorder.Len() == 0 {
		return
	}
	data, err := config.Marshal(m.opts.Game)
	if err != nil {
		m.logger.Warn("could not encode config for trace", "error", err)
		return
	}
	tr := m.recorder.Trace(m.opts.Runtime.Seed, m.opts.Runtime.TickRate, data)
	id, err := m.opts.Store.SaveTrace(tr)
	if err != nil {
		m.logger.Warn("could not save trace", "error", err)
		return
	}
	m.logger.Info("trace saved", "id", id, "events", len(tr.Events))
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() (string, error) {
	flappy.Render(m.screen, m.session.Snapshot(), m.sprites)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	flappy.Render(m.screen, snap, m.sprites)
	m.drawOverlay(snap)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
