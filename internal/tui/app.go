package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/slides/internal/input"
	"github.com/jask/slides/internal/intro"
	"github.com/jask/slides/internal/presentation"
	"github.com/jask/slides/internal/stage"
	"github.com/jask/slides/internal/widgets"
)

// ScrollHint is shown next to the page indicator.
const ScrollHint = "Scroll or Use Keys"

const footerHeight = 1

// Options carries the shell's settings.
type Options struct {
	FrameInterval time.Duration
	// WheelCooldown is the minimum time between wheel navigations. Zero keeps
	// input.DefaultWheelCooldown; a negative value turns the limit off.
	WheelCooldown time.Duration
	ExitDuration  time.Duration
	Sign          string
	Logger        *zap.Logger
	// Clock stamps key and mouse events. Defaults to time.Now.
	Clock func() time.Time
}

type tickMsg time.Time

// App is the bubbletea model. It owns the only clock reads; everything below
// it is handed the time.
type App struct {
	state      *presentation.State
	bus        *input.Bus
	dispatcher *input.Dispatcher
	gate       *intro.Gate
	stage      *stage.Stage
	log        *zap.Logger
	frame      time.Duration
	clock      func() time.Time

	at       time.Time
	width    int
	height   int
	help     help.Model
	progress progress.Model
}

func New(st *presentation.State, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 30
	}
	if opts.WheelCooldown == 0 {
		opts.WheelCooldown = input.DefaultWheelCooldown
	}
	a := &App{
		state:    st,
		bus:      input.NewBus(),
		log:      opts.Logger,
		frame:    opts.FrameInterval,
		clock:    opts.Clock,
		help:     help.New(),
		progress: progress.New(progress.WithGradient("#4facfe", "#00f2fe"), progress.WithoutPercentage()),
	}
	a.gate = intro.New(a.introOpened, intro.WithSign(opts.Sign))
	a.stage = stage.New(stage.WithLogger(opts.Logger), stage.WithExitDuration(opts.ExitDuration))
	a.dispatcher = input.New(a.bus, st,
		input.WithWheelCooldown(opts.WheelCooldown),
		input.WithOnNavigate(a.navigated),
		input.WithLogger(opts.Logger),
	)
	return a
}

func (a *App) Init() tea.Cmd {
	a.advanceTo(a.clock())
	a.log.Info("presentation started", zap.Int("slides", a.state.Len()), zap.Bool("intro", a.state.IntroActive()))
	if a.state.IntroActive() {
		a.gate.Mount(a.at)
	} else {
		a.showCurrent()
	}
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// advanceTo moves the shell clock forward; stale timestamps are ignored.
func (a *App) advanceTo(t time.Time) {
	if t.After(a.at) {
		a.at = t
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case tickMsg:
		a.advanceTo(time.Time(m))
		a.gate.Advance(a.at)
		a.stage.Advance(a.at)
		return a, a.tick()
	case tea.KeyMsg:
		if key.Matches(m, a.dispatcher.KeyMap().Quit) {
			a.dispatcher.Close()
			return a, tea.Quit
		}
		a.advanceTo(a.clock())
		a.bus.PublishKey(input.KeyEvent{Key: m.String(), At: a.at})
	case tea.MouseMsg:
		a.advanceTo(a.clock())
		a.mouse(m)
	}
	return a, nil
}

func (a *App) mouse(m tea.MouseMsg) {
	switch {
	case m.Button == tea.MouseButtonWheelDown:
		a.bus.PublishWheel(input.WheelEvent{Delta: 1, At: a.at})
	case m.Button == tea.MouseButtonWheelUp:
		a.bus.PublishWheel(input.WheelEvent{Delta: -1, At: a.at})
	case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionPress:
		if a.state.IntroActive() {
			if a.gate.HitDoors(m.X, m.Y) && a.gate.Click(a.at) {
				a.log.Debug("intro doors opened")
			}
			return
		}
		a.stage.Click(m.X, m.Y)
	}
}

// introOpened runs once the gate's whole opening sequence is over.
func (a *App) introOpened() {
	if !a.state.CompleteIntro() {
		return
	}
	a.dispatcher.Sync()
	a.log.Debug("intro complete")
	a.showCurrent()
}

func (a *App) navigated(input.Direction) {
	a.showCurrent()
}

func (a *App) showCurrent() {
	if sl, ok := a.state.Current(); ok {
		a.stage.Show(sl, a.at)
	}
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	if a.state.IntroActive() {
		return a.gate.View(a.width, a.height, a.at)
	}
	body := a.stage.View(a.width, max(0, a.height-footerHeight), a.at)
	return body + "\n" + a.footer()
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	pageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
)

// footer is the page indicator, the deck progress and the key help on one
// line.
func (a *App) footer() string {
	pos, total := a.state.Position()
	left := pageStyle.Render(fmt.Sprintf("%d / %d", pos, total)) + footerStyle.Render("  "+ScrollHint+"  ")
	keys := a.help.View(a.dispatcher.KeyMap())
	room := a.width - lipgloss.Width(left) - lipgloss.Width(keys) - 2
	var bar string
	if room >= 10 && total > 0 {
		a.progress.Width = room
		bar = a.progress.ViewAs(float64(pos) / float64(total))
	}
	line := strings.Join([]string{left, bar, keys}, " ")
	return widgets.PadRight(line, a.width)
}
