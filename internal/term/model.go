package term

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"caengine/internal/core"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	stoppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

// Model is a bubbletea host for one engine. It implements core.Scheduler:
// the clock asks for ticks and the model turns those requests into tea.Tick
// commands paced at the engine period.
type Model struct {
	eng     *core.Engine
	surface *Surface
	presets []string
	seed    int64
	log     *zap.Logger

	wantTick bool
	inFlight bool
	err      error
}

// NewModel wires m as eng's scheduler. presets lists the keys Tab cycles
// through.
func NewModel(eng *core.Engine, surface *Surface, presets []string, seed int64, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{eng: eng, surface: surface, presets: presets, seed: seed, log: log}
	eng.Clock().SetScheduler(m)
	return m
}

// RequestTick schedules a frame after the current message is handled.
func (m *Model) RequestTick() { m.wantTick = true }

// CancelTick drops a pending request. A tick already in flight is ignored by
// the stopped engine.
func (m *Model) CancelTick() { m.wantTick = false }

// Err returns the last engine error shown in the status line.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	m.eng.Render()
	return m.schedule()
}

func (m *Model) schedule() tea.Cmd {
	if !m.wantTick || m.inFlight {
		return nil
	}
	m.wantTick = false
	m.inFlight = true
	return tea.Tick(m.eng.Clock().Period(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.inFlight = false
		m.record(m.eng.Tick(time.Time(msg)))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.eng.Stop()
			return m, tea.Quit
		case " ", "space":
			if m.eng.Running() {
				m.eng.Stop()
			} else {
				m.err = nil
				m.eng.Start()
			}
		case "n":
			if !m.eng.Running() {
				m.record(m.eng.Step())
			}
		case "r":
			m.record(m.eng.Reset())
			m.eng.Render()
		case "s":
			m.seed = time.Now().UnixNano()
			m.record(m.eng.Reseed(m.seed))
			m.eng.Render()
		case "tab":
			m.record(m.nextPreset())
		case "]":
			if p := m.eng.Clock().Period() / 2; p >= time.Millisecond {
				m.eng.SetPeriod(p)
			}
		case "[":
			m.eng.SetPeriod(m.eng.Clock().Period() * 2)
		}
	}
	return m, m.schedule()
}

func (m *Model) nextPreset() error {
	if len(m.presets) == 0 {
		return nil
	}
	next := 0
	if r := m.eng.Rule(); r != nil {
		if key, ok := core.KeyOf(r.Name()); ok {
			next = (slices.Index(m.presets, key) + 1) % len(m.presets)
		}
	}
	rule, err := core.Build(m.presets[next], nil)
	if err != nil {
		return err
	}
	if err := m.eng.SetRule(rule); err != nil {
		return err
	}
	m.eng.Render()
	return nil
}

func (m *Model) record(err error) {
	if err == nil {
		return
	}
	m.err = err
	m.log.Warn("engine error", zap.Error(err))
}

func (m *Model) View() string {
	var b strings.Builder
	name := "no rule"
	if r := m.eng.Rule(); r != nil {
		name = r.Name()
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteByte(' ')
	state := stoppedStyle.Render("stopped")
	if m.eng.Running() {
		state = runningStyle.Render("running")
	}
	fmt.Fprintf(&b, "%s  gen %d  period %s\n", state, m.eng.Generation(), m.eng.Clock().Period())
	b.WriteString(m.surface.View())
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("space start/stop • n step • r reset • s reseed • tab preset • [ ] speed • q quit"))
	return b.String()
}
