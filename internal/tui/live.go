// Package tui renders a live terminal view of a running integration.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/numlab/internal/ode"
	"github.com/san-kum/numlab/internal/plotting"
)

const (
	canvasWidth     = 60
	canvasHeight    = 20
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model holds the running system, its state, and the view buffers.
type Model struct {
	sys       ode.System
	stepper   ode.Stepper
	state     ode.State
	initState ode.State
	t, dt     float64
	running   bool
	modelName string
	labels    []string

	canvas        *plotting.Canvas
	history       []ode.State
	energyHistory []float64

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	showHelp      bool
}

func NewModel(sys ode.System, stepper ode.Stepper, initState ode.State, dt float64, modelName string, labels []string) Model {
	params := make(map[string]float64)
	initialParams := make(map[string]float64)
	if t, ok := sys.(ode.Tunable); ok {
		for k, v := range t.GetParams() {
			params[k] = v
			if v == 0 {
				v = 1e-6
			}
			initialParams[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		sys:           sys,
		stepper:       stepper,
		state:         initState.Clone(),
		initState:     initState.Clone(),
		dt:            dt,
		running:       true,
		modelName:     modelName,
		labels:        labels,
		canvas:        plotting.NewCanvas(canvasWidth, canvasHeight),
		history:       make([]ode.State, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	if t, ok := m.sys.(ode.Tunable); ok {
		t.SetParam(key, newVal)
	}
}

// step advances the integration and records history for the view.
func (m *Model) step() {
	m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
	m.t += m.dt

	if !m.state.IsValid() {
		m.running = false
		return
	}

	if h, ok := m.sys.(ode.Hamiltonian); ok {
		m.energyHistory = append(m.energyHistory, h.Energy(m.state))
		if len(m.energyHistory) > historyCapacity {
			m.energyHistory = m.energyHistory[1:]
		}
	}

	m.history = append(m.history, m.state.Clone())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.t = 0
	m.state = m.initState.Clone()
	m.history = m.history[:0]
	m.energyHistory = m.energyHistory[:0]
	for k, v := range m.initialParams {
		m.params[k] = v
		if t, ok := m.sys.(ode.Tunable); ok {
			t.SetParam(k, v)
		}
	}
}

// drawPhase renders the trail of the first two state variables as a
// phase portrait on the braille canvas.
func (m *Model) drawPhase() {
	m.canvas.Clear()
	if len(m.history) < 2 {
		return
	}
	xs := make([]float64, len(m.history))
	ys := make([]float64, len(m.history))
	for i, s := range m.history {
		xs[i] = s[0]
		if len(s) > 1 {
			ys[i] = s[1]
		}
	}
	m.canvas.PlotXY(xs, ys)
}

func (m Model) View() string {
	m.drawPhase()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.modelName)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	for i, v := range m.state {
		label := fmt.Sprintf("x%d", i)
		if i < len(m.labels) {
			label = m.labels[i]
		}
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.4f", v)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) > 0 {
		for i, k := range m.paramKeys {
			val, initial := m.params[k], m.initialParams[k]
			barWidth, ratio := 10, val/(2.0*initial)
			if ratio > 1 {
				ratio = 1
			} else if ratio < 0 {
				ratio = 0
			}
			filled := int(ratio * float64(barWidth))
			bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
			line := fmt.Sprintf("%-10s %s %.2f", k, bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset                    ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
