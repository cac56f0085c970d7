package viz

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pointmorph/internal/export"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/metrics"
	"github.com/san-kum/pointmorph/internal/morph"
)

const (
	panelWidth  = 30
	historyLen  = 60
	growFactor  = 1.25
	maxCount    = 200_000
	maxRecorded = 600
)

// recordBudget bounds the bytes held by an in-progress recording. Each
// paletted frame costs one byte per pixel.
const recordBudget = 64 << 20

// TickMsg drives one animation frame.
type TickMsg time.Time

// Options configures a Model.
type Options struct {
	FPS   int
	Theme Theme
	// GIFPath is where a recording started with 'g' is written.
	GIFPath string
	GIF     export.GIFOptions
}

// Model is the bubbletea model of the live view.
type Model struct {
	engine *morph.Engine
	loop   *morph.Loop
	fps    int

	canvas *Canvas
	pixels []morph.Pixel
	drawn  int

	theme  Theme
	styles Styles

	running  bool
	showHelp bool
	history  []float64
	lastTick time.Time
	rate     *metrics.FrameRate
	motion   *metrics.Motion

	recorder *export.Recorder
	gifPath  string
	gifOpts  export.GIFOptions
	notice   string
	err      error

	width, height int
}

func NewModel(eng *morph.Engine, opts Options) Model {
	if opts.FPS < 1 {
		opts.FPS = 1
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "pointmorph.gif"
	}
	if opts.GIF.Width < 1 || opts.GIF.Height < 1 {
		opts.GIF.Width, opts.GIF.Height = 400, 300
	}

	m := Model{
		engine:  eng,
		loop:    morph.NewLoop(eng, opts.FPS),
		fps:     opts.FPS,
		canvas:  NewCanvas(50, 20),
		theme:   opts.Theme,
		styles:  NewStyles(opts.Theme),
		running: true,
		history: make([]float64, 0, historyLen),
		rate:    metrics.NewFrameRate(0.1),
		motion:  metrics.NewMotion(),
		gifPath: opts.GIFPath,
		gifOpts: opts.GIF,
		width:   80,
		height:  24,
	}
	m.redraw()
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.loop.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if m.loop.Stopped() {
			return m, nil
		}
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		if m.running {
			m.step(dt)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.loop.Stop()
		if m.recorder != nil {
			m.finishRecording()
		}
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "n", "right":
		if !m.running {
			m.step(0)
		}
	case "+", "=":
		m.resizeCount(growCount(m.engine.Count()))
	case "-", "_":
		m.resizeCount(shrinkCount(m.engine.Count()))
	case "t":
		m.theme = m.theme.Next()
		m.styles = NewStyles(m.theme)
	case "g":
		if m.recorder == nil {
			m.recorder = export.NewRecorder(m.engine.Scale(), m.gifOpts)
			m.notice = "recording"
		} else {
			m.finishRecording()
		}
	case "?", "h":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// step advances one frame and redraws. dt is the wall time since the
// previous tick, or 0 when unknown.
func (m *Model) step(dt time.Duration) {
	if !m.loop.Frame() {
		return
	}
	metrics.Set{m.rate, m.motion}.Observe(m.engine.Positions(), dt)
	if len(m.history) == historyLen {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyLen-1]
	}
	m.history = append(m.history, m.engine.Status().Fraction)

	if m.recorder != nil {
		m.recorder.Add(m.engine.Points(float64(m.gifOpts.Width), float64(m.gifOpts.Height)))
		if m.recorder.Len() >= recordLimit(m.gifOpts) {
			m.finishRecording()
		}
	}
	m.redraw()
}

func (m *Model) resizeCount(n int) {
	if n == m.engine.Count() {
		return
	}
	if err := m.engine.SetCount(n); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.redraw()
}

func growCount(n int) int {
	next := int(math.Ceil(float64(n) * growFactor))
	if next <= n {
		next = n + 1
	}
	return min(next, maxCount)
}

func shrinkCount(n int) int {
	next := int(float64(n) / growFactor)
	if next >= n {
		next = n - 1
	}
	return max(next, layout.MinCountAll())
}

// recordLimit is the number of frames a recording of opts' size may hold.
func recordLimit(opts export.GIFOptions) int {
	px := max(opts.Width*opts.Height, 1)
	return min(max(recordBudget/px, 1), maxRecorded)
}

func (m *Model) finishRecording() {
	rec := m.recorder
	m.recorder = nil
	if rec.Len() == 0 {
		m.notice = "recording discarded"
		return
	}

	f, err := os.Create(m.gifPath)
	if err != nil {
		m.err = fmt.Errorf("save gif: %w", err)
		return
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		m.err = fmt.Errorf("save gif: %w", err)
		return
	}
	m.notice = fmt.Sprintf("saved %d frames to %s", rec.Len(), m.gifPath)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.canvas.Resize(w-panelWidth-4, h-1)
	m.redraw()
}

// redraw projects the points onto the canvas. The last dot row and column
// are the far edges of the viewport so points at ±1 stay visible.
func (m *Model) redraw() {
	sw, sh := m.canvas.SubSize()
	m.pixels = m.engine.AppendPoints(m.pixels, float64(sw-1), float64(sh-1))
	m.canvas.Clear()
	m.drawn = m.canvas.Plot(m.pixels)
}

func (m Model) View() string {
	panel := m.panel()
	if m.showHelp {
		panel = m.help()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(), " ", panel)
}

func (m Model) panel() string {
	st := m.styles
	s := m.engine.Status()
	inner := panelWidth - 4

	var b strings.Builder
	b.WriteString(GradientText("POINTMORPH", m.theme.Primary, m.theme.Secondary) + "\n\n")

	switch {
	case m.loop.Stopped():
		b.WriteString(st.Label.Render("■ stopped"))
	case m.running:
		b.WriteString(st.Running.Render("▶ running"))
	default:
		b.WriteString(st.Paused.Render("❚❚ paused"))
	}
	if m.recorder != nil {
		b.WriteString("  " + st.Recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(st.Label.Render(fmt.Sprintf("%-8s", label)) + st.Value.Render(value) + "\n")
	}
	row("points", fmt.Sprintf("%d", s.Count))
	row("from", s.Current.String())
	row("to", s.Next.String())
	row("step", fmt.Sprintf("%d/%d", s.Step, s.NumSteps))
	row("fps", fmt.Sprintf("%.0f/%d", m.rate.Value(), m.fps))
	row("motion", fmt.Sprintf("%.4f", m.motion.Value()))
	row("theme", m.theme.Name)
	b.WriteString("\n")
	b.WriteString(ProgressBar(s.Fraction, inner-6, st) + st.Value.Render(fmt.Sprintf(" %.2f", s.Fraction)) + "\n\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(inner-7),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(1),
		)
		b.WriteString(st.Label.Render(graph) + "\n\n")
	}

	if m.err != nil {
		b.WriteString(st.Error.Render(m.err.Error()) + "\n")
	} else if m.notice != "" {
		b.WriteString(st.Hint.Render(m.notice) + "\n")
	}
	b.WriteString(Separator(inner, st) + "\n")
	b.WriteString(st.Hint.Render("? help  q quit"))

	return st.Panel.Width(panelWidth - 2).Render(b.String())
}

func (m Model) help() string {
	st := m.styles
	keys := [][2]string{
		{"space", "pause / resume"},
		{"n", "step while paused"},
		{"+ / -", "grow / shrink points"},
		{"t", "next theme"},
		{"g", "start / save gif"},
		{"?", "toggle help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(st.Title.Render("keys") + "\n\n")
	for _, k := range keys {
		b.WriteString(st.Value.Render(fmt.Sprintf("%-7s", k[0])) + st.Label.Render(k[1]) + "\n")
	}
	return st.Panel.Width(panelWidth - 2).Render(b.String())
}

// Run starts the live view in the alternate screen and blocks until quit.
func Run(eng *morph.Engine, opts Options) error {
	p := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
