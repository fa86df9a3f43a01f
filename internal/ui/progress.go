package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modu-ai/routegen/internal/generator"
	"github.com/modu-ai/routegen/pkg/models"
)

// Tracker follows a generation run. Record may be called from any
// goroutine; Done must be called once after the last Record.
type Tracker interface {
	Record(o generator.Outcome)
	Done()
}

// Progress creates trackers that draw an animated bar on a terminal and
// plain log lines otherwise.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Start returns a tracker for total planned files.
func (p *Progress) Start(title string, total int) Tracker {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newLogTracker(title, total, p.writer)
	}
	return newBarTracker(p.theme, title, total, p.writer)
}

// tally counts outcomes by status.
type tally struct {
	created, skipped, failed int
}

func (t *tally) add(s models.Status) {
	switch s {
	case models.StatusCreated:
		t.created++
	case models.StatusSkipped:
		t.skipped++
	case models.StatusFailed:
		t.failed++
	}
}

func (t tally) done() int {
	return t.created + t.skipped + t.failed
}

// --- barTracker ---

type outcomeMsg generator.Outcome

type trackerDoneMsg struct{}

type progressModel struct {
	bar    progress.Model
	title  string
	total  int
	counts tally
	done   bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	opts := []progress.Option{progress.WithWidth(40)}
	if theme.NoColor {
		opts = append(opts, progress.WithoutPercentage())
	} else {
		opts = append(opts, progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary))
	}
	return progressModel{bar: progress.New(opts...), title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		m.counts.add(msg.Status)
		return m, nil
	case trackerDoneMsg:
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.counts.done()) / float64(m.total)
	}
	return fmt.Sprintf("%s [%d/%d] %s  created %d  skipped %d  failed %d\n",
		m.bar.ViewAs(pct), m.counts.done(), m.total, m.title,
		m.counts.created, m.counts.skipped, m.counts.failed)
}

// barTracker draws progressModel with a bubbletea program.
type barTracker struct {
	program *tea.Program
	once    sync.Once
}

// @MX:WARN: [AUTO] The program runs on its own goroutine until Done; a tracker that is never finished leaks it.
// @MX:REASON: [AUTO] Done sends the quit message and waits for the program to exit
func newBarTracker(theme *Theme, title string, total int, w io.Writer) *barTracker {
	p := tea.NewProgram(newProgressModel(theme, title, total), tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &barTracker{program: p}
}

func (b *barTracker) Record(o generator.Outcome) {
	b.program.Send(outcomeMsg(o))
}

func (b *barTracker) Done() {
	b.once.Do(func() {
		b.program.Send(trackerDoneMsg{})
		b.program.Wait()
	})
}

// --- logTracker ---

// logTracker writes one line per outcome.
type logTracker struct {
	mu     sync.Mutex
	title  string
	total  int
	counts tally
	writer io.Writer
}

func newLogTracker(title string, total int, w io.Writer) *logTracker {
	_, _ = fmt.Fprintf(w, "%s (%d files)\n", title, total)
	return &logTracker{title: title, total: total, writer: w}
}

func (l *logTracker) Record(o generator.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts.add(o.Status)
	line := fmt.Sprintf("[%d/%d] %-7s %s", l.counts.done(), l.total, o.Status, o.Path)
	if o.Reason != "" {
		line += " (" + o.Reason + ")"
	}
	_, _ = fmt.Fprintln(l.writer, line)
}

func (l *logTracker) Done() {}
