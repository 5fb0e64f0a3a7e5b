package viz

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/alloygrid/internal/sequence"
)

// FrameSource yields frames by position; sequence.Driver implements it.
type FrameSource interface {
	Len() int
	Frame(i int) (sequence.Frame, error)
}

// Stepper shows one frame at a time and advances on Enter.
type Stepper struct {
	src    FrameSource
	styles styles
	frame  sequence.Frame
	index  int
	err    error
	done   bool
}

func NewStepper(src FrameSource, theme Theme) Stepper {
	return Stepper{src: src, styles: newStyles(theme), index: -1}
}

func (m Stepper) Init() tea.Cmd {
	return func() tea.Msg { return advanceMsg{} }
}

type advanceMsg struct{}

func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return m.advance()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "enter", " ", "down", "j":
			return m.advance()
		}
	}
	return m, nil
}

func (m Stepper) advance() (tea.Model, tea.Cmd) {
	next := m.index + 1
	if next >= m.src.Len() {
		m.done = true
		return m, tea.Quit
	}
	f, err := m.src.Frame(next)
	if err != nil {
		m.err, m.done = err, true
		return m, tea.Quit
	}
	m.index, m.frame = next, f
	return m, nil
}

func (m Stepper) View() string {
	if m.done || m.index < 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.title.Render(m.frame.Title))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.grid.Render(strings.TrimSuffix(m.frame.Grid, "\n")))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.progress.Render(fmt.Sprintf("%d/%d", m.index+1, m.src.Len())))
	sb.WriteString("  ")
	sb.WriteString(m.styles.hint.Render("enter: next  q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Err is the render failure that ended the session, if any.
func (m Stepper) Err() error {
	return m.err
}

// Index is the position of the frame on screen, -1 before the first.
func (m Stepper) Index() int {
	return m.index
}

// Step runs src on the alternate screen until the last frame is dismissed or
// the user quits. Interrupts end the session without error.
func Step(src FrameSource, theme Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewStepper(src, theme), opts...)
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return err
	}
	if s, ok := final.(Stepper); ok {
		return s.Err()
	}
	return nil
}
