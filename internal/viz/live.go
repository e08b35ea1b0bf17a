package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dotmatrix/internal/config"
	"github.com/san-kum/dotmatrix/internal/matrix"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	shapeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the interactive live view: the animation renders into a CellGrid
// and the user cycles shapes from the keyboard.
type Model struct {
	mat      *matrix.Matrix
	grid     *CellGrid
	interval time.Duration
	shapes   []string
	idx      int
	running  bool
	frames   int
	start    time.Time
}

// NewModel wires a matrix and its cell grid into a bubbletea model. The
// matrix must already render onto grid.
func NewModel(mat *matrix.Matrix, grid *CellGrid, cfg *config.Config, initialShape string) Model {
	shapes := cfg.ShapeNames()
	idx := 0
	for i, name := range shapes {
		if name == initialShape {
			idx = i
			break
		}
	}
	return Model{
		mat:      mat,
		grid:     grid,
		interval: cfg.Interval(),
		shapes:   shapes,
		idx:      idx,
		running:  true,
		start:    time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.mat.Cleanup()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab", "right", "l":
			m.cycleShape(1)
		case "shift+tab", "left", "h":
			m.cycleShape(-1)
		case "r":
			m.mat.InitDisplay()
			if err := m.mat.SetTargetShape(m.shapes[m.idx]); err == nil {
				m.frames = 0
				m.start = time.Now()
			}
		}
	case TickMsg:
		if m.running {
			m.mat.UpdateFrame()
			m.frames++
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m *Model) cycleShape(dir int) {
	next := (m.idx + dir + len(m.shapes)) % len(m.shapes)
	if err := m.mat.SetTargetShape(m.shapes[next]); err != nil {
		return
	}
	m.idx = next
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("DOT MATRIX") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Shape") + shapeStyle.Render(m.mat.Shape()) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")
	elapsed := time.Since(m.start)
	fps := 0.0
	if elapsed > 0 {
		fps = float64(m.frames) / elapsed.Seconds()
	}
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%.1f", fps)) + "\n")
	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.0fs", elapsed.Seconds())) + "\n")
	s.WriteString("\nSHAPES\n")
	for i, name := range m.shapes {
		if i == m.idx {
			s.WriteString(shapeStyle.Render("> "+name) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(name) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("──────────────────\nTab/←→:Shape SP:Pause\nR:Reset Q:Quit"))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.grid.View()), statsStyle.Render(s.String()))
}
