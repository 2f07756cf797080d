// Package ui implements the interactive viewer: a YAML editor pane and
// a collapsible tree pane kept in sync through a debounced parse
// scheduler.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jacoelho/vy/internal/expand"
	"github.com/jacoelho/vy/internal/pathjump"
	"github.com/jacoelho/vy/internal/schedule"
	"github.com/jacoelho/vy/internal/tree"
	"github.com/jacoelho/vy/internal/watch"
	"github.com/jacoelho/vy/internal/yamlparse"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusTree
	focusJump
)

type outcomeMsg schedule.Outcome

type reloadMsg watch.Reload

// Model is the Bubble Tea model for the viewer.
type Model struct {
	editor textarea.Model
	pane   viewport.Model
	jump   textinput.Model

	scheduler *schedule.Scheduler
	outcomes  chan schedule.Outcome
	reloads   <-chan watch.Reload

	fileName string
	outcome  schedule.Outcome
	state    *expand.State

	visible []visibleNode
	cursor  int

	focus  focusArea
	styles Styles
	status string

	width  int
	height int
	ready  bool
}

// Options configures a new viewer model.
type Options struct {
	FileName string
	Text     string
	Quiet    time.Duration // debounce quiet period, 0 for default
	NoColor  bool
	Reloads  <-chan watch.Reload
}

// New builds the viewer model and schedules the initial document.
func New(opts Options) *Model {
	ed := textarea.New()
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.Placeholder = "enter yaml"
	ed.SetValue(opts.Text)
	ed.Focus()

	ji := textinput.New()
	ji.Placeholder = "$.path.to.node"

	m := &Model{
		editor:   ed,
		jump:     ji,
		outcomes: make(chan schedule.Outcome, 8),
		reloads:  opts.Reloads,
		fileName: opts.FileName,
		state:    expand.NewState(),
		styles:   DefaultStyles(opts.NoColor),
	}

	m.scheduler = schedule.New(opts.Quiet, yamlparse.Parse, func(o schedule.Outcome) {
		m.outcomes <- o
	})
	if opts.FileName != "" {
		m.scheduler.SetName(opts.FileName)
	}
	m.scheduler.Schedule(opts.Text)

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, waitOutcome(m.outcomes)}
	if m.reloads != nil {
		cmds = append(cmds, waitReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

func waitOutcome(ch chan schedule.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-ch)
	}
}

func waitReload(ch <-chan watch.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case outcomeMsg:
		m.applyOutcome(schedule.Outcome(msg))
		return m, waitOutcome(m.outcomes)

	case reloadMsg:
		m.fileName = msg.Name
		m.editor.SetValue(msg.Text)
		m.scheduler.SetName(msg.Name)
		m.scheduler.Schedule(msg.Text)
		m.status = "reloaded " + msg.Name
		return m, waitReload(m.reloads)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.scheduler.Stop()
		return m, tea.Quit
	}

	switch m.focus {
	case focusJump:
		return m.updateJump(msg)
	case focusEditor:
		return m.updateEditor(msg)
	default:
		return m.updateTree(msg)
	}
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyTab {
		m.focus = focusTree
		m.editor.Blur()
		return m, nil
	}

	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if after := m.editor.Value(); after != before {
		m.scheduler.Schedule(after)
	}

	return m, cmd
}

func (m *Model) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.scheduler.Stop()
		return m, tea.Quit

	case "tab":
		m.focus = focusEditor
		return m, m.editor.Focus()

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "g":
		m.cursor = 0
		m.syncPane()

	case "G":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
		m.syncPane()

	case "enter", " ":
		if n := m.cursorNode(); n != nil {
			m.state.Toggle(n)
			m.refreshVisible()
		}

	case "x":
		if n := m.cursorNode(); n != nil && n.Kind.Container() {
			m.state.SetSubtree(n, !m.state.IsOpen(n))
			m.refreshVisible()
		}

	case "E":
		if m.outcome.Tree != nil {
			m.state.ExpandAll(m.outcome.Tree)
			m.refreshVisible()
		}

	case "C":
		if m.outcome.Tree != nil {
			m.state.CollapseAll(m.outcome.Tree)
			m.refreshVisible()
		}

	case "p":
		m.focus = focusJump
		m.jump.SetValue("")
		return m, m.jump.Focus()
	}

	return m, nil
}

func (m *Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.focus = focusTree
		m.jump.Blur()
		return m, nil

	case tea.KeyEnter:
		query := m.jump.Value()
		m.focus = focusTree
		m.jump.Blur()
		m.jumpTo(query)
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// jumpTo resolves a JSONPath query against the current document,
// expands every ancestor of the match and moves the cursor onto it.
func (m *Model) jumpTo(query string) {
	if m.outcome.Tree == nil {
		m.status = "no document to search"
		return
	}

	value, err := yamlparse.Parse(m.editor.Value())
	if err != nil {
		m.status = "document does not parse"
		return
	}

	segments, err := pathjump.Locate(value, query)
	if err != nil {
		m.status = err.Error()
		return
	}

	node := m.outcome.Tree
	for _, seg := range segments {
		if !m.state.IsOpen(node) {
			m.state.Toggle(node)
		}
		node = node.Descend([]string{seg})
		if node == nil {
			m.status = "path not present in tree"
			return
		}
	}

	m.refreshVisible()
	for i, v := range m.visible {
		if v.node == node {
			m.cursor = i
			break
		}
	}
	m.syncPane()
	m.status = "jumped to " + query
}

func (m *Model) applyOutcome(o schedule.Outcome) {
	m.outcome = o
	m.status = ""
	m.state.Reset()
	m.cursor = 0
	m.refreshVisible()
}

func (m *Model) cursorNode() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor].node
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.cursor = next
	m.syncPane()
}

// refreshVisible recomputes the flattened rows after any change to the
// tree or the expand state, clamping the cursor to the new row count.
func (m *Model) refreshVisible() {
	if m.outcome.Phase == schedule.PhaseParsed {
		m.visible = visibleNodes(m.outcome.Tree, m.state)
	} else {
		m.visible = nil
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.syncPane()
}

// syncPane rebuilds the viewport content and keeps the cursor row in view.
func (m *Model) syncPane() {
	if !m.ready {
		return
	}

	width := m.pane.Width

	switch m.outcome.Phase {
	case schedule.PhaseEmpty:
		m.pane.SetContent(m.styles.Muted.Render("no document"))
		return
	case schedule.PhaseFailed:
		m.pane.SetContent(m.styles.ErrorText.Render(m.outcome.Err))
		return
	}

	lines := make([]string, len(m.visible))
	for i, v := range m.visible {
		lines[i] = m.renderRow(v, i == m.cursor && m.focus != focusEditor, width)
	}
	m.pane.SetContent(strings.Join(lines, "\n"))

	if m.cursor < m.pane.YOffset {
		m.pane.SetYOffset(m.cursor)
	} else if m.cursor >= m.pane.YOffset+m.pane.Height {
		m.pane.SetYOffset(m.cursor - m.pane.Height + 1)
	}
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h

	// One row for the title, one for the status bar, two for borders.
	inner := h - 4
	if inner < 1 {
		inner = 1
	}

	half := w/2 - 2
	if half < 10 {
		half = 10
	}

	m.editor.SetWidth(half)
	m.editor.SetHeight(inner)

	if !m.ready {
		m.pane = viewport.New(half, inner)
		m.ready = true
	} else {
		m.pane.Width = half
		m.pane.Height = inner
	}

	m.syncPane()
}

func (m *Model) View() string {
	if !m.ready {
		return "loading"
	}

	editorStyle := m.styles.BlurPane
	treeStyle := m.styles.BlurPane
	if m.focus == focusEditor {
		editorStyle = m.styles.FocusPane
	} else {
		treeStyle = m.styles.FocusPane
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		editorStyle.Render(m.editor.View()),
		treeStyle.Render(m.pane.View()),
	)

	return m.titleLine() + "\n" + panes + "\n" + m.statusLine()
}

func (m *Model) titleLine() string {
	name := m.fileName
	if name == "" {
		name = "(unsaved)"
	}
	return m.styles.Title.Render("vy " + name)
}

func (m *Model) statusLine() string {
	if m.focus == focusJump {
		return "path: " + m.jump.View()
	}

	if m.outcome.Phase == schedule.PhaseFailed {
		return m.styles.StatusError.Render("parse error")
	}

	if m.status != "" {
		return m.styles.StatusBar.Render(m.status)
	}

	hints := "tab: switch  enter: toggle  p: path  q: quit"
	if m.outcome.Revision == "" {
		return m.styles.StatusBar.Render(hints)
	}

	rev := m.outcome.Revision
	if len(rev) > 8 {
		rev = rev[:8]
	}
	info := fmt.Sprintf("rev %s at %s", rev, m.outcome.At.Format("15:04:05"))

	return m.styles.StatusBar.Render(info + "  " + hints)
}
