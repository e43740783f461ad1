package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fsproxy/internal/fsproxy"
	"github.com/desertwitch/fsproxy/internal/pathing"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the path title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for the listing panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// cursorStyle defines the style for the selected entry.
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// errorStyle defines the style for failed directory listings.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// DirContentsMsg is a [tea.Msg] carrying the outcome of listing one
// directory.
type DirContentsMsg struct {
	path    string
	entries []string
	err     error
}

// TeaModel is the principal [tea.Model] for the browser user interface.
type TeaModel struct {
	fsys fsproxy.FileSystem

	path    string
	entries []string
	cursor  int
	listErr error

	width  int
	height int

	listViewport viewport.Model

	ready bool
}

// NewTeaModel returns an initial new [TeaModel] browsing fsys from startPath.
//
//nolint:mnd
func NewTeaModel(fsys fsproxy.FileSystem, startPath string) TeaModel {
	return TeaModel{
		fsys:         fsys,
		path:         pathing.Normalize(startPath),
		listViewport: viewport.New(80, 20),
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		listDirectory(m.fsys, m.path),
	)
}

// listDirectory produces a [tea.Cmd] that lists one directory through the
// capability interface and reports the outcome as a [DirContentsMsg]. Entries
// are sorted for display only; the interface itself promises no order.
func listDirectory(fsys fsproxy.FileSystem, path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := fsys.GetDirectoryContents(path)
		if err != nil {
			return DirContentsMsg{path: path, err: err}
		}

		sort.Strings(entries)

		return DirContentsMsg{path: path, entries: entries}
	}
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.refreshListing()

		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			m.refreshListing()

		case "enter", "right", "l":
			if selected := m.selectedPath(); selected != "" && m.fsys.IsDirectory(selected) {
				return m, listDirectory(m.fsys, selected)
			}

		case "backspace", "left", "h":
			if m.path != pathing.Separator {
				return m, listDirectory(m.fsys, pathing.Dir(m.path))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.listViewport.Width = m.width - 2
		m.listViewport.Height = m.height - 5 //nolint:mnd

		m.refreshListing()

		if !m.ready {
			m.ready = true
		}

	case DirContentsMsg:
		m.path = msg.path
		m.entries = msg.entries
		m.listErr = msg.err
		m.cursor = 0

		m.refreshListing()
	}

	var cmd tea.Cmd
	m.listViewport, cmd = m.listViewport.Update(msg)

	return m, cmd
}

// selectedPath returns the absolute path of the entry under the cursor, or an
// empty string when nothing is listed.
func (m TeaModel) selectedPath() string {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return ""
	}

	return pathing.Join(m.path, m.entries[m.cursor])
}

// refreshListing re-renders the directory listing into the viewport.
func (m *TeaModel) refreshListing() {
	if m.listErr != nil {
		m.listViewport.SetContent(errorStyle.Render(m.listErr.Error()))

		return
	}

	lines := make([]string, 0, len(m.entries))

	for i, entry := range m.entries {
		name := entry
		if m.fsys.IsDirectory(pathing.Join(m.path, entry)) {
			name += pathing.Separator
		}

		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}

	m.listViewport.SetContent(strings.Join(lines, "\n"))
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the browser..."
	}

	contentWidth := m.width - 2 //nolint:mnd

	titleSection := titleStyle.Width(contentWidth).Render(m.path)

	listSection := borderStyle.
		Width(contentWidth).
		Render(m.listViewport.View())

	statusSection := helpStyle.
		Width(contentWidth).
		Render(fmt.Sprintf("%s entries", humanize.Comma(int64(len(m.entries)))))

	helpSection := helpStyle.
		Width(contentWidth).
		Render("enter: descend • backspace: ascend • q: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleSection,
		listSection,
		statusSection,
		helpSection,
	)
}
