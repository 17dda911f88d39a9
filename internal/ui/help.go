package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"galleria/internal/eventbus"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// renderHelpContent renders the full help text for the pager
func (m *Model) renderHelpContent() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Galleria Help"))
	b.WriteString("\n\n")

	section := func(name string, rows [][2]string) {
		b.WriteString(m.styles.Prompt.Render(name))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", row[0], row[1]))
		}
		b.WriteString("\n")
	}

	section("Navigation", [][2]string{
		{"↑/↓, j/k", "Move through the gallery"},
		{"t", "Toggle the tag panel"},
		{"s", "Open the tag browser (n/c sort, / filter, r rescan)"},
	})
	section("Selection", [][2]string{
		{"v", "Enter/leave selection mode"},
		{"Space", "Select or deselect the current item"},
		{"a", "Toggle select-all (selection mode)"},
		{"Esc", "Back (leaves selection mode first)"},
	})
	section("Tag clipboard", [][2]string{
		{"y", "Copy the current item's tags"},
		{"Y", "Copy the union of tags from the selection"},
		{"m", "Merge typed tags into the clipboard"},
		{"x", "Clear the tag clipboard"},
		{"e", "Export copied tags to the system clipboard"},
	})
	section("Other", [][2]string{
		{"?", "This help"},
		{"q", "Quit"},
	})

	return b.String()
}

// showHelpPager hands the terminal to the ov pager for the help screen
func (m *Model) showHelpPager() tea.Cmd {
	content := m.renderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.runHelpPager(content)}
	}
}

func (m *Model) runHelpPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

func (m *Model) handlePagerResult(msg helpPagerMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
		m.setStatus("Help pager failed", true)
	}
	return m, nil
}
