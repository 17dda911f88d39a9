package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"galleria/internal/domain"
	"galleria/internal/format"
)

var typeGlyphs = map[domain.ItemType]string{
	domain.ItemTypeImage:    "🖼",
	domain.ItemTypeVideo:    "🎬",
	domain.ItemTypeFolder:   "📁",
	domain.ItemTypePlaylist: "🎵",
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	title := "galleria"
	if m.selectionMarker {
		title += "  " + m.styles.SelectionMode.Render(fmt.Sprintf("· SELECT (%d)", m.sel.Count()))
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if m.scanning {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
	}

	if m.tagView {
		b.WriteString(m.renderTagBrowser())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("n name · c count · / filter · r rescan · esc close"))
		return b.String()
	}

	b.WriteString(m.renderItems())
	b.WriteString("\n")

	if m.showTagPanel {
		b.WriteString(m.renderTagPanel())
		b.WriteString("\n")
	}

	if m.merging {
		b.WriteString(m.styles.Prompt.Render("Merge tags: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *Model) renderItems() string {
	if len(m.items) == 0 {
		return m.styles.Dim.Render("No media found")
	}

	var b strings.Builder
	for i, item := range m.items {
		line := m.renderItem(i, item)
		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderItem(i int, item *domain.MediaItem) string {
	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.Highlight.Render("> ")
	}

	mark := ""
	if m.selectionMarker {
		if m.sel.IsSelected(item.Path) {
			mark = "[✓] "
		} else {
			mark = "[ ] "
		}
	}

	glyph := typeGlyphs[item.Type]
	if glyph == "" {
		glyph = "·"
	}

	size := ""
	if item.Type != domain.ItemTypeFolder {
		size = "  " + m.styles.Dim.Render(format.Bytes(item.Size))
	}

	name := item.Name
	if i == m.cursor && m.sel.IsSelected(item.Path) {
		name = m.styles.SelectionBg.Render(name)
	}

	return fmt.Sprintf("%s%s%s %s%s", cursor, mark, glyph, name, size)
}

func (m *Model) renderTagPanel() string {
	item := m.currentItem()
	if item == nil || !m.tip.Visible() {
		return ""
	}

	tags := m.tip.TagsForItem(m.tip.Current())
	if len(tags) == 0 {
		return m.styles.TagPanel.Render(m.styles.Dim.Render("no tags"))
	}

	newly := make(map[string]bool)
	for _, tag := range m.clip.NewlyAddedTags() {
		newly[tag] = true
	}

	rendered := make([]string, len(tags))
	for i, tag := range tags {
		if newly[tag] {
			rendered[i] = m.styles.NewTag.Render(tag)
		} else {
			rendered[i] = m.styles.Tag.Render(tag)
		}
	}
	return m.styles.TagPanel.Render(strings.Join(rendered, " "))
}

func (m *Model) renderTagBrowser() string {
	var b strings.Builder

	field, asc := m.settings.SortField()
	arrow := "↓"
	if asc {
		arrow = "↑"
	}
	b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Tags · %s %s", field, arrow)))
	b.WriteString("\n")

	var total int64
	for _, item := range m.media.All() {
		total += item.Size
	}
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf(
		"Library: %s · Last scan: %s",
		m.settings.FormatBytes(total),
		m.settings.FormatDate(m.lastScanAt),
	)))
	b.WriteString("\n\n")

	tags := m.settings.FilteredTags()
	if len(tags) == 0 {
		b.WriteString(m.styles.Dim.Render("no tags"))
		b.WriteString("\n")
	}
	for _, tag := range tags {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Tag.Render(tag.Name),
			m.styles.Dim.Render(fmt.Sprintf("(%d)", tag.Count))))
	}

	if m.filtering {
		b.WriteString("\n/ ")
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}

	button := m.scanButton.Content
	if m.scanButton.Disabled {
		button = m.styles.Dim.Render(button)
	} else {
		button = m.styles.Highlight.Render(button)
	}
	b.WriteString("\n[" + button + "]")

	return b.String()
}

func (m *Model) renderStatusBar() string {
	var parts []string

	if m.status != "" {
		style := m.styles.Status
		if m.statusIsError {
			style = m.styles.StatusError
		}
		parts = append(parts, style.Render(m.status))
	}

	if m.clip.HasTags() {
		summary := fmt.Sprintf("clipboard: %d tags", len(m.clip.Tags()))
		if name := m.clip.SourceItemName(); name != "" {
			summary += " from " + name
		}
		parts = append(parts, m.styles.Dim.Render(summary))
	}

	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  ·  "))
}
