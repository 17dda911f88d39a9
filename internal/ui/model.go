package ui

import (
	"fmt"
	"strings"
	"time"

	sysclip "github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"galleria/internal/clipboard"
	"galleria/internal/config"
	"galleria/internal/domain"
	"galleria/internal/eventbus"
	"galleria/internal/gallery"
	"galleria/internal/selection"
	"galleria/internal/settings"
	"galleria/internal/tooltip"
)

// EventMsg wraps a domain event forwarded into the UI loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	listing  *gallery.ItemStore
	media    *gallery.ItemStore
	sel      *selection.Service
	clip     *clipboard.Service
	tip      *tooltip.Tooltip
	settings *settings.Manager

	keys        KeyMap
	help        help.Model
	spin        spinner.Model
	input       textinput.Model
	filterInput textinput.Model
	scanButton  settings.Button
	lastScanAt  string
	styles      *Styles

	items  []*domain.MediaItem // current listing in display order
	cursor int
	width  int
	height int

	scanning        bool
	merging         bool // merge prompt open
	tagView         bool // tag browser open
	filtering       bool // tag filter prompt open
	showTagPanel    bool
	selectionMarker bool // mirrored from the selection service
	status          string
	statusIsError   bool

	// Back stack: the history collaborator. Selection-mode entry pushes a
	// state, Esc pops it.
	modeStack []string

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(
	bus eventbus.EventBus,
	cfg *config.Config,
	listing, media *gallery.ItemStore,
	sel *selection.Service,
	clip *clipboard.Service,
	tip *tooltip.Tooltip,
	settingsMgr *settings.Manager,
) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "tag1, tag2, ..."
	input.CharLimit = 256

	filterInput := textinput.New()
	filterInput.Placeholder = "filter tags"
	filterInput.CharLimit = 64

	m := &Model{
		bus:          bus,
		config:       cfg,
		listing:      listing,
		media:        media,
		sel:          sel,
		clip:         clip,
		tip:          tip,
		settings:     settingsMgr,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spin:         sp,
		input:        input,
		filterInput:  filterInput,
		scanButton:   settings.Button{Content: "Rescan"},
		styles:       NewStyles(),
		showTagPanel: cfg.UISettings.ShowTooltips,
	}

	// The model is both the selection surface and, via the mode stack, the
	// navigation-history collaborator.
	sel.SetSurface(m)
	return m
}

// SetProgram stores the program handle for terminal handoff (help pager)
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// SetSelectionMarker implements selection.Surface
func (m *Model) SetSelectionMarker(on bool) {
	m.selectionMarker = on
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		return m.handlePagerResult(msg)

	case tea.KeyMsg:
		if m.merging {
			return m.updateMergePrompt(msg)
		}
		if m.filtering {
			return m.updateFilterPrompt(msg)
		}
		if m.tagView {
			return m.handleTagViewKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ItemDiscoveredEvent:
		item := e.Item
		m.listing.Add(&item)
		if item.Type == domain.ItemTypeImage || item.Type == domain.ItemTypeVideo {
			media := item
			m.media.Add(&media)
		}
		m.items = m.listing.All()
		return m, nil

	case eventbus.ScanStartedEvent:
		m.scanning = true
		m.setStatus(fmt.Sprintf("Scanning %s...", e.Root), false)
		return m, m.spin.Tick

	case eventbus.ScanCompletedEvent:
		m.scanning = false
		m.items = m.listing.All()
		m.settings.SetTags(m.listing.TagCounts())
		m.lastScanAt = time.Now().Format(time.RFC3339)
		m.settings.SetCacheLoading(&m.scanButton, false, "Rescan")
		m.setStatus(fmt.Sprintf("Found %d items", e.ItemsFound), false)
		return m, nil

	case eventbus.SelectionModeEnteredEvent:
		m.modeStack = append(m.modeStack, "selection")
		return m, nil

	case eventbus.SelectionModeExitedEvent:
		m.popMode("selection")
		return m, nil

	case eventbus.NotificationEvent:
		m.setStatus(e.Message, e.IsError)
		return m, nil

	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.refreshTooltip()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.refreshTooltip()

	case key.Matches(msg, m.keys.SelectMode):
		if m.sel.IsActive() {
			m.sel.ExitSelectionMode()
		} else {
			m.sel.EnterSelectionMode()
		}

	case key.Matches(msg, m.keys.ToggleSelect):
		item := m.currentItem()
		if item == nil {
			break
		}
		if !m.sel.IsActive() {
			m.sel.EnterSelectionMode()
		}
		if m.sel.IsSelected(item.Path) {
			m.sel.DeselectItemByPath(item.Path)
		} else {
			m.sel.SelectItemByData(item.Path, item.Name, item.Type)
		}

	case key.Matches(msg, m.keys.SelectAll):
		if m.sel.IsActive() {
			m.sel.ToggleSelectAll(m.items)
		}

	case key.Matches(msg, m.keys.CopyTags):
		if item := m.currentItem(); item != nil {
			if m.clip.CopyTagsDirect(item.Tags, item.Path, item.Name) {
				m.setStatus(fmt.Sprintf("Copied %d tags from %s", len(item.Tags), item.Name), false)
			}
		}

	case key.Matches(msg, m.keys.CopySelected):
		m.copyFromSelection()

	case key.Matches(msg, m.keys.MergeTags):
		if m.currentItem() != nil {
			m.merging = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.ClearClip):
		m.clip.Clear()
		m.setStatus("Tag clipboard cleared", false)

	case key.Matches(msg, m.keys.Export):
		m.exportTags()

	case key.Matches(msg, m.keys.TagPanel):
		m.toggleTagPanel()

	case key.Matches(msg, m.keys.TagBrowser):
		m.openTagBrowser()

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()

	case key.Matches(msg, m.keys.Back):
		m.goBack()
	}

	return m, nil
}

func (m *Model) updateMergePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.merging = false
		m.input.Blur()
		item := m.currentItem()
		tags := splitTags(m.input.Value())
		if item != nil {
			added := m.clip.MergeTags(tags, item.Path, item.Name)
			if added > 0 {
				m.setStatus(fmt.Sprintf("Merged %d new tags", added), false)
			}
		}
		return m, nil
	case "esc":
		m.merging = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// openTagBrowser switches to the tag table, seeding it with fresh counts and
// the configured default sort on first open.
func (m *Model) openTagBrowser() {
	m.tagView = true
	m.settings.SetTags(m.listing.TagCounts())
	if field, _ := m.settings.SortField(); field == "" {
		m.settings.SortTags(m.config.UISettings.TagSortField)
	}
}

func (m *Model) handleTagViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "s":
		m.tagView = false

	case "n":
		m.settings.SortTags(settings.SortByName)

	case "c":
		m.settings.SortTags(settings.SortByCount)

	case "/":
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink

	case "r":
		if !m.scanning {
			m.settings.SetCacheLoading(&m.scanButton, true, "Rescanning")
			m.bus.Publish(eventbus.ScanRequestedEvent{Root: m.config.GalleryDir})
		}
	}

	return m, nil
}

func (m *Model) updateFilterPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.settings.FilterTags("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.settings.FilterTags(m.filterInput.Value())
	return m, cmd
}

// goBack pops the mode stack, mirroring the browser back button: leaving
// selection mode is the first thing a back action undoes.
func (m *Model) goBack() {
	if len(m.modeStack) == 0 {
		return
	}
	top := m.modeStack[len(m.modeStack)-1]
	if top == "selection" {
		// ExitSelectionMode publishes the exit event, which pops the stack
		m.sel.ExitSelectionMode()
	}
}

func (m *Model) popMode(name string) {
	for i := len(m.modeStack) - 1; i >= 0; i-- {
		if m.modeStack[i] == name {
			m.modeStack = append(m.modeStack[:i], m.modeStack[i+1:]...)
			return
		}
	}
}

func (m *Model) copyFromSelection() {
	paths := m.sel.SelectedPaths()
	if len(paths) == 0 {
		m.setStatus("Nothing selected", true)
		return
	}

	seen := make(map[string]bool)
	var tags []string
	for _, path := range paths {
		if item, ok := m.listing.Get(path); ok {
			for _, tag := range item.Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}

	entry, _ := m.sel.Entry(paths[0])
	name := entry.Name
	if len(paths) > 1 {
		name = fmt.Sprintf("%s (+%d more)", name, len(paths)-1)
	}
	if m.clip.CopyTagsDirect(tags, paths[0], name) {
		m.setStatus(fmt.Sprintf("Copied %d tags from %d items", len(tags), len(paths)), false)
	}
}

func (m *Model) exportTags() {
	if !m.clip.HasTags() {
		m.setStatus("Tag clipboard is empty", true)
		return
	}
	if err := sysclip.WriteAll(strings.Join(m.clip.Tags(), ", ")); err != nil {
		log.Errorf("system clipboard export failed: %v", err)
		m.setStatus("Could not reach the system clipboard", true)
		return
	}
	m.setStatus("Tags exported to system clipboard", false)
}

func (m *Model) toggleTagPanel() {
	if m.showTagPanel {
		m.showTagPanel = false
		m.tip.Hide()
		return
	}
	m.showTagPanel = true
	m.refreshTooltip()
}

func (m *Model) refreshTooltip() {
	if !m.showTagPanel {
		return
	}
	item := m.currentItem()
	if item == nil {
		m.tip.Hide()
		return
	}
	m.tip.Show(&tooltip.Item{Path: item.Path})
}

func (m *Model) currentItem() *domain.MediaItem {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

func (m *Model) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusIsError = isError
}

// splitTags parses a comma-separated tag entry, dropping empty pieces.
func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
