// Package settings backs the settings panel: tag table sorting and
// filtering, display formatting, and the clear-cache button state.
package settings

import (
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"galleria/internal/domain"
	"galleria/internal/format"
)

// Sortable tag table fields
const (
	SortByName  = "name"
	SortByCount = "count"
)

// Button models the clear-cache button's reflected state.
type Button struct {
	Disabled bool
	Content  string

	stashed *string // content saved while the button shows the spinner
}

// Manager is the per-panel settings controller
type Manager struct {
	tags         []domain.TagCount
	filteredTags []domain.TagCount
	sortField    string
	sortAsc      bool

	now func() time.Time

	renderFn        func()
	sortIndicatorFn func()
	iconRefreshFn   func()
}

// NewManager creates a new settings manager
func NewManager() *Manager {
	return &Manager{
		now: time.Now,
	}
}

// SetRenderFunc sets the callback run after the tag table changes
func (m *Manager) SetRenderFunc(fn func()) {
	m.renderFn = fn
}

// SetSortIndicatorFunc sets the callback that repaints the sort indicator
func (m *Manager) SetSortIndicatorFunc(fn func()) {
	m.sortIndicatorFn = fn
}

// SetIconRefreshFunc sets the callback that re-renders icons after a
// button content change
func (m *Manager) SetIconRefreshFunc(fn func()) {
	m.iconRefreshFn = fn
}

// SetClock overrides the time source used by FormatDate
func (m *Manager) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// SetTags loads the full tag list and resets the filtered view to it
func (m *Manager) SetTags(tags []domain.TagCount) {
	m.tags = append([]domain.TagCount(nil), tags...)
	m.filteredTags = append([]domain.TagCount(nil), tags...)
}

// FilteredTags returns a copy of the current filtered view
func (m *Manager) FilteredTags() []domain.TagCount {
	return append([]domain.TagCount(nil), m.filteredTags...)
}

// SortTags sorts the filtered tag list in place. Sorting the same field
// twice toggles the direction; switching fields resets it to the field
// default (name ascending, count descending). A nil filtered list is a
// no-op.
func (m *Manager) SortTags(field string) {
	if m.filteredTags == nil {
		return
	}

	if field == m.sortField {
		m.sortAsc = !m.sortAsc
	} else {
		m.sortField = field
		m.sortAsc = field == SortByName
	}

	m.applySort()

	if m.renderFn != nil {
		m.renderFn()
	}
	if m.sortIndicatorFn != nil {
		m.sortIndicatorFn()
	}
}

// applySort orders the filtered view by the active field and direction.
// No field selected yet means insertion order.
func (m *Manager) applySort() {
	if m.sortField == "" {
		return
	}

	tags := m.filteredTags
	asc := m.sortAsc
	switch m.sortField {
	case SortByCount:
		sort.SliceStable(tags, func(i, j int) bool {
			if asc {
				return tags[i].Count < tags[j].Count
			}
			return tags[i].Count > tags[j].Count
		})
	default:
		sort.SliceStable(tags, func(i, j int) bool {
			a, b := strings.ToLower(tags[i].Name), strings.ToLower(tags[j].Name)
			if asc {
				return a < b
			}
			return a > b
		})
	}
}

// SortField returns the active sort field and direction
func (m *Manager) SortField() (string, bool) {
	return m.sortField, m.sortAsc
}

// FilterTags recomputes the filtered view with fuzzy matching against tag
// names. An empty query restores the full list. The active sort carries
// over to the recomputed view.
func (m *Manager) FilterTags(query string) {
	if m.tags == nil {
		return
	}

	if query == "" {
		m.filteredTags = append([]domain.TagCount(nil), m.tags...)
	} else {
		filtered := make([]domain.TagCount, 0, len(m.tags))
		for _, tag := range m.tags {
			if fuzzy.MatchNormalizedFold(query, tag.Name) {
				filtered = append(filtered, tag)
			}
		}
		m.filteredTags = filtered
	}
	m.applySort()

	if m.renderFn != nil {
		m.renderFn()
	}
}

// FormatDate renders an ISO timestamp as a relative age. Empty or
// unparseable input reads as "Never".
func (m *Manager) FormatDate(iso string) string {
	if iso == "" {
		return "Never"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "Never"
	}
	return format.RelativeTime(t, m.now())
}

// FormatBytes renders a byte count for display
func (m *Manager) FormatBytes(n int64) string {
	return format.Bytes(n)
}

// SetCacheLoading flips the clear-cache button between its idle and
// loading presentation. A nil button is a no-op. The button's previous
// content is stashed while loading and restored afterwards; when nothing
// was stashed, the label is rendered as plain text instead.
func (m *Manager) SetCacheLoading(button *Button, isLoading bool, label string) {
	if button == nil {
		return
	}

	if isLoading {
		button.Disabled = true
		prev := button.Content
		button.stashed = &prev
		button.Content = "◌ " + label
	} else {
		button.Disabled = false
		if button.stashed != nil {
			button.Content = *button.stashed
			button.stashed = nil
		} else {
			button.Content = label
		}
	}

	if m.iconRefreshFn != nil {
		m.iconRefreshFn()
	}
}
