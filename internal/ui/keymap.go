package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the gallery browser
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	SelectMode   key.Binding
	ToggleSelect key.Binding
	SelectAll    key.Binding
	CopyTags     key.Binding
	CopySelected key.Binding
	MergeTags    key.Binding
	ClearClip    key.Binding
	Export       key.Binding
	TagPanel     key.Binding
	TagBrowser   key.Binding
	Help         key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		SelectMode:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "selection mode")),
		ToggleSelect: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		CopyTags:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy tags")),
		CopySelected: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy from selection")),
		MergeTags:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge tags")),
		ClearClip:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear clipboard")),
		Export:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export to clipboard")),
		TagPanel:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag panel")),
		TagBrowser:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "tag browser")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectMode, k.ToggleSelect, k.CopyTags, k.MergeTags, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.TagPanel, k.TagBrowser},
		{k.SelectMode, k.ToggleSelect, k.SelectAll},
		{k.CopyTags, k.CopySelected, k.MergeTags, k.ClearClip, k.Export},
		{k.Help, k.Back, k.Quit},
	}
}
