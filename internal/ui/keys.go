package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Step     key.Binding
	Autoplay key.Binding
	Finish   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Autoplay, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Autoplay, k.Finish},
		{k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	Step: key.NewBinding(
		key.WithKeys("n", " ", "right"),
		key.WithHelp("n/space", "next turn"),
	),
	Autoplay: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle autoplay"),
	),
	Finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "play to the end"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
