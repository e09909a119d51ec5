package tracker

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	togglePlay key.Binding
	stop       key.Binding
	help       key.Binding
	quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.stop, k.help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.stop},
		{k.help, k.quit},
	}
}

var defaultKeymap = keyMap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p/space", "pause/resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("s", "q", "enter"),
		key.WithHelp("s/q", "stop and save"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "stop and quit"),
	),
}
