package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/julianstephens/dayboard/internal/config"
)

type KeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Complete key.Binding
	Clear    key.Binding
	Discard  key.Binding
	Restore  key.Binding
	Delete   key.Binding
	Search   key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Plan     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Complete, k.Add, k.Plan, k.Search, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Complete, k.Clear, k.Discard, k.Restore, k.Delete},
		{k.Add, k.Edit, k.Plan, k.Search, k.Dismiss},
		{k.Help, k.Quit},
	}
}

func bind(help string, keys ...string) key.Binding {
	var set []string
	for _, k := range keys {
		if k != "" {
			set = append(set, k)
		}
	}
	display := ""
	if len(set) > 0 {
		display = set[0]
	}
	return key.NewBinding(key.WithKeys(set...), key.WithHelp(display, help))
}

// NewKeyMap builds bindings from the [keys] config section. Arrow keys and
// ctrl+c always work in addition to the configured keys.
func NewKeyMap(km config.Keymap) KeyMap {
	return KeyMap{
		Quit:     bind("quit", km.Quit, "ctrl+c"),
		Up:       bind("up", km.Up, "up"),
		Down:     bind("down", km.Down, "down"),
		NextTab:  bind("next tab", km.NextTab, "right"),
		PrevTab:  bind("prev tab", km.PrevTab, "left"),
		Complete: bind("complete", km.Complete),
		Clear:    bind("clear", km.Clear),
		Discard:  bind("discard", km.Discard),
		Restore:  bind("restore", km.Restore),
		Delete:   bind("delete", km.Delete),
		Search:   bind("search", km.Search),
		Dismiss:  bind("dismiss reminder", km.Dismiss),
		Help:     bind("toggle help", km.Help),
		Add:      bind("add", "a"),
		Edit:     bind("edit", "e"),
		Plan:     bind("plan tomorrow", "p"),
	}
}
