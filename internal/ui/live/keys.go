package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the quiz screen.
type keyMap struct {
	Select   key.Binding
	Check    key.Binding
	Next     key.Binding
	Previous key.Binding
	Jump     key.Binding
	Submit   key.Binding
	Retake   key.Binding
	Results  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "A", "B", "C", "D", "1", "2", "3", "4"),
			key.WithHelp("a-d/1-4", "select"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g+number", "jump"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit (last question)"),
		),
		Retake: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retake"),
			key.WithDisabled(),
		),
		Results: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll results"),
			key.WithDisabled(),
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
}

// setCompleted enables the bindings that make sense for the current state.
func (k *keyMap) setCompleted(completed bool) {
	k.Select.SetEnabled(!completed)
	k.Check.SetEnabled(!completed)
	k.Next.SetEnabled(!completed)
	k.Previous.SetEnabled(!completed)
	k.Jump.SetEnabled(!completed)
	k.Submit.SetEnabled(!completed)
	k.Retake.SetEnabled(completed)
	k.Results.SetEnabled(completed)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Check, k.Next, k.Submit, k.Retake, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Check, k.Submit, k.Retake},
		{k.Next, k.Previous, k.Jump, k.Results},
		{k.Help, k.Quit},
	}
}
