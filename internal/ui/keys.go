package ui

import "github.com/charmbracelet/bubbles/key"

// formKeys holds key bindings while a form field has focus.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Quit},
	}
}

// listKeys holds key bindings while the contact list has focus.
type listKeys struct {
	Up     key.Binding
	Down   key.Binding
	Sort   key.Binding
	Delete key.Binding
	Reload key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Delete, k.Reload, k.Next, k.Quit}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Sort, k.Delete, k.Reload},
		{k.Next, k.Prev, k.Quit},
	}
}

func quitBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
}

func nextBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	)
}

func prevBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	)
}

// FormKeyMap returns the key bindings for the form.
func FormKeyMap() formKeys {
	return formKeys{
		Next: nextBinding(),
		Prev: prevBinding(),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add contact"),
		),
		Quit: quitBinding(),
	}
}

// ListKeyMap returns the key bindings for the contact list.
// sortLabel is the order the sort key switches to.
func ListKeyMap(sortLabel string) listKeys {
	return listKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by "+sortLabel),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Next: nextBinding(),
		Prev: prevBinding(),
		Quit: quitBinding(),
	}
}
