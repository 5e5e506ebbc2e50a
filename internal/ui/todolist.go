package ui

import (
	"fmt"
	"strings"

	"todoview/internal/todo"
	"todoview/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth = 72
	deleteAction = "[Delete]"
)

// listKeyMap holds the list's own bindings; it doubles as the footer help.
type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Details key.Binding
	Delete  key.Binding
	Prev    key.Binding
	Next    key.Binding
}

func defaultListKeys() listKeyMap {
	return listKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("←/p", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("→/n", "next"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Delete, k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Details, k.Delete}, {k.Prev, k.Next}}
}

// TodoListView shows one page of todos with Previous/Next controls.
// Todos is the list state (server order); Page is 1-based and never clamped.
type TodoListView struct {
	Todos    []todo.Todo
	Page     int
	PageSize int

	cursor  int // index into the visible page slice
	loading bool
	spinner spinner.Model
	keys    listKeyMap
	help    help.Model
	width   int
}

// Ensure TodoListView implements View.
var _ View = (*TodoListView)(nil)

// NewTodoListView creates an empty list on page 1 in the loading state.
func NewTodoListView() *TodoListView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.ModalTitle

	h := help.New()
	h.Styles.ShortKey = Styles.Button
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint

	return &TodoListView{
		Page:     1,
		PageSize: todo.PageSize,
		loading:  true,
		spinner:  s,
		keys:     defaultListKeys(),
		help:     h,
	}
}

// Init implements View.
func (v *TodoListView) Init() tea.Cmd {
	if v.loading {
		return v.spinner.Tick
	}
	return nil
}

// SetLoading toggles the spinner next to the title.
func (v *TodoListView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// Loading reports whether a fetch is in progress.
func (v *TodoListView) Loading() bool {
	return v.loading
}

// SetTodos replaces the whole list.
func (v *TodoListView) SetTodos(todos []todo.Todo) {
	v.Todos = todos
	v.clampCursor()
}

// RemoveTodo drops the todo with id. The page is left where it is, even if
// it is now past the end.
func (v *TodoListView) RemoveTodo(id int) {
	v.Todos = todo.Remove(v.Todos, id)
	v.clampCursor()
}

// SetPage jumps to page n without bounds checks.
func (v *TodoListView) SetPage(n int) {
	v.Page = n
	v.cursor = 0
}

// Visible returns the todos on the current page.
func (v *TodoListView) Visible() []todo.Todo {
	return todo.PageSlice(v.Todos, v.Page, v.PageSize)
}

// HasPrev reports whether "Previous" is enabled.
func (v *TodoListView) HasPrev() bool {
	return todo.HasPrev(v.Page)
}

// HasNext reports whether "Next" is enabled.
func (v *TodoListView) HasNext() bool {
	return todo.HasNext(v.Page, v.PageSize, len(v.Todos))
}

// Cursor returns the cursor's index within the visible page.
func (v *TodoListView) Cursor() int {
	return v.cursor
}

// CursorTodo returns the todo under the cursor, if the page has any rows.
func (v *TodoListView) CursorTodo() (todo.Todo, bool) {
	visible := v.Visible()
	if v.cursor < 0 || v.cursor >= len(visible) {
		return todo.Todo{}, false
	}
	return visible[v.cursor], true
}

// Update implements View. Row actions and page changes are returned as
// messages for the app to apply.
func (v *TodoListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *TodoListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.Visible())-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Details):
		if t, ok := v.CursorTodo(); ok {
			return func() tea.Msg { return ShowDetailsMsg{Todo: t} }
		}
	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.CursorTodo(); ok {
			id := t.ID
			return func() tea.Msg { return DeleteTodoMsg{ID: id} }
		}
	case key.Matches(msg, v.keys.Prev):
		if v.HasPrev() {
			page := v.Page - 1
			return func() tea.Msg { return PaginateMsg{Page: page} }
		}
	case key.Matches(msg, v.keys.Next):
		if v.HasNext() {
			page := v.Page + 1
			return func() tea.Msg { return PaginateMsg{Page: page} }
		}
	}
	return nil
}

// View implements View.
func (v *TodoListView) View() string {
	width := v.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	title := Styles.Title.Render("Todos")
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(title + "\n\n")

	visible := v.Visible()
	if len(visible) == 0 {
		if v.loading {
			b.WriteString(Styles.Empty.Render("Loading todos…") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("No todos on this page") + "\n")
		}
	}

	// "› " prefix, a space, then the delete action.
	textWidth := width - textutil.Width(deleteAction) - 4
	for i, t := range visible {
		label := textutil.Fit(fmt.Sprintf("%d, %s", t.ID, t.Title), textWidth)
		if i == v.cursor {
			b.WriteString(Styles.RowSelected.Render("› " + label))
		} else {
			b.WriteString(Styles.Row.Render("  " + label))
		}
		b.WriteString(" " + Styles.Delete.Render(deleteAction) + "\n")
	}

	b.WriteString("\n" + v.renderPager() + "\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *TodoListView) renderPager() string {
	prev := Styles.ButtonOff.Render("Previous")
	if v.HasPrev() {
		prev = Styles.Button.Render("Previous")
	}
	next := Styles.ButtonOff.Render("Next")
	if v.HasNext() {
		next = Styles.Button.Render("Next")
	}
	pos := Styles.Hint.Render(fmt.Sprintf("page %d/%d", v.Page, todo.PageCount(v.PageSize, len(v.Todos))))
	return prev + "   " + pos + "   " + next
}

func (v *TodoListView) clampCursor() {
	if n := len(v.Visible()); v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}
