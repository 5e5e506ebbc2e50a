package ui

import (
	"errors"

	"todoview/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoService = errors.New("no todo service configured")

// AppModel is the root model. It owns the component state: the list and
// page (in List), the selected todo, and the details overlay.
type AppModel struct {
	List       *TodoListView
	Selected   *todo.Todo // nil when nothing is selected
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Service    TodoService

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model backed by svc.
func NewAppModel(svc TodoService) *AppModel {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.BindForMode("q", tea.Quit, "Quit", ModeList)
	reg.BindForMode("SPC q", tea.Quit, "Quit", ModeList)
	reg.BindForMode("SPC r", func() tea.Msg { return ReloadMsg{} }, "Reload todos", ModeList)
	return &AppModel{
		List:       NewTodoListView(),
		KeyHandler: NewKeyHandler(reg),
		Service:    svc,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Mode reports which part of the UI receives keys.
func (a *AppModel) Mode() AppMode {
	if a.DetailsOpen() {
		return ModeDetails
	}
	return ModeList
}

// DetailsOpen reports whether the details overlay is showing.
func (a *AppModel) DetailsOpen() bool {
	top, ok := a.Overlays.Peek()
	if !ok {
		return false
	}
	_, isDetails := top.View.(*DetailsModal)
	return isDetails
}

// ShowDetails selects t and opens the details overlay.
func (a *AppModel) ShowDetails(t todo.Todo) {
	a.Selected = &t
	if a.DetailsOpen() {
		a.Overlays.Pop()
	}
	a.Overlays.Push(Overlay{View: NewDetailsModal(t), Dismiss: "esc"})
}

// HideDetails closes the overlay. Selected is left as it was.
func (a *AppModel) HideDetails() {
	if a.DetailsOpen() {
		a.Overlays.Pop()
	}
}

// Delete returns a command issuing DELETE for id. The list changes only
// when the request comes back (TodoDeletedMsg).
func (a *AppModel) Delete(id int) tea.Cmd {
	return deleteTodoCmd(a.Service, id)
}

// Paginate sets the current page directly.
func (a *AppModel) Paginate(page int) {
	a.List.SetPage(page)
}

// Init implements tea.Model: start the spinner and fetch the list once.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.List.Init(), loadTodosCmd(a.Service))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case TodosLoadedMsg:
		return a.handleTodosLoaded(msg)
	case TodosLoadFailedMsg:
		return a.handleTodosLoadFailed(msg)
	case ReloadMsg:
		return a, tea.Batch(a.List.SetLoading(true), loadTodosCmd(a.Service))
	case ShowDetailsMsg:
		a.ShowDetails(msg.Todo)
		return a, nil
	case HideDetailsMsg:
		a.HideDetails()
		return a, nil
	case DeleteTodoMsg:
		return a, a.Delete(msg.ID)
	case TodoDeletedMsg:
		return a.handleTodoDeleted(msg)
	case TodoDeleteFailedMsg:
		return a.handleTodoDeleteFailed(msg)
	case PaginateMsg:
		a.Paginate(msg.Page)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
				return a, cmd
			}
		}
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
	}

	v, cmd := a.List.Update(msg)
	if l, ok := v.(*TodoListView); ok {
		a.List = l
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.List.View()
	if help := RenderLeaderHelp(a.KeyHandler, a.Mode()); help != "" {
		base += "\n" + help
	}
	return a.Overlays.Render(base, a.width, a.height)
}
