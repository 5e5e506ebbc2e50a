package ui

import (
	"context"

	"todoview/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

// TodoService is the remote todos API as seen by the UI.
// *api.Client implements it.
type TodoService interface {
	ListTodos(ctx context.Context) ([]todo.Todo, error)
	DeleteTodo(ctx context.Context, id int) (int, error)
}

// loadTodosCmd fetches the collection once. Errors come back as
// TodosLoadFailedMsg; there is no retry.
func loadTodosCmd(svc TodoService) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return TodosLoadedMsg{Todos: nil}
		}
		todos, err := svc.ListTodos(context.Background())
		if err != nil {
			return TodosLoadFailedMsg{Err: err}
		}
		return TodosLoadedMsg{Todos: todos}
	}
}

// deleteTodoCmd issues one DELETE. Concurrent deletes are independent and
// may complete in any order; nothing deduplicates them.
func deleteTodoCmd(svc TodoService, id int) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return TodoDeleteFailedMsg{ID: id, Err: errNoService}
		}
		status, err := svc.DeleteTodo(context.Background(), id)
		if err != nil {
			return TodoDeleteFailedMsg{ID: id, Err: err}
		}
		return TodoDeletedMsg{ID: id, Status: status}
	}
}
