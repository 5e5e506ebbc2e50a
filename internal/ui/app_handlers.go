package ui

import (
	"log"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
)

// handleTodosLoaded replaces the list with the fetched collection.
func (a *appModelAdapter) handleTodosLoaded(msg TodosLoadedMsg) (tea.Model, tea.Cmd) {
	a.List.SetTodos(msg.Todos)
	log.Printf("loaded %d todos", len(msg.Todos))
	return a, a.List.SetLoading(false)
}

// handleTodosLoadFailed logs the failure; the list keeps its previous
// contents (empty on first load) and no error is shown.
func (a *appModelAdapter) handleTodosLoadFailed(msg TodosLoadFailedMsg) (tea.Model, tea.Cmd) {
	log.Printf("Error fetching todos: %v", msg.Err)
	return a, a.List.SetLoading(false)
}

// handleTodoDeleted removes the todo locally and clears the selection.
// Error statuses are logged but still count as a delete.
func (a *appModelAdapter) handleTodoDeleted(msg TodoDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Status >= http.StatusBadRequest {
		log.Printf("delete todo %d: server answered %d, removing locally anyway", msg.ID, msg.Status)
	}
	a.List.RemoveTodo(msg.ID)
	a.Selected = nil
	return a, nil
}

// handleTodoDeleteFailed logs a transport failure and leaves state unchanged.
func (a *appModelAdapter) handleTodoDeleteFailed(msg TodoDeleteFailedMsg) (tea.Model, tea.Cmd) {
	log.Printf("Error deleting todo %d: %v", msg.ID, msg.Err)
	return a, nil
}
