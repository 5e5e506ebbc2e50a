package ui

import "todoview/internal/todo"

// TodosLoadedMsg carries the full collection; it replaces the list state.
type TodosLoadedMsg struct {
	Todos []todo.Todo
}

// TodosLoadFailedMsg reports a failed fetch. The list is left as it was.
type TodosLoadFailedMsg struct {
	Err error
}

// ShowDetailsMsg selects a todo and opens the details overlay.
type ShowDetailsMsg struct {
	Todo todo.Todo
}

// HideDetailsMsg closes the details overlay. The selection is kept.
type HideDetailsMsg struct{}

// DeleteTodoMsg requests DELETE of the todo with ID.
type DeleteTodoMsg struct {
	ID int
}

// TodoDeletedMsg is sent when the DELETE call returned, whatever the status.
type TodoDeletedMsg struct {
	ID     int
	Status int
}

// TodoDeleteFailedMsg reports a transport failure on DELETE. State is unchanged.
type TodoDeleteFailedMsg struct {
	ID  int
	Err error
}

// PaginateMsg moves to a page. No bounds are applied.
type PaginateMsg struct {
	Page int
}

// ReloadMsg re-fetches the collection (SPC r).
type ReloadMsg struct{}
