package ui

import (
	"fmt"
	"strings"
	"testing"

	"todoview/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTodos(n int) []todo.Todo {
	out := make([]todo.Todo, n)
	for i := 0; i < n; i++ {
		out[i] = todo.Todo{ID: i + 1, UserID: 1, Title: fmt.Sprintf("title %d", i+1), Completed: i%2 == 0}
	}
	return out
}

func visibleIDs(v *TodoListView) []int {
	var out []int
	for _, t := range v.Visible() {
		out = append(out, t.ID)
	}
	return out
}

// press sends a key to the view and resolves the returned command, if any.
func press(v *TodoListView, k string) tea.Msg {
	_, cmd := v.Update(keyMsg(k))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestTodoListView_Pagination(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(10))

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, visibleIDs(v))
	assert.False(t, v.HasPrev())
	assert.True(t, v.HasNext())

	assert.Nil(t, press(v, "p"), "previous is disabled on page 1")
	assert.Equal(t, PaginateMsg{Page: 2}, press(v, "n"))

	v.SetPage(2)
	assert.Equal(t, []int{8, 9, 10}, visibleIDs(v))
	assert.True(t, v.HasPrev())
	assert.False(t, v.HasNext())
	assert.Nil(t, press(v, "right"), "next is disabled on the last page")
	assert.Equal(t, PaginateMsg{Page: 1}, press(v, "left"))
}

func TestTodoListView_CursorStaysOnPage(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(10))
	v.SetPage(2)

	for i := 0; i < 5; i++ {
		press(v, "j")
	}
	assert.Equal(t, 2, v.Cursor(), "cursor stops at the last visible row")

	press(v, "k")
	press(v, "up")
	press(v, "up")
	assert.Equal(t, 0, v.Cursor())
}

func TestTodoListView_RowActions(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(10))
	press(v, "down")
	press(v, "down")

	msg := press(v, "enter")
	show, ok := msg.(ShowDetailsMsg)
	require.True(t, ok, "expected ShowDetailsMsg, got %T", msg)
	assert.Equal(t, 3, show.Todo.ID)

	assert.Equal(t, DeleteTodoMsg{ID: 3}, press(v, "d"))
}

func TestTodoListView_RowActionsOnEmptyPage(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(3))
	v.SetPage(4)

	assert.Empty(t, v.Visible())
	assert.Nil(t, press(v, "enter"))
	assert.Nil(t, press(v, "d"))
}

func TestTodoListView_RemoveKeepsPage(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(8))
	v.SetPage(2)
	require.Equal(t, []int{8}, visibleIDs(v))

	v.RemoveTodo(8)

	assert.Equal(t, 2, v.Page, "page is not adjusted after delete")
	assert.Empty(t, v.Visible())
	assert.False(t, v.HasNext())
	assert.Equal(t, 0, v.Cursor())
}

func TestTodoListView_RemoveClampsCursor(t *testing.T) {
	v := NewTodoListView()
	v.SetTodos(testTodos(10))
	v.SetPage(2)
	press(v, "j")
	press(v, "j")
	require.Equal(t, 2, v.Cursor())

	v.RemoveTodo(10)
	assert.Equal(t, 1, v.Cursor())
}

func TestTodoListView_View(t *testing.T) {
	v := NewTodoListView()
	v.SetLoading(false)
	v.SetTodos(testTodos(10))

	out := v.View()

	assert.Contains(t, out, "Todos")
	assert.Contains(t, out, "1, title 1")
	assert.Contains(t, out, "7, title 7")
	assert.NotContains(t, out, "8, title 8")
	assert.Contains(t, out, deleteAction)
	assert.Equal(t, 7, strings.Count(out, deleteAction))
	assert.Contains(t, out, "Previous")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "page 1/2")
}

func TestTodoListView_ViewStates(t *testing.T) {
	v := NewTodoListView()
	assert.Contains(t, v.View(), "Loading todos")

	v.SetLoading(false)
	assert.Contains(t, v.View(), "No todos")
}

func TestTodoListView_ViewTruncatesLongTitles(t *testing.T) {
	v := NewTodoListView()
	v.SetLoading(false)
	v.SetTodos([]todo.Todo{{ID: 1, Title: strings.Repeat("x", 200)}})
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	out := v.View()
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 40))
}
