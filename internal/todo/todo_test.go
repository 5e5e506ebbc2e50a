package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	list := sequentialTodos(10)

	got := Remove(list, 5)

	require.Len(t, got, 9)
	_, found := Find(got, 5)
	assert.False(t, found, "id 5 should be gone")
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9, 10}, ids(got))
	assert.Len(t, list, 10, "input must not be mutated")
}

func TestRemove_UnknownID(t *testing.T) {
	list := sequentialTodos(3)
	assert.Equal(t, ids(list), ids(Remove(list, 42)))
}

func TestRemove_ShiftsNextPageUp(t *testing.T) {
	list := Remove(sequentialTodos(10), 5)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8}, ids(PageSlice(list, 1, PageSize)))
}

func TestCompletedLabel(t *testing.T) {
	assert.Equal(t, "Yes", Todo{Completed: true}.CompletedLabel())
	assert.Equal(t, "No", Todo{}.CompletedLabel())
}
