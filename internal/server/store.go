// Package server implements an in-memory stand-in for the public todos API.
// It serves the same routes and payload shape so the client can run offline.
package server

import (
	"fmt"
	"sync"

	"todoview/internal/todo"
)

// DefaultSeedCount matches the size of the public placeholder collection.
const DefaultSeedCount = 200

// todosPerUser groups seeded todos by owner.
const todosPerUser = 20

// Store is a mutex-guarded ordered list of todos.
type Store struct {
	mu    sync.RWMutex
	todos []todo.Todo
}

// NewStore creates a store holding a copy of todos.
func NewStore(todos []todo.Todo) *Store {
	cp := make([]todo.Todo, len(todos))
	copy(cp, todos)
	return &Store{todos: cp}
}

// Seed generates n todos with IDs 1..n. Every third todo is completed.
func Seed(n int) []todo.Todo {
	out := make([]todo.Todo, n)
	for i := 0; i < n; i++ {
		id := i + 1
		out[i] = todo.Todo{
			ID:        id,
			UserID:    i/todosPerUser + 1,
			Title:     fmt.Sprintf("todo number %d", id),
			Completed: id%3 == 0,
		}
	}
	return out
}

// List returns a snapshot of all todos in insertion order.
func (s *Store) List() []todo.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]todo.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Get returns the todo with the given ID.
func (s *Store) Get(id int) (todo.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return todo.Find(s.todos, id)
}

// Delete removes the todo with the given ID and reports whether it existed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := todo.Find(s.todos, id); !ok {
		return false
	}
	s.todos = todo.Remove(s.todos, id)
	return true
}

// Len returns the number of stored todos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}
