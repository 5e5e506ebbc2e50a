// Package todo holds the todo record and the client-side list operations:
// page slicing and removal by identifier.
package todo

// PageSize is the number of todos shown per page.
const PageSize = 7

// Todo is a remote todo record. IDs are assigned by the server.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId,omitempty"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CompletedLabel returns "Yes" or "No" for display.
func (t Todo) CompletedLabel() string {
	if t.Completed {
		return "Yes"
	}
	return "No"
}

// Remove returns a new list without any entry whose ID matches id.
// Order of the remaining entries is preserved.
func Remove(list []Todo, id int) []Todo {
	out := make([]Todo, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the first todo with the given ID.
func Find(list []Todo, id int) (Todo, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}
