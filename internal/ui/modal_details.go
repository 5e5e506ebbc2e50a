package ui

import (
	"fmt"
	"strings"

	"todoview/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

// DetailsModal is the "Todo Details" overlay for the selected todo.
// Esc, enter, or q closes it.
type DetailsModal struct {
	Todo todo.Todo
}

// Ensure DetailsModal implements View.
var _ View = (*DetailsModal)(nil)

// NewDetailsModal creates the overlay for t.
func NewDetailsModal(t todo.Todo) *DetailsModal {
	return &DetailsModal{Todo: t}
}

// Init implements View.
func (m *DetailsModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DetailsModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return HideDetailsMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *DetailsModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.ModalTitle.Render("Todo Details") + "\n\n")
	field := func(label, value string) {
		b.WriteString(Styles.Label.Render(label+":") + " " + value + "\n")
	}
	field("ID", fmt.Sprintf("%d", m.Todo.ID))
	field("Title", m.Todo.Title)
	completed := m.Todo.CompletedLabel()
	if m.Todo.Completed {
		completed = Styles.Done.Render(completed)
	}
	field("Completed", completed)
	if m.Todo.UserID != 0 {
		field("User", fmt.Sprintf("%d", m.Todo.UserID))
	}
	b.WriteString("\n" + Styles.Hint.Render("esc: close"))
	return Styles.ModalBox.Render(b.String())
}
