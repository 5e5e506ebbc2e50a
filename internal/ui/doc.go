// Package ui is the Bubble Tea front end for browsing and deleting todos.
//
// Core pieces:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - TodoListView: the paged todo list (page size 7) with Previous/Next controls
//   - OverlayStack: modal views that receive input before the list
//   - DetailsModal: the "Todo Details" overlay for the selected todo
//   - KeybindRegistry/KeyHandler: global and SPC-leader key sequences
//
// Network work runs in tea.Cmds (see app_commands.go); results come back as
// messages and are applied on the event loop, so state needs no locking.
package ui
