package ui

// AppMode is the input mode: the list has focus, or the details overlay does.
type AppMode int

const (
	ModeList AppMode = iota
	ModeDetails
)

func (m AppMode) String() string {
	switch m {
	case ModeList:
		return "List"
	case ModeDetails:
		return "Details"
	default:
		return "Unknown"
	}
}
