package ui

// View represents different UI views
type View int

const (
	ViewCard View = iota
	ViewDetail
	ViewHelp
	ViewDone
)

func (v View) String() string {
	switch v {
	case ViewCard:
		return "card"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	case ViewDone:
		return "done"
	default:
		return "unknown"
	}
}

// cardWidth is the inner width of a rendered card in columns
const cardWidth = 56
