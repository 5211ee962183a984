package model

// FilterMode selects which items a view shows.
type FilterMode int

const (
	All FilterMode = iota
	Active
	Completed
)

// Modes lists every filter in route order.
var Modes = []FilterMode{All, Active, Completed}

func (m FilterMode) String() string {
	switch m {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// Fragment is the location fragment that routes to m.
func (m FilterMode) Fragment() string {
	if m == All {
		return "#/"
	}
	return "#/" + m.String()
}

// Matches reports whether it belongs to the subset selected by m.
func (m FilterMode) Matches(it Item) bool {
	switch m {
	case Active:
		return !it.Completed
	case Completed:
		return it.Completed
	default:
		return true
	}
}

// Next cycles All -> Active -> Completed -> All.
func (m FilterMode) Next() FilterMode {
	return Modes[(int(m)+1)%len(Modes)]
}
