package domain

// Mode identifies a transport mode usable for a single leg between two locations.
type Mode int

const (
	Walk Mode = iota
	Subway
	Bus
	Car

	NumModes = 4
)

// AllModes lists every mode in the preference order the original tour
// planner used to break ties when several modes are equally fast:
// walking first, then transit, then driving.
var AllModes = [NumModes]Mode{Walk, Subway, Bus, Car}

func (m Mode) String() string {
	switch m {
	case Walk:
		return "walk"
	case Subway:
		return "subway"
	case Bus:
		return "bus"
	case Car:
		return "car"
	default:
		return "unknown"
	}
}

// preferenceRank orders modes for tie-breaking when two modes take the
// same travel time: walk, then subway, then bus, then car.
func (m Mode) preferenceRank() int {
	switch m {
	case Walk:
		return 0
	case Subway:
		return 1
	case Bus:
		return 2
	case Car:
		return 3
	default:
		return 4
	}
}

// PreferredMode returns the mode from candidates that the original
// program would pick when several modes are tied on travel time:
// walk > subway > bus > car.
func PreferredMode(candidates []Mode) (Mode, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0]
	for _, m := range candidates[1:] {
		if m.preferenceRank() < best.preferenceRank() {
			best = m
		}
	}
	return best, true
}
