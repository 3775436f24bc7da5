package entities

type Ghost struct {
	Entity
	Archetype   Archetype
	State       GhostState
	ScaredTimer float64
}

type GhostState int

const (
	GhostScatter GhostState = iota
	GhostChase
	GhostFrightened
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Archetype selects the chase heuristic of a ghost.
type Archetype int

const (
	Aggressive Archetype = iota
	Ambush
	// Wanderer is the "random" personality: it chases from afar and
	// backs off to its corner when close.
	Wanderer
)

// Archetypes lists every archetype, used when one is drawn at random.
var Archetypes = [3]Archetype{Aggressive, Ambush, Wanderer}

func (a Archetype) String() string {
	switch a {
	case Aggressive:
		return "aggressive"
	case Ambush:
		return "ambush"
	case Wanderer:
		return "random"
	default:
		return "unknown"
	}
}

// Vulnerable reports whether the player can eat the ghost on contact.
func (g *Ghost) Vulnerable() bool {
	return g.State == GhostFrightened
}

// Lethal reports whether contact with the ghost kills the player.
func (g *Ghost) Lethal() bool {
	switch g.State {
	case GhostScatter, GhostChase:
		return true
	case GhostFrightened, GhostEaten:
		return false
	default:
		return false
	}
}
