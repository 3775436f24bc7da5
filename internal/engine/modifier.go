package engine

// Modifier is a per-level variant picked at level reset.
type Modifier int

const (
	ModNone Modifier = iota
	ModFastGhosts
	ModSlowPlayer
	ModBlinkingDots
	ModGhostFrenzy
)

// Modifiers lists the non-trivial modifiers a level can roll.
var Modifiers = [4]Modifier{ModFastGhosts, ModSlowPlayer, ModBlinkingDots, ModGhostFrenzy}

func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "NORMAL SYSTEMS"
	case ModFastGhosts:
		return "HOSTILE OVERCLOCK"
	case ModSlowPlayer:
		return "GRAVITY LEAK"
	case ModBlinkingDots:
		return "SENSOR GLITCH"
	case ModGhostFrenzy:
		return "HYPER AGGRESSION"
	default:
		return "UNKNOWN"
	}
}

// Status is the run state as seen by the simulation.
type Status int

const (
	StatusPlaying Status = iota
	StatusDying
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDying:
		return "dying"
	default:
		return "unknown"
	}
}
