package engine

import "fmt"

type EventKind int

const (
	EventAteDot EventKind = iota
	EventAtePower
	EventAteItem
	EventAteGhost
	EventDied
	EventMovedTile
	EventPowerUp
	EventItemSpawned
)

func (k EventKind) String() string {
	switch k {
	case EventAteDot:
		return "ate-dot"
	case EventAtePower:
		return "ate-power"
	case EventAteItem:
		return "ate-item"
	case EventAteGhost:
		return "ate-ghost"
	case EventDied:
		return "died"
	case EventMovedTile:
		return "moved-tile"
	case EventPowerUp:
		return "power-up"
	case EventItemSpawned:
		return "item-spawned"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a gameplay notification for audio and effects. X,Y is where it
// happened, in tile units.
type Event struct {
	Kind EventKind
	X, Y float64
}

func (e *Engine) emit(kind EventKind, x, y float64) {
	e.events = append(e.events, Event{Kind: kind, X: x, Y: y})
}

func (e *Engine) flushEvents() []Event {
	out := e.events
	e.events = nil
	return out
}
