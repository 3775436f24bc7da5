package entities

type ItemType int

const (
	ItemNone ItemType = iota
	ItemSpeed
	ItemPhase
)

func (i ItemType) String() string {
	switch i {
	case ItemSpeed:
		return "SPEED BOOST"
	case ItemPhase:
		return "PHASE SHIFT"
	default:
		return "NONE"
	}
}
