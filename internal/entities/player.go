package entities

type Player struct {
	Entity
	Inventory   ItemType
	Effect      ItemType
	EffectTimer float64
}

// HasEffect reports whether the given power-up is currently running.
func (p *Player) HasEffect(it ItemType) bool {
	return it != ItemNone && p.Effect == it
}
