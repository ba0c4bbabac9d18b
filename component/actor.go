package component

import "github.com/lixenwraith/zombie-fighter/vmath"

// EntityID identifies an entity within one run; assigned in spawn order
type EntityID uint64

// Player is the single controllable entity
// HP stays within [0, max] through Damage and Heal
type Player struct {
	vmath.Rect
	HP int
}

// Damage subtracts n hit points, never below zero
func (p *Player) Damage(n int) {
	p.HP = max(0, p.HP-n)
}

// Heal adds n hit points, never above maxHP
func (p *Player) Heal(n, maxHP int) {
	p.HP = min(maxHP, p.HP+n)
}

// Alive reports whether the player still has hit points
func (p *Player) Alive() bool {
	return p.HP > 0
}

// Bullet travels right at a fixed per-frame speed
type Bullet struct {
	ID EntityID
	vmath.Rect
}

// Zombie walks left at a fixed per-frame speed
// Damages the player on contact, dies to the first bullet it touches
type Zombie struct {
	ID EntityID
	vmath.Rect
}

// HealthPack drifts left with the zombies and heals on pickup
type HealthPack struct {
	ID EntityID
	vmath.Rect
}
