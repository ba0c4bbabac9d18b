package parameter

import "time"

// Player
const (
	// PlayerStartX/Y is the top-left corner of the player on a fresh run
	PlayerStartX = 50.0
	PlayerStartY = 300.0

	// PlayerWidth/Height is the player hitbox in surface units
	PlayerWidth  = 50.0
	PlayerHeight = 50.0

	// PlayerMaxHP caps hit points; HP is clamped to [0, PlayerMaxHP]
	PlayerMaxHP = 300

	// PlayerStep is the horizontal translation per key press
	PlayerStep = 15.0

	// PlayerVerticalStep is the vertical translation per key press
	PlayerVerticalStep = 15.0
)

// Bullet
const (
	BulletWidth  = 10.0
	BulletHeight = 5.0

	// BulletOffsetY places the muzzle relative to the player top edge
	BulletOffsetY = 20.0

	// BulletSpeed is the rightward movement per frame
	BulletSpeed = 20.0
)

// Zombie
const (
	ZombieWidth  = 50.0
	ZombieHeight = 50.0

	// ZombieSpeed is the leftward movement per frame
	ZombieSpeed = 1.5

	// ZombieDamage is subtracted from player HP on contact
	ZombieDamage = 3

	// KillScore is added per zombie shot down
	KillScore = 10

	// MaxZombies caps concurrently alive zombies, 0 disables the cap
	MaxZombies = 7

	// ZombieSpawnInterval is the fixed zombie spawner period
	ZombieSpawnInterval = 1 * time.Second
)

// Health Pack
const (
	HealthPackWidth  = 30.0
	HealthPackHeight = 30.0

	// HealthPackSpeed is the leftward movement per frame
	HealthPackSpeed = 1.5

	// HealthPackHeal is added to player HP on pickup, clamped to PlayerMaxHP
	HealthPackHeal = 20

	// HealthPackSpawnInterval is the fixed health pack spawner period
	HealthPackSpawnInterval = 10 * time.Second
)
