package game

import "time"

// BulletKind identifies who fired a bullet and how it is drawn
type BulletKind int

const (
	BulletPlayerMain BulletKind = iota
	BulletPlayerMissile
	BulletEnemyNormal
	BulletBossMain
	BulletBossSpread
)

func (k BulletKind) String() string {
	switch k {
	case BulletPlayerMain:
		return "player-main"
	case BulletPlayerMissile:
		return "player-missile"
	case BulletEnemyNormal:
		return "enemy-normal"
	case BulletBossMain:
		return "boss-main"
	case BulletBossSpread:
		return "boss-spread"
	default:
		return "unknown"
	}
}

// Hostile reports whether the bullet was fired by an enemy
func (k BulletKind) Hostile() bool {
	return k >= BulletEnemyNormal
}

// CanShoot reports whether the weapon is off cooldown. The comparison is
// strict and runs on frame timestamps, so fire rate does not depend on frame rate.
func (wc WeaponConfig) CanShoot(now, lastShot time.Duration) bool {
	return now-lastShot > wc.Cooldown
}

func newBullet(kind BulletKind, x, y, w, h, vx, vy, damage float64) *Bullet {
	return &Bullet{
		Body: Body{
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			VX:     vx,
			VY:     vy,
			HP:     1,
			MaxHP:  1,
		},
		Damage: damage,
		Kind:   kind,
		Active: true,
	}
}
