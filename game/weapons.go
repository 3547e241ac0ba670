package game

import "time"

// firePlayerWeapons auto-fires the main gun and, while the missile key is
// held, the missile pods. Each weapon is gated by its own cooldown.
func (s *Simulation) firePlayerWeapons(now time.Duration, keys Keys) {
	p := &s.world.Player

	if gun := s.cfg.MainGun; gun.CanShoot(now, p.LastShot) {
		w, h := gun.BulletWidth, gun.BulletHeight
		s.addBullet(newBullet(BulletPlayerMain, p.X+p.Width/2-w/2, p.Y, w, h, 0, -gun.Speed, gun.Damage))
		s.addBullet(newBullet(BulletPlayerMain, p.X+w, p.Y+h, w, h, 0, -gun.Speed, gun.Damage))
		s.addBullet(newBullet(BulletPlayerMain, p.X+p.Width-2*w, p.Y+h, w, h, 0, -gun.Speed, gun.Damage))
		p.LastShot = now
	}

	if pod := s.cfg.Missile; keys.Has(KeyMissile) && pod.CanShoot(now, p.LastMissile) {
		w, h := pod.BulletWidth, pod.BulletHeight
		y := p.Y + h/2
		s.addBullet(newBullet(BulletPlayerMissile, p.X, y, w, h, -pod.SideSpeed, -pod.Speed, pod.Damage))
		s.addBullet(newBullet(BulletPlayerMissile, p.X+p.Width-w, y, w, h, pod.SideSpeed, -pod.Speed, pod.Damage))
		p.LastMissile = now
	}
}

// fireEnemyShot drops a single bullet straight down from an enemy's nose
func (s *Simulation) fireEnemyShot(e *Enemy) {
	gun := s.cfg.EnemyGun
	size := gun.BulletSize
	s.addBullet(newBullet(BulletEnemyNormal, e.X+e.Width/2-size/2, e.Y+e.Height, size, size, 0, gun.Speed, gun.Damage))
}

func (s *Simulation) addBullet(b *Bullet) {
	s.world.Bullets = append(s.world.Bullets, b)
}
