package invaders

// AdvancePlayer applies the player's velocity and keeps the ship fully inside
// [0, viewportWidth].
func AdvancePlayer(p Player, viewportWidth float64) Player {
	p.Box.X += p.VX
	if p.Box.X < 0 {
		p.Box.X = 0
	}
	if p.Box.Right() > viewportWidth {
		p.Box.X = viewportWidth - p.Box.W
	}
	return p
}

// EnemyParams holds the per-tick inputs of AdvanceEnemies.
type EnemyParams struct {
	DeltaMs         float64
	ShootIntervalMs float64
	ViewportWidth   float64
	Descent         float64 // Drop applied on the move after an edge bounce
}

// AdvanceEnemies moves every enemy by its archetype-scaled share of the
// formation step plus the pending drop, runs shooter timers and returns the
// formation for the next tick.
//
// Edge detection runs after all enemies have moved. A bounce reverses the
// direction and arms the drop; both take effect on the next call.
func AdvanceEnemies(enemies []Enemy, f Formation, p EnemyParams, spawnBullet func(x, y float64)) Formation {
	for i := range enemies {
		e := &enemies[i]
		arch := e.Kind.Archetype()

		e.Box = e.Box.Translate(arch.SpeedMultiplier*f.Dx(), f.Drop)

		if !arch.CanShoot {
			continue
		}
		e.ShootTimerMs += p.DeltaMs
		if e.ShootTimerMs > p.ShootIntervalMs {
			if spawnBullet != nil {
				spawnBullet(e.Box.CenterX(), e.Box.Bottom())
			}
			e.ShootTimerMs = 0
		}
	}

	next := f
	next.Drop = 0
	for _, e := range enemies {
		if e.Box.X < 0 || e.Box.Right() > p.ViewportWidth {
			next.Dir = -f.Dir
			next.Drop = p.Descent
			break
		}
	}
	return next
}

// AdvanceProjectiles moves player bullets up and enemy bullets down by speed
// and drops any whose position has left [0, viewportHeight].
func AdvanceProjectiles(playerBullets, enemyBullets []Projectile, speed, viewportHeight float64) ([]Projectile, []Projectile) {
	return moveProjectiles(playerBullets, -speed, viewportHeight),
		moveProjectiles(enemyBullets, speed, viewportHeight)
}

func moveProjectiles(bullets []Projectile, dy, viewportHeight float64) []Projectile {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Box.Y += dy
		if b.Box.Y < 0 || b.Box.Y > viewportHeight {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// AdvancePowerUps moves power-ups down by fallSpeed and drops those that left
// the viewport.
func AdvancePowerUps(powerUps []PowerUp, fallSpeed, viewportHeight float64) []PowerUp {
	kept := powerUps[:0]
	for _, p := range powerUps {
		p.Box.Y += fallSpeed
		if p.Box.Y > viewportHeight {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
