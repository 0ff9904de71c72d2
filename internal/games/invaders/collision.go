package invaders

// Kill records an enemy destroyed by a player bullet.
type Kill struct {
	X, Y float64 // Enemy position at the moment it was hit
	Kind ArchetypeID
}

// Collisions is the outcome of one detection pass.
type Collisions struct {
	Kills      []Kill
	PlayerHits int           // Enemy bullets that struck the player
	Pickups    []PowerUpType // Power-ups collected, in roster order
}

// ResolveCollisions detects every overlapping pair in w, removes the entities
// involved and reports what happened. Effects (score, drops, shield, game over)
// are left to the caller.
//
// Detection marks entities first and filters the rosters afterwards, so an
// entity consumed by one pair is never matched by another in the same pass.
func ResolveCollisions(w *World) Collisions {
	var out Collisions

	bulletDead := make([]bool, len(w.PlayerBullets))
	enemyDead := make([]bool, len(w.Enemies))
	for bi, b := range w.PlayerBullets {
		for ei, e := range w.Enemies {
			if enemyDead[ei] || !b.Box.Intersects(e.Box) {
				continue
			}
			bulletDead[bi] = true
			enemyDead[ei] = true
			out.Kills = append(out.Kills, Kill{X: e.Box.X, Y: e.Box.Y, Kind: e.Kind})
			break
		}
	}
	w.PlayerBullets = filterMarked(w.PlayerBullets, bulletDead)
	w.Enemies = filterMarked(w.Enemies, enemyDead)

	player := w.Player.Box
	hitDead := make([]bool, len(w.EnemyBullets))
	for i, b := range w.EnemyBullets {
		if b.Box.Intersects(player) {
			hitDead[i] = true
			out.PlayerHits++
		}
	}
	w.EnemyBullets = filterMarked(w.EnemyBullets, hitDead)

	pickedUp := make([]bool, len(w.PowerUps))
	for i, p := range w.PowerUps {
		if p.Box.Intersects(player) {
			pickedUp[i] = true
			out.Pickups = append(out.Pickups, p.Type)
		}
	}
	w.PowerUps = filterMarked(w.PowerUps, pickedUp)

	return out
}

// filterMarked keeps the items whose mark is false, reusing the backing array.
func filterMarked[T any](items []T, marked []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !marked[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
