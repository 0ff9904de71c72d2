package invaders

// effectTimers holds the expiry time of each timed power-up on the session
// clock. An unarmed timer never fires.
type effectTimers struct {
	rapidFireUntil float64
	rapidFireArmed bool
	shieldUntil    float64
	shieldArmed    bool
}

// applyPowerUp grants the effect of a collected power-up. Collecting the same
// type again re-arms its expiry from the current clock.
func (s *Session) applyPowerUp(kind PowerUpType) {
	p := &s.world.Player
	until := s.world.ClockMs + s.cfg.PowerUps.DurationMs

	switch kind {
	case PowerUpRapidFire:
		p.RapidFire = true
		p.CooldownMs = s.cfg.Player.RapidFireCooldownMs
		s.effects.rapidFireUntil = until
		s.effects.rapidFireArmed = true
	case PowerUpShield:
		p.Shield = true
		s.effects.shieldUntil = until
		s.effects.shieldArmed = true
	}
}

// expireEffects ends effects whose time is up. Expiry only assigns the
// default values, so it is harmless when the effect already ended another way
// (a shield consumed by a hit, for example).
func (s *Session) expireEffects() {
	if s.state != StateRunning {
		return
	}
	p := &s.world.Player
	now := s.world.ClockMs

	if s.effects.rapidFireArmed && now >= s.effects.rapidFireUntil {
		p.RapidFire = false
		p.CooldownMs = s.cfg.Player.ShotCooldownMs
		s.effects.rapidFireArmed = false
	}
	if s.effects.shieldArmed && now >= s.effects.shieldUntil {
		p.Shield = false
		s.effects.shieldArmed = false
	}
}

// EffectRemainingMs returns how long the given effect has left, or 0 when it
// is not active.
func (s *Session) EffectRemainingMs(kind PowerUpType) float64 {
	if s == nil {
		return 0
	}
	var until float64
	switch kind {
	case PowerUpRapidFire:
		if !s.effects.rapidFireArmed {
			return 0
		}
		until = s.effects.rapidFireUntil
	case PowerUpShield:
		if !s.effects.shieldArmed || !s.world.Player.Shield {
			return 0
		}
		until = s.effects.shieldUntil
	}
	if remaining := until - s.world.ClockMs; remaining > 0 {
		return remaining
	}
	return 0
}
