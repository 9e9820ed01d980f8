package world

// Alive reports whether the actor can still act. Dead is terminal; an
// actor whose health reaches zero never returns to life.
func (e *Entity) Alive() bool {
	return e.Actor != nil && !e.Actor.Dead && e.Actor.Health > 0
}

// TakeDamage applies up to amount damage, clamped so health never goes
// negative. It returns the damage actually applied and whether the actor
// is now dead. Hitting a dead actor applies nothing and reports dead.
func (e *Entity) TakeDamage(amount int) (int, bool) {
	a := e.Actor
	if a.Dead {
		return 0, true
	}

	applied := min(amount, a.Health)
	a.Health -= applied

	if a.Health <= 0 {
		a.Health = 0
		a.Dead = true
		return applied, true
	}
	return applied, false
}

// Heal restores up to amount health, capped at MaxHealth, and returns the
// amount actually restored. Dead actors cannot be healed.
func (e *Entity) Heal(amount int) int {
	a := e.Actor
	if a.Dead {
		return 0
	}

	before := a.Health
	a.Health = min(a.Health+amount, a.MaxHealth)
	return a.Health - before
}
