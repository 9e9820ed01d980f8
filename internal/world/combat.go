package world

import "fmt"

const defaultWeaponDamage = 1

// AttackResult reports the outcome of a single attack.
type AttackResult struct {
	Hit     bool
	Damage  int
	Message string
}

// Attack resolves one swing by attacker against target, optionally with a
// weapon. Base damage is the attacker's strength plus the weapon's
// "damage" property when the weapon carries the weapon flag; the applied
// damage is a uniform draw from [base/2, base*2] inclusive. Attacks by or
// against dead actors degrade to zero-damage no-ops with a descriptive
// message.
func Attack(attacker, target, weapon *Entity, r Roller) AttackResult {
	if !attacker.Alive() {
		return AttackResult{Message: "You are dead and cannot attack."}
	}
	if !target.Alive() {
		return AttackResult{Message: fmt.Sprintf("The %s is already dead.", target.ShortDesc)}
	}

	base := attacker.Actor.Strength
	if weapon != nil && weapon.HasFlag(FlagWeapon) {
		bonus := defaultWeaponDamage
		if found, err := weapon.Properties.Get("damage", &bonus); err != nil || !found {
			bonus = defaultWeaponDamage
		}
		base += bonus
	}

	lo, hi := base/2, base*2
	damage := lo + r.IntN(hi-lo+1)

	applied, died := target.TakeDamage(damage)

	var msg string
	switch {
	case died:
		msg = fmt.Sprintf("The %s is killed!", target.ShortDesc)
	case applied > 0:
		msg = fmt.Sprintf("The %s %s the %s!", attacker.ShortDesc, damageVerb(applied), target.ShortDesc)
	default:
		msg = "The attack misses!"
	}

	return AttackResult{
		Hit:     applied > 0,
		Damage:  applied,
		Message: msg,
	}
}

var damageVerbs = []struct {
	maxDamage int
	verb      string
}{
	{2, "barely scratches"},
	{4, "nicks"},
	{6, "hurts"},
	{10, "hits"},
	{14, "hits hard"},
	{19, "pummels"},
	{24, "thrashes"},
	{30, "mauls"},
	{40, "decimates"},
}

// damageVerb returns the third-person verb for a nonzero damage amount.
func damageVerb(damage int) string {
	for _, v := range damageVerbs {
		if damage <= v.maxDamage {
			return v.verb
		}
	}
	return "devastates"
}
