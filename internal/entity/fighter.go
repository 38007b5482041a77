package entity

import (
	"fmt"

	"github.com/samdwyer/floorcrawl/internal/msglog"
)

// DeathCallback selects the terminal transformation run when a fighter dies.
type DeathCallback int

const (
	MonsterDeath DeathCallback = iota
	PlayerDeath
)

// String returns the catalog spelling of the callback.
func (d DeathCallback) String() string {
	switch d {
	case PlayerDeath:
		return "player"
	case MonsterDeath:
		return "monster"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DeathCallback) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DeathCallback) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "monster":
		*d = MonsterDeath
	case "player":
		*d = PlayerDeath
	default:
		return fmt.Errorf("unknown death callback %q", text)
	}
	return nil
}

// Fighter is the combat component.
type Fighter struct {
	MaxHP   int           `json:"max_hp"`
	HP      int           `json:"hp"`
	Defense int           `json:"defense"`
	Power   int           `json:"power"`
	OnDeath DeathCallback `json:"on_death"`
}

// TakeDamage reduces HP and returns the damage actually taken.
// Amounts <= 0 are ignored. When HP reaches 0 the object dies and its
// death callback runs; this happens once, on the alive to dead transition.
func (o *Object) TakeDamage(amount int, log *msglog.Log) int {
	if o.Fighter == nil || amount <= 0 {
		return 0
	}
	f := o.Fighter
	actual := amount
	if actual > f.HP {
		actual = f.HP
	}
	f.HP -= actual
	if f.HP == 0 && o.Alive {
		o.Alive = false
		o.die(f.OnDeath, log)
	}
	return actual
}

// Heal restores HP up to MaxHP and returns the amount actually healed.
func (o *Object) Heal(amount int) int {
	if o.Fighter == nil || amount <= 0 {
		return 0
	}
	f := o.Fighter
	actual := amount
	if f.HP+actual > f.MaxHP {
		actual = f.MaxHP - f.HP
	}
	f.HP += actual
	return actual
}

// Attack resolves one melee blow against target.
// Damage is the attacker's power less the target's defense and never heals.
func (o *Object) Attack(target *Object, log *msglog.Log) int {
	damage := 0
	if o.Fighter != nil {
		damage = o.Fighter.Power
	}
	if target.Fighter != nil {
		damage -= target.Fighter.Defense
	}
	if damage <= 0 {
		log.Info("%s attacks %s but it has no effect!", o.Name, target.Name)
		return 0
	}
	log.Info("%s attacks %s for %d hit points.", o.Name, target.Name, damage)
	return target.TakeDamage(damage, log)
}

func (o *Object) die(cb DeathCallback, log *msglog.Log) {
	switch cb {
	case PlayerDeath:
		log.Alert("You died!")
		o.Symbol = '%'
		o.Color = ColorDarkRed
	case MonsterDeath:
		log.Status("%s is dead!", o.Name)
		o.Symbol = '%'
		o.Color = ColorDarkRed
		o.Blocks = BlocksNo
		o.BlocksView = BlocksNo
		o.Fighter = nil
		o.Ai = nil
		o.Name = "remains of " + o.Name
	}
}
