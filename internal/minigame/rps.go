package minigame

import "github.com/rocketscienceinc/gamehub/internal/entity"

type Weapon int

const (
	Rock Weapon = iota
	Paper
	Scissors

	weaponCount = 3
)

func (that Weapon) String() string {
	switch that {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// beats maps each weapon to the one it defeats.
var beats = map[Weapon]Weapon{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// WeaponFromChoice - converts a 1-based menu choice to a weapon.
func WeaponFromChoice(choice int) (Weapon, bool) {
	weapon := Weapon(choice - 1)
	if weapon < Rock || weapon > Scissors {
		return Rock, false
	}

	return weapon, true
}

func RandomWeapon(rng Randomizer) Weapon {
	return Weapon(rng.IntN(weaponCount))
}

// Duel - judges the player's weapon against the CPU's.
func Duel(player, cpu Weapon) string {
	switch {
	case player == cpu:
		return entity.VerdictTie
	case beats[player] == cpu:
		return entity.VerdictWin
	default:
		return entity.VerdictDefeat
	}
}
