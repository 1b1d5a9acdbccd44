package minigame

const DieFaces = 6

type DiceRoll struct {
	First  int
	Second int
}

// RollDice - throws two six-sided dice.
func RollDice(rng Randomizer) DiceRoll {
	return DiceRoll{
		First:  rng.IntN(DieFaces) + 1,
		Second: rng.IntN(DieFaces) + 1,
	}
}

func (that DiceRoll) IsDouble() bool {
	return that.First == that.Second
}
