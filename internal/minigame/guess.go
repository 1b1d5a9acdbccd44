package minigame

import "github.com/rocketscienceinc/gamehub/internal/apperror"

const (
	GuessMin = 1
	GuessMax = 100
)

type Hint int

const (
	HintCorrect Hint = iota
	HintTooLow
	HintTooHigh
)

// GuessingGame hides a number in [GuessMin, GuessMax] and counts attempts.
type GuessingGame struct {
	secret   int
	attempts int
	solved   bool
}

func NewGuessingGame(rng Randomizer) *GuessingGame {
	return &GuessingGame{secret: rng.IntN(GuessMax-GuessMin+1) + GuessMin}
}

// Guess - compares the guess with the secret; every call counts as an attempt.
func (that *GuessingGame) Guess(value int) (Hint, error) {
	if that.solved {
		return HintCorrect, apperror.ErrGameFinished
	}

	that.attempts++

	switch {
	case value < that.secret:
		return HintTooLow, nil
	case value > that.secret:
		return HintTooHigh, nil
	default:
		that.solved = true
		return HintCorrect, nil
	}
}

func (that *GuessingGame) Attempts() int {
	return that.attempts
}

func (that *GuessingGame) Solved() bool {
	return that.solved
}
