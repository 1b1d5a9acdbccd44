// Package minigame holds the rules of the small games next to tic-tac-toe.
// Everything here is free of I/O; randomness is injected.
package minigame

// Randomizer is satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}
