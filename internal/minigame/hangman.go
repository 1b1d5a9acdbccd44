package minigame

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

const (
	DefaultLives = 6
	maskRune     = '_'
)

var DefaultWords = []string{"PROGRAMMING", "COMPUTER", "KEYBOARD", "DEVELOPER", "ALGORITHM", "VARIABLE", "POINTER"}

type Hangman struct {
	word    []rune
	masked  []rune
	lives   int
	guessed []rune
}

func NewHangman(word string, lives int) *Hangman {
	secret := []rune(strings.ToUpper(word))
	masked := make([]rune, len(secret))
	for i := range masked {
		masked[i] = maskRune
	}

	return &Hangman{
		word:   secret,
		masked: masked,
		lives:  lives,
	}
}

// ValidWord - reports whether word can be played: non-empty and made of A-Z letters only, in any case.
func ValidWord(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !isASCIILetter(r) {
			return false
		}
	}

	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// PickWord - chooses one word uniformly from the list.
func PickWord(rng Randomizer, words []string) string {
	return words[rng.IntN(len(words))]
}

// Guess - reveals every occurrence of a single letter.
// A miss costs a life; a repeated letter costs nothing and is reported as an error.
func (that *Hangman) Guess(input string) (bool, error) {
	if that.IsOver() {
		return false, apperror.ErrGameFinished
	}

	runes := []rune(strings.TrimSpace(input))
	if len(runes) != 1 || !isASCIILetter(runes[0]) {
		return false, fmt.Errorf("%w: %q", apperror.ErrSingleLetter, input)
	}

	letter := unicode.ToUpper(runes[0])
	for _, previous := range that.guessed {
		if previous == letter {
			return false, fmt.Errorf("%w: %c", apperror.ErrAlreadyGuessed, letter)
		}
	}
	that.guessed = append(that.guessed, letter)

	found := false
	for i, r := range that.word {
		if r == letter {
			that.masked[i] = letter
			found = true
		}
	}

	if !found {
		that.lives--
	}

	return found, nil
}

func (that *Hangman) Masked() string {
	return string(that.masked)
}

func (that *Hangman) Word() string {
	return string(that.word)
}

func (that *Hangman) Lives() int {
	return that.lives
}

func (that *Hangman) History() []rune {
	return append([]rune(nil), that.guessed...)
}

func (that *Hangman) IsWon() bool {
	return string(that.masked) == string(that.word)
}

func (that *Hangman) IsLost() bool {
	return that.lives <= 0
}

func (that *Hangman) IsOver() bool {
	return that.IsWon() || that.IsLost()
}
