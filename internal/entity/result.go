package entity

import "time"

type GameKind string

const (
	GameDice          GameKind = "dice"
	GameGuess         GameKind = "guess"
	GameTicTacToePvP  GameKind = "tictactoe-pvp"
	GameTicTacToePvAI GameKind = "tictactoe-pvai"
	GameRPS           GameKind = "rps"
	GameHangman       GameKind = "hangman"
)

// Verdicts recorded for the games that are not tic-tac-toe.
const (
	VerdictDoubles    = "doubles"
	VerdictNoMatch    = "no-match"
	VerdictSolved     = "solved"
	VerdictWin        = "win"
	VerdictTie        = "tie"
	VerdictDefeat     = "defeat"
	VerdictSurvived   = "survived"
	VerdictEliminated = "eliminated"
)

// Result is one finished game of the current session.
type Result struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Game      GameKind  `json:"game"`
	Verdict   string    `json:"verdict"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// ScoreLine is an aggregated row of the session scoreboard.
type ScoreLine struct {
	Game    GameKind `json:"game"`
	Verdict string   `json:"verdict"`
	Count   int      `json:"count"`
}
