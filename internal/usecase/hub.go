package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/console"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/minigame"
)

const (
	menuExit = iota
	menuDice
	menuGuess
	menuTicTacToe
	menuRPS
	menuHangman
	menuScoreboard
)

type prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
}

type matchController interface {
	StartHumanVsHuman(ctx context.Context) (entity.Outcome, error)
	StartHumanVsAI(ctx context.Context) (entity.Outcome, error)
}

type statsService interface {
	Record(ctx context.Context, game entity.GameKind, verdict, detail string) error
	Scoreboard(ctx context.Context) ([]entity.ScoreLine, error)
}

type HangmanRules struct {
	Words []string
	Lives int
}

// GameHub is the main menu loop and the screens of every game.
type GameHub struct {
	logger *slog.Logger

	screen  *console.Screen
	input   prompter
	rng     minigame.Randomizer
	matches matchController
	stats   statsService
	hangman HangmanRules
}

func NewGameHub(
	logger *slog.Logger,
	screen *console.Screen,
	input prompter,
	rng minigame.Randomizer,
	matches matchController,
	stats statsService,
	hangman HangmanRules,
) *GameHub {
	return &GameHub{
		logger:  logger.With("component", "hub"),
		screen:  screen,
		input:   input,
		rng:     rng,
		matches: matches,
		stats:   stats,
		hangman: hangman,
	}
}

// Run - shows the main menu until the player exits or the input ends.
func (that *GameHub) Run(ctx context.Context) error {
	that.screen.Loading("INITIALIZING GAME HUB")

	for {
		that.screen.Page("MAIN MENU")
		that.screen.Option(menuDice, "Dice Roll Challenge", console.ColorBlue)
		that.screen.Option(menuGuess, "Secret Number Guessing", console.ColorBlue)
		that.screen.Option(menuTicTacToe, "Tic-Tac-Toe (PvP & PvCPU)", console.ColorBlue)
		that.screen.Option(menuRPS, "Rock, Paper, Scissors", console.ColorBlue)
		that.screen.Option(menuHangman, "Hangman (Word Survival)", console.ColorBlue)
		that.screen.Option(menuScoreboard, "Session Scoreboard", console.ColorBlue)
		that.screen.Divider()
		that.screen.Option(menuExit, "Exit Application", console.ColorRed)

		choice, err := that.input.ReadInt(ctx, "\n\tSelect Module > ", menuExit, menuScoreboard)
		if err != nil {
			return that.stop(err)
		}

		if choice == menuExit {
			that.screen.Say(console.ColorGreen, "\n\tTerminating session. Goodbye!")
			that.screen.Wait(that.screen.Delays().Notice)
			return nil
		}

		if err = that.open(ctx, choice); err != nil {
			return that.stop(err)
		}
	}
}

func (that *GameHub) open(ctx context.Context, choice int) error {
	switch choice {
	case menuDice:
		return that.playDice(ctx)
	case menuGuess:
		return that.playGuess(ctx)
	case menuTicTacToe:
		return that.playTicTacToe(ctx)
	case menuRPS:
		return that.playRPS(ctx)
	case menuHangman:
		return that.playHangman(ctx)
	case menuScoreboard:
		return that.showScoreboard(ctx)
	default:
		return fmt.Errorf("unknown menu choice %d", choice)
	}
}

// stop - closed input and cancellation end the session cleanly.
func (that *GameHub) stop(err error) error {
	switch {
	case errors.Is(err, apperror.ErrInputClosed):
		that.logger.Info("input closed, leaving hub")
		return nil
	case errors.Is(err, context.Canceled):
		that.logger.Info("session cancelled, leaving hub")
		return nil
	default:
		return err
	}
}

// record - a lost result never interrupts play.
func (that *GameHub) record(ctx context.Context, game entity.GameKind, verdict, detail string) {
	if err := that.stats.Record(ctx, game, verdict, detail); err != nil {
		that.logger.Error("failed to record result", "game", game, "error", err)
	}
}
