package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/console"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/minigame"
)

func (that *GameHub) playDice(ctx context.Context) error {
	for {
		that.screen.Page("DICE SIMULATOR")
		that.screen.Write("\t[1] Roll Dice\n\t[0] Return\n")

		choice, err := that.input.ReadInt(ctx, "\n\tAction > ", 0, 1)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		that.screen.Say(console.ColorYellow, "\n\tRolling physics...")
		that.screen.Wait(that.screen.Delays().Roll)

		roll := minigame.RollDice(that.rng)
		that.screen.Say(console.ColorDefault, "\t[ DIE 1: %d ]   [ DIE 2: %d ]", roll.First, roll.Second)

		verdict := entity.VerdictNoMatch
		if roll.IsDouble() {
			verdict = entity.VerdictDoubles
			that.screen.Say(console.ColorGreen, "\n\t>>> CRITICAL HIT! DOUBLES! <<<")
		} else {
			that.screen.Say(console.ColorRed, "\n\tNo match.")
		}
		that.record(ctx, entity.GameDice, verdict, fmt.Sprintf("%d+%d", roll.First, roll.Second))

		if err = that.screen.Pause(ctx, that.input); err != nil {
			return err
		}
	}
}

func (that *GameHub) playGuess(ctx context.Context) error {
	that.screen.Page("BINARY SEARCH GAME")
	that.screen.Say(console.ColorDefault, "\tTarget Locked: Number between %d-%d.", minigame.GuessMin, minigame.GuessMax)

	game := minigame.NewGuessingGame(that.rng)
	for !game.Solved() {
		value, err := that.input.ReadInt(ctx, "\n\tInput Guess > ", minigame.GuessMin, minigame.GuessMax)
		if err != nil {
			return err
		}

		hint, err := game.Guess(value)
		if err != nil {
			return fmt.Errorf("guess: %w", err)
		}

		switch hint {
		case minigame.HintTooLow:
			that.screen.Say(console.ColorYellow, "\t>>> Too Low. Adjust upwards.")
		case minigame.HintTooHigh:
			that.screen.Say(console.ColorYellow, "\t>>> Too High. Adjust downwards.")
		case minigame.HintCorrect:
			that.screen.Say(console.ColorGreen, "\n\t[SUCCESS] Target neutralized in %d attempts!", game.Attempts())
		}
	}

	that.record(ctx, entity.GameGuess, entity.VerdictSolved, fmt.Sprintf("%d attempts", game.Attempts()))

	return that.screen.Pause(ctx, that.input)
}

func (that *GameHub) playTicTacToe(ctx context.Context) error {
	for {
		that.screen.Page("STRATEGY ARENA (TTT)")
		that.screen.Write("\t[1] PvHuman\n\t[2] PvAI (CPU)\n\t[0] Return\n")

		choice, err := that.input.ReadInt(ctx, "\n\tSelect Mode > ", 0, 2)
		if err != nil {
			return err
		}

		var (
			outcome entity.Outcome
			game    entity.GameKind
		)

		switch choice {
		case 0:
			return nil
		case 1:
			game = entity.GameTicTacToePvP
			outcome, err = that.matches.StartHumanVsHuman(ctx)
		default:
			game = entity.GameTicTacToePvAI
			outcome, err = that.matches.StartHumanVsAI(ctx)
		}
		if err != nil {
			return fmt.Errorf("tic-tac-toe match: %w", err)
		}

		that.record(ctx, game, outcome.String(), "")

		if err = that.screen.Pause(ctx, that.input); err != nil {
			return err
		}
	}
}

func (that *GameHub) playRPS(ctx context.Context) error {
	for {
		that.screen.Page("R.P.S BATTLE")
		that.screen.Write("\t[1] Rock\n\t[2] Paper\n\t[3] Scissors\n\t[0] Return\n")

		choice, err := that.input.ReadInt(ctx, "\n\tWeapon Choice > ", 0, 3)
		if err != nil {
			return err
		}

		player, ok := minigame.WeaponFromChoice(choice)
		if !ok {
			return nil
		}

		cpu := minigame.RandomWeapon(that.rng)
		that.screen.Say(console.ColorDefault, "\n\tYou deployed: %s", player)
		that.screen.Say(console.ColorDefault, "\tCPU deployed: %s", cpu)
		that.screen.Wait(that.screen.Delays().Notice)
		that.screen.Divider()

		verdict := minigame.Duel(player, cpu)
		switch verdict {
		case entity.VerdictTie:
			that.screen.Say(console.ColorYellow, "\n\tEFFECT: NO DAMAGE (TIE)")
		case entity.VerdictWin:
			that.screen.Say(console.ColorGreen, "\n\tEFFECT: CRITICAL HIT (WIN)")
		default:
			that.screen.Say(console.ColorRed, "\n\tEFFECT: DEFEAT")
		}
		that.record(ctx, entity.GameRPS, verdict, player.String()+" vs "+cpu.String())

		if err = that.screen.Pause(ctx, that.input); err != nil {
			return err
		}
	}
}

func (that *GameHub) playHangman(ctx context.Context) error {
	game := minigame.NewHangman(minigame.PickWord(that.rng, that.hangman.Words), that.hangman.Lives)

	for !game.IsOver() {
		that.screen.Page("HANGMAN SURVIVAL")
		that.screen.Gallows(game.Lives())
		that.screen.Say(console.ColorDefault, "\n\tLives: %d", game.Lives())
		that.screen.Write("\tWord:  ")
		that.screen.Say(console.ColorBlue, "%s", spaced([]rune(game.Masked())))
		that.screen.Say(console.ColorDefault, "\n\tHistory: %s", spaced(game.History()))

		input, err := that.input.ReadLine(ctx, "\n\tEnter Char > ")
		if err != nil {
			return err
		}

		found, err := game.Guess(input)
		switch {
		case errors.Is(err, apperror.ErrSingleLetter):
			that.screen.Say(console.ColorDefault, "\t[!] Single letter input required.")
			that.screen.Wait(that.screen.Delays().Notice)
			continue
		case errors.Is(err, apperror.ErrAlreadyGuessed):
			that.screen.Say(console.ColorDefault, "\t[!] Already attempted.")
			that.screen.Wait(that.screen.Delays().Notice)
			continue
		case err != nil:
			return fmt.Errorf("hangman guess: %w", err)
		}

		if found {
			that.screen.Say(console.ColorGreen, "\n\tMatch Found!")
		} else {
			that.screen.Say(console.ColorRed, "\n\tIncorrect!")
		}
		that.screen.Wait(that.screen.Delays().Notice)
	}

	if game.IsWon() {
		that.screen.Page("MISSION ACCOMPLISHED")
		that.screen.Gallows(game.Lives())
		that.screen.Say(console.ColorGreen, "\n\tYou survived! Word: %s", game.Word())
		that.record(ctx, entity.GameHangman, entity.VerdictSurvived, fmt.Sprintf("%s, %d lives left", game.Word(), game.Lives()))
	} else {
		that.screen.Page("MISSION FAILED")
		that.screen.Gallows(game.Lives())
		that.screen.Say(console.ColorRed, "\n\tEliminated. Word: %s", game.Word())
		that.record(ctx, entity.GameHangman, entity.VerdictEliminated, game.Word())
	}

	return that.screen.Pause(ctx, that.input)
}

func (that *GameHub) showScoreboard(ctx context.Context) error {
	that.screen.Page("SESSION SCOREBOARD")

	lines, err := that.stats.Scoreboard(ctx)
	switch {
	case err != nil:
		that.logger.Error("failed to build scoreboard", "error", err)
		that.screen.Say(console.ColorRed, "\t[!] Scoreboard unavailable.")
	case len(lines) == 0:
		that.screen.Say(console.ColorDefault, "\tNo games finished yet.")
	default:
		for _, line := range lines {
			that.screen.Say(console.ColorDefault, "\t%-16s %-12s %d", line.Game, line.Verdict, line.Count)
		}
	}

	return that.screen.Pause(ctx, that.input)
}

func spaced(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}

	return strings.Join(parts, " ")
}
