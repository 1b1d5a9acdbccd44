package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/entity"
)

type Mode string

const (
	ModeHumanVsHuman Mode = "pvp"
	ModeHumanVsAI    Mode = "pvai"
)

const (
	promptHumanVsHuman = "Select Sector (1-9) > "
	promptHumanVsAI    = "Your Command (1-9) > "
)

type moveReader interface {
	ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
}

type botService interface {
	ChooseMove(board *entity.Board) (int, error)
}

// View receives match events so the presentation layer can draw them.
// The controller never depends on what the view does with them.
type View interface {
	ShowTurn(mode Mode, board *entity.Board, marker entity.Marker)
	ShowOccupied(mode Mode, cell int)
	ShowBotThinking()
	ShowResult(mode Mode, board *entity.Board, outcome entity.Outcome)
}

type GameController struct {
	logger *slog.Logger

	input moveReader
	bot   botService
	view  View
}

func NewGameController(logger *slog.Logger, input moveReader, bot botService, view View) *GameController {
	if view == nil {
		view = NopView{}
	}

	return &GameController{
		logger: logger.With("component", "tictactoe"),
		input:  input,
		bot:    bot,
		view:   view,
	}
}

// StartHumanVsHuman - runs a match between two people sharing the input, X first.
// A move into an occupied cell does not consume the turn.
func (that *GameController) StartHumanVsHuman(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("mode", ModeHumanVsHuman)

	board := entity.NewBoard()
	current := entity.PlayerX

	for {
		that.view.ShowTurn(ModeHumanVsHuman, board, current)

		cell, err := that.input.ReadInt(ctx, promptHumanVsHuman, entity.FirstCell, entity.LastCell)
		if err != nil {
			return entity.InProgress, fmt.Errorf("failed to read move of player %s: %w", current, err)
		}

		if !board.Place(cell, current) {
			log.Debug("cell occupied", "cell", cell, "player", current.String())
			that.view.ShowOccupied(ModeHumanVsHuman, cell)
			continue
		}

		if outcome := board.Evaluate(); outcome.IsTerminal() {
			log.Info("match finished", "outcome", outcome.String(), "board", board.String())
			that.view.ShowResult(ModeHumanVsHuman, board, outcome)
			return outcome, nil
		}

		current = current.Opponent()
	}
}

// StartHumanVsAI - runs a match where the human plays X and moves first,
// and the bot answers with O after every accepted human move.
func (that *GameController) StartHumanVsAI(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("mode", ModeHumanVsAI)

	board := entity.NewBoard()
	human, machine := entity.PlayerX, entity.PlayerO

	for {
		that.view.ShowTurn(ModeHumanVsAI, board, human)

		cell, err := that.input.ReadInt(ctx, promptHumanVsAI, entity.FirstCell, entity.LastCell)
		if err != nil {
			return entity.InProgress, fmt.Errorf("failed to read human move: %w", err)
		}

		if !board.Place(cell, human) {
			log.Debug("cell occupied", "cell", cell)
			that.view.ShowOccupied(ModeHumanVsAI, cell)
			continue
		}

		if outcome := board.Evaluate(); outcome.IsTerminal() {
			return that.finish(log, ModeHumanVsAI, board, outcome), nil
		}

		that.view.ShowBotThinking()

		botCell, err := that.bot.ChooseMove(board)
		if err != nil {
			return entity.InProgress, fmt.Errorf("bot failed to choose move: %w", err)
		}

		// the bot only picks empty cells
		if !board.Place(botCell, machine) {
			return entity.InProgress, fmt.Errorf("bot failed to make turn: %w: cell %d", apperror.ErrCellOccupied, botCell)
		}

		log.Debug("bot moved", "cell", botCell)

		if outcome := board.Evaluate(); outcome.IsTerminal() {
			return that.finish(log, ModeHumanVsAI, board, outcome), nil
		}
	}
}

func (that *GameController) finish(log *slog.Logger, mode Mode, board *entity.Board, outcome entity.Outcome) entity.Outcome {
	log.Info("match finished", "outcome", outcome.String(), "board", board.String())
	that.view.ShowResult(mode, board, outcome)

	return outcome
}

// NopView ignores every match event.
type NopView struct{}

func (NopView) ShowTurn(Mode, *entity.Board, entity.Marker)    {}
func (NopView) ShowOccupied(Mode, int)                         {}
func (NopView) ShowBotThinking()                               {}
func (NopView) ShowResult(Mode, *entity.Board, entity.Outcome) {}
