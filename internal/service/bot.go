package service

import (
	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/entity"
)

// BotService picks the automated opponent's cell. The heuristic is fixed:
// take the center when it is free, otherwise a uniformly random empty cell.
// It never blocks and never completes its own line.
type BotService interface {
	ChooseMove(board *entity.Board) (int, error)
}

// Randomizer is satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}

type botService struct {
	rng Randomizer
}

func NewBotService(rng Randomizer) BotService {
	return &botService{
		rng: rng,
	}
}

// ChooseMove - returns a 1-based cell that is empty on the given board.
func (that *botService) ChooseMove(board *entity.Board) (int, error) {
	if board.At(entity.CenterCell) == entity.EmptyCell {
		return entity.CenterCell + 1, nil
	}

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rng.IntN(len(availableCells))]

	return chosenCell + 1, nil
}
