package apperror

import "errors"

var (
	ErrInputClosed      = errors.New("input stream closed")
	ErrInputRequired    = errors.New("input required")
	ErrInvalidFormat    = errors.New("invalid format, numbers only")
	ErrOverflow         = errors.New("number overflow")
	ErrOutOfRange       = errors.New("number out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrSingleLetter     = errors.New("single letter input required")
	ErrAlreadyGuessed   = errors.New("letter already attempted")
	ErrGameFinished     = errors.New("game is already finished")
)
