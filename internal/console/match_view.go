package console

import (
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/tictactoe"
)

// MatchView draws tic-tac-toe matches on a Screen.
type MatchView struct {
	screen *Screen
}

func NewMatchView(screen *Screen) *MatchView {
	return &MatchView{screen: screen}
}

func (that *MatchView) ShowTurn(mode tictactoe.Mode, board *entity.Board, marker entity.Marker) {
	if mode == tictactoe.ModeHumanVsAI {
		that.screen.Page("MAN VS MACHINE")
		that.screen.Board(board)
		return
	}

	that.screen.Page("PvP MATCH")
	that.screen.Board(board)
	that.screen.Say(ColorDefault, "\tPlayer %s's turn.", marker)
}

func (that *MatchView) ShowOccupied(mode tictactoe.Mode, _ int) {
	if mode == tictactoe.ModeHumanVsAI {
		that.screen.Say(ColorRed, "\n\tSector Invalid!")
	} else {
		that.screen.Say(ColorRed, "\tSector Occupied!")
	}
	that.screen.Wait(that.screen.Delays().Notice)
}

func (that *MatchView) ShowBotThinking() {
	that.screen.Say(ColorDefault, "\n\tAI Calculating...")
	that.screen.Wait(that.screen.Delays().AIThink)
}

func (that *MatchView) ShowResult(mode tictactoe.Mode, board *entity.Board, outcome entity.Outcome) {
	if mode == tictactoe.ModeHumanVsAI {
		that.screen.Page("GAME RESULT")
	} else {
		that.screen.Page("GAME OVER")
	}
	that.screen.Board(board)

	color, message := ResultMessage(mode, outcome)
	that.screen.Say(color, "\n\t%s", message)
}

// ResultMessage - the closing line of a finished match.
func ResultMessage(mode tictactoe.Mode, outcome entity.Outcome) (Color, string) {
	if mode == tictactoe.ModeHumanVsAI {
		switch outcome {
		case entity.XWins:
			return ColorGreen, "HUMANITY WINS!"
		case entity.OWins:
			return ColorRed, "MACHINE DOMINATION!"
		default:
			return ColorYellow, "TACTICAL DRAW."
		}
	}

	if outcome == entity.Draw {
		return ColorYellow, "STALEMATE (DRAW)!"
	}

	return ColorGreen, "PLAYER " + outcome.Winner().String() + " DOMINATED!"
}
