// Package game layers terminal-state detection, game history and clocks
// on top of the board core.
package game

import (
	"github.com/smithy-chess/smithy/internal/board"
)

// State classifies a position as still playing, won or drawn. There is no
// lose state: a win for one player is a loss for the other.
type State uint8

const (
	Continue State = iota
	Win
	Draw
)

// Reason records why a game reached its state.
type Reason uint8

const (
	Nothing Reason = iota // game still playing
	Agreement
	Resignation
	Checkmate
	Stalemate
	Repetition
	FiftyMoveRule
	InsufficientMaterialOnly
	TimeoutOnly
	TimeoutAndInsufficientMaterial
)

// GameState is the classification of a position: the player it concerns
// (the winner for wins, the side to move for Calculate's other results,
// the side with time left for a timeout draw, White for an agreed draw),
// the state and the reason. Draws by insufficient material follow USCF
// rules.
type GameState struct {
	Player board.Color
	State  State
	Reason Reason
}

// IsGameOver reports whether the game has ended.
func (gs GameState) IsGameOver() bool { return gs.State != Continue }

// IsGameOn reports whether the game is still playing.
func (gs GameState) IsGameOn() bool { return gs.State == Continue }

// WhiteWins reports whether white has won.
func (gs GameState) WhiteWins() bool { return gs.State == Win && gs.Player == board.White }

// BlackWins reports whether black has won.
func (gs GameState) BlackWins() bool { return gs.State == Win && gs.Player == board.Black }

// IsDraw reports whether the game is drawn.
func (gs GameState) IsDraw() bool { return gs.State == Draw }

// Value returns +1 when white wins, -1 when black wins and 0 otherwise,
// negated when maximizeWhite is false.
func (gs GameState) Value(maximizeWhite bool) int {
	v := 0
	switch {
	case gs.WhiteWins():
		v = 1
	case gs.BlackWins():
		v = -1
	}
	if !maximizeWhite {
		v = -v
	}
	return v
}

// String renders the state for display, e.g. "White won by checkmate".
func (gs GameState) String() string {
	s := ""
	if gs.State != Draw {
		s = gs.Player.String()
	}
	switch gs.State {
	case Continue:
		s += "'s turn"
	case Win:
		s += " won"
	case Draw:
		s += "Draw"
	}
	switch gs.Reason {
	case Agreement:
		s += " by agreement"
	case Resignation:
		s += " by resignation"
	case Checkmate:
		s += " by checkmate"
	case Stalemate:
		s += " by stalemate"
	case Repetition:
		s += " by repetition"
	case FiftyMoveRule:
		s += " by 50 move rule"
	case InsufficientMaterialOnly:
		s += " by insufficient material"
	case TimeoutOnly:
		s += " by timeout"
	case TimeoutAndInsufficientMaterial:
		s += " by timeout with insufficient material"
	}
	return s
}

// Calculate classifies a position given the number of legal moves at it
// and a repetition predicate. The first matching rule wins:
//
//  1. no moves and in check: the opponent won by checkmate
//  2. no moves otherwise: stalemate
//  3. one hundred halfmoves without capture or pawn move: fifty-move draw
//  4. insufficient mating material: draw
//  5. the repetition predicate holds: draw
//  6. otherwise the game continues
//
// Timeout, resignation and agreement are set by the host, never here.
func Calculate(pos *board.Position, nLegalMoves int, drawByRepetition func() bool) GameState {
	sideToMove := pos.SideToMove()

	if nLegalMoves == 0 {
		if pos.InCheck() {
			return GameState{Player: sideToMove.Other(), State: Win, Reason: Checkmate}
		}
		return GameState{Player: sideToMove, State: Draw, Reason: Stalemate}
	}

	if pos.FiftyMoveRule().Count() >= 100 {
		return GameState{Player: sideToMove, State: Draw, Reason: FiftyMoveRule}
	}

	if insufficientMaterial(pos.Board()) {
		return GameState{Player: sideToMove, State: Draw, Reason: InsufficientMaterialOnly}
	}

	if drawByRepetition != nil && drawByRepetition() {
		return GameState{Player: sideToMove, State: Draw, Reason: Repetition}
	}

	return GameState{Player: sideToMove, State: Continue, Reason: Nothing}
}

// Evaluate runs the generator on pos and classifies it against a history.
func Evaluate(pos *board.Position, history *History) GameState {
	moves := board.Generate(pos)
	return Calculate(pos, moves.Len(), func() bool {
		return history.CountMatches(pos) >= 3
	})
}

// WinByResignation builds the host-set resignation result.
func WinByResignation(winner board.Color) GameState {
	return GameState{Player: winner, State: Win, Reason: Resignation}
}

// WinByTimeout builds the host-set timeout result. When the winner lacks
// mating material the game is a draw instead.
func WinByTimeout(winner board.Color, b *board.Board) GameState {
	if timeoutInsufficient(b, winner) {
		return GameState{Player: winner, State: Draw, Reason: TimeoutAndInsufficientMaterial}
	}
	return GameState{Player: winner, State: Win, Reason: TimeoutOnly}
}

// DrawByAgreement builds the host-set agreed draw.
func DrawByAgreement() GameState {
	return GameState{State: Draw, Reason: Agreement}
}

// insufficientMaterial reports the USCF dead positions: K vs K, K+minor
// vs K, and K+B vs K+B with both bishops on same colored squares.
func insufficientMaterial(b *board.Board) bool {
	pawns := b.Pawns(board.White) | b.Pawns(board.Black)
	majors := b.Rooks(board.White) | b.Rooks(board.Black) |
		b.Queens(board.White) | b.Queens(board.Black)
	if pawns.Any() || majors.Any() {
		return false
	}

	wN := b.Knights(board.White).Count()
	wB := b.Bishops(board.White).Count()
	bN := b.Knights(board.Black).Count()
	bB := b.Bishops(board.Black).Count()

	// K vs K
	if wN+wB+bN+bB == 0 {
		return true
	}

	// K + minor vs K
	if wN+wB+bN+bB == 1 {
		return true
	}

	// K+B vs K+B, bishops on same colored squares
	if wN == 0 && bN == 0 && wB == 1 && bB == 1 {
		wSq := b.Bishops(board.White).First()
		bSq := b.Bishops(board.Black).First()
		return wSq.IsLightSquare() == bSq.IsLightSquare()
	}

	return false
}

// timeoutInsufficient reports whether the side that still has time cannot
// mate even against worst play, turning a timeout win into a draw.
func timeoutInsufficient(b *board.Board, winner board.Color) bool {
	pawns := b.Pawns(winner)
	majors := b.Rooks(winner) | b.Queens(winner)
	if pawns.Any() || majors.Any() {
		return false
	}
	minors := b.Knights(winner).Count() + b.Bishops(winner).Count()
	return minors <= 1
}
