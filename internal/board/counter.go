package board

// MoveCounter counts the halfmoves played since the start of the game.
// Its parity names the side to move: even means white is thinking.
type MoveCounter struct {
	count int
}

// IsWhitesTurn reports whether white is to move.
func (mc MoveCounter) IsWhitesTurn() bool { return mc.count%2 == 0 }

// IsBlacksTurn reports whether black is to move.
func (mc MoveCounter) IsBlacksTurn() bool { return !mc.IsWhitesTurn() }

// Halfmoves returns the number of halfmoves played.
func (mc MoveCounter) Halfmoves() int { return mc.count }

// FullMoves returns the FEN-style full move number, starting at 1.
func (mc MoveCounter) FullMoves() int { return mc.count/2 + 1 }

// Increment records one played halfmove.
func (mc *MoveCounter) Increment() { mc.count++ }

// Reset sets the counter back to the start of the game.
func (mc *MoveCounter) Reset() { mc.count = 0 }

// SetHalfmoves overwrites the counter, used when loading a position.
func (mc *MoveCounter) SetHalfmoves(n int) { mc.count = n }

// FiftyMoveCounter counts halfmoves since the last irreversible move.
// Captures and pawn moves flag a pending reset which the next Update
// consumes; one hundred halfmoves on the counter is a draw.
type FiftyMoveCounter struct {
	count        int
	pendingReset bool
}

// PieceCaptured flags the move being applied as a capture.
func (fc *FiftyMoveCounter) PieceCaptured() { fc.pendingReset = true }

// PawnHasMoved flags the move being applied as a pawn move.
func (fc *FiftyMoveCounter) PawnHasMoved() { fc.pendingReset = true }

// Update advances the counter: it resets to zero when a capture or pawn
// move was flagged and increments otherwise.
func (fc *FiftyMoveCounter) Update() {
	if fc.pendingReset {
		fc.count = 0
		fc.pendingReset = false
	} else {
		fc.count++
	}
}

// Count returns the halfmoves since the last irreversible move.
func (fc FiftyMoveCounter) Count() int { return fc.count }

// Reset clears the counter and any pending reset.
func (fc *FiftyMoveCounter) Reset() { *fc = FiftyMoveCounter{} }

// SetCount overwrites the counter, used when loading a position.
func (fc *FiftyMoveCounter) SetCount(n int) {
	fc.count = n
	fc.pendingReset = false
}
