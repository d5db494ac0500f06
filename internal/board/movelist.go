package board

// MovePosition pairs a move with the position it leads to.
type MovePosition struct {
	Move     Move
	Position Position
}

// MoveList is an append-only buffer of (move, resulting position) pairs.
// The generator fills it in a single pass; no ordering is guaranteed.
type MoveList struct {
	pairs []MovePosition
}

// NewMoveList returns an empty list with room for any legal position.
// No chess position has more than 218 legal moves.
func NewMoveList() MoveList {
	return MoveList{pairs: make([]MovePosition, 0, 256)}
}

// Push clones prev, applies m to the clone and appends the pair.
func (ml *MoveList) Push(m Move, prev *Position) {
	next := *prev
	next.Apply(m)
	ml.pairs = append(ml.pairs, MovePosition{Move: m, Position: next})
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int { return len(ml.pairs) }

// At returns the i-th pair.
func (ml *MoveList) At(i int) *MovePosition { return &ml.pairs[i] }

// Find returns the pair whose move equals m, or nil.
func (ml *MoveList) Find(m Move) *MovePosition {
	for i := range ml.pairs {
		if ml.pairs[i].Move == m {
			return &ml.pairs[i]
		}
	}
	return nil
}

// Contains reports whether the list holds the move.
func (ml *MoveList) Contains(m Move) bool {
	return ml.Find(m) != nil
}

// Moves returns just the moves, in list order.
func (ml *MoveList) Moves() []Move {
	moves := make([]Move, len(ml.pairs))
	for i := range ml.pairs {
		moves[i] = ml.pairs[i].Move
	}
	return moves
}
