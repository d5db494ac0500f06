package board

// Move encodes a chess move in 16 bits:
// bits 0-5 from square, bits 6-11 to square, bits 12-15 promotion type.
//
// Two sentinels share the encoding: a move whose from and to squares are
// equal is a partial move (a UI that has only the origin so far), and a
// move whose promotion component is a pawn is invalid, since a pawn can
// never legally be a promotion piece.
type Move uint16

const (
	moveFromMask  Move = 0x003F
	moveToMask    Move = 0x0FC0
	movePromoMask Move = 0xF000
)

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move(from.Index()) | Move(to.Index())<<6
}

// NewPromotion creates a pawn promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return NewMove(from, to) | Move(promo)<<12
}

// InvalidMove returns the invalid sentinel.
func InvalidMove() Move {
	return Move(Pawn) << 12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> 6)
}

// Promotion returns the promotion piece type, Empty for plain moves.
func (m Move) Promotion() PieceType {
	return PieceType(m >> 12)
}

// IsPartial reports whether only one coordinate of the move is known.
func (m Move) IsPartial() bool {
	return m.From() == m.To()
}

// IsPromotion reports whether the promotion component holds a piece.
func (m Move) IsPromotion() bool {
	return m.Promotion() != Empty && m.IsValid()
}

// IsInvalid reports whether the move carries the invalid sentinel.
func (m Move) IsInvalid() bool {
	return m.Promotion() == Pawn
}

// IsValid reports whether the move does not carry the invalid sentinel.
func (m Move) IsValid() bool {
	return !m.IsInvalid()
}

// String returns the move in Long Algebraic Notation: "e2e4", "e7e8q",
// or just "e2" for a partial move.
func (m Move) String() string {
	if m.IsInvalid() {
		return "????"
	}
	if m.IsPartial() {
		return m.From().String()
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != Empty {
		s += string(p.Char())
	}
	return s
}

// ParseMove parses Long Algebraic Notation, case-insensitively:
//
//	e4      partial move
//	e2e4    from and to
//	e7e8q   promotion; the destination must sit on a promotion rank
//
// Malformed input yields the invalid sentinel.
func ParseMove(s string) Move {
	switch len(s) {
	case 2:
		from, err := ParseSquare(s)
		if err != nil {
			return InvalidMove()
		}
		return NewMove(from, from)
	case 4, 5:
		from, err := ParseSquare(s[0:2])
		if err != nil {
			return InvalidMove()
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return InvalidMove()
		}
		if len(s) == 4 {
			return NewMove(from, to)
		}
		var promo PieceType
		switch lower(s[4]) {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return InvalidMove()
		}
		// A promotion only makes sense onto a promotion rank.
		if !to.IsTopRank() && !to.IsBotRank() {
			return InvalidMove()
		}
		return NewPromotion(from, to, promo)
	}
	return InvalidMove()
}

// Hash returns a hash of the move.
func (m Move) Hash() uint64 {
	return uint64(m)
}
