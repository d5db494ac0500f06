package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType identifies the kind of a piece. Empty is zero so that a Move
// with no promotion component reads as a plain move.
type PieceType uint8

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// Piece packs a piece type and color into 5 bits: bits 0-3 hold the type
// and bit 4 is set for white. The zero value is an empty square.
type Piece uint8

const whiteBit Piece = 0x10

// Piece constants.
const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn) | whiteBit
	WhiteKnight Piece = Piece(Knight) | whiteBit
	WhiteBishop Piece = Piece(Bishop) | whiteBit
	WhiteRook   Piece = Piece(Rook) | whiteBit
	WhiteQueen  Piece = Piece(Queen) | whiteBit
	WhiteKing   Piece = Piece(King) | whiteBit
	BlackPawn   Piece = Piece(Pawn)
	BlackKnight Piece = Piece(Knight)
	BlackBishop Piece = Piece(Bishop)
	BlackRook   Piece = Piece(Rook)
	BlackQueen  Piece = Piece(Queen)
	BlackKing   Piece = Piece(King)
)

// NewPiece creates a Piece from a type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == Empty {
		return NoPiece
	}
	p := Piece(pt)
	if c == White {
		p |= whiteBit
	}
	return p
}

// Type returns the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p &^ whiteBit)
}

// Color returns the piece color. Meaningless for empty pieces.
func (p Piece) Color() Color {
	if p&whiteBit != 0 {
		return White
	}
	return Black
}

// IsEmpty reports whether the piece denotes an empty square.
func (p Piece) IsEmpty() bool { return p.Type() == Empty }

// IsWhite reports whether the piece is white.
func (p Piece) IsWhite() bool { return !p.IsEmpty() && p&whiteBit != 0 }

// IsBlack reports whether the piece is black.
func (p Piece) IsBlack() bool { return !p.IsEmpty() && p&whiteBit == 0 }

// IsPawn reports whether the piece is a pawn.
func (p Piece) IsPawn() bool { return p.Type() == Pawn }

// IsKnight reports whether the piece is a knight.
func (p Piece) IsKnight() bool { return p.Type() == Knight }

// IsBishop reports whether the piece is a bishop.
func (p Piece) IsBishop() bool { return p.Type() == Bishop }

// IsRook reports whether the piece is a rook.
func (p Piece) IsRook() bool { return p.Type() == Rook }

// IsQueen reports whether the piece is a queen.
func (p Piece) IsQueen() bool { return p.Type() == Queen }

// IsKing reports whether the piece is a king.
func (p Piece) IsKing() bool { return p.Type() == King }

// IsRay reports whether the piece attacks along rays (bishop, rook, queen).
func (p Piece) IsRay() bool {
	t := p.Type()
	return t == Bishop || t == Rook || t == Queen
}

// IsLateral reports whether the piece attacks along ranks and files.
func (p Piece) IsLateral() bool {
	t := p.Type()
	return t == Rook || t == Queen
}

// IsDiagonal reports whether the piece attacks along diagonals.
func (p Piece) IsDiagonal() bool {
	t := p.Type()
	return t == Bishop || t == Queen
}

// String returns the FEN character for the piece, uppercase for white.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	ch := p.Type().Char()
	if p.IsWhite() {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	var pt PieceType
	switch lower(c) {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return NoPiece
	}
	if c >= 'A' && c <= 'Z' {
		return NewPiece(pt, White)
	}
	return NewPiece(pt, Black)
}
