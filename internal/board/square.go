// Package board implements the chess core: squares, bitboards, pieces,
// positions and legal move generation.
package board

import "fmt"

// Square represents the coordinates of a square on the 8x8 board packed
// into a single byte: bits 0-2 column (0=a .. 7=h), bits 3-5 row
// (0 = top rank, where black's pieces start), bit 6 invalid flag.
// Out-of-bounds neighbour computations yield an invalid square which
// callers must check before use.
type Square uint8

const (
	colMask     = 0x07
	rowMask     = 0x38
	invalidMask = 0x40
)

// InvalidSquare is the canonical out-of-bounds sentinel.
const InvalidSquare Square = invalidMask

// Square constants for all 64 squares. Row 0 is rank 8.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare creates a square from row and column coordinates.
// Coordinates outside [0,7] produce an invalid square.
func NewSquare(row, col int) Square {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return InvalidSquare
	}
	return Square(row<<3 | col)
}

// SquareFromIndex creates a square from a bit index in [0,63].
func SquareFromIndex(i int) Square {
	if i < 0 || i > 63 {
		return InvalidSquare
	}
	return Square(i)
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return InvalidSquare, fmt.Errorf("invalid square: %q", s)
	}
	file := int(lower(s[0]) - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return InvalidSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(7-rank, file), nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Row returns the row coordinate (0 = top rank, i.e. rank 8).
func (sq Square) Row() int {
	return int(sq&rowMask) >> 3
}

// Col returns the column coordinate (0 = file a).
func (sq Square) Col() int {
	return int(sq & colMask)
}

// Index returns the bit index of the square in [0,63].
func (sq Square) Index() int {
	return sq.Row()*8 + sq.Col()
}

// IsValid reports whether the invalid flag is clear.
func (sq Square) IsValid() bool {
	return sq&invalidMask == 0
}

// String returns the square in algebraic notation, or "--" when invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "--"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '1'+(7-sq.Row()))
}

// IsLightSquare reports whether the square is light colored (e.g. h1).
func (sq Square) IsLightSquare() bool {
	return sq.Row()&1 == sq.Col()&1
}

// IsDarkSquare reports whether the square is dark colored (e.g. a1).
func (sq Square) IsDarkSquare() bool {
	return !sq.IsLightSquare()
}

// IsTopRank reports whether the square is on rank 8, where black's pieces
// start and white's pawns promote.
func (sq Square) IsTopRank() bool { return sq.Row() == 0 }

// IsBotRank reports whether the square is on rank 1, where white's pieces
// start and black's pawns promote.
func (sq Square) IsBotRank() bool { return sq.Row() == 7 }

// IsLeftFile reports whether the square is on file a.
func (sq Square) IsLeftFile() bool { return sq.Col() == 0 }

// IsRightFile reports whether the square is on file h.
func (sq Square) IsRightFile() bool { return sq.Col() == 7 }

// Rotated returns the square rotated 180 degrees.
func (sq Square) Rotated() Square {
	if !sq.IsValid() {
		return InvalidSquare
	}
	return NewSquare(7-sq.Row(), 7-sq.Col())
}

// Hash returns a hash of the square.
func (sq Square) Hash() uint64 {
	return uint64(sq)
}
