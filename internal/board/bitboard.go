package board

import (
	"fmt"
	"math/bits"
)

// BitBoard is an unordered set of squares packed into 64 bits. Bit i
// corresponds to row i/8, col i%8, so bit 0 is a8 and bit 63 is h1.
type BitBoard uint64

// File masks.
const (
	FileA BitBoard = 0x0101010101010101 << iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Row masks, indexed by row coordinate (row 0 = rank 8).
var RowMasks = [8]BitBoard{
	0x00000000000000FF,
	0x000000000000FF00,
	0x0000000000FF0000,
	0x00000000FF000000,
	0x000000FF00000000,
	0x0000FF0000000000,
	0x00FF000000000000,
	0xFF00000000000000,
}

// FileMasks indexed by column coordinate.
var FileMasks = [8]BitBoard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// Universe has every square set.
const Universe BitBoard = 0xFFFFFFFFFFFFFFFF

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) BitBoard {
	return 1 << sq.Index()
}

// Set returns the board with the bit at sq set.
func (b BitBoard) Set(sq Square) BitBoard {
	return b | 1<<sq.Index()
}

// Clear returns the board with the bit at sq cleared.
func (b BitBoard) Clear(sq Square) BitBoard {
	return b &^ (1 << sq.Index())
}

// Test reports whether the bit at sq is set.
func (b BitBoard) Test(sq Square) bool {
	return b&(1<<sq.Index()) != 0
}

// Count returns the number of set squares.
func (b BitBoard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Any reports whether any square is set.
func (b BitBoard) Any() bool { return b != 0 }

// None reports whether no square is set.
func (b BitBoard) None() bool { return b == 0 }

// First returns the set square with the lowest index, or InvalidSquare.
func (b BitBoard) First() Square {
	if b == 0 {
		return InvalidSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopFirst removes and returns the set square with the lowest index.
func (b *BitBoard) PopFirst() Square {
	sq := b.First()
	*b &= *b - 1
	return sq
}

// Rotated returns the board rotated 180 degrees: square i swaps with 63-i.
func (b BitBoard) Rotated() BitBoard {
	return BitBoard(bits.Reverse64(uint64(b)))
}

// Shift moves every set square one step in a ray direction, discarding
// squares that would cross a board edge.
func (b BitBoard) Shift(d Direction) BitBoard {
	switch d {
	case Up:
		return b >> 8
	case Down:
		return b << 8
	case Left:
		return (b &^ FileA) >> 1
	case Right:
		return (b &^ FileH) << 1
	case UL:
		return (b &^ FileA) >> 9
	case UR:
		return (b &^ FileH) >> 7
	case DL:
		return (b &^ FileA) << 7
	case DR:
		return (b &^ FileH) << 9
	}
	return 0
}

// String returns a visual representation of the bitboard.
func (b BitBoard) String() string {
	s := ""
	for row := 0; row < 8; row++ {
		s += fmt.Sprintf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			if b.Test(NewSquare(row, col)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// Hash returns a hash of the bitboard.
func (b BitBoard) Hash() uint64 {
	return uint64(b)
}
