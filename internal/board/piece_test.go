package board

import "testing"

func TestPiecePredicates(t *testing.T) {
	if !WhiteQueen.IsRay() || !WhiteQueen.IsLateral() || !WhiteQueen.IsDiagonal() {
		t.Error("queen attacks along every ray family")
	}
	if !BlackRook.IsLateral() || BlackRook.IsDiagonal() {
		t.Error("rook is lateral only")
	}
	if !WhiteBishop.IsDiagonal() || WhiteBishop.IsLateral() {
		t.Error("bishop is diagonal only")
	}
	if BlackKnight.IsRay() || WhitePawn.IsRay() || BlackKing.IsRay() {
		t.Error("knights, pawns and kings are not ray pieces")
	}
	if !NoPiece.IsEmpty() || NoPiece.IsWhite() || NoPiece.IsBlack() {
		t.Error("the zero piece is empty and colorless")
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, c := range []Color{White, Black} {
			p := NewPiece(pt, c)
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%v,%v) round trip failed", pt, c)
			}
		}
	}
}

func TestPieceChars(t *testing.T) {
	cases := map[byte]Piece{
		'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop,
		'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
		'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop,
		'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
	}
	for ch, want := range cases {
		if got := PieceFromChar(ch); got != want {
			t.Errorf("PieceFromChar(%q) = %v, want %v", ch, got, want)
		}
		if want.String() != string(ch) {
			t.Errorf("%v.String() = %q, want %q", want, want.String(), string(ch))
		}
	}
	if PieceFromChar('x') != NoPiece {
		t.Error("unknown characters map to NoPiece")
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other should flip the color")
	}
}
