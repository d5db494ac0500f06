package board

import (
	"sort"
	"strings"
	"testing"
)

func generateLANs(t *testing.T, fen string) []string {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	moves := Generate(&pos)
	lans := make([]string, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		lans = append(lans, moves.At(i).Move.String())
	}
	sort.Strings(lans)
	return lans
}

func TestGenerateCounts(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"initial", StartFEN, 20},
		{"initial black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1", 20},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"kiwipete no rights", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1", 46},
		{"checkmated", "r1bqkbnr/pppp1Qpp/2n5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 3", 0},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", 0},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
		{"promotions", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 11},
		{"ep available", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lans := generateLANs(t, c.fen)
			if len(lans) != c.want {
				t.Errorf("got %d moves, want %d: %s", len(lans), c.want, strings.Join(lans, " "))
			}
		})
	}
}

func TestGenerateInitialMoves(t *testing.T) {
	lans := generateLANs(t, StartFEN)
	want := []string{
		"b1a3", "b1c3", "g1f3", "g1h3",
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
	}
	have := make(map[string]bool, len(lans))
	for _, lan := range lans {
		have[lan] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Errorf("move %s missing from the opening moves", w)
		}
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		lans := generateLANs(t, fen)
		seen := make(map[string]bool, len(lans))
		for _, lan := range lans {
			if seen[lan] {
				t.Errorf("%s generated twice for %s", lan, fen)
			}
			seen[lan] = true
		}
	}
}

// TestGenerateTotality checks that no generated move leaves the mover's
// king attacked in the resulting position.
func TestGenerateTotality(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		"4k3/8/8/8/4r3/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		mover := pos.SideToMove()
		moves := Generate(&pos)
		for i := 0; i < moves.Len(); i++ {
			mp := moves.At(i)
			after := &mp.Position
			king := after.Board().KingSquare(mover)
			if IsAttacked(after.Board(), king, mover.Other(), after.Board().Occupied()) {
				t.Errorf("%s: move %s leaves the king attacked", fen, mp.Move)
			}
		}
	}
}

func TestGeneratePinnedRook(t *testing.T) {
	// The e4 rook is pinned by the e8 rook: it may only slide along the
	// e-file, up to and including the pinner.
	lans := generateLANs(t, "4r2k/8/8/8/4R3/8/8/4K3 w - - 0 1")

	var rookMoves []string
	for _, lan := range lans {
		if strings.HasPrefix(lan, "e4") {
			rookMoves = append(rookMoves, lan)
		}
	}
	want := []string{"e4e2", "e4e3", "e4e5", "e4e6", "e4e7", "e4e8"}
	if len(rookMoves) != len(want) {
		t.Fatalf("pinned rook moves = %v, want %v", rookMoves, want)
	}
	for i := range want {
		if rookMoves[i] != want[i] {
			t.Fatalf("pinned rook moves = %v, want %v", rookMoves, want)
		}
	}
}

func TestGeneratePinnedKnight(t *testing.T) {
	// A pinned knight never moves.
	lans := generateLANs(t, "4r2k/8/8/8/4N3/8/8/4K3 w - - 0 1")
	for _, lan := range lans {
		if strings.HasPrefix(lan, "e4") {
			t.Errorf("pinned knight must not move, got %s", lan)
		}
	}
}

func TestGeneratePinnedBishopWrongAxis(t *testing.T) {
	// A bishop pinned laterally has no moves; pinned diagonally it slides.
	lans := generateLANs(t, "4r2k/8/8/8/4B3/8/8/4K3 w - - 0 1")
	for _, lan := range lans {
		if strings.HasPrefix(lan, "e4") {
			t.Errorf("laterally pinned bishop must not move, got %s", lan)
		}
	}

	lans = generateLANs(t, "7k/8/8/8/8/2q5/3B4/4K3 w - - 0 1")
	var bishopMoves []string
	for _, lan := range lans {
		if strings.HasPrefix(lan, "d2") {
			bishopMoves = append(bishopMoves, lan)
		}
	}
	if len(bishopMoves) != 1 || bishopMoves[0] != "d2c3" {
		t.Errorf("diagonally pinned bishop should only capture the pinner, got %v", bishopMoves)
	}
}

func TestGeneratePinnedPawn(t *testing.T) {
	// A vertically pinned pawn may still push.
	lans := generateLANs(t, "4r2k/8/8/8/8/8/4P3/4K3 w - - 0 1")
	have := map[string]bool{}
	for _, lan := range lans {
		have[lan] = true
	}
	if !have["e2e3"] || !have["e2e4"] {
		t.Errorf("vertically pinned pawn keeps its pushes, got %v", lans)
	}

	// A diagonally pinned pawn may only capture its pinner.
	lans = generateLANs(t, "7k/8/8/8/8/2b5/3P4/4K3 w - - 0 1")
	var pawnMoves []string
	for _, lan := range lans {
		if strings.HasPrefix(lan, "d2") {
			pawnMoves = append(pawnMoves, lan)
		}
	}
	if len(pawnMoves) != 1 || pawnMoves[0] != "d2c3" {
		t.Errorf("diagonally pinned pawn should only capture the pinner, got %v", pawnMoves)
	}
}

func TestGenerateDoubleCheckOnlyKingMoves(t *testing.T) {
	// Rook e8 and knight f3 give double check; every reply is a king move.
	lans := generateLANs(t, "4r2k/8/8/8/8/5n2/8/4K3 w - - 0 1")
	if len(lans) == 0 {
		t.Fatal("the king should have escapes")
	}
	for _, lan := range lans {
		if !strings.HasPrefix(lan, "e1") {
			t.Errorf("double check allows only king moves, got %s", lan)
		}
	}
}

func TestGenerateCheckEvasions(t *testing.T) {
	// Queen e4 checks the e1 king: block on the file, capture, or step off.
	lans := generateLANs(t, "4r2k/8/8/8/4q3/8/3N4/R3K3 w - - 0 1")
	for _, lan := range lans {
		pos, _ := ParseFEN("4r2k/8/8/8/4q3/8/3N4/R3K3 w - - 0 1")
		moves := Generate(&pos)
		mp := moves.Find(ParseMove(lan))
		if mp == nil {
			t.Fatalf("move %s not found in its own list", lan)
		}
	}

	have := map[string]bool{}
	for _, lan := range lans {
		have[lan] = true
	}
	// The knight can block on e... d2 knight covers e4 by capture.
	if !have["d2e4"] {
		t.Error("the d2 knight can capture the checking queen")
	}
	// The king must not step to e2 (still on the queen's file).
	if have["e1e2"] {
		t.Error("e2 stays inside the check ray")
	}
	if !have["e1f2"] && !have["e1d1"] && !have["e1f1"] {
		t.Errorf("expected king escapes, got %v", lans)
	}
}

func TestGeneratePromotionFanOut(t *testing.T) {
	// A push and two captures from b7, each fanning into four pieces.
	lans := generateLANs(t, "r1r4k/1P6/8/8/8/8/8/4K3 w - - 0 1")
	counts := map[string]int{}
	for _, lan := range lans {
		if strings.HasPrefix(lan, "b7") {
			counts[lan[:4]]++
		}
	}
	for _, dest := range []string{"b7b8", "b7a8", "b7c8"} {
		if counts[dest] != 4 {
			t.Errorf("%s should fan into 4 promotions, got %d", dest, counts[dest])
		}
	}
}

func TestGenerateCastling(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	have := map[string]bool{}
	for _, lan := range generateLANs(t, fen) {
		have[lan] = true
	}
	if !have["e1g1"] || !have["e1c1"] {
		t.Error("both castles should be available")
	}

	// A rook on e8 checks the king: castling out of check is illegal.
	fen = "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	have = map[string]bool{}
	for _, lan := range generateLANs(t, fen) {
		have[lan] = true
	}
	if have["e1g1"] || have["e1c1"] {
		t.Error("castling out of check is illegal")
	}

	// A rook eyeing f1 forbids kingside but not queenside.
	fen = "5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	have = map[string]bool{}
	for _, lan := range generateLANs(t, fen) {
		have[lan] = true
	}
	if have["e1g1"] {
		t.Error("castling through an attacked f1 is illegal")
	}
	if !have["e1c1"] {
		t.Error("queenside castling is unaffected by the f-file rook")
	}

	// An attacked b1 does not stop queenside castling.
	fen = "1r4k1/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	have = map[string]bool{}
	for _, lan := range generateLANs(t, fen) {
		have[lan] = true
	}
	if !have["e1c1"] {
		t.Error("only the king's transit squares matter for castling")
	}
}

func TestGenerateEnPassantPin(t *testing.T) {
	// The horizontal-pin trap: capturing en passant would remove both
	// pawns from the rank and expose the king to the h4 rook.
	lans := generateLANs(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	for _, lan := range lans {
		if lan == "e4d3" {
			t.Error("the en passant capture exposes the king and must be suppressed")
		}
	}
	if len(lans) != 6 {
		t.Errorf("expected 6 legal moves, got %d: %v", len(lans), lans)
	}
}

func TestGenerateEnPassantResolvesCheck(t *testing.T) {
	// The e5 pawn just double-pushed and checks the f4 king. Capturing it
	// en passant removes the checker; pushing the d-pawn helps nothing.
	lans := generateLANs(t, "k7/8/8/3Pp3/5K2/8/8/8 w - e6 0 2")
	have := map[string]bool{}
	for _, lan := range lans {
		have[lan] = true
	}
	if !have["d5e6"] {
		t.Errorf("the en passant capture d5e6 resolves the check, got %v", lans)
	}
	if have["d5d6"] {
		t.Error("a plain push does not answer a pawn check")
	}
	if len(lans) != 9 {
		t.Errorf("expected 8 king moves plus the capture, got %d: %v", len(lans), lans)
	}
}

func TestGenerateEnPassantSimple(t *testing.T) {
	// The white d-pawn double-pushed past the black c4 pawn. No check is
	// involved; the capture must simply exist.
	have := map[string]bool{}
	for _, lan := range generateLANs(t, "4k3/8/8/8/2pP4/8/8/3K4 b - d3 0 2") {
		have[lan] = true
	}
	if !have["c4d3"] {
		t.Error("the en passant capture c4d3 should be available")
	}
}
