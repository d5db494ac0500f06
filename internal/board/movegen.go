package board

// MoveGenerator produces every legal move of a position along with the
// resulting position. It is organized around king safety from the start:
// checkers are found first, then absolute pins, then block-and-capture or
// free moves, so no make-then-test filtering pass is ever needed.
//
// A generator carries per-call scratch state; construct one per call (or
// use the package-level Generate) and discard it afterwards.
type MoveGenerator struct {
	pos  *Position
	us   Color
	them Color

	occupied BitBoard
	empty    BitBoard
	ours     BitBoard
	theirs   BitBoard

	ourKing   Square
	theirKing Square

	ourLaterals    BitBoard
	theirLaterals  BitBoard
	ourDiagonals   BitBoard
	theirDiagonals BitBoard

	// Squares the enemy attacks, computed with our king lifted off the
	// board so it cannot flee backwards along a checking ray.
	threats BitBoard

	// Our pieces that may not leave their pin ray.
	absolutePins BitBoard

	legal MoveList
}

// Generate returns the legal moves of pos.
func Generate(pos *Position) MoveList {
	var g MoveGenerator
	return g.Generate(pos)
}

// Generate computes the legal moves of pos into a fresh list.
func (g *MoveGenerator) Generate(pos *Position) MoveList {
	g.preprocess(pos)

	attackers := FindKingAttackers(&pos.board, g.ourKing, g.them)

	// King steps to safety (and king captures) are legal in every case.
	g.genKingMoves()

	switch attackers.Size() {
	case 1:
		// A single checker can be blocked or captured, but pinned pieces
		// cannot help: record the pins first, then resolve the check.
		g.genPinMoves(true)
		g.genBlockAndCaptureMoves(attackers.At(0))
	case 0:
		g.genPinMoves(false)
		g.genFreeMoves()
		g.genEnPassantMoves(Universe, Universe)
		g.genCastlingMoves()
	default:
		// Double check: only the king can move.
	}

	return g.legal
}

func (g *MoveGenerator) preprocess(pos *Position) {
	b := &pos.board

	g.pos = pos
	g.us = pos.SideToMove()
	g.them = g.us.Other()

	g.occupied = b.Occupied()
	g.empty = ^g.occupied
	g.ours = b.Occupancy(g.us)
	g.theirs = b.Occupancy(g.them)

	g.ourKing = b.KingSquare(g.us)
	g.theirKing = b.KingSquare(g.them)

	g.ourLaterals = b.Laterals(g.us)
	g.theirLaterals = b.Laterals(g.them)
	g.ourDiagonals = b.Diagonals(g.us)
	g.theirDiagonals = b.Diagonals(g.them)

	g.threats = GenThreats(b, g.them)
	g.absolutePins = 0
	g.legal = NewMoveList()
}

// genKingMoves emits a king step for every neighbour square that is
// neither ours nor attacked. Captures fall out of the same test.
func (g *MoveGenerator) genKingMoves() {
	open := ^(g.ours | g.threats)
	for _, d := range RayDirections {
		to := d.Step(g.ourKing)
		if to.IsValid() && open.Test(to) {
			g.legal.Push(NewMove(g.ourKing, to), g.pos)
		}
	}
}

// genPinMoves finds the absolutely pinned pieces. Pins can only be
// delivered by ray pieces, so whole axis families are rejected cheaply
// before any ray is walked. With searchOnly the pins are only recorded;
// otherwise each pinned piece's legal slides along its ray are emitted.
func (g *MoveGenerator) genPinMoves(searchOnly bool) {
	if g.theirDiagonals.Any() && (DiagonalMask(g.ourKing)&g.theirDiagonals).Any() {
		for _, d := range DiagonalDirections {
			g.searchPin(d, searchOnly)
		}
	}
	if g.theirLaterals.Any() && (LateralMask(g.ourKing)&g.theirLaterals).Any() {
		for _, d := range LateralDirections {
			g.searchPin(d, searchOnly)
		}
	}
}

// searchPin walks one ray from the king. The first occupied square must
// be ours to be a pin candidate; the next occupied square pins it when it
// holds an enemy ray piece of the matching family.
func (g *MoveGenerator) searchPin(d Direction, searchOnly bool) {
	family := g.theirDiagonals
	if d.IsLateral() {
		family = g.theirLaterals
	}

	candidate := InvalidSquare
	for sq := d.Step(g.ourKing); sq.IsValid(); sq = d.Step(sq) {
		if !g.occupied.Test(sq) {
			continue
		}
		if !candidate.IsValid() {
			if !g.ours.Test(sq) {
				return
			}
			candidate = sq
			continue
		}
		if family.Test(sq) {
			g.absolutePins = g.absolutePins.Set(candidate)
			if !searchOnly {
				g.genPinnedPieceMoves(candidate, sq, d)
			}
		}
		return
	}
}

// genPinnedPieceMoves emits the moves of a pinned piece, restricted to the
// squares between king and pinner plus the pinner's square itself.
func (g *MoveGenerator) genPinnedPieceMoves(pinned, pinner Square, d Direction) {
	switch g.pos.board.At(pinned).Type() {
	case Queen:
		g.genPinnedSlides(pinned, pinner)
	case Rook:
		if d.IsLateral() {
			g.genPinnedSlides(pinned, pinner)
		}
	case Bishop:
		if d.IsDiagonal() {
			g.genPinnedSlides(pinned, pinner)
		}
	case Pawn:
		g.genPinnedPawnMoves(pinned, pinner, d)
	case Knight:
		// A pinned knight has no legal moves.
	}
}

func (g *MoveGenerator) genPinnedSlides(pinned, pinner Square) {
	for seg := Between(g.ourKing, pinner).Clear(pinned); seg.Any(); {
		g.legal.Push(NewMove(pinned, seg.PopFirst()), g.pos)
	}
	g.legal.Push(NewMove(pinned, pinner), g.pos)
}

// genPinnedPawnMoves: a vertically pinned pawn may still push; a pawn
// pinned along its forward capture diagonal may capture the pinner.
func (g *MoveGenerator) genPinnedPawnMoves(pinned, pinner Square, d Direction) {
	fwd := forward(g.us)

	if d.IsVertical() {
		push1 := fwd.Step(pinned)
		if push1.IsValid() && g.empty.Test(push1) {
			g.pushPawnMove(pinned, push1)
			if pinned.Row() == doublePushRow(g.us) {
				if push2 := fwd.Step(push1); push2.IsValid() && g.empty.Test(push2) {
					g.legal.Push(NewMove(pinned, push2), g.pos)
				}
			}
		}
		return
	}

	if d.IsDiagonal() {
		for _, cd := range captureDirections(g.us) {
			if cd.Step(pinned) == pinner {
				g.pushPawnMove(pinned, pinner)
			}
		}
	}
}

// captureDirections returns the two diagonals a color's pawns capture on.
func captureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{UL, UR}
	}
	return [2]Direction{DL, DR}
}

// pushPawnMove emits a pawn move to the list, fanning out into the four
// promotion pieces when the destination is a promotion rank.
func (g *MoveGenerator) pushPawnMove(from, to Square) {
	if to.Row() != promotionRow(g.us) {
		g.legal.Push(NewMove(from, to), g.pos)
		return
	}
	g.legal.Push(NewPromotion(from, to, Queen), g.pos)
	g.legal.Push(NewPromotion(from, to, Rook), g.pos)
	g.legal.Push(NewPromotion(from, to, Bishop), g.pos)
	g.legal.Push(NewPromotion(from, to, Knight), g.pos)
}

// genBlockAndCaptureMoves resolves a single check. It walks the squares
// from the king toward the checker (the push mask, then the checker's own
// square) and, at each one, hunts backwards for an unpinned piece of ours
// that attacks it.
func (g *MoveGenerator) genBlockAndCaptureMoves(att KingAttacker) {
	b := &g.pos.board

	checkerIsRay := b.At(att.Square).IsRay()

	var s Square
	if checkerIsRay {
		s = att.Dir.Step(g.ourKing)
	} else {
		// Knight and pawn checks cannot be blocked, only captured.
		s = att.Square
	}

	aggLaterals := g.ourLaterals &^ g.absolutePins
	aggDiagonals := g.ourDiagonals &^ g.absolutePins
	aggKnights := b.Knights(g.us) &^ g.absolutePins

	for {
		if (aggLaterals & LateralMask(s)).Any() {
			for _, d := range LateralDirections {
				if a := FindAttackingRay(s, d, b, aggLaterals); a.IsValid() {
					g.legal.Push(NewMove(a, s), g.pos)
				}
			}
		}
		if (aggDiagonals & DiagonalMask(s)).Any() {
			for _, d := range DiagonalDirections {
				if a := FindAttackingRay(s, d, b, aggDiagonals); a.IsValid() {
					g.legal.Push(NewMove(a, s), g.pos)
				}
			}
		}
		if (aggKnights & KnightMask(s)).Any() {
			for _, d := range KnightDirections {
				if a := FindAttackingKnight(s, d, aggKnights); a.IsValid() {
					g.legal.Push(NewMove(a, s), g.pos)
				}
			}
		}

		if s == att.Square {
			break
		}
		s = att.Dir.Step(s)
	}

	g.genPawnBlockAndCapture(att, checkerIsRay)

	pushMask := BitBoard(0)
	if checkerIsRay {
		pushMask = Between(g.ourKing, att.Square)
	}
	g.genEnPassantMoves(pushMask, SquareBB(att.Square))
}

// genPawnBlockAndCapture finds pawns that block a ray checker or capture
// the checker outright. Pawns block with pushes only and capture
// diagonally only, so the two hunts are separate.
func (g *MoveGenerator) genPawnBlockAndCapture(att KingAttacker, checkerIsRay bool) {
	b := &g.pos.board
	useful := b.Pawns(g.us) &^ g.absolutePins
	if useful.None() {
		return
	}

	fwd := forward(g.us)
	back := fwd.Opposite()

	if checkerIsRay {
		// Blocking pushes onto the squares between king and checker.
		for sq := att.Dir.Step(g.ourKing); sq != att.Square; sq = att.Dir.Step(sq) {
			pawn1 := back.Step(sq)
			if pawn1.IsValid() && useful.Test(pawn1) {
				g.pushPawnMove(pawn1, sq)
			}
			if pawn1.IsValid() && g.empty.Test(pawn1) {
				pawn2 := back.Step(pawn1)
				if pawn2.IsValid() && useful.Test(pawn2) && pawn2.Row() == doublePushRow(g.us) {
					g.legal.Push(NewMove(pawn2, sq), g.pos)
				}
			}
		}
	}

	// Captures of the checker itself.
	for _, cd := range captureDirections(g.us) {
		pawn := cd.Opposite().Step(att.Square)
		if pawn.IsValid() && useful.Test(pawn) {
			g.pushPawnMove(pawn, att.Square)
		}
	}
}

// genFreeMoves emits the moves of every piece that is neither pinned nor
// the king. Only called when the king is not in check.
func (g *MoveGenerator) genFreeMoves() {
	b := &g.pos.board
	movers := g.ours &^ g.absolutePins &^ b.Kings(g.us)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell := NewSquare(row, col)
			if !movers.Test(cell) {
				continue
			}
			switch b.At(cell).Type() {
			case Pawn:
				g.genFreePawnMoves(cell)
			case Rook:
				g.genRayPieceMoves(cell, LateralDirections[:])
			case Bishop:
				g.genRayPieceMoves(cell, DiagonalDirections[:])
			case Knight:
				g.genFreeKnightMoves(cell)
			case Queen:
				g.genRayPieceMoves(cell, RayDirections[:])
			}
		}
	}
}

// genRayPieceMoves steps each direction until the edge or an obstacle,
// emitting pushes on empty squares and a capture on the first enemy.
func (g *MoveGenerator) genRayPieceMoves(from Square, dirs []Direction) {
	for _, d := range dirs {
		for to := d.Step(from); to.IsValid(); to = d.Step(to) {
			if g.occupied.Test(to) {
				if g.theirs.Test(to) {
					g.legal.Push(NewMove(from, to), g.pos)
				}
				break
			}
			g.legal.Push(NewMove(from, to), g.pos)
		}
	}
}

func (g *MoveGenerator) genFreeKnightMoves(from Square) {
	for _, d := range KnightDirections {
		to := d.Step(from)
		if to.IsValid() && !g.ours.Test(to) {
			g.legal.Push(NewMove(from, to), g.pos)
		}
	}
}

func (g *MoveGenerator) genFreePawnMoves(pawn Square) {
	fwd := forward(g.us)

	push1 := fwd.Step(pawn)
	if push1.IsValid() && g.empty.Test(push1) {
		g.pushPawnMove(pawn, push1)
		if pawn.Row() == doublePushRow(g.us) {
			if push2 := fwd.Step(push1); push2.IsValid() && g.empty.Test(push2) {
				g.legal.Push(NewMove(pawn, push2), g.pos)
			}
		}
	}

	for _, cd := range captureDirections(g.us) {
		if to := cd.Step(pawn); to.IsValid() && g.theirs.Test(to) {
			g.pushPawnMove(pawn, to)
		}
	}
}

// genEnPassantMoves emits legal en passant captures. When resolving a
// check the capture must either remove the checking pawn (its square is
// in captureMask) or land on the checking ray (the target is in
// pushMask); otherwise pass Universe for both.
//
// Legality is decided on the simulated occupancy with both pawns removed
// and the capturer placed on the target, which covers every pin shape
// including the shared-rank discovery the normal pin walk cannot see.
func (g *MoveGenerator) genEnPassantMoves(pushMask, captureMask BitBoard) {
	ep := g.pos.enPassant
	if !ep.IsValid() {
		return
	}

	back := forward(g.us).Opposite()
	capturedSq := back.Step(ep)

	if !pushMask.Test(ep) && !captureMask.Test(capturedSq) {
		return
	}

	candidates := PawnCaptureMask(g.them, ep) & g.pos.board.Pawns(g.us)
	for candidates.Any() {
		from := candidates.PopFirst()
		if g.enPassantIsLegal(from, ep, capturedSq) {
			g.legal.Push(NewMove(from, ep), g.pos)
		}
	}
}

func (g *MoveGenerator) enPassantIsLegal(from, to, capturedSq Square) bool {
	b := &g.pos.board

	occ := g.occupied.Clear(from).Clear(capturedSq).Set(to)
	enemyPawns := b.Pawns(g.them).Clear(capturedSq)

	if (PawnCaptureMask(g.us, g.ourKing) & enemyPawns).Any() {
		return false
	}
	if (KnightMask(g.ourKing) & b.Knights(g.them)).Any() {
		return false
	}
	if (LateralAttacks(g.ourKing, occ) & g.theirLaterals).Any() {
		return false
	}
	if (DiagonalAttacks(g.ourKing, occ) & g.theirDiagonals).Any() {
		return false
	}
	return true
}

// genCastlingMoves emits castling when the right survives, the squares
// between king and rook are empty and the king's path is not attacked.
// Only called when the king is not in check.
func (g *MoveGenerator) genCastlingMoves() {
	b := &g.pos.board

	row := 7
	if g.us == Black {
		row = 0
	}
	kingFrom := NewSquare(row, 4)
	if g.ourKing != kingFrom {
		return
	}

	if g.pos.castling.CanCastle(g.us, true) && b.Rooks(g.us).Test(NewSquare(row, 7)) {
		f := NewSquare(row, 5)
		gg := NewSquare(row, 6)
		if g.empty.Test(f) && g.empty.Test(gg) &&
			!g.threats.Test(f) && !g.threats.Test(gg) {
			g.legal.Push(NewMove(kingFrom, gg), g.pos)
		}
	}

	if g.pos.castling.CanCastle(g.us, false) && b.Rooks(g.us).Test(NewSquare(row, 0)) {
		bsq := NewSquare(row, 1)
		c := NewSquare(row, 2)
		d := NewSquare(row, 3)
		if g.empty.Test(bsq) && g.empty.Test(c) && g.empty.Test(d) &&
			!g.threats.Test(c) && !g.threats.Test(d) {
			g.legal.Push(NewMove(kingFrom, c), g.pos)
		}
	}
}
