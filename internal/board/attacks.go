package board

// rayAttacks returns the squares reachable from sq in one ray direction,
// stopping at and including the first occupied square.
func rayAttacks(sq Square, d Direction, occ BitBoard) BitBoard {
	var attacks BitBoard
	for to := d.Step(sq); to.IsValid(); to = d.Step(to) {
		attacks = attacks.Set(to)
		if occ.Test(to) {
			break
		}
	}
	return attacks
}

// LateralAttacks returns the rook-style attack set from sq.
func LateralAttacks(sq Square, occ BitBoard) BitBoard {
	return rayAttacks(sq, Up, occ) | rayAttacks(sq, Down, occ) |
		rayAttacks(sq, Left, occ) | rayAttacks(sq, Right, occ)
}

// DiagonalAttacks returns the bishop-style attack set from sq.
func DiagonalAttacks(sq Square, occ BitBoard) BitBoard {
	return rayAttacks(sq, UL, occ) | rayAttacks(sq, UR, occ) |
		rayAttacks(sq, DL, occ) | rayAttacks(sq, DR, occ)
}

// GenThreats computes every square attacked by the pieces of attacker.
// Ray attacks are computed with the defending king removed from the
// occupancy, so a checked king cannot step backwards along the checking
// ray and still look safe.
func GenThreats(b *Board, attacker Color) BitBoard {
	defender := attacker.Other()
	occ := b.Occupied() &^ b.Kings(defender)

	var threats BitBoard

	pawns := b.Pawns(attacker)
	if attacker == White {
		threats |= pawns.Shift(UL) | pawns.Shift(UR)
	} else {
		threats |= pawns.Shift(DL) | pawns.Shift(DR)
	}

	for knights := b.Knights(attacker); knights.Any(); {
		threats |= KnightMask(knights.PopFirst())
	}

	if king := b.KingSquare(attacker); king.IsValid() {
		threats |= KingMask(king)
	}

	for laterals := b.Laterals(attacker); laterals.Any(); {
		threats |= LateralAttacks(laterals.PopFirst(), occ)
	}
	for diagonals := b.Diagonals(attacker); diagonals.Any(); {
		threats |= DiagonalAttacks(diagonals.PopFirst(), occ)
	}

	return threats
}

// IsAttacked reports whether sq is attacked by any piece of the given
// color under the supplied occupancy.
func IsAttacked(b *Board, sq Square, by Color, occ BitBoard) bool {
	if PawnCaptureMask(by.Other(), sq)&b.Pawns(by) != 0 {
		return true
	}
	if KnightMask(sq)&b.Knights(by) != 0 {
		return true
	}
	if KingMask(sq)&b.Kings(by) != 0 {
		return true
	}
	if laterals := b.Laterals(by); laterals.Any() && LateralAttacks(sq, occ)&laterals != 0 {
		return true
	}
	if diagonals := b.Diagonals(by); diagonals.Any() && DiagonalAttacks(sq, occ)&diagonals != 0 {
		return true
	}
	return false
}

// FindAttackingRay steps from victim in direction d until it reaches the
// first occupied square. That square is returned when it belongs to the
// aggressors set; any other occupant, or the board edge, yields an
// invalid square.
func FindAttackingRay(victim Square, d Direction, b *Board, aggressors BitBoard) Square {
	for sq := d.Step(victim); sq.IsValid(); sq = d.Step(sq) {
		if aggressors.Test(sq) {
			return sq
		}
		if b.IsOccupied(sq) {
			return InvalidSquare
		}
	}
	return InvalidSquare
}

// FindAttackingKnight checks the single L-jump from victim in direction d
// and returns the landing square when it holds an aggressor.
func FindAttackingKnight(victim Square, d Direction, aggressors BitBoard) Square {
	sq := d.Step(victim)
	if sq.IsValid() && aggressors.Test(sq) {
		return sq
	}
	return InvalidSquare
}

// KingAttacker is one enemy piece giving check, together with the
// direction leading from the king to it: a ray direction for sliding and
// pawn checkers, the specific L-jump for a knight checker.
type KingAttacker struct {
	Square Square
	Dir    Direction
}

// KingAttackers lists the pieces currently checking a king. At most two
// pieces can check at once.
type KingAttackers struct {
	attackers [2]KingAttacker
	size      int
}

// Size returns the number of checkers found.
func (ka KingAttackers) Size() int { return ka.size }

// At returns the i-th checker.
func (ka KingAttackers) At(i int) KingAttacker { return ka.attackers[i] }

func (ka *KingAttackers) push(sq Square, d Direction) {
	if ka.size < 2 {
		ka.attackers[ka.size] = KingAttacker{Square: sq, Dir: d}
		ka.size++
	}
}

// FindKingAttackers finds the enemy pieces giving check to the king of
// the defending color standing on king.
func FindKingAttackers(b *Board, king Square, enemy Color) KingAttackers {
	var found KingAttackers
	defender := enemy.Other()

	// Pawn checks: the squares our own pawn would attack from the king's
	// square are exactly the squares an enemy pawn checks from.
	if pawns := PawnCaptureMask(defender, king) & b.Pawns(enemy); pawns.Any() {
		sq := pawns.PopFirst()
		found.push(sq, DirectionTowards(king, sq))
	}

	for i, d := range KnightDirections {
		if found.size == 2 {
			return found
		}
		if (knightDirMasks[i][king.Index()] & b.Knights(enemy)).Any() {
			found.push(d.Step(king), d)
		}
	}

	enemyLaterals := b.Laterals(enemy)
	enemyDiagonals := b.Diagonals(enemy)
	for _, d := range RayDirections {
		if found.size == 2 {
			return found
		}
		aggressors := enemyDiagonals
		if d.IsLateral() {
			aggressors = enemyLaterals
		}
		if aggressors.None() {
			continue
		}
		if sq := FindAttackingRay(king, d, b, aggressors); sq.IsValid() {
			found.push(sq, d)
		}
	}

	return found
}
