// Package engine implements the move generator, attack detection, move
// application, legality filter, and static evaluator described in spec.md
// 4.A-4.F: components B-F sitting beneath the search layer.
package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsAttacked reports whether sq is attacked by byColour in one ply
// (spec.md 4.C). It is computed symmetrically - rays cast from sq outward,
// checked against attacker kinds at each step - and consults the board
// alone, never castling rights, so that castling-through-check detection
// (spec.md 4.E) can call it without recursing into castling logic.
func IsAttacked(b *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	file, rank := sq.File(), sq.Rank()

	// Pawn attacks: a pawn one rank *toward* the defender, diagonally
	// adjacent, attacks sq.
	pawnRank := rank - pawnDirection(byColour)
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if squareOn(f, pawnRank) && b.Get(chess.MakeSquare(f, pawnRank)) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		f, r := file+o[0], rank+o[1]
		if squareOn(f, r) && b.Get(chess.MakeSquare(f, r)) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		f, r := file+o[0], rank+o[1]
		if squareOn(f, r) && b.Get(chess.MakeSquare(f, r)) == king {
			return true
		}
	}

	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, d := range diagonalDirs {
		if rayHits(b, file, rank, d[0], d[1], bishop, queen) {
			return true
		}
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, d := range straightDirs {
		if rayHits(b, file, rank, d[0], d[1], rook, queen) {
			return true
		}
	}

	return false
}

// rayHits casts a ray from (file,rank) in direction (df,dr) and reports
// whether the first occupied square it reaches holds either wantA or
// wantB.
func rayHits(b *chess.Board, file, rank, df, dr int, wantA, wantB chess.ColouredPiece) bool {
	f, r := file+df, rank+dr
	for squareOn(f, r) {
		cp := b.Get(chess.MakeSquare(f, r))
		if !cp.IsEmpty() {
			return cp == wantA || cp == wantB
		}
		f += df
		r += dr
	}
	return false
}

// pawnDirection returns the rank delta a pawn of colour advances by.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

func squareOn(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// InCheck reports whether colour's king is currently attacked.
// A position with no king for colour (spec.md 7, a caller error) is
// reported as not in check rather than panicking.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := pos.Board.KingSquare(colour)
	if kingSq == chess.NoSquare {
		return false
	}
	return IsAttacked(&pos.Board, kingSq, colour.Opposite())
}
