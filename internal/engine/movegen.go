package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

var promotionKinds = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// GeneratePseudoLegal enumerates every pseudo-legal move for side in pos
// (spec.md 4.B): it obeys piece-movement rules but may leave side's own
// king in check. Output ordering is unspecified except where move ordering
// is applied later by the search (spec.md 4.B, 4.H).
func GeneratePseudoLegal(pos chess.Position, side chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 32)
	b := &pos.Board
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		cp := b.Get(sq)
		if cp.IsEmpty() || cp.Colour() != side {
			continue
		}
		switch cp.Kind() {
		case chess.Pawn:
			genPawnMoves(pos, side, sq, &moves)
		case chess.Knight:
			genOffsetMoves(b, side, sq, knightOffsets, &moves)
		case chess.Bishop:
			genSlideMoves(b, side, sq, diagonalDirs, &moves)
		case chess.Rook:
			genSlideMoves(b, side, sq, straightDirs, &moves)
		case chess.Queen:
			genSlideMoves(b, side, sq, diagonalDirs, &moves)
			genSlideMoves(b, side, sq, straightDirs, &moves)
		case chess.King:
			genOffsetMoves(b, side, sq, kingOffsets, &moves)
			genCastlingMoves(pos, side, &moves)
		}
	}
	return moves
}

// genOffsetMoves appends moves to every offset square not occupied by a
// friendly piece - used by knights and kings, whose moves are not blocked
// by intervening squares.
func genOffsetMoves(b *chess.Board, side chess.Colour, from chess.Square, offsets [8][2]int, moves *[]chess.Move) {
	file, rank := from.File(), from.Rank()
	for _, o := range offsets {
		f, r := file+o[0], rank+o[1]
		if !squareOn(f, r) {
			continue
		}
		to := chess.MakeSquare(f, r)
		target := b.Get(to)
		if target.IsEmpty() || target.Colour() != side {
			*moves = append(*moves, chess.Move{From: from, To: to})
		}
	}
}

// genSlideMoves appends moves along each direction until blocked: an
// enemy-occupied square is included and sliding stops there; a
// friendly-occupied square stops sliding without being included.
func genSlideMoves(b *chess.Board, side chess.Colour, from chess.Square, dirs [4][2]int, moves *[]chess.Move) {
	file, rank := from.File(), from.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for squareOn(f, r) {
			to := chess.MakeSquare(f, r)
			target := b.Get(to)
			if target.IsEmpty() {
				*moves = append(*moves, chess.Move{From: from, To: to})
			} else {
				if target.Colour() != side {
					*moves = append(*moves, chess.Move{From: from, To: to})
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

// genPawnMoves generates single/double pushes, diagonal captures, en
// passant, and promotion expansion (spec.md 4.B).
func genPawnMoves(pos chess.Position, side chess.Colour, from chess.Square, moves *[]chess.Move) {
	b := &pos.Board
	dir := pawnDirection(side)
	file, rank := from.File(), from.Rank()
	homeRank := 1
	lastRank := 7
	if side == chess.Black {
		homeRank = 6
		lastRank = 0
	}

	// Single push.
	oneAheadRank := rank + dir
	if squareOn(file, oneAheadRank) {
		oneAhead := chess.MakeSquare(file, oneAheadRank)
		if b.Get(oneAhead).IsEmpty() {
			appendPawnMove(from, oneAhead, lastRank, moves)

			// Double push, only from the home rank and only if both
			// squares ahead are empty.
			if rank == homeRank {
				twoAheadRank := rank + 2*dir
				twoAhead := chess.MakeSquare(file, twoAheadRank)
				if b.Get(twoAhead).IsEmpty() {
					*moves = append(*moves, chess.Move{From: from, To: twoAhead})
				}
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		f := file + df
		r := rank + dir
		if !squareOn(f, r) {
			continue
		}
		to := chess.MakeSquare(f, r)
		target := b.Get(to)
		if !target.IsEmpty() && target.Colour() != side {
			appendPawnMove(from, to, lastRank, moves)
			continue
		}
		if to == pos.EnPassant {
			// The en-passant target is only reachable if an enemy
			// pawn actually sits adjacent on the mover's rank
			// (spec.md 4.B); ParseFEN callers are trusted, but we
			// verify here since pos.EnPassant alone isn't proof.
			adjacent := chess.MakeSquare(f, rank)
			enemyPawn := chess.MakeColouredPiece(side.Opposite(), chess.Pawn)
			if b.Get(adjacent) == enemyPawn {
				*moves = append(*moves, chess.Move{From: from, To: to})
			}
		}
	}
}

// appendPawnMove appends a single move, expanding it into the four
// promotion variants if it lands on the last rank (spec.md 3, 4.B, 8.5).
func appendPawnMove(from, to chess.Square, lastRank int, moves *[]chess.Move) {
	if to.Rank() == lastRank {
		for _, promo := range promotionKinds {
			*moves = append(*moves, chess.Move{From: from, To: to, Promotion: promo})
		}
		return
	}
	*moves = append(*moves, chess.Move{From: from, To: to})
}

// genCastlingMoves appends castling moves gated by rights and the
// emptiness of the squares between king and rook (spec.md 4.B). Legality
// with respect to attacked squares is checked by the legality filter, not
// here.
func genCastlingMoves(pos chess.Position, side chess.Colour, moves *[]chess.Move) {
	b := &pos.Board
	kingSide, queenSide := pos.Castling.Side(side)
	rank := 0
	kingHome := chess.MakeSquare(4, rank)
	if side == chess.Black {
		rank = 7
		kingHome = chess.MakeSquare(4, rank)
	}

	if kingSide && allEmpty(b, rank, 5, 6) {
		*moves = append(*moves, chess.Move{From: kingHome, To: chess.MakeSquare(6, rank)})
	}
	if queenSide && allEmpty(b, rank, 1, 2, 3) {
		*moves = append(*moves, chess.Move{From: kingHome, To: chess.MakeSquare(2, rank)})
	}
}

func allEmpty(b *chess.Board, rank int, files ...int) bool {
	for _, f := range files {
		if !b.Get(chess.MakeSquare(f, rank)).IsEmpty() {
			return false
		}
	}
	return true
}
