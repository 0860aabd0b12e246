package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

// rookCastleSquares maps a king's destination square (after castling) to
// the rook's origin and destination squares, for relocating the rook
// (spec.md 4.D.4).
var rookCastleSquares = map[chess.Square][2]chess.Square{
	chess.Square(6):  {chess.Square(7), chess.Square(5)},   // e1->g1: h1 rook -> f1
	chess.Square(2):  {chess.Square(0), chess.Square(3)},   // e1->c1: a1 rook -> d1
	chess.Square(62): {chess.Square(63), chess.Square(61)}, // e8->g8: h8 rook -> f8
	chess.Square(58): {chess.Square(56), chess.Square(59)}, // e8->c8: a8 rook -> d8
}

// Apply produces the successor position after side plays mv from pos,
// following spec.md 4.D's six steps. Apply does not validate legality;
// callers supply pseudo-legal moves and filter via LegalMoves. Positions
// are value-like (spec.md 3): pos is never mutated, and a fresh Position is
// returned.
func Apply(pos chess.Position, side chess.Colour, mv chess.Move) chess.Position {
	next := pos // copies Board by value (chess.Board is [64]ColouredPiece)

	piece := next.Board.Get(mv.From)
	kind := piece.Kind()

	wasDoublePush := kind == chess.Pawn && abs(mv.To.Rank()-mv.From.Rank()) == 2

	// Step 3: en-passant capture removes the enemy pawn sitting behind
	// the destination square, before the mover's own piece is placed.
	if kind == chess.Pawn && mv.To == pos.EnPassant {
		capturedRank := mv.From.Rank()
		captureSq := chess.MakeSquare(mv.To.File(), capturedRank)
		next.Board.Clear(captureSq)
	}

	capturedPiece := next.Board.Get(mv.To)

	// Step 1: move the piece.
	next.Board.Clear(mv.From)
	if mv.Promotion != chess.Empty {
		// Step 2: promotion replaces the piece at destination.
		next.Board.Set(mv.To, chess.MakeColouredPiece(side, mv.Promotion))
	} else {
		next.Board.Set(mv.To, piece)
	}

	// Step 4: castling relocates the rook.
	if kind == chess.King && abs(mv.To.File()-mv.From.File()) == 2 {
		rookSquares := rookCastleSquares[mv.To]
		rook := next.Board.Get(rookSquares[0])
		next.Board.Clear(rookSquares[0])
		next.Board.Set(rookSquares[1], rook)
	}

	// Step 5: update castling rights.
	if kind == chess.King {
		next.Castling.ClearColour(side)
	}
	next.Castling.ClearForRookSquare(mv.From)
	if !capturedPiece.IsEmpty() {
		next.Castling.ClearForRookSquare(mv.To)
	}

	// Step 6: en-passant target.
	if wasDoublePush {
		midRank := (mv.From.Rank() + mv.To.Rank()) / 2
		next.EnPassant = chess.MakeSquare(mv.From.File(), midRank)
	} else {
		next.EnPassant = chess.NoSquare
	}

	return next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
