package chess

// CastlingRights holds the four independent, one-way-false castling flags
// (spec.md 3). A right becomes false - and never true again - when its
// king moves, its rook moves from the home square, or that rook is
// captured on its home square.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Side returns the king-side/queen-side pair of rights for colour.
func (c CastlingRights) Side(colour Colour) (kingSide, queenSide bool) {
	if colour == White {
		return c.WhiteKingSide, c.WhiteQueenSide
	}
	return c.BlackKingSide, c.BlackQueenSide
}

// ClearColour clears both rights for colour, e.g. when that king moves.
func (c *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		c.WhiteKingSide = false
		c.WhiteQueenSide = false
	} else {
		c.BlackKingSide = false
		c.BlackQueenSide = false
	}
}

// home squares for king/rook castling-rights bookkeeping (standard chess;
// spec.md does not require Chess960 support).
const (
	whiteKingHome      = Square(4)  // e1
	whiteRookKingHome  = Square(7)  // h1
	whiteRookQueenHome = Square(0)  // a1
	blackKingHome      = Square(60) // e8
	blackRookKingHome  = Square(63) // h8
	blackRookQueenHome = Square(56) // a8
)

// ClearForRookSquare clears whichever right corresponds to a rook leaving
// or being captured on sq, regardless of that rook's colour.
func (c *CastlingRights) ClearForRookSquare(sq Square) {
	switch sq {
	case whiteRookKingHome:
		c.WhiteKingSide = false
	case whiteRookQueenHome:
		c.WhiteQueenSide = false
	case blackRookKingHome:
		c.BlackKingSide = false
	case blackRookQueenHome:
		c.BlackQueenSide = false
	}
}

// InferCastlingRights derives castling rights from a board alone: a right
// is true iff the king and the matching rook both sit on their home
// squares (spec.md 3, "if not provided, it is inferred from the board").
func InferCastlingRights(b *Board) CastlingRights {
	rook := func(colour Colour) ColouredPiece { return MakeColouredPiece(colour, Rook) }
	king := func(colour Colour) ColouredPiece { return MakeColouredPiece(colour, King) }
	return CastlingRights{
		WhiteKingSide:  b.Get(whiteKingHome) == king(White) && b.Get(whiteRookKingHome) == rook(White),
		WhiteQueenSide: b.Get(whiteKingHome) == king(White) && b.Get(whiteRookQueenHome) == rook(White),
		BlackKingSide:  b.Get(blackKingHome) == king(Black) && b.Get(blackRookKingHome) == rook(Black),
		BlackQueenSide: b.Get(blackKingHome) == king(Black) && b.Get(blackRookQueenHome) == rook(Black),
	}
}

// Position is (Board, Castling rights, En-passant target). Side-to-move is
// passed alongside a Position rather than stored in it, per spec.md 3.
// Positions are value-like: every operation in package engine returns a
// fresh Position rather than mutating its receiver's argument.
type Position struct {
	Board    Board
	Castling CastlingRights
	// EnPassant is the square passed over by a pawn that just made a
	// double push, or NoSquare. Lies on rank 3 or rank 6 when set
	// (spec.md 3).
	EnPassant Square
}

// InitialPosition returns the standard starting position.
func InitialPosition() Position {
	return Position{
		Board:     InitialBoard(),
		Castling:  CastlingRights{true, true, true, true},
		EnPassant: NoSquare,
	}
}
