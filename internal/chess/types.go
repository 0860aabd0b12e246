// Package chess provides the core board representation and move types for
// the search engine: a flat, square-indexed board, coloured pieces, and the
// castling/en-passant state that makes up a Position.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, independent of colour.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind, used in FEN
// and promotion suffixes.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ColouredPiece packs a piece kind and colour into a single small integer so
// a board can be a flat array of these, not a pair of parallel arrays.
type ColouredPiece int

const (
	// NoPiece marks an empty square.
	NoPiece ColouredPiece = 0
	// pieceShift separates colour (low bit) from piece kind (remaining bits).
	pieceShift = 1
)

// MakeColouredPiece packs a colour and piece kind together. Piece must not
// be Empty; callers use NoPiece for empty squares.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	return ColouredPiece((int(piece) << pieceShift) | int(colour))
}

// Colour extracts the colour of a coloured piece. Undefined for NoPiece.
func (cp ColouredPiece) Colour() Colour {
	return Colour(int(cp) & 0x1)
}

// Kind extracts the piece kind of a coloured piece.
func (cp ColouredPiece) Kind() Piece {
	if cp == NoPiece {
		return Empty
	}
	return Piece(int(cp) >> pieceShift)
}

// IsEmpty reports whether the square holding this value is empty.
func (cp ColouredPiece) IsEmpty() bool {
	return cp == NoPiece
}

// String renders a coloured piece as e.g. "White Knight" or "empty".
func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return "empty"
	}
	return cp.Colour().String() + " " + cp.Kind().String()
}

// Letter renders a coloured piece as a FEN letter: uppercase for White,
// lowercase for Black, '.' for empty.
func (cp ColouredPiece) Letter() byte {
	if cp.IsEmpty() {
		return '.'
	}
	l := cp.Kind().Letter()
	if cp.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// MaterialValue returns the conventional centipawn value of a piece kind.
// King is given a large sentinel value, per spec.md's material table -
// it is never actually captured in a legal game, but mobility/SEE-free
// evaluation code is simpler when every occupied square has a value.
func (p Piece) MaterialValue() int {
	switch p {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}
