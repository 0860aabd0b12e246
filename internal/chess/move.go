package chess

import "strings"

// Move is (from-square, to-square, optional promotion kind). Castling is
// encoded as a two-square king move (e1->g1); en-passant is encoded as the
// pawn's diagonal capture onto the en-passant target square. Promotion is
// required iff the move lands a pawn on its last rank (spec.md 3).
type Move struct {
	From      Square
	To        Square
	Promotion Piece // Empty unless this move promotes a pawn.
}

// String renders a move in square notation with an optional promotion
// letter suffix, e.g. "E7E8Q", matching the API boundary in spec.md 6.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter())
	}
	return s
}

// Normalize upper-cases and trims a user-supplied move string, per
// spec.md 9's "source upper-cases and trims" note on the user-move channel.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Matches reports whether a normalized user-move string denotes this move.
// The promotion-letter suffix, if present on either side, must match
// exactly (spec.md 9).
func (m Move) Matches(normalized string) bool {
	return Normalize(m.String()) == normalized
}

// promotionFromLetter maps a promotion letter (Q/R/B/N) to a Piece kind.
func promotionFromLetter(l byte) (Piece, bool) {
	switch l {
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	default:
		return Empty, false
	}
}

// ParseMove parses a normalized move string of the form "<from><to>[promo]",
// e.g. "E2E4" or "E7E8Q". Used to match an announced user move against a
// root move string and to accept CLI/API move input.
func ParseMove(s string) (Move, bool) {
	s = Normalize(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, false
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		p, ok := promotionFromLetter(s[4])
		if !ok {
			return Move{}, false
		}
		mv.Promotion = p
	}
	return mv, true
}
