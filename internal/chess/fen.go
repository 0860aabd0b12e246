package chess

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/lgbarn/pgn-extract-go/internal/errors"
)

// ParseFEN parses the board-placement, side-to-move, castling-availability,
// and en-passant-target fields of a FEN string (the first four
// space-separated fields; half-move clock and full-move number, if
// present, are ignored since the core has no such counters - spec.md 3).
func ParseFEN(fen string) (Position, Colour, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, White, apperrors.Wrapf(apperrors.ErrInvalidFEN, "expected at least 4 fields, got %d", len(fields))
	}

	board, err := parseFENBoard(fields[0])
	if err != nil {
		return Position{}, White, err
	}

	side, err := parseFENSide(fields[1])
	if err != nil {
		return Position{}, White, err
	}

	castling := parseFENCastling(fields[2])

	ep, err := parseFENEnPassant(fields[3])
	if err != nil {
		return Position{}, White, err
	}

	return Position{Board: board, Castling: castling, EnPassant: ep}, side, nil
}

func parseFENBoard(field string) (Board, error) {
	b := EmptyBoard()
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return b, apperrors.Wrapf(apperrors.ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}
	for i, rankField := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankField {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				cp, ok := colouredPieceFromFENLetter(byte(c))
				if !ok {
					return b, apperrors.Wrapf(apperrors.ErrInvalidFEN, "unexpected piece letter %q", string(c))
				}
				if file >= 8 {
					return b, apperrors.Wrapf(apperrors.ErrInvalidFEN, "rank %d overflows the board", rank+1)
				}
				b.Set(MakeSquare(file, rank), cp)
				file++
			}
		}
		if file != 8 {
			return b, apperrors.Wrapf(apperrors.ErrInvalidFEN, "rank %d has %d files, want 8", rank+1, file)
		}
	}
	return b, nil
}

func colouredPieceFromFENLetter(l byte) (ColouredPiece, bool) {
	colour := White
	if l >= 'a' && l <= 'z' {
		colour = Black
		l -= 'a' - 'A'
	}
	var kind Piece
	switch l {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return NoPiece, false
	}
	return MakeColouredPiece(colour, kind), true
}

func parseFENSide(field string) (Colour, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, apperrors.Wrapf(apperrors.ErrInvalidFEN, "unexpected side-to-move %q", field)
	}
}

func parseFENCastling(field string) CastlingRights {
	if field == "-" {
		return CastlingRights{}
	}
	var c CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			c.WhiteKingSide = true
		case 'Q':
			c.WhiteQueenSide = true
		case 'k':
			c.BlackKingSide = true
		case 'q':
			c.BlackQueenSide = true
		}
	}
	return c
}

func parseFENEnPassant(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, ok := ParseSquare(field)
	if !ok {
		return NoSquare, apperrors.Wrapf(apperrors.ErrInvalidFEN, "bad en-passant target %q", field)
	}
	return sq, nil
}

// FEN renders a position and side-to-move as a FEN string. Half-move clock
// and full-move number are not tracked by the core (spec.md 3), so this
// always emits "0 1" for those trailing fields - sufficient for any
// consumer that merely round-trips a position through FEN.
func FEN(pos Position, side Colour) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		run := 0
		for file := 0; file < 8; file++ {
			cp := pos.Board.Get(MakeSquare(file, rank))
			if cp.IsEmpty() {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteByte(cp.Letter())
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sideLetter := "w"
	if side == Black {
		sideLetter = "b"
	}

	castling := fenCastlingField(pos.Castling)
	ep := "-"
	if pos.EnPassant != NoSquare {
		ep = strings.ToLower(pos.EnPassant.String())
	}

	return fmt.Sprintf("%s %s %s %s 0 1", sb.String(), sideLetter, castling, ep)
}

func fenCastlingField(c CastlingRights) string {
	s := ""
	if c.WhiteKingSide {
		s += "K"
	}
	if c.WhiteQueenSide {
		s += "Q"
	}
	if c.BlackKingSide {
		s += "k"
	}
	if c.BlackQueenSide {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
