// Package replayio encodes a finished game's move list into the compact
// hexadecimal replay text, and parses such text back. Each move is two bits
// (L=0, R=1, D=2, U=3), two moves per hex digit with the earlier move in the
// high bits. Output is grouped four digits at a time for human eyes; the
// parser ignores all whitespace.
package replayio

import (
	"fmt"
	"strings"

	"github.com/spitewell/spitewell/move"
)

const groupDigits = 4

func moveBits(m move.Move) uint8 {
	switch m {
	case move.Left:
		return 0
	case move.Right:
		return 1
	case move.Down:
		return 2
	case move.Clockwise:
		return 3
	}
	return 2
}

func bitsMove(b uint8) move.Move {
	switch b {
	case 0:
		return move.Left
	case 1:
		return move.Right
	case 3:
		return move.Clockwise
	}
	return move.Down
}

// Encode renders a move list as replay text. An odd-length list is padded
// with a trailing Down, which playback of a finished game tolerates; Decode
// cannot tell the pad from a real final Down.
func Encode(moves []move.Move) string {
	var sb strings.Builder
	digits := 0
	for i := 0; i < len(moves); i += 2 {
		hi := moveBits(moves[i])
		lo := uint8(2) // pad
		if i+1 < len(moves) {
			lo = moveBits(moves[i+1])
		}
		fmt.Fprintf(&sb, "%X", hi<<2|lo)
		digits++
		if digits%groupDigits == 0 && i+2 < len(moves) {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Decode parses replay text back into a move list.
func Decode(text string) ([]move.Move, error) {
	var moves []move.Move
	for i, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r >= '0' && r <= '9':
			b := uint8(r - '0')
			moves = append(moves, bitsMove(b>>2), bitsMove(b&3))
		case r >= 'A' && r <= 'F':
			b := uint8(r-'A') + 10
			moves = append(moves, bitsMove(b>>2), bitsMove(b&3))
		case r >= 'a' && r <= 'f':
			b := uint8(r-'a') + 10
			moves = append(moves, bitsMove(b>>2), bitsMove(b&3))
		default:
			return nil, fmt.Errorf("bad replay character %q at offset %d", r, i)
		}
	}
	return moves, nil
}
