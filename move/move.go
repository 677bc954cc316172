// Package move contains the basic piece data types: the shape identifiers,
// the in-flight placement of a piece, and the discrete moves a player can
// make. It has no dependencies on the rest of the engine.
package move

import (
	"fmt"
	"strings"
)

// Shape identifies one of the falling piece shapes. The identifiers are
// ordered; pickers that break ties do so in this order.
type Shape uint8

const (
	S Shape = iota
	Z
	O
	I
	L
	J
	T

	NumShapes = 7
)

var shapeNames = [NumShapes]string{"S", "Z", "O", "I", "L", "J", "T"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Known returns whether s is one of the fixed shape identifiers.
func (s Shape) Known() bool {
	return s < NumShapes
}

// ParseShape turns a single-letter shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// AllShapes returns the shape identifiers in their canonical order.
func AllShapes() []Shape {
	shapes := make([]Shape, NumShapes)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// Move is one of the four discrete moves that can be applied to a falling
// piece.
type Move uint8

const (
	Left Move = iota
	Right
	Down
	Clockwise
)

func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	case Down:
		return "D"
	case Clockwise:
		return "U"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// ParseMove turns a one-letter move name (L, R, D, U) into a Move.
func ParseMove(name string) (Move, error) {
	switch strings.ToUpper(name) {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "D":
		return Down, nil
	case "U":
		return Clockwise, nil
	}
	return 0, fmt.Errorf("unknown move %q", name)
}

// Piece is the placement of a piece that is still falling: the anchor of its
// bounding box in well coordinates, plus its current rotation index. A piece
// stops existing when it locks; callers represent "no piece" with a nil
// *Piece.
type Piece struct {
	X, Y  int
	O     int
	Shape Shape
}

func (p Piece) String() string {
	return fmt.Sprintf("<%v x:%d y:%d o:%d>", p.Shape, p.X, p.Y, p.O)
}
