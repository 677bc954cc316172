package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestDimsValidate(t *testing.T) {
	is := is.New(t)

	is.NoErr(Dims{Width: 10, Depth: 20, Bar: 4}.Validate())
	is.NoErr(Dims{Width: 4, Depth: 4, Bar: 4}.Validate())

	is.True(Dims{Width: 3, Depth: 20, Bar: 4}.Validate() != nil)  // too narrow
	is.True(Dims{Width: 17, Depth: 20, Bar: 4}.Validate() != nil) // too wide
	is.True(Dims{Width: 10, Depth: 3, Bar: 4}.Validate() != nil)  // depth below bar
}

func TestFullRow(t *testing.T) {
	is := is.New(t)
	is.Equal(Dims{Width: 4}.FullRow(), uint16(0b1111))
	is.Equal(Dims{Width: 10}.FullRow(), uint16(0b1111111111))
}

func TestCopyDoesNotAlias(t *testing.T) {
	is := is.New(t)
	d := Dims{Width: 10, Depth: 8, Bar: 4}
	w := New(d)
	w.Rows[7] = 0b1111
	w.Score = 3

	c := w.Copy()
	is.True(w.Equal(c))

	c.Rows[7] = 0
	c.Score = 9
	is.Equal(w.Rows[7], uint16(0b1111))
	is.Equal(w.Score, 3)
}

func TestTopRow(t *testing.T) {
	is := is.New(t)
	d := Dims{Width: 10, Depth: 8, Bar: 4}
	w := New(d)
	is.Equal(w.TopRow(), 8) // empty well

	w.Rows[5] = 1
	is.Equal(w.TopRow(), 5)
	w.Rows[2] = 1
	is.Equal(w.TopRow(), 2)
}

func TestOverflowed(t *testing.T) {
	is := is.New(t)
	d := Dims{Width: 10, Depth: 8, Bar: 4}
	w := New(d)
	is.True(!w.Overflowed(d.Bar))

	w.Rows[4] = 1 // at the bar, not above it
	is.True(!w.Overflowed(d.Bar))

	w.Rows[3] = 1
	is.True(w.Overflowed(d.Bar))
}

func TestCellCount(t *testing.T) {
	is := is.New(t)
	w := New(Dims{Width: 10, Depth: 8, Bar: 4})
	is.Equal(w.CellCount(), 0)
	w.Rows[7] = 0b1011
	w.Rows[6] = 0b0001
	is.Equal(w.CellCount(), 4)
}
