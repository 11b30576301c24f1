package game

import (
	"fmt"
	"math/bits"
)

// Board geometry of knight's Isolation
const (
	Width  = 11
	Height = 9
	Size   = Width * Height
)

// Knight jumps as (column, row) offsets
var jumps = [8][2]int{
	{1, -2}, {2, -1}, {2, 1}, {1, 2},
	{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
}

// At returns the location of a column and row, or NoLocation when off the board.
func At(col, row int) Location {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return NoLocation
	}
	return Location(row*Width + col)
}

func (l Location) Col() int {
	return int(l) % Width
}

func (l Location) Row() int {
	return int(l) / Width
}

func (l Location) String() string {
	if l == NoLocation {
		return "none"
	}
	if l < 0 || l >= Size {
		return fmt.Sprintf("invalid(%d)", int(l))
	}
	return fmt.Sprintf("(%d,%d)", l.Col(), l.Row())
}

// board is a bitset of open squares. It is a value type so copies never alias.
type board [2]uint64

func fullBoard() board {
	var b board
	for loc := Location(0); loc < Size; loc++ {
		b = b.open(loc)
	}
	return b
}

func (b board) isOpen(loc Location) bool {
	if loc < 0 || loc >= Size {
		return false
	}
	return b[loc/64]&(1<<(uint(loc)%64)) != 0
}

func (b board) open(loc Location) board {
	b[loc/64] |= 1 << (uint(loc) % 64)
	return b
}

func (b board) block(loc Location) board {
	b[loc/64] &^= 1 << (uint(loc) % 64)
	return b
}

func (b board) count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1])
}

// openSquares lists open squares in increasing location order
func (b board) openSquares() []Location {
	squares := make([]Location, 0, b.count())
	for loc := Location(0); loc < Size; loc++ {
		if b.isOpen(loc) {
			squares = append(squares, loc)
		}
	}
	return squares
}

// jumpsFrom lists the open knight jump destinations of loc in a fixed order
func (b board) jumpsFrom(loc Location) []Location {
	destinations := make([]Location, 0, len(jumps))
	for _, jump := range jumps {
		dest := At(loc.Col()+jump[0], loc.Row()+jump[1])
		if dest != NoLocation && b.isOpen(dest) {
			destinations = append(destinations, dest)
		}
	}
	return destinations
}
