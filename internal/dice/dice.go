// Package dice rolls Fate dice.
//
// A Fate die has six faces: two minus, two blank and two plus. A standard
// roll throws four of them and sums the values, giving a total in [-4, +4]
// that peaks at 0.
package dice

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
)

// Dice is the number of Fate dice in a standard roll.
const Dice = 4

// Min and Max bound the total of a standard roll.
const (
	Min = -Dice
	Max = Dice
)

// Face is one of the six symbolic faces of a Fate die.
type Face int

const (
	FaceMinus Face = iota
	FaceBlank
	FacePlus
)

// faces lists the six physical faces in die order; each value appears twice.
var faces = [6]Face{FaceMinus, FaceMinus, FaceBlank, FaceBlank, FacePlus, FacePlus}

// Value returns the numeric value of the face: -1, 0 or +1.
func (f Face) Value() int {
	switch f {
	case FaceMinus:
		return -1
	case FacePlus:
		return 1
	default:
		return 0
	}
}

// Glyph returns the symbol printed on the face.
func (f Face) Glyph() string {
	switch f {
	case FaceMinus:
		return "-"
	case FacePlus:
		return "+"
	default:
		return " "
	}
}

func (f Face) String() string {
	switch f {
	case FaceMinus:
		return "minus"
	case FaceBlank:
		return "blank"
	case FacePlus:
		return "plus"
	default:
		return "unknown"
	}
}

// RollFour throws four Fate dice and returns the total.
func RollFour() int {
	total, _ := RollFourDetailed()
	return total
}

// RollFourDetailed throws four Fate dice and returns the total together with
// the individual faces, in throw order.
func RollFourDetailed() (int, [Dice]Face) {
	var out [Dice]Face
	total := 0
	for i := range out {
		out[i] = draw()
		total += out[i].Value()
	}
	return total, out
}

// FormatRoll renders a total the way it is read at the table: non-negative
// totals carry an explicit plus sign ("+0", "+3"), negative ones keep their
// minus ("-2").
func FormatRoll(total int) string {
	if total >= 0 {
		return "+" + strconv.Itoa(total)
	}
	return strconv.Itoa(total)
}

// ladder names the totals of a standard roll, indexed from Min.
var ladder = [...]string{"Abysmal", "Horrible", "Terrible", "Poor", "Mediocre", "Average", "Fair", "Good", "Great"}

// Ladder returns the adjective for a roll total on the Fate ladder, from
// "Abysmal" at -4 to "Great" at +4. Totals outside the range clamp to the
// nearest end.
func Ladder(total int) string {
	total = max(Min, min(Max, total))
	return ladder[total-Min]
}

// draw picks one of the six faces uniformly. crypto/rand keeps each call
// independent with no shared generator state.
func draw() Face {
	var b [8]byte
	_, _ = rand.Read(b[:])
	n := binary.LittleEndian.Uint64(b[:])
	return faces[n%uint64(len(faces))]
}
