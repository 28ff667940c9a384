package rider

import (
	"fmt"
	"math"
)

// TableLength is the number of control points in a terrain table.
const TableLength = 256

const (
	sampleScale = 0.01 // Table units per world pixel
	heightScale = 0.25 // Screen pixels per table height unit
)

// Table is a terrain height table: a permutation of 0..TableLength-1.
type Table [TableLength]uint8

// Shuffler produces uniformly random permutations.
// *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Generate builds a new terrain table by shuffling 0..TableLength-1.
// The same generator state always yields the same table.
func Generate(rng Shuffler) Table {
	var t Table
	for i := range t {
		t[i] = uint8(i)
	}
	rng.Shuffle(len(t), func(i, j int) {
		t[i], t[j] = t[j], t[i]
	})
	return t
}

// HeightAt returns the smoothed terrain height at world x-coordinate worldX
// when the screen's left edge sits at offset t. The sample position wraps,
// so the terrain repeats every TableLength/sampleScale pixels.
func (tb *Table) HeightAt(t, worldX float64) float64 {
	u := math.Mod((t+worldX)*sampleScale, TableLength)
	if u < 0 {
		u += TableLength
	}

	lo := int(math.Floor(u))
	// u can round up to exactly TableLength after adding it to a tiny negative value.
	lo %= TableLength
	hi := int(math.Ceil(u)) % TableLength
	frac := u - math.Floor(u)

	if lo < 0 || lo >= TableLength || hi < 0 || hi >= TableLength {
		panic(fmt.Sprintf("rider: terrain index out of range (u=%v lo=%d hi=%d)", u, lo, hi))
	}

	return LerpCos(float64(tb[lo]), float64(tb[hi]), frac)
}

// LerpCos interpolates between a and b with an ease-in/ease-out cosine curve.
func LerpCos(a, b, frac float64) float64 {
	return a + (b-a)*(1-math.Cos(frac*math.Pi))/2
}

// groundY converts a terrain height into a screen y-coordinate.
func groundY(tb *Table, screenH, t, x float64) float64 {
	return screenH - tb.HeightAt(t, x)*heightScale
}
