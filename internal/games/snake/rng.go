package snake

import (
	"math/rand"
	"time"
)

// RNG supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it, as does Mulberry32.
type RNG interface {
	Float64() float64
}

// Mulberry32 is a small seeded generator with a 32-bit state.
// Equal seeds always yield equal sequences.
type Mulberry32 struct {
	state uint32
}

// NewSeeded creates a Mulberry32 generator for the given seed.
func NewSeeded(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	x := m.state
	x = (x ^ (x >> 15)) * (x | 1)
	x ^= x + (x^(x>>7))*(x|61)
	return float64(x^(x>>14)) / 4294967296
}

// NewAmbient returns the free-play stream. A zero seed is replaced by the clock.
func NewAmbient(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DailySeed derives the daily-mode seed from the UTC calendar date of t
// as year*10000 + month*100 + day.
func DailySeed(t time.Time) uint32 {
	u := t.UTC()
	return uint32(int32(u.Year()*10000 + int(u.Month())*100 + u.Day()))
}

// intn returns a value in [0, n) by flooring r*n.
func intn(r RNG, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// between returns a value in [lo, hi] inclusive.
func between(r RNG, lo, hi int) int {
	return lo + intn(r, hi-lo+1)
}
