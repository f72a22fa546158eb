package core

import "math/rand"

// Rand is the seedable random source games draw from. Tests swap in a
// scripted source to pin spawn positions.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi]. If hi <= lo it returns lo.
	IntRange(lo, hi int) int
	// Int63 returns a non-negative pseudo-random 63-bit integer, used to
	// derive reseeds on restart.
	Int63() int64
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

func (s *seededRand) Int63() int64 {
	return s.r.Int63()
}

// ScriptedRand replays a fixed list of values, clamped into the requested
// range. When the script runs out it keeps returning lo.
type ScriptedRand struct {
	Values []int
	next   int
}

// IntRange returns the next scripted value clamped to [lo, hi].
func (s *ScriptedRand) IntRange(lo, hi int) int {
	if s.next >= len(s.Values) {
		return lo
	}
	v := s.Values[s.next]
	s.next++
	if hi < lo {
		return lo
	}
	return Clamp(v, lo, hi)
}

// Int63 returns the count of values consumed so far.
func (s *ScriptedRand) Int63() int64 {
	return int64(s.next)
}
