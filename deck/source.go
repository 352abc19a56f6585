package deck

import "math/bits"

// Source is the random number capability a Deck is shuffled with.
// It has the same method set as math/rand/v2.Source, so any of the
// standard library's generators can be supplied.
type Source interface {
	Uint64() uint64
}

// Xoshiro is a xoshiro256** generator. It is small, fast and fully
// deterministic for a given seed, which makes it the source of choice for
// reproducible games.
type Xoshiro struct {
	s [4]uint64
}

// NewXoshiro seeds a xoshiro256** generator from a single integer by
// expanding it with SplitMix64.
func NewXoshiro(seed uint64) *Xoshiro {
	sm := splitMix64(seed)
	x := &Xoshiro{}
	for i := range x.s {
		x.s[i] = sm.next()
	}
	if x.s == [4]uint64{} {
		// the all-zero state is a fixed point
		return NewXoshiro(0)
	}
	return x
}

func (x *Xoshiro) Uint64() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

type splitMix64 uint64

func (sm *splitMix64) next() uint64 {
	*sm += 0x9e3779b97f4a7c15
	z := uint64(*sm)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// uint32n returns a uniform integer in [0, n) from the high half of each
// 64-bit draw, rejecting the biased low zone of the widened product.
func uint32n(src Source, n uint32) uint32 {
	zone := (n << bits.LeadingZeros32(n)) - 1
	for {
		v := uint32(src.Uint64() >> 32)
		hi, lo := bits.Mul32(v, n)
		if lo <= zone {
			return hi
		}
	}
}

// Shuffle permutes cards in place, walking from the last index down and
// swapping each position with a uniformly chosen one at or below it.
func Shuffle(cards []Card, src Source) {
	for i := len(cards) - 1; i > 0; i-- {
		j := uint32n(src, uint32(i+1))
		cards[i], cards[j] = cards[j], cards[i]
	}
}
