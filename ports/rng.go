package ports

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand/v2"
)

// seededRng is a deterministic Rng backed by math/rand/v2's PCG source. Given
// the same seed it produces the same stream of draws across runs and across
// processes, which is what breed()'s cross-implementation determinism tests
// require with a seeded RNG produces identical
// children bit-for-bit across runs").
type seededRng struct {
	r *mrand.Rand
}

// NewSeededRng builds a reproducible Rng from a 128-bit seed. Tests use this
// to pin down exact operator outcomes.
func NewSeededRng(seed1, seed2 uint64) Rng {
	return &seededRng{r: mrand.New(mrand.NewPCG(seed1, seed2))}
}

func (s *seededRng) NextFloat64() float64 { return s.r.Float64() }

func (s *seededRng) NextBytes(n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < n; i += 8 {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], s.r.Uint64())
		copy(buf[i:], tmp[:])
	}
	return buf
}

func (s *seededRng) NextGaussian() float64 {
	// Box-Muller, using the generator's own uniform draws so the whole
	// stream stays reproducible from a single seed.
	u1 := s.r.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	u2 := s.r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func (s *seededRng) NextIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// systemRng is the production default: a true CSPRNG with no reproducibility
// guarantee, suitable for live agents that don't need cross-run determinism.
type systemRng struct{}

// NewSystemRng returns a non-reproducible, cryptographically strong Rng.
func NewSystemRng() Rng { return systemRng{} }

func (systemRng) NextBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read on the OS's CSPRNG does not fail in practice;
		// zero bytes is a safe, detectable degraded mode rather than a panic.
		return make([]byte, n)
	}
	return buf
}

func (s systemRng) NextFloat64() float64 {
	var b [8]byte
	copy(b[:], s.NextBytes(8))
	u := binary.BigEndian.Uint64(b[:]) >> 11 // 53 significant bits
	return float64(u) / float64(uint64(1)<<53)
}

func (s systemRng) NextGaussian() float64 {
	u1 := s.NextFloat64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	u2 := s.NextFloat64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func (s systemRng) NextIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.NextFloat64() * float64(n))
}
