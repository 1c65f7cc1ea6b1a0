package conquest

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Rand is the random source consumed by combat, conflict ordering, the AI and
// id generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// globalRand delegates to the math/rand default source.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func orDefault(rng Rand) Rand {
	if rng == nil {
		return globalRand{}
	}
	return rng
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// randReader adapts a Rand into the byte stream uuid expects.
type randReader struct{ rng Rand }

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Intn(256))
	}
	return len(p), nil
}

// newID returns a v4 UUID drawn from rng, so seeded games reproduce ids.
func newID(rng Rand) string {
	id, err := uuid.NewRandomFromReader(randReader{rng})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
