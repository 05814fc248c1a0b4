package spinner

import (
	"math/rand"
	"time"
)

// Source yields uniform random indexes. Injected so tests can supply
// deterministic sequences and assert exact pick and shuffle outcomes.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) int
}

type mathSource struct {
	r *rand.Rand
}

// NewSource returns a time-seeded uniform Source.
func NewSource() Source {
	return &mathSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *mathSource) IntN(n int) int {
	return s.r.Intn(n)
}
