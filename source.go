package tagid

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source provides uniformly distributed integers for tag IDs.
//
// IntN returns a value in [0, n). Implementations must be safe for concurrent use.
type Source interface {
	IntN(n int) (int, error)
}

type mathSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

var _ Source = (*mathSource)(nil)

// NewMathSource wraps a math/rand/v2 generator behind a mutex.
//
// Passing nil uses a PCG seeded from the runtime's random state.
func NewMathSource(r *mrand.Rand) Source {
	if r == nil {
		r = mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}
	return &mathSource{r: r}
}

// NewSeededSource returns a deterministic source; equal seeds yield equal sequences.
func NewSeededSource(seed uint64) Source {
	return NewMathSource(mrand.New(mrand.NewPCG(seed, seed)))
}

func (s *mathSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, invalidRangeError(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n), nil
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

var _ Source = CryptoSource{}

func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, invalidRangeError(n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, sourceError(err)
	}
	return int(v.Int64()), nil
}

// SourceFunc adapts a function to Source.
type SourceFunc func(n int) (int, error)

func (f SourceFunc) IntN(n int) (int, error) {
	return f(n)
}
