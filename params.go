package bloomfilter

import (
	"fmt"
	"math"
)

// MaxSlots is the largest slot budget m a filter accepts.
const MaxSlots = 1 << 32

// MaxHashes is the largest number of indices per item a filter accepts.
const MaxHashes = 1 << 10

// Config is a construction request. A zero field means the value was not
// supplied and should be derived. At least one of the pairs (N, P), (N, M)
// or (M, P) must be present; they are tried in that order.
type Config struct {
	N uint64  // expected number of items
	P float64 // target false-positive rate, in (0, 1)
	M uint64  // number of slots (bits or cells)
	K uint64  // number of indices per item
}

// Params are the resolved filter parameters.
type Params struct {
	N uint64
	P float64
	M uint64
	K uint64
}

func (p Params) String() string {
	return fmt.Sprintf("n=%d p=%g m=%d k=%d", p.N, p.P, p.M, p.K)
}

// BitsPerItem returns m/n.
func (p Params) BitsPerItem() float64 {
	return float64(p.M) / float64(p.N)
}

// Solve derives the missing parameters of cfg.
//
//   - N and P: M = OptimalM(N, P) and K = OptimalK(M, N) unless supplied.
//   - N and M: K = OptimalK(M, N) unless supplied, P = OptimalP(M, N, K).
//   - M and P: K = round(-log2 P) unless supplied, N = OptimalN(M, P, K).
//
// Every error returned wraps ErrConfiguration.
func Solve(cfg Config) (Params, error) {
	if cfg.P != 0 && !(cfg.P > 0 && cfg.P < 1) {
		return Params{}, fmt.Errorf("%w: p=%g must lie in (0, 1)", ErrInvalidParameter, cfg.P)
	}
	p := Params{N: cfg.N, P: cfg.P, M: cfg.M, K: cfg.K}
	switch {
	case cfg.N > 0 && cfg.P > 0:
		if p.M == 0 {
			p.M = OptimalM(p.N, p.P)
		}
		if p.K == 0 {
			p.K = OptimalK(p.M, p.N)
		}
	case cfg.N > 0 && cfg.M > 0:
		if p.K == 0 {
			p.K = OptimalK(p.M, p.N)
		}
		p.P = OptimalP(p.M, p.N, p.K)
	case cfg.M > 0 && cfg.P > 0:
		if p.K == 0 {
			p.K = toCount(math.Round(-math.Log2(p.P)))
		}
		p.N = OptimalN(p.M, p.P, p.K)
	default:
		return Params{}, ErrInsufficientParameters
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) validate() error {
	switch {
	case p.N < 1:
		return fmt.Errorf("%w: n resolved to %d", ErrInvalidParameter, p.N)
	case p.M < 1:
		return fmt.Errorf("%w: m resolved to %d", ErrInvalidParameter, p.M)
	case p.M > MaxSlots:
		return fmt.Errorf("%w: m=%d exceeds %d", ErrInvalidParameter, p.M, uint64(MaxSlots))
	case p.K < 1:
		return fmt.Errorf("%w: k resolved to %d", ErrInvalidParameter, p.K)
	case p.K > MaxHashes:
		return fmt.Errorf("%w: k=%d exceeds %d", ErrInvalidParameter, p.K, MaxHashes)
	case math.IsNaN(p.P):
		return fmt.Errorf("%w: p is not a number", ErrInvalidParameter)
	}
	return nil
}

// toCount converts a non-negative real to a count, saturating at the
// uint64 range. NaN and non-positive values map to 0.
func toCount(x float64) uint64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(x)
}

// OptimalK returns round((m/n) ln 2), the number of indices that minimises
// the false-positive rate of an m-slot filter holding n items.
func OptimalK(m, n uint64) uint64 {
	return toCount(math.Round(float64(m) / float64(n) * math.Ln2))
}

// OptimalM returns ceil(n ln p / ln(1 / 2^ln2)), the number of slots needed
// to hold n items at false-positive rate p.
func OptimalM(n uint64, p float64) uint64 {
	return toCount(math.Ceil(float64(n) * math.Log(p) / math.Log(1/math.Pow(2, math.Ln2))))
}

// OptimalN returns ceil(m / (-k ln(1 - e^(ln(p)/k)))).
func OptimalN(m uint64, p float64, k uint64) uint64 {
	kf := float64(k)
	return toCount(math.Ceil(float64(m) / (-kf * math.Log(1-math.Exp(math.Log(p)/kf)))))
}

// OptimalP returns (1 - e^(-k/(m/n)))^k, the expected false-positive rate of
// an m-slot filter with k indices holding n items.
func OptimalP(m, n, k uint64) float64 {
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf/(float64(m)/float64(n))), kf)
}
