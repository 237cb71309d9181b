package gomea

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DepType selects the pairwise dependency measure used to build the
// linkage tree each generation.
type DepType int

const (
	// DepExtended is the binomial-tail-probability dependency (default).
	DepExtended DepType = 1
	// DepStandard is the pGOMEA entropy-like co-shift dependency.
	DepStandard DepType = 2
	// DepRandom draws an independent Uniform(0,1) sample per pair, per call.
	DepRandom DepType = 3
)

// extendedDependencyExponent is the w exponent applied to (1-T) in the
// extended/binomial dependency measure, deptype=1.
const extendedDependencyExponent = 2.0 / 3.0

// binomialCDFCache memoizes Binomial(n, q).CDF(k) across calls within a
// single Solve run. n and q are fixed for the whole run (population size and
// 1/V respectively), so the cache key is just k. Constructed at Solve entry
// and discarded at exit — no process-global state.
type binomialCDFCache struct {
	n     int
	q     float64
	dist  distuv.Binomial
	cache map[int]float64
}

func newBinomialCDFCache(n int, q float64) *binomialCDFCache {
	return &binomialCDFCache{
		n:     n,
		q:     q,
		dist:  distuv.Binomial{N: float64(n), P: q},
		cache: make(map[int]float64),
	}
}

// cdf returns P(X <= k) for X ~ Binomial(n, q), memoized.
func (b *binomialCDFCache) cdf(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.n {
		return 1
	}
	if v, ok := b.cache[k]; ok {
		return v
	}
	v := b.dist.CDF(float64(k))
	b.cache[k] = v
	return v
}

// twoTailedTail returns the two-tailed tail probability of observing k
// successes at least as extreme as k, under the cached Binomial(n, q).
func (b *binomialCDFCache) twoTailedTail(k int) float64 {
	pLE := b.cdf(k)
	pGE := 1 - b.cdf(k-1)
	t := 2 * math.Min(pLE, pGE)
	if t > 1 {
		t = 1
	}
	return t
}

// coAssignmentRate returns p_hat, the empirical fraction of individuals
// that assign clients i and j (0-based) to the same shift.
func coAssignmentRate(individuals []*Individual, i, j int) float64 {
	matches := make([]float64, len(individuals))
	for idx, ind := range individuals {
		if ind.KeyInt[i] == ind.KeyInt[j] {
			matches[idx] = 1
		}
	}
	return floats.Sum(matches) / float64(len(individuals))
}

// binaryEntropyBits returns the Shannon entropy, in bits, of a Bernoulli(p)
// variable; 0 at p in {0,1}, 1 at p=0.5.
func binaryEntropyBits(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -(p*math.Log2(p) + (1-p)*math.Log2(1-p))
}

// pairwiseDistance computes d(i,j) in [0,1] for the dependency measure
// selected by depType, over the current population.
//
// deptype=2 (standard pGOMEA) uses the same co-shift indicator as deptype=1
// but measures dependency via the Bernoulli entropy of that indicator
// rather than a hypothesis-test tail probability: an evenly-split
// co-assignment rate (p_hat near 0.5) carries the most information about
// whether i and j are linked, while a near-deterministic rate (always or
// never co-assigned) carries the least (see DESIGN.md for the reasoning
// behind this choice).
func pairwiseDistance(depType DepType, individuals []*Individual, i, j int, cache *binomialCDFCache, randRNG *rand.Rand) float64 {
	switch depType {
	case DepRandom:
		return randRNG.Float64()
	case DepStandard:
		p := coAssignmentRate(individuals, i, j)
		dep := binaryEntropyBits(p)
		return 1 - dep
	default: // DepExtended
		p := coAssignmentRate(individuals, i, j)
		k := int(math.Round(p * float64(len(individuals))))
		t := cache.twoTailedTail(k)
		dep := 1 - t
		return 1 - math.Pow(dep, extendedDependencyExponent)
	}
}

// condensedDistances computes the condensed (row-major upper triangle)
// pairwise distance vector over the N = n-1 clients, consumed by the
// linkage-tree builder.
func condensedDistances(depType DepType, individuals []*Individual, n int, cache *binomialCDFCache, randRNG *rand.Rand) []float64 {
	size := n * (n - 1) / 2
	dist := make([]float64, 0, size)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist = append(dist, pairwiseDistance(depType, individuals, i, j, cache, randRNG))
		}
	}
	return dist
}
