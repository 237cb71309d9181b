package gomea

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Solve runs GOMEA on ins under opts and returns the best schedule found.
// All randomness is derived from opts.Seed via a single partitionedRNG, so
// a run is fully reproducible given the same Instance, Options and seed.
func Solve(ins *Instance, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// The binomial CDF cache is scoped to this call only; it is
	// constructed fresh here and discarded on return, never stored in any
	// package-level variable.
	cache := newBinomialCDFCache(opts.Population, 1.0/float64(ins.V))

	prng := newPartitionedRNG(RunSeed(opts.Seed))
	pop := newPopulation(ins, opts.Population, opts.StartPop, opts.Weights, prng)

	pm := newProgressMonitor(opts.Threshold, opts.Stop)
	done := pm.record(pop.best().Score, pop.meanScore())

	genTimes := make([]time.Duration, 0, opts.Generations+1)
	start := time.Now()
	genTimes = append(genTimes, time.Since(start))

	generationsRun := 0
	for gen := 1; gen <= opts.Generations && !done; gen++ {
		runGeneration(ins, pop, opts, cache, prng)
		generationsRun = gen

		done = pm.record(pop.best().Score, pop.meanScore())
		genTimes = append(genTimes, time.Since(start))

		logrus.WithFields(logrus.Fields{
			"generation": gen,
			"best":       pop.best().Score,
			"mean":       pop.meanScore(),
			"flat":       done,
		}).Debug("gomea: generation complete")
	}

	best := pop.best()
	route := best.route(ins)
	score, distance, overtime, lateness, arrival := Evaluate(ins, route, opts.Weights)

	return &Result{
		Options:         opts,
		Generations:     generationsRun,
		GenerationTimes: genTimes,
		Route:           route,
		Arrival:         arrival,
		Score:           score,
		Distance:        distance,
		Overtime:        overtime,
		Lateness:        lateness,
		Progress:        append([]float64(nil), pm.best...),
		PopMeans:        append([]float64(nil), pm.mean...),
		Instance:        ins,
	}, nil
}

// runGeneration performs one GOMEA generation in place on pop: reencode,
// recompute dependencies, rebuild the linkage tree, then Optimal-Mix every
// individual against a random donor.
//
// Updates to earlier individuals in this loop are visible to later
// individuals — pop is read live, not snapshotted, matching the source
// behavior by design: a later individual in the loop sees an
// already-updated earlier individual, not a snapshot.
func runGeneration(ins *Instance, pop *Population, opts Options, cache *binomialCDFCache, prng *partitionedRNG) {
	encodingRNG := prng.forSubsystem(subsystemEncoding)
	for _, ind := range pop.Individuals {
		reencode(ins, ind.Key, ind.KeyInt, ind.KeyDec, encodingRNG)
	}

	depRNG := prng.forSubsystem(subsystemDependencyRandom)
	n := ins.NumClients()
	dist := condensedDistances(opts.DepType, pop.Individuals, n, cache, depRNG)
	pop.Tree = buildLinkageTree(n, dist)
	pop.Generation++

	orderRNG := prng.forSubsystem(subsystemMixingOrder)
	donorRNG := prng.forSubsystem(subsystemMixingDonor)

	numNodes := pop.Tree.NumNodes()
	for _, x := range pop.Individuals {
		order := orderRNG.Perm(numNodes)
		for _, node := range order {
			fos := pop.Tree.FOS(node)
			donor := pop.Individuals[donorRNG.Intn(len(pop.Individuals))]
			optimalMixStep(ins, opts, x, donor, fos)
		}
	}
}

// optimalMixStep mixes the donor's values for the variables in fos into a
// copy of x's key, evaluates it, and greedily accepts on strict improvement.
// Equal-score candidates are rejected.
func optimalMixStep(ins *Instance, opts Options, x, donor *Individual, fos []int) {
	candidate := append(Key(nil), x.Key...)
	for _, j := range fos {
		candidate[j] = donor.Key[j]
	}

	route := decode(ins, candidate)
	if opts.EnforceQualification && !qualifies(ins, route) {
		return
	}
	score, _, _, _, _ := Evaluate(ins, route, opts.Weights)
	if score >= x.Score {
		return
	}

	x.Key = candidate
	x.Score = score
	for _, j := range fos {
		x.KeyInt[j] = donor.KeyInt[j]
		x.KeyDec[j] = donor.KeyDec[j]
	}
}

// qualifies reports whether every client in route is placed in one of its
// feasible shifts per ins.Q.
func qualifies(ins *Instance, route Route) bool {
	for k, clients := range route {
		for _, c := range clients {
			ok := false
			for _, fk := range ins.FeasibleShifts(c - 1) {
				if fk == k {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
	}
	return true
}
