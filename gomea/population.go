package gomea

// Population is the pool of individuals mutated in place across
// generations, plus the linkage tree built fresh each generation.
type Population struct {
	Individuals []*Individual
	Tree        *LinkageTree
	Generation  int
}

// newPopulation builds the initial population. If startRoutes is non-nil it
// supplies the starting routes directly (one per individual, cycled if
// shorter than size); otherwise every individual starts from an independent
// random route.
func newPopulation(ins *Instance, size int, startRoutes []Route, weights Weights, prng *partitionedRNG) *Population {
	individuals := make([]*Individual, size)
	for i := 0; i < size; i++ {
		var route Route
		if len(startRoutes) > 0 {
			route = startRoutes[i%len(startRoutes)].Clone()
		} else {
			route = randomRoute(ins, prng.forSubsystem(subsystemRouteInit))
		}
		individuals[i] = newIndividual(ins, route, weights, prng)
	}
	return &Population{Individuals: individuals}
}

// best returns the individual with the lowest score.
func (pop *Population) best() *Individual {
	best := pop.Individuals[0]
	for _, ind := range pop.Individuals[1:] {
		if ind.Score < best.Score {
			best = ind
		}
	}
	return best
}

// meanScore returns the mean score across the population.
func (pop *Population) meanScore() float64 {
	return meanOf(scoresOf(pop.Individuals))
}

func scoresOf(individuals []*Individual) []float64 {
	scores := make([]float64, len(individuals))
	for i, ind := range individuals {
		scores[i] = ind.Score
	}
	return scores
}
