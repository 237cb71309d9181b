package gomea

// Individual is one candidate schedule in its encoded form, plus its
// evaluated score. Individuals never change identity during a run; Optimal
// Mixing overwrites Key, KeyInt, KeyDec and Score in place.
type Individual struct {
	Key    Key
	KeyInt []int
	KeyDec []float64
	Score  float64
}

// newIndividual encodes route and evaluates it against ins under weights.
func newIndividual(ins *Instance, route Route, weights Weights, prng *partitionedRNG) *Individual {
	key, keyInt, keyDec := encode(ins, route, prng.forSubsystem(subsystemEncoding))
	score, _, _, _, _ := Evaluate(ins, route, weights)
	return &Individual{Key: key, KeyInt: keyInt, KeyDec: keyDec, Score: score}
}

// route decodes this individual's current key.
func (ind *Individual) route(ins *Instance) Route {
	return decode(ins, ind.Key)
}
