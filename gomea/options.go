package gomea

import "fmt"

// Options are the recognized Solve overrides. Solve replaces every
// zero-valued field except StartPop, EnforceQualification and Seed with its
// default (see withDefaults), so a zero Generations or Population means "use
// the default"; DefaultOptions returns the fully defaulted value.
type Options struct {
	Generations int     `yaml:"generations"` // hard cap G, default 20
	Population  int     `yaml:"population"`  // P, default 200
	StartPop    []Route `yaml:"-"`           // optional explicit starting routes

	DepType   DepType `yaml:"deptype"`   // 1, 2 or 3, default 1
	Threshold float64 `yaml:"threshold"` // flat-generation ratio threshold, default 0.01
	Stop      int     `yaml:"stop"`      // consecutive-flat generations to terminate, default 2

	// EnforceQualification rejects Optimal Mixing candidates whose decode
	// violates the qualification matrix Q. Off by default; only the initial
	// random route construction respects Q unconditionally. Start routes
	// (including an ingested seed route) are not checked against Q.
	EnforceQualification bool `yaml:"enforce_qualification"`

	Weights Weights `yaml:"-"` // cost weights, default (1,1,1)
	Seed    int64   `yaml:"seed"`
}

// DefaultOptions returns the defaults listed above.
func DefaultOptions() Options {
	return Options{
		Generations: 20,
		Population:  200,
		DepType:     DepExtended,
		Threshold:   0.01,
		Stop:        2,
		Weights:     DefaultWeights(),
	}
}

// withDefaults fills any zero-valued field of o with the corresponding
// default, leaving explicitly-set fields untouched. StartPop and
// EnforceQualification have meaningful zero values (absent / off) and are
// never overridden.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Generations == 0 {
		o.Generations = d.Generations
	}
	if o.Population == 0 {
		o.Population = d.Population
	}
	if o.DepType == 0 {
		o.DepType = d.DepType
	}
	if o.Threshold == 0 {
		o.Threshold = d.Threshold
	}
	if o.Stop == 0 {
		o.Stop = d.Stop
	}
	if (o.Weights == Weights{}) {
		o.Weights = d.Weights
	}
	return o
}

// validate checks the constraints placed on Options.
func (o Options) validate() error {
	if o.Generations < 1 {
		return fmt.Errorf("gomea: generations must be >= 1, got %d", o.Generations)
	}
	if o.Population < 2 {
		return fmt.Errorf("gomea: population must be >= 2, got %d", o.Population)
	}
	if o.DepType != DepExtended && o.DepType != DepStandard && o.DepType != DepRandom {
		return fmt.Errorf("gomea: deptype must be 1, 2 or 3, got %d", o.DepType)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("gomea: threshold must be >= 0, got %v", o.Threshold)
	}
	if o.Stop < 1 {
		return fmt.Errorf("gomea: stop must be >= 1, got %d", o.Stop)
	}
	return nil
}
