package gomea

import "time"

// Result is the outcome of a Solve call: the effective options,
// how many generations actually ran, cumulative per-generation wall-clock
// time, the best route found and its evaluation, the full progress/mean
// traces, and a snapshot of the instance that was solved.
type Result struct {
	Options         Options
	Generations     int
	GenerationTimes []time.Duration

	Route    Route
	Arrival  Arrival
	Score    float64
	Distance float64
	Overtime float64
	Lateness float64

	Progress []float64 // best score per generation (including generation 0)
	PopMeans []float64 // mean score per generation (including generation 0)

	Instance *Instance
}
