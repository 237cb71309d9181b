package gomea

import (
	"fmt"
	"math/rand"
)

// TimeWindow is the feasible arrival interval [Start, End] for a client visit,
// in minutes. Unused (zero-value) for the base location.
type TimeWindow struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Instance is the immutable description of one scheduling problem: clients,
// shifts, the travel-time matrix, service durations, time windows, the
// qualification matrix, and shift durations/start times.
//
// Location index 0 is always the base; clients are indices 1..N-1 of the
// n locations.
type Instance struct {
	N int `yaml:"n"` // total locations including base, N >= 2
	V int `yaml:"v"` // number of shifts, V >= 1

	D  [][]float64  `yaml:"d"`  // n x n travel times in minutes, D[i][i] = 0
	P  []float64    `yaml:"p"`  // length n service durations, P[0] = 0
	TW []TimeWindow `yaml:"tw"` // length n, TW[0] unused
	Q  [][]bool     `yaml:"q"`  // (n-1) x v qualification matrix
	U  []float64    `yaml:"u"`  // length v shift durations
	SS []float64    `yaml:"ss"` // length v shift start times

	// feasible holds, for each client (0-based index into 0..N-2), the set
	// of shift ids it may be served by. Derived at construction time.
	feasible [][]int
}

// NumClients returns N-1, the number of clients (excluding the base).
func (ins *Instance) NumClients() int { return ins.N - 1 }

// FeasibleShifts returns F(client), the shift ids the given 0-based client
// index (0..NumClients()-1) may be served by. The returned slice must not be
// mutated by the caller.
func (ins *Instance) FeasibleShifts(client int) []int {
	return ins.feasible[client]
}

// NewInstance validates the supplied fields and derives the feasibility
// index. All slice/matrix dimensions must already match (n, v); prefer
// RandomInstance when some fields should be synthesized instead.
func NewInstance(n, v int, d [][]float64, p []float64, tw []TimeWindow, q [][]bool, u, ss []float64) (*Instance, error) {
	if n < 2 {
		return nil, fmt.Errorf("gomea: n must be >= 2, got %d", n)
	}
	if v < 1 {
		return nil, fmt.Errorf("gomea: v must be >= 1, got %d", v)
	}
	if len(d) != n {
		return nil, fmt.Errorf("gomea: d has %d rows, want %d", len(d), n)
	}
	for i, row := range d {
		if len(row) != n {
			return nil, fmt.Errorf("gomea: d row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(p) != n {
		return nil, fmt.Errorf("gomea: p has length %d, want %d", len(p), n)
	}
	if len(tw) != n {
		return nil, fmt.Errorf("gomea: tw has length %d, want %d", len(tw), n)
	}
	if len(q) != n-1 {
		return nil, fmt.Errorf("gomea: q has %d rows, want %d", len(q), n-1)
	}
	for i, row := range q {
		if len(row) != v {
			return nil, fmt.Errorf("gomea: q row %d has %d columns, want %d", i, len(row), v)
		}
	}
	if len(u) != v {
		return nil, fmt.Errorf("gomea: u has length %d, want %d", len(u), v)
	}
	if len(ss) != v {
		return nil, fmt.Errorf("gomea: ss has length %d, want %d", len(ss), v)
	}

	ins := &Instance{N: n, V: v, D: d, P: p, TW: tw, Q: q, U: u, SS: ss}
	ins.feasible = make([][]int, n-1)
	for i := 0; i < n-1; i++ {
		var shifts []int
		for k := 0; k < v; k++ {
			if q[i][k] {
				shifts = append(shifts, k)
			}
		}
		if len(shifts) == 0 {
			return nil, fmt.Errorf("gomea: client %d has no feasible shift (Q row is all zero)", i+1)
		}
		ins.feasible[i] = shifts
	}
	return ins, nil
}

// RandomInstance synthesizes an Instance with the default distributions
// described below, using rng for all draws. Any of d, p, tw, q, u, ss
// may be nil, in which case that field is synthesized; non-nil fields are
// used as supplied.
func RandomInstance(n, v int, d [][]float64, p []float64, tw []TimeWindow, q [][]bool, u, ss []float64, rng *rand.Rand) (*Instance, error) {
	if d == nil {
		d = synthesizeD(n, rng)
	}
	if p == nil {
		p = synthesizeP(n, rng)
	}
	if tw == nil {
		tw = synthesizeTW(n, rng)
	}
	if q == nil {
		q = synthesizeQ(n, v)
	}
	if u == nil {
		u = synthesizeU(v, rng)
	}
	if ss == nil {
		ss = synthesizeSS(v)
	}
	return NewInstance(n, v, d, p, tw, q, u, ss)
}

// synthesizeD draws a uniform integer travel time on [5,15) for every
// off-diagonal entry, then symmetrizes by copying the lower triangle to the
// upper triangle.
func synthesizeD(n int, rng *rand.Rand) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := float64(5 + rng.Intn(10))
			d[i][j] = v
			d[j][i] = v
		}
	}
	return d
}

// synthesizeP draws a uniform integer service duration on [10,45) for each
// client; the base has duration 0.
func synthesizeP(n int, rng *rand.Rand) []float64 {
	p := make([]float64, n)
	for i := 1; i < n; i++ {
		p[i] = float64(10 + rng.Intn(35))
	}
	return p
}

// synthesizeTW draws a start time uniformly from {0,10,...,230} and sets the
// end 30 minutes later, for every client.
func synthesizeTW(n int, rng *rand.Rand) []TimeWindow {
	tw := make([]TimeWindow, n)
	for i := 1; i < n; i++ {
		start := float64(10 * rng.Intn(24))
		tw[i] = TimeWindow{Start: start, End: start + 30}
	}
	return tw
}

// synthesizeQ returns the all-ones qualification matrix.
func synthesizeQ(n, v int) [][]bool {
	q := make([][]bool, n-1)
	for i := range q {
		row := make([]bool, v)
		for k := range row {
			row[k] = true
		}
		q[i] = row
	}
	return q
}

var defaultShiftDurations = []float64{120, 180, 240}

// synthesizeU draws each shift's duration uniformly from {120,180,240}.
func synthesizeU(v int, rng *rand.Rand) []float64 {
	u := make([]float64, v)
	for k := range u {
		u[k] = defaultShiftDurations[rng.Intn(len(defaultShiftDurations))]
	}
	return u
}

// synthesizeSS returns all-zero shift start times.
func synthesizeSS(v int) []float64 {
	return make([]float64, v)
}
