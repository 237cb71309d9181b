package gomea

import "math/rand"

// Route is a length-V sequence of client-id sequences; each client id in
// 1..N-1 appears in exactly one subsequence. Empty subsequences are
// permitted.
type Route [][]int

// Clone returns a deep copy of the route.
func (r Route) Clone() Route {
	out := make(Route, len(r))
	for k, shift := range r {
		out[k] = append([]int(nil), shift...)
	}
	return out
}

// randomRoute builds a feasibility-respecting random route:
// repeatedly pick an active shift uniformly, then a feasible remaining
// client uniformly for it; drop shifts once they have no feasible remaining
// client. The caller is responsible for having verified that every client
// has at least one feasible shift (NewInstance already enforces this), or
// this loops forever.
func randomRoute(ins *Instance, rng *rand.Rand) Route {
	n := ins.NumClients()
	route := make(Route, ins.V)

	// remaining is kept as an ascending slice of client indices so that
	// iteration order (and therefore the rng draw sequence) is deterministic
	// given the seed; Go map iteration order is not.
	remaining := make([]int, n)
	for c := 0; c < n; c++ {
		remaining[c] = c
	}
	active := make([]int, ins.V)
	for k := range active {
		active[k] = k
	}

	for len(remaining) > 0 {
		idx := rng.Intn(len(active))
		k := active[idx]

		var candidates []int
		for _, c := range remaining {
			for _, fk := range ins.FeasibleShifts(c) {
				if fk == k {
					candidates = append(candidates, c)
					break
				}
			}
		}
		if len(candidates) == 0 {
			active = append(active[:idx], active[idx+1:]...)
			continue
		}
		c := candidates[rng.Intn(len(candidates))]
		route[k] = append(route[k], c+1)
		for i, r := range remaining {
			if r == c {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return route
}
