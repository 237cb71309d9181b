package gomea

import (
	"math/rand"
	"sort"
)

// Key is the real-valued generalized-permutation encoding of a route: length
// N = n-1, one entry per client (0-based: Key[c] is client c+1's encoding).
// The integer part is the shift id, the fractional part orders clients
// within their shift.
type Key []float64

// encode builds (key, keyInt, keyDec) from a route. For each shift with m_k
// clients, m_k i.i.d. Uniform(0,1) draws are sorted ascending and assigned
// to the clients in route order, so the fractional parts reproduce the
// route's intra-shift ordering.
func encode(ins *Instance, route Route, rng *rand.Rand) (key Key, keyInt []int, keyDec []float64) {
	n := ins.NumClients()
	key = make(Key, n)
	keyInt = make([]int, n)
	keyDec = make([]float64, n)

	for k, clients := range route {
		m := len(clients)
		if m == 0 {
			continue
		}
		draws := make([]float64, m)
		for i := range draws {
			draws[i] = rng.Float64()
		}
		sort.Float64s(draws)
		for j, c := range clients {
			idx := c - 1
			keyInt[idx] = k
			keyDec[idx] = draws[j]
			key[idx] = float64(k) + draws[j]
		}
	}
	return key, keyInt, keyDec
}

// decodedEntry pairs a 0-based client index with its key value, for the
// stable sort driving decode.
type decodedEntry struct {
	client int
	value  float64
}

// decode is the right inverse of encode: floor(key[i]) gives client i's
// shift, and the stable sort order of key values within a shift gives the
// intra-shift order.
func decode(ins *Instance, key Key) Route {
	entries := make([]decodedEntry, len(key))
	for i, v := range key {
		entries[i] = decodedEntry{client: i, value: v}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value < entries[j].value
	})

	route := make(Route, ins.V)
	for _, e := range entries {
		k := int(e.value)
		if k < 0 {
			k = 0
		}
		if k > ins.V-1 {
			k = ins.V - 1
		}
		route[k] = append(route[k], e.client+1)
	}
	return route
}

// reencode resamples the fractional part of every key entry in place,
// equivalent to encode(decode(key)) but writing into the existing key,
// keyInt and keyDec slices instead of allocating new ones; keyInt is
// rewritten with each client's decoded shift. Its purpose is purely
// numerical: prevent fractional parts from drifting to near-equal values
// under repeated mixing, which would make decode's stable sort fragile.
func reencode(ins *Instance, key Key, keyInt []int, keyDec []float64, rng *rand.Rand) {
	route := decode(ins, key)
	for k, clients := range route {
		m := len(clients)
		if m == 0 {
			continue
		}
		draws := make([]float64, m)
		for i := range draws {
			draws[i] = rng.Float64()
		}
		sort.Float64s(draws)
		for j, c := range clients {
			idx := c - 1
			keyInt[idx] = k
			keyDec[idx] = draws[j]
			key[idx] = float64(k) + draws[j]
		}
	}
}
