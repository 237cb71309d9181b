package gomea

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func nonEmptyRoute() Route {
	return Route{{1, 3}, {2}, {4, 5}}
}

func TestEncodeDecode_RoundTripsWhenEveryShiftNonempty(t *testing.T) {
	route := nonEmptyRoute()
	rng := rand.New(rand.NewSource(7))
	ins := &Instance{N: 6, V: 3}

	key, _, _ := encode(ins, route, rng)
	got := decode(ins, key)

	assert.Equal(t, route, got)
}

func TestEncodeDecode_PreservesShiftPatternAndOrderAfterReencode(t *testing.T) {
	route := nonEmptyRoute()
	rng := rand.New(rand.NewSource(11))
	ins := &Instance{N: 6, V: 3}

	key, keyInt, keyDec := encode(ins, route, rng)
	before := decode(ins, key)

	reencode(ins, key, keyInt, keyDec, rng)
	after := decode(ins, key)

	assert.Equal(t, before, after)
	for i, k := range keyInt {
		assert.Equal(t, k, int(key[i]))
	}
}

func TestReencode_SingleClientPerShiftIsIdempotentOnShiftAssignment(t *testing.T) {
	route := Route{{1}, {2}, {3}}
	rng := rand.New(rand.NewSource(3))
	ins := &Instance{N: 4, V: 3}

	key, keyInt, keyDec := encode(ins, route, rng)
	wantInt := append([]int(nil), keyInt...)

	reencode(ins, key, keyInt, keyDec, rng)

	assert.Equal(t, wantInt, keyInt)
	for _, dec := range keyDec {
		assert.Greater(t, dec, 0.0)
		assert.Less(t, dec, 1.0)
	}
}

func TestDecode_StableSortBreaksTiesByOriginalIndex(t *testing.T) {
	ins := &Instance{N: 4, V: 1}
	key := Key{0.5, 0.5, 0.5}
	route := decode(ins, key)
	assert.Equal(t, Route{{1, 2, 3}}, route)
}
