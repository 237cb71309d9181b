package gomea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_MatchesDocumentedDefaults(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 20, o.Generations)
	assert.Equal(t, 200, o.Population)
	assert.Equal(t, DepExtended, o.DepType)
	assert.Equal(t, 0.01, o.Threshold)
	assert.Equal(t, 2, o.Stop)
	assert.Equal(t, DefaultWeights(), o.Weights)
}

func TestWithDefaults_OnlyFillsZeroValuedFields(t *testing.T) {
	o := Options{Generations: 5, Seed: 42}
	filled := o.withDefaults()

	assert.Equal(t, 5, filled.Generations)
	assert.Equal(t, 200, filled.Population)
	assert.Equal(t, DepExtended, filled.DepType)
	assert.Equal(t, int64(42), filled.Seed)
}

func TestWithDefaults_NeverOverridesStartPopOrEnforceQualification(t *testing.T) {
	o := Options{StartPop: nil, EnforceQualification: false}
	filled := o.withDefaults()
	assert.Nil(t, filled.StartPop)
	assert.False(t, filled.EnforceQualification)
}

func TestValidate_RejectsOutOfRangeFields(t *testing.T) {
	base := DefaultOptions()

	bad := base
	bad.Generations = 0
	require.Error(t, bad.validate())

	bad = base
	bad.Population = 1
	require.Error(t, bad.validate())

	bad = base
	bad.DepType = 7
	require.Error(t, bad.validate())

	bad = base
	bad.Threshold = -1
	require.Error(t, bad.validate())

	bad = base
	bad.Stop = 0
	require.Error(t, bad.validate())
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	require.NoError(t, DefaultOptions().validate())
}
