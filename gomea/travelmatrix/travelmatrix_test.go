package travelmatrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatrix() [][]float64 {
	return [][]float64{
		{0, 5, 9},
		{5, 0, 7},
		{9, 7, 0},
	}
}

func TestStoreLoad_BinaryRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.bin")
	m := sampleMatrix()

	require.NoError(t, Store(path, m))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-matrix.bin")
	require.NoError(t, StoreCSV(path, sampleMatrix())) // write CSV, not binary

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	require.NoError(t, Store(path, sampleMatrix()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-8], 0o644))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestStoreLoadCSV_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.csv")
	m := sampleMatrix()

	require.NoError(t, StoreCSV(path, m))
	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
