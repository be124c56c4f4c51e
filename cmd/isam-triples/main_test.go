package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTriplesFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "m.triples")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMatrix(t *testing.T) {
	path := writeTriplesFile(t, "%triples: (2x2, nnz:2)\n0 0 1.0\n1 1 2.0\n")
	m, err := loadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 2, m.NumCols())
	assert.Equal(t, 1.0, m.Get(0, 0))
	assert.Equal(t, 2.0, m.Get(1, 1))
}

func TestLoadMatrixMissingFile(t *testing.T) {
	_, err := loadMatrix(filepath.Join(t.TempDir(), "nope.triples"))
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	path := writeTriplesFile(t, "%triples: (2x2, nnz:1)\n0 0 1.0\n")
	err := statsCmd.RunE(statsCmd, []string{path})
	require.NoError(t, err)
}

func TestTriangulateCommandWritesToFile(t *testing.T) {
	in := writeTriplesFile(t, "%triples: (2x2, nnz:3)\n0 0 3.0\n0 1 4.0\n1 0 1.0\n")
	dir := t.TempDir()
	outPath := filepath.Join(dir, "r.triples")
	require.NoError(t, triangulateCmd.Flags().Set("output", outPath))
	defer triangulateCmd.Flags().Set("output", "")

	err := triangulateCmd.RunE(triangulateCmd, []string{in})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%triples: (2x2")
}

func TestMulCommandDimensionMismatchPanics(t *testing.T) {
	path := writeTriplesFile(t, "%triples: (1x2, nnz:1)\n0 0 1.0\n")
	defer func() {
		assert.NotNil(t, recover(), "MulVector with a mismatched vector length should panic")
	}()
	_ = mulCmd.RunE(mulCmd, []string{path, "1"})
}
