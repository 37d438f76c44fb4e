package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsukium/apbs-pdb2pqr/internal/access"
)

func TestParseDims(t *testing.T) {
	d, err := parseDims("")
	require.NoError(t, err)
	assert.Equal(t, [3]int{access.DefaultGridDim, access.DefaultGridDim, access.DefaultGridDim}, d)

	d, err = parseDims("65")
	require.NoError(t, err)
	assert.Equal(t, [3]int{65, 65, 65}, d)

	d, err = parseDims("33, 65, 97")
	require.NoError(t, err)
	assert.Equal(t, [3]int{33, 65, 97}, d)

	_, err = parseDims("33,65")
	assert.Error(t, err)

	_, err = parseDims("a,b,c")
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("spline")
	require.NoError(t, err)
	assert.Equal(t, access.MethodSpline, m)

	_, err = parseMethod("bogus")
	assert.Error(t, err)
}

func TestParseFlagsRequiresFile(t *testing.T) {
	_, err := parseFlags([]string{"-probe", "1.4"})
	assert.Error(t, err)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "mol.xyzr")
	require.NoError(t, os.WriteFile(input, []byte("0 0 0 1.5\n3 0 0 1.2\n"), 0644))

	cfg, err := parseFlags([]string{
		"-file", input,
		"-db", filepath.Join(dir, "runs.db"),
		"-report", filepath.Join(dir, "report.html"),
	})
	require.NoError(t, err)
	require.NoError(t, run(cfg))

	for _, out := range []string{"runs.db", "report.html"} {
		info, err := os.Stat(filepath.Join(dir, out))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
