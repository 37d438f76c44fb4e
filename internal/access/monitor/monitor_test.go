package monitor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsukium/apbs-pdb2pqr/internal/access"
	"github.com/natsukium/apbs-pdb2pqr/internal/mol"
)

func testGrid(t *testing.T) *access.Grid {
	t.Helper()
	atoms := mol.AtomList{
		{Position: [3]float64{0, 0, 0}, Radius: 1.5, Serial: 1, Name: "CA"},
		{Position: [3]float64{3, 0, 0}, Radius: 1.2, Serial: 2, Name: "O"},
	}
	g, err := access.New(atoms, access.DefaultGridConfig())
	require.NoError(t, err)
	return g
}

func TestSaveZSlice(t *testing.T) {
	sp := &SlicePlotter{
		Grid:   testGrid(t),
		Method: access.MethodIVDW,
		Probe:  1.4,
		Cells:  24,
	}

	path := filepath.Join(t.TempDir(), "slice.png")
	err := sp.SaveZSlice(0, [2]float64{-5, -5}, [2]float64{8, 5}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveZSliceRejectsInvertedExtent(t *testing.T) {
	sp := &SlicePlotter{Grid: testGrid(t), Method: access.MethodVDW}
	err := sp.SaveZSlice(0, [2]float64{5, -5}, [2]float64{5, -5}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestWriteSASAReport(t *testing.T) {
	atoms := mol.AtomList{
		{Serial: 1, Name: "CA"},
		{Serial: 2, Name: "O"},
	}
	var buf bytes.Buffer
	err := WriteSASAReport(&buf, "test molecule", atoms, []float64{42.5, 17.3}, 1.4)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.Contains(html, "test molecule"))
	assert.True(t, strings.Contains(html, "42.5"))
}

func TestWriteSASAReportLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSASAReport(&buf, "bad", mol.AtomList{{}}, []float64{1, 2}, 1.4)
	assert.Error(t, err)
}

func TestMakeOutputDir(t *testing.T) {
	base := t.TempDir()
	dir, err := MakeOutputDir(base, "/data/mol/1abc.pqr")
	require.NoError(t, err)
	assert.Contains(t, dir, "1abc")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
