package access

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsukium/apbs-pdb2pqr/internal/mol"
)

func TestTotalSASAIsolatedAtom(t *testing.T) {
	radius, probe := 1.5, 1.4
	g := singleAtomGrid(t, radius)

	// No neighbours, so every quadrature sample is accessible and the area
	// is exactly the full expanded sphere.
	want := 4 * math.Pi * (radius + probe) * (radius + probe)
	got := g.TotalSASA(probe)
	assert.InDelta(t, want, got, 1e-9)

	areas := g.AtomAreas()
	require.Len(t, areas, 1)
	assert.Equal(t, got, areas[0])
}

func TestTotalSASADistantAtomsAreIndependent(t *testing.T) {
	atoms := mol.AtomList{
		{Position: [3]float64{0, 0, 0}, Radius: 1.5},
		{Position: [3]float64{40, 0, 0}, Radius: 1.2},
	}
	g, err := New(atoms, DefaultGridConfig())
	require.NoError(t, err)

	probe := 1.4
	want := 4*math.Pi*(1.5+probe)*(1.5+probe) + 4*math.Pi*(1.2+probe)*(1.2+probe)
	assert.InDelta(t, want, g.TotalSASA(probe), 1e-9)
}

func TestTotalSASABuriedAtomContributesNothing(t *testing.T) {
	// A small atom concentric with a much larger one: every sample on its
	// expanded sphere stays inside the larger atom's inflated sphere.
	atoms := mol.AtomList{
		{Position: [3]float64{0, 0, 0}, Radius: 3.0},
		{Position: [3]float64{0, 0, 0}, Radius: 1.2},
	}
	g, err := New(atoms, DefaultGridConfig())
	require.NoError(t, err)

	probe := 1.4
	total := g.TotalSASA(probe)
	areas := g.AtomAreas()
	require.Len(t, areas, 2)

	assert.Equal(t, 0.0, areas[1], "buried atom")
	want := 4 * math.Pi * (3.0 + probe) * (3.0 + probe)
	assert.InDelta(t, want, areas[0], 1e-9, "outer atom is unoccluded")
	assert.InDelta(t, want, total, 1e-9)
}

func TestTotalSASAOcclusionReducesArea(t *testing.T) {
	// Two overlapping atoms each lose the cap facing the other.
	atoms := mol.AtomList{
		{Position: [3]float64{0, 0, 0}, Radius: 1.5},
		{Position: [3]float64{2.0, 0, 0}, Radius: 1.5},
	}
	g, err := New(atoms, DefaultGridConfig())
	require.NoError(t, err)

	probe := 1.4
	full := 4 * math.Pi * (1.5 + probe) * (1.5 + probe)
	total := g.TotalSASA(probe)
	assert.Less(t, total, 2*full)
	assert.Greater(t, total, 0.0)

	areas := g.AtomAreas()
	assert.Less(t, areas[0], full)
	assert.Less(t, areas[1], full)
}

func TestTotalSASAIdempotent(t *testing.T) {
	g, err := New(testAtoms(), DefaultGridConfig())
	require.NoError(t, err)

	first := g.TotalSASA(1.4)
	second := g.TotalSASA(1.4)
	assert.Equal(t, first, second, "repeated integration must be bit-identical")
}

func TestAtomAreasZeroBeforeFirstRun(t *testing.T) {
	g, err := New(testAtoms(), DefaultGridConfig())
	require.NoError(t, err)

	for i, a := range g.AtomAreas() {
		assert.Zerof(t, a, "atom %d", i)
	}
}
