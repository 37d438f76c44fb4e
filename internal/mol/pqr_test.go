package mol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePQR = `REMARK   1 Generated test fragment
ATOM      1  N   GLY     1      -0.518   1.364   0.000 -0.3500 1.6500
ATOM      2  CA  GLY     1       0.000   0.000   0.000  0.1000 1.9000
HETATM    3  O   HOH     2       3.200   1.100  -0.500 -0.8340 1.4000
TER
END
`

func TestReadPQR(t *testing.T) {
	atoms, err := ReadPQR(strings.NewReader(samplePQR))
	require.NoError(t, err)
	require.Len(t, atoms, 3)

	assert.Equal(t, 1, atoms[0].Serial)
	assert.Equal(t, "N", atoms[0].Name)
	assert.Equal(t, "GLY", atoms[0].Residue)
	assert.InDelta(t, -0.518, atoms[0].Position[0], 1e-12)
	assert.InDelta(t, -0.35, atoms[0].Charge, 1e-12)
	assert.InDelta(t, 1.65, atoms[0].Radius, 1e-12)

	assert.InDelta(t, 1.4, atoms[2].Radius, 1e-12)
}

func TestReadPQRWithChainID(t *testing.T) {
	// Chain identifier between residue name and residue number shifts the
	// field count; the coordinate block is still the trailing five fields.
	in := "ATOM      1  CA  ALA A   1       1.000   2.000   3.000  0.2000 1.8000\n"
	atoms, err := ReadPQR(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.Equal(t, [3]float64{1, 2, 3}, atoms[0].Position)
	assert.InDelta(t, 1.8, atoms[0].Radius, 1e-12)
}

func TestReadPQRErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", "REMARK nothing here\n"},
		{"short line", "ATOM 1 CA GLY 1 0.0 0.0 0.0\n"},
		{"bad float", "ATOM 1 CA GLY 1 0.0 0.0 zero 0.1 1.9\n"},
		{"negative radius", "ATOM 1 CA GLY 1 0.0 0.0 0.0 0.1 -1.9\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPQR(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestReadXYZR(t *testing.T) {
	in := `# comment
0.0 0.0 0.0 1.5
3.0 0.0 0.0 1.2

-1.0 2.0 0.5 0.0
`
	atoms, err := ReadXYZR(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 3)
	assert.Equal(t, [3]float64{3, 0, 0}, atoms[1].Position)
	assert.Equal(t, 0.0, atoms[2].Radius)
	assert.Equal(t, 3, atoms[2].Serial)
}

func TestReadXYZRErrors(t *testing.T) {
	_, err := ReadXYZR(strings.NewReader("1.0 2.0 3.0\n"))
	assert.Error(t, err)

	_, err = ReadXYZR(strings.NewReader("# only comments\n"))
	assert.Error(t, err)
}

func TestAtomListHelpers(t *testing.T) {
	atoms := AtomList{
		{Position: [3]float64{-1, 0, 2}, Radius: 1.5, Charge: -0.5},
		{Position: [3]float64{4, -2, 0}, Radius: 1.2, Charge: 0.7},
	}

	assert.InDelta(t, 1.5, atoms.MaxRadius(), 1e-12)
	assert.InDelta(t, 0.2, atoms.TotalCharge(), 1e-12)

	lo, hi, ok := atoms.Bounds()
	require.True(t, ok)
	assert.Equal(t, [3]float64{-1, -2, 0}, lo)
	assert.Equal(t, [3]float64{4, 0, 2}, hi)

	_, _, ok = AtomList{}.Bounds()
	assert.False(t, ok)
}
