package mol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadPQR reads whitespace-separated PQR records. Only ATOM and HETATM
// records are consumed; REMARK, TER, END and blank lines are skipped.
//
// A record carries, after the record name: serial, atom name, residue name,
// an optional chain identifier, residue number, then x, y, z, charge, radius.
// The trailing five fields are positional regardless of whether a chain
// identifier is present, so they are taken from the end of the line.
func ReadPQR(r io.Reader) (AtomList, error) {
	var atoms AtomList
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "ATOM", "HETATM":
		default:
			continue
		}
		if len(fields) < 10 {
			return nil, fmt.Errorf("pqr line %d: %d fields, want at least 10", lineNo, len(fields))
		}

		var atom Atom
		var err error
		atom.Serial, err = strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("pqr line %d: serial: %w", lineNo, err)
		}
		atom.Name = fields[2]
		atom.Residue = fields[3]

		// x y z charge radius are the last five fields
		vals := make([]float64, 5)
		for i, f := range fields[len(fields)-5:] {
			vals[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("pqr line %d: field %q: %w", lineNo, f, err)
			}
		}
		atom.Position = [3]float64{vals[0], vals[1], vals[2]}
		atom.Charge = vals[3]
		atom.Radius = vals[4]
		if atom.Radius < 0 {
			return nil, fmt.Errorf("pqr line %d: negative radius %g", lineNo, atom.Radius)
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pqr: %w", err)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("pqr input contains no atoms")
	}
	return atoms, nil
}

// ReadXYZR reads bare "x y z radius" lines. Blank lines and lines starting
// with '#' are skipped.
func ReadXYZR(r io.Reader) (AtomList, error) {
	var atoms AtomList
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("xyzr line %d: %d fields, want 4", lineNo, len(fields))
		}
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("xyzr line %d: field %q: %w", lineNo, fields[i], err)
			}
			vals[i] = v
		}
		if vals[3] < 0 {
			return nil, fmt.Errorf("xyzr line %d: negative radius %g", lineNo, vals[3])
		}
		atoms = append(atoms, Atom{
			Position: [3]float64{vals[0], vals[1], vals[2]},
			Radius:   vals[3],
			Serial:   len(atoms) + 1,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read xyzr: %w", err)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("xyzr input contains no atoms")
	}
	return atoms, nil
}

// LoadFile reads an atom list from path, dispatching on the file extension:
// ".pqr" for PQR records, anything else is treated as XYZR.
func LoadFile(path string) (AtomList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atom file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".pqr") {
		return ReadPQR(f)
	}
	return ReadXYZR(f)
}
