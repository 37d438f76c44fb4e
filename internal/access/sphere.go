package access

import "math"

// SpherePoints generates a near-uniform set of points on the unit sphere for
// numerical surface quadrature. The polar angle is split into equal bands and
// each band carries azimuthal samples in proportion to its circumference, so
// the solid-angle density is roughly constant. The returned count may differ
// from the request; bands whose sample count rounds to zero contribute no
// points. Output is deterministic for a given n.
func SpherePoints(n int) [][3]float64 {
	ntheta := int(math.Round(math.Sqrt(math.Pi * float64(n) / 4.0)))
	if ntheta < 1 {
		ntheta = 1
	}
	dtheta := math.Pi / float64(ntheta)
	nphimax := 2 * ntheta

	// Count first so the slice is allocated exactly once.
	nactual := 0
	for itheta := 0; itheta < ntheta; itheta++ {
		theta := dtheta * float64(itheta)
		nactual += int(math.Round(math.Sin(theta) * float64(nphimax)))
	}

	points := make([][3]float64, 0, nactual)
	for itheta := 0; itheta < ntheta; itheta++ {
		theta := dtheta * float64(itheta)
		sintheta, costheta := math.Sincos(theta)
		nphi := int(math.Round(sintheta * float64(nphimax)))
		if nphi == 0 {
			continue
		}
		dphi := 2 * math.Pi / float64(nphi)
		for iphi := 0; iphi < nphi; iphi++ {
			sinphi, cosphi := math.Sincos(dphi * float64(iphi))
			points = append(points, [3]float64{
				cosphi * sintheta,
				sinphi * sintheta,
				costheta,
			})
		}
	}
	return points
}
