// Package access implements solvent-accessibility classification over a
// uniform spatial hash grid.
//
// Responsibilities: grid construction over an atom set, point and sphere
// accessibility tests (van der Waals, probe-inflated, molecular surface,
// spline-smoothed characteristic function), and solvent-accessible surface
// area integration via near-uniform sphere quadrature.
//
// A Grid is built once per molecule geometry and is read-mostly afterwards.
// The only mutable query-time state is a per-atom scratch flag array used by
// SplineAcc and the per-atom area array written by TotalSASA, so concurrent
// queries against one Grid must not interleave those calls; shard by Grid
// instance to parallelise.
package access
