package wire

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Crossings enumerates every crossing between wires a and b.
//
// Algorithm:
//  1. Split both polylines into segments.
//  2. For each segment of A (outer) and each segment of B (inner), track the
//     walked distance to the start of both segments.
//  3. When Cross reports a point other than Origin, record it with
//     StepsA = walkedA + |point − segA.From| and likewise for B.
//
// The result is ordered by segment of A, then by segment of B. With
// opts.Workers > 1 the outer loop is shared by that many goroutines; each
// writes only its own row, so the order matches the sequential scan.
// A nil opts means DefaultScanOptions. An empty result is not an error here;
// Nearest and Fewest report ErrNoIntersections.
//
// Complexity: O(m·n) time, O(m + c) memory for c crossings.
func Crossings(a, b Polyline, opts *ScanOptions) ([]Crossing, error) {
	o := DefaultScanOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	}

	segA, segB := a.Segments(), b.Segments()
	if len(segA) == 0 || len(segB) == 0 {
		return []Crossing{}, nil
	}

	// walkedA[i] is the distance walked along A before segA[i].
	walkedA := make([]int, len(segA))
	for i := 1; i < len(segA); i++ {
		walkedA[i] = walkedA[i-1] + segA[i-1].Len()
	}

	rows := make([][]Crossing, len(segA))
	if o.Workers <= 1 {
		for i := range segA {
			rows[i] = scanRow(segA[i], walkedA[i], segB)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i := range segA {
			i := i
			g.Go(func() error {
				rows[i] = scanRow(segA[i], walkedA[i], segB)
				return nil
			})
		}
		_ = g.Wait() // rows never fail
	}

	out := make([]Crossing, 0)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}

// scanRow tests one segment of A against every segment of B.
func scanRow(sa Segment, walkedA int, segB []Segment) []Crossing {
	var row []Crossing
	walkedB := 0
	for _, sb := range segB {
		if p, ok := Cross(sa, sb); ok && p != Origin {
			row = append(row, Crossing{
				At:     p,
				StepsA: walkedA + Segment{From: sa.From, To: p}.Len(),
				StepsB: walkedB + Segment{From: sb.From, To: p}.Len(),
			})
		}
		walkedB += sb.Len()
	}
	return row
}

// Nearest returns the crossing closest to the origin by Manhattan distance.
// Ties keep the earliest crossing in scan order.
// Returns ErrNoIntersections if cs is empty.
func Nearest(cs []Crossing) (Crossing, error) {
	return minBy(cs, Crossing.Distance)
}

// Fewest returns the crossing with the smallest combined walked distance.
// Ties keep the earliest crossing in scan order.
// Returns ErrNoIntersections if cs is empty.
func Fewest(cs []Crossing) (Crossing, error) {
	return minBy(cs, Crossing.Steps)
}

func minBy(cs []Crossing, key func(Crossing) int) (Crossing, error) {
	if len(cs) == 0 {
		return Crossing{}, ErrNoIntersections
	}
	best := cs[0]
	bestKey := key(best)
	for _, c := range cs[1:] {
		if k := key(c); k < bestKey {
			best, bestKey = c, k
		}
	}
	return best, nil
}

// Solve traces both raw wires, scans them, and reduces the crossings.
// Errors from parsing are wrapped with the wire they came from ("wire A" or
// "wire B"); ErrNoIntersections is returned when the wires never cross.
// No partial Result is returned on error.
func Solve(a, b []string, opts *ScanOptions) (Result, error) {
	pa, err := TraceRaw(a)
	if err != nil {
		return Result{}, fmt.Errorf("wire A: %w", err)
	}
	pb, err := TraceRaw(b)
	if err != nil {
		return Result{}, fmt.Errorf("wire B: %w", err)
	}
	cs, err := Crossings(pa, pb, opts)
	if err != nil {
		return Result{}, err
	}
	near, err := Nearest(cs)
	if err != nil {
		return Result{}, err
	}
	few, err := Fewest(cs)
	if err != nil {
		return Result{}, err
	}
	return Result{Crossings: cs, Distance: near.Distance(), Steps: few.Steps()}, nil
}
