package wire_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/gravassist/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type scenario struct {
	name     string
	a, b     string
	distance int
	steps    int
}

var scenarios = []scenario{
	{"Sample", "R8,U5,L5,D3", "U7,R6,D4,L4", 6, 30},
	{"Second", "R75,D30,R83,U83,L12,D49,R71,U7,L72", "U62,R66,U55,R34,D71,R55,D58,R83", 159, 610},
	{"Third", "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51", "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7", 135, 410},
}

func mustTrace(t testing.TB, csv string) wire.Polyline {
	t.Helper()
	pl, err := wire.TraceRaw(strings.Split(csv, ","))
	require.NoError(t, err)
	return pl
}

//----------------------------------------------------------------------------//
// Solve Tests
//----------------------------------------------------------------------------//

// TestSolve_Scenarios checks both answers on the three reference wire pairs.
func TestSolve_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			res, err := wire.Solve(strings.Split(sc.a, ","), strings.Split(sc.b, ","), nil)
			require.NoError(t, err)
			assert.Equal(t, sc.distance, res.Distance, "nearest Manhattan distance")
			assert.Equal(t, sc.steps, res.Steps, "fewest combined steps")
		})
	}
}

// TestSolve_NoIntersections reports an error instead of a zero sentinel.
func TestSolve_NoIntersections(t *testing.T) {
	res, err := wire.Solve([]string{"R8", "U5"}, []string{"L3", "D7"}, nil)
	assert.ErrorIs(t, err, wire.ErrNoIntersections)
	assert.Equal(t, wire.Result{}, res)

	_, err = wire.Solve(nil, []string{"U7", "R6"}, nil)
	assert.ErrorIs(t, err, wire.ErrNoIntersections)
}

// TestSolve_Malformed names the wire that failed to parse.
func TestSolve_Malformed(t *testing.T) {
	_, err := wire.Solve([]string{"R8"}, []string{"U7", "X6"}, nil)
	require.ErrorIs(t, err, wire.ErrMalformedToken)
	assert.Contains(t, err.Error(), "wire B")
}

//----------------------------------------------------------------------------//
// Crossings Tests
//----------------------------------------------------------------------------//

// TestCrossings_Sample lists both crossings of the sample with their steps.
func TestCrossings_Sample(t *testing.T) {
	a := mustTrace(t, "R8,U5,L5,D3")
	b := mustTrace(t, "U7,R6,D4,L4")

	got, err := wire.Crossings(a, b, nil)
	require.NoError(t, err)

	want := []wire.Crossing{
		{At: wire.Point{X: 6, Y: 5}, StepsA: 15, StepsB: 15},
		{At: wire.Point{X: 3, Y: 3}, StepsA: 20, StepsB: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Crossings mismatch (-want +got):\n%s", diff)
	}

	near, err := wire.Nearest(got)
	require.NoError(t, err)
	assert.Equal(t, wire.Point{X: 3, Y: 3}, near.At)

	few, err := wire.Fewest(got)
	require.NoError(t, err)
	assert.Equal(t, wire.Point{X: 6, Y: 5}, few.At)
}

// TestCrossings_ExcludesOrigin makes a wire pass back through the origin
// across the other wire; that crossing must not be reported.
func TestCrossings_ExcludesOrigin(t *testing.T) {
	// A: (0,0)→(5,0)→(5,5)→(-5,5)→(-5,-5)→(0,-5)→(0,5) crosses B's x-axis run at the origin.
	a := mustTrace(t, "R5,U5,L10,D10,R5,U10")
	b := mustTrace(t, "L2,R4")

	got, err := wire.Crossings(a, b, nil)
	require.NoError(t, err)
	for _, c := range got {
		assert.NotEqual(t, wire.Origin, c.At)
	}
	assert.Empty(t, got)
}

// TestCrossings_SharedOriginOnly verifies two wires leaving the origin in
// perpendicular directions do not cross.
func TestCrossings_SharedOriginOnly(t *testing.T) {
	got, err := wire.Crossings(mustTrace(t, "R10"), mustTrace(t, "U10"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = wire.Nearest(got)
	assert.ErrorIs(t, err, wire.ErrNoIntersections)
	_, err = wire.Fewest(got)
	assert.ErrorIs(t, err, wire.ErrNoIntersections)
}

// TestCrossings_Idempotent runs the scan twice on the same polylines.
func TestCrossings_Idempotent(t *testing.T) {
	for _, sc := range scenarios {
		a, b := mustTrace(t, sc.a), mustTrace(t, sc.b)
		first, err := wire.Crossings(a, b, nil)
		require.NoError(t, err)
		second, err := wire.Crossings(a, b, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second, sc.name)
	}
}

// TestCrossings_SwapWires checks that swapping A and B yields the same
// point set with the step counts swapped.
func TestCrossings_SwapWires(t *testing.T) {
	for _, sc := range scenarios {
		a, b := mustTrace(t, sc.a), mustTrace(t, sc.b)
		ab, err := wire.Crossings(a, b, nil)
		require.NoError(t, err)
		ba, err := wire.Crossings(b, a, nil)
		require.NoError(t, err)

		swapped := make([]wire.Crossing, len(ba))
		for i, c := range ba {
			swapped[i] = wire.Crossing{At: c.At, StepsA: c.StepsB, StepsB: c.StepsA}
		}
		assert.ElementsMatch(t, ab, swapped, sc.name)
	}
}

// TestCrossings_Parallel verifies the worker fan-out returns the sequential
// order and leaves no goroutines running.
func TestCrossings_Parallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, sc := range scenarios {
		a, b := mustTrace(t, sc.a), mustTrace(t, sc.b)
		seq, err := wire.Crossings(a, b, nil)
		require.NoError(t, err)
		for _, workers := range []int{0, 2, 4, 16} {
			par, err := wire.Crossings(a, b, &wire.ScanOptions{Workers: workers})
			require.NoError(t, err)
			if diff := cmp.Diff(seq, par); diff != "" {
				t.Errorf("%s workers=%d mismatch (-seq +par):\n%s", sc.name, workers, diff)
			}
		}
	}
}

// TestCrossings_BadWorkers rejects negative worker counts.
func TestCrossings_BadWorkers(t *testing.T) {
	_, err := wire.Crossings(mustTrace(t, "R1"), mustTrace(t, "U1"), &wire.ScanOptions{Workers: -1})
	assert.ErrorIs(t, err, wire.ErrBadWorkers)
}

// TestNearest_TieKeepsFirst pins the tie-breaking rule.
func TestNearest_TieKeepsFirst(t *testing.T) {
	cs := []wire.Crossing{
		{At: wire.Point{X: 2, Y: 3}, StepsA: 9, StepsB: 1},
		{At: wire.Point{X: -3, Y: 2}, StepsA: 5, StepsB: 5},
	}
	near, err := wire.Nearest(cs)
	require.NoError(t, err)
	assert.Equal(t, cs[0], near)

	few, err := wire.Fewest(cs)
	require.NoError(t, err)
	assert.Equal(t, cs[0], few)
}
