// File: gridgraph/components_test.go
package gridgraph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// fromRows builds a grid from rows of '.' (open) and '#' (blocked) runes
// and rebuilds adjacency with conn.
func fromRows(t testing.TB, rows []string, conn gridgraph.Connectivity) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y, row := range rows {
		for x, r := range row {
			if r == '#' {
				if err := g.SetBlocked(gridgraph.Cell{X: x, Y: y}, true); err != nil {
					t.Fatalf("SetBlocked failed: %v", err)
				}
			}
		}
	}
	if err := g.Connect(conn); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	return g
}

// TestConnectedComponents_Orthogonal tests ConnectedComponents on a 4×3 grid
// with side-only connectivity.
//
// Grid (# = blocked):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Orthogonal(t *testing.T) {
	g := fromRows(t, []string{
		"#..#",
		"..##",
		"##..",
	}, gridgraph.ConnOrthogonal)

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Full verifies that 8-way links join regions that
// only touch at corners.
func TestConnectedComponents_Full(t *testing.T) {
	g := fromRows(t, []string{
		".#.",
		"#.#",
		".#.",
	}, gridgraph.Conn8)

	comps := g.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 5 {
		t.Fatalf("got components %v; want one of size 5", comps)
	}

	g = fromRows(t, []string{
		".#.",
		"#.#",
		".#.",
	}, gridgraph.ConnOrthogonal)
	if got := len(g.ConnectedComponents()); got != 5 {
		t.Errorf("orthogonal components = %d; want 5", got)
	}
}

// TestConnectedComponents_CustomEdge verifies a hand-made edge bridges two
// regions.
func TestConnectedComponents_CustomEdge(t *testing.T) {
	g := fromRows(t, []string{
		".#.",
	}, gridgraph.ConnOrthogonal)
	if got := len(g.ConnectedComponents()); got != 2 {
		t.Fatalf("components = %d; want 2", got)
	}
	if _, err := g.ToggleEdge(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0}); err != nil {
		t.Fatalf("ToggleEdge failed: %v", err)
	}
	comps := g.ConnectedComponents()
	if !reflect.DeepEqual(comps, [][]int{{0, 2}}) {
		t.Errorf("components = %v; want [[0 2]]", comps)
	}
}

func TestReachable(t *testing.T) {
	g := fromRows(t, []string{
		"..#.",
		"..#.",
		"..#.",
	}, gridgraph.Conn8)

	cases := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"SameRegion", 0, 9, true},
		{"AcrossWall", 0, 3, false},
		{"Self", 5, 5, true},
		{"IntoBlocked", 1, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Reachable(tc.from, tc.to)
			if err != nil {
				t.Fatalf("Reachable error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Reachable(%d,%d) = %v; want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}

	if _, err := g.Reachable(-1, 0); err == nil {
		t.Error("Reachable(-1,0) error = nil; want ErrInvalidNode")
	}
}
