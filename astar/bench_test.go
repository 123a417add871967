package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// benchGrid builds an n×n grid with ~20% obstacles and corner endpoints.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	start, goal := gridgraph.Cell{}, gridgraph.Cell{Row: n - 1, Col: n - 1}
	var blocked []gridgraph.Cell
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := gridgraph.Cell{Row: row, Col: col}
			if c != start && c != goal && r.Intn(5) == 0 {
				blocked = append(blocked, c)
			}
		}
	}
	g, err := gridgraph.New(n, n, blocked, start, goal)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return g
}

func benchmarkSearch(b *testing.B, n int, policy astar.FrontierPolicy) {
	g := benchGrid(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, g.Start(), g.Goal(), astar.WithFrontierPolicy(policy))
	}
}

// BenchmarkSearch_Membership200 measures the default policy on a 200×200 grid.
func BenchmarkSearch_Membership200(b *testing.B) { benchmarkSearch(b, 200, astar.MembershipCheck) }

// BenchmarkSearch_Lazy200 measures LazyDuplicates on the same grid.
func BenchmarkSearch_Lazy200(b *testing.B) { benchmarkSearch(b, 200, astar.LazyDuplicates) }
