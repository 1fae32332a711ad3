package constructor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/graph"

	"tourmovns/internal/domain"
	"tourmovns/internal/evaluator"
)

// MinTravelTime is the nearest-neighbor greedy: starting from
// the hotel, repeatedly visit the closest remaining attraction by travel
// time, spilling into Day2 once Day1 can no longer accept the nearest
// candidate. Distances are computed with a weighted directed graph and
// lvlath's Dijkstra rather than a direct matrix lookup, so a future
// transfer hub modeled as an intermediate vertex is picked up automatically;
// on the dense, fully-connected catalogs this core operates over, the
// shortest path and the direct leg coincide.
func MinTravelTime(cat *domain.Catalog, hotel int) domain.Solution {
	g := buildTravelGraph(cat)
	hotelVertex := vertexID(cat.HotelLocation(hotel))

	var day1, day2 domain.DayRoute
	remaining := make(map[int]struct{}, len(cat.Attractions))
	for i := range cat.Attractions {
		remaining[i] = struct{}{}
	}

	current := hotelVertex
	for i := 0; i < 2; i++ {
		day := &day1
		if i == 1 {
			day = &day2
		}
		for len(remaining) > 0 {
			next, ok := nearestRemaining(g, current, remaining, cat)
			if !ok {
				break
			}
			candidate := appendAttraction(cat, hotel, *day, next)
			if _, err := evaluator.EvaluateDay(cat, hotel, candidate); err != nil {
				break
			}
			*day = candidate
			delete(remaining, next)
			current = vertexID(cat.AttractionLocation(next))
		}
		current = hotelVertex
	}
	return domain.Solution{HotelID: hotel, Day1: day1, Day2: day2}
}

func vertexID(loc domain.LocationID) string {
	return fmt.Sprintf("loc-%d", int(loc))
}

// buildTravelGraph constructs a complete directed weighted graph over
// every attraction and hotel location, edge weight equal to the fastest
// feasible mode's travel minutes scaled to an integer millisecond-free
// unit Dijkstra can compare exactly.
func buildTravelGraph(cat *domain.Catalog) *graph.Graph {
	g := graph.NewGraph(true, true)
	n := cat.NumLocations()
	for i := 0; i < n; i++ {
		g.AddVertex(&graph.Vertex{ID: vertexID(domain.LocationID(i))})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			from, to := domain.LocationID(i), domain.LocationID(j)
			_, leg, ok := cat.Matrix.FastestFeasibleMode(from, to)
			if !ok {
				continue
			}
			weight := int64(math.Round(leg.Minutes * 100))
			if weight <= 0 {
				weight = 1
			}
			g.AddEdge(vertexID(from), vertexID(to), weight)
		}
	}
	return g
}

// nearestRemaining runs Dijkstra from current and returns whichever
// attraction in remaining has the smallest shortest-path distance.
func nearestRemaining(g *graph.Graph, current string, remaining map[int]struct{}, cat *domain.Catalog) (int, bool) {
	dist, _, err := g.Dijkstra(current)
	if err != nil {
		return 0, false
	}
	best := -1
	bestDist := int64(math.MaxInt64)
	for poi := range remaining {
		d, ok := dist[vertexID(cat.AttractionLocation(poi))]
		if !ok {
			continue
		}
		if d < bestDist {
			bestDist = d
			best = poi
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
