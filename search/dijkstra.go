package search

import (
	geojson "github.com/paulmach/go.geojson"

	. "github.com/ttpr0/go-accessroute/util"

	"github.com/ttpr0/go-accessroute/geo"
	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/state"
	"github.com/ttpr0/go-accessroute/traversal"
	"github.com/ttpr0/go-accessroute/turn"
)

// Option configures a Dijkstra run, following the functional-options
// style other_examples/katalvlaran-lvlath's dijkstra package uses
// (dijkstra.Source/WithReturnPath/WithMaxDistance) rather than a
// struct-literal options bag.
type Option func(*params)

type params struct {
	maxWeight  float64
	returnPath bool
}

func WithMaxWeight(w float64) Option {
	return func(p *params) { p.maxWeight = w }
}
func WithReturnPath() Option {
	return func(p *params) { p.returnPath = true }
}

// Result is keyed by vertex: the best state.State found so far, or
// nothing if the vertex was never reached.
type Result struct {
	Best map[int32]*state.State
}

// Path walks the back-edge chain from target to the source, relying
// on Best retaining only ever-improving states — true for a standard
// non-negative-weight Dijkstra relaxation, so each vertex's recorded
// predecessor is itself optimal.
func (self *Result) Path(target int32) []*model.StreetEdge {
	var edges []*model.StreetEdge
	vertex := target
	for {
		s, ok := self.Best[vertex]
		if !ok || s.BackEdge == nil {
			break
		}
		edges = append([]*model.StreetEdge{s.BackEdge}, edges...)
		vertex = s.BackEdge.FromVertex
	}
	return edges
}

// PathFeature renders Path(target) as a single GeoJSON LineString
// feature, concatenating each edge's geometry in order, for diagnostic
// export of the resolved route.
func (self *Result) PathFeature(target int32) *geojson.Feature {
	edges := self.Path(target)
	var ls geo.LineString
	for i, edge := range edges {
		points := edge.Geometry()
		if i > 0 && len(points) > 0 {
			points = points[1:]
		}
		ls = append(ls, points...)
	}
	props := map[string]any{"edgeCount": len(edges)}
	if best, ok := self.Best[target]; ok {
		props["weight"] = best.Weight
	}
	return geo.ToFeature(ls, props)
}

// Dijkstra is a minimal single-source search that exercises
// traversal.Admit/traversal.Traverse/traversal.ApplyKissAndRide on
// every edge expansion, grounded on teacher routing/spt5.go's
// PriorityQueue[int32,float64] loop shape. It is not the system under
// spec.md §1's scope — it exists only so the core is reachable end to
// end.
func Dijkstra(network *model.StreetNetwork, turns *turn.Evaluator, req *request.RoutingRequest, mode model.Mode, source int32, startTime int, opts ...Option) *Result {
	p := &params{maxWeight: -1}
	for _, opt := range opts {
		opt(p)
	}

	result := &Result{Best: make(map[int32]*state.State)}
	heap := NewPriorityQueue[int32, float64](64)

	start := state.NewInitialState(source, startTime, false, false)
	result.Best[source] = start
	heap.Enqueue(source, 0)

	for heap.Length() > 0 {
		current, ok := heap.Dequeue()
		if !ok {
			break
		}
		s0 := result.Best[current]

		for _, edgeID := range network.OutgoingEdges(current) {
			edge := network.Edge(edgeID)

			var s1 *state.State
			if req.Qualifiers.KissAndRide || req.Qualifiers.ParkAndRide {
				s1 = traversal.ApplyKissAndRide(network, turns, edge, s0, req, mode)
			} else {
				s1 = traversal.Traverse(network, turns, edge, s0, req, mode)
			}
			if s1 == nil {
				continue
			}
			if p.maxWeight >= 0 && s1.Weight > p.maxWeight {
				continue
			}

			best, seen := result.Best[s1.Vertex]
			if !seen || s1.Weight < best.Weight {
				result.Best[s1.Vertex] = s1
				heap.Enqueue(s1.Vertex, s1.Weight)
			}
		}
	}
	return result
}
