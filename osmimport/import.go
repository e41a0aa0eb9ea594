package osmimport

import (
	"context"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-accessroute/geo"
	"github.com/ttpr0/go-accessroute/model"
)

// tempNode tracks a node's coordinate and how many ways reference it
// while the decoder is still deciding which nodes become real
// intersections, mirroring parser/structs.go's TempNode.
type tempNode struct {
	point geo.Coord
	count int
}

// ImportOSM decodes a .osm.pbf extract into a StreetNetwork, tagging
// accessibility flags from OSM tags (SPEC_FULL.md §3, osmimport).
// It makes three passes over the file, exactly as teacher
// parser/parser.go's _ParseOsm does: first to count way references per
// node (to decide which nodes are real intersections vs. interior
// shape points), second to place every referenced node, third to
// split ways into edges at intersection nodes.
func ImportOSM(pbfFile string, homeZone string) (*model.StreetNetwork, error) {
	file, err := os.Open(pbfFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening osm pbf file")
	}
	defer file.Close()

	nodeRefCounts := make(map[int64]int)
	if err := countNodeReferences(file, nodeRefCounts); err != nil {
		return nil, errors.Wrap(err, "counting node references")
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "rewinding osm pbf file")
	}
	network := model.NewStreetNetwork(homeZone)
	nodeIndex := make(map[int64]int32)
	nodes := make(map[int64]tempNode)
	if err := placeNodes(file, nodeRefCounts, network, nodeIndex, nodes); err != nil {
		return nil, errors.Wrap(err, "placing nodes")
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "rewinding osm pbf file")
	}
	if err := splitWays(file, nodeRefCounts, nodes, nodeIndex, network); err != nil {
		return nil, errors.Wrap(err, "splitting ways into edges")
	}

	slog.Info("osm import complete", "vertices", len(network.Vertices), "edges", len(network.Edges))
	return network, nil
}

func countNodeReferences(file *os.File, counts map[int64]int) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tags := way.TagMap()
		if !IsValidHighway(tags) {
			continue
		}
		ids := way.Nodes.NodeIDs()
		for _, id := range ids {
			counts[id.FeatureID().Ref()]++
		}
		// endpoints are always intersection candidates, even on a way
		// referenced only once (parser/parser.go's _InitWayHandler).
		counts[ids[0].FeatureID().Ref()]++
		counts[ids[len(ids)-1].FeatureID().Ref()]++
	}
	return scanner.Err()
}

func placeNodes(file *os.File, refCounts map[int64]int, network *model.StreetNetwork, nodeIndex map[int64]int32, nodes map[int64]tempNode) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		id := node.FeatureID().Ref()
		count, referenced := refCounts[id]
		if !referenced {
			continue
		}
		point := geo.Coord{node.Lon, node.Lat}
		nodes[id] = tempNode{point: point, count: count}
		if count > 1 {
			vid := network.AddVertex(model.Vertex{Loc: point, IsIntersection: true})
			nodeIndex[id] = vid
		}
	}
	return scanner.Err()
}

func splitWays(file *os.File, refCounts map[int64]int, nodes map[int64]tempNode, nodeIndex map[int64]int32, network *model.StreetNetwork) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tags := way.TagMap()
		if !IsValidHighway(tags) {
			continue
		}
		emitWayEdges(way, tags, refCounts, nodes, nodeIndex, network)
	}
	return scanner.Err()
}

func emitWayEdges(way *osm.Way, tags map[string]string, refCounts map[int64]int, nodes map[int64]tempNode, nodeIndex map[int64]int32, network *model.StreetNetwork) {
	ids := way.Nodes.NodeIDs()
	rt := roadType(tags)
	perm := permission(tags, rt)
	oneway := isOneway(tags, rt)
	speed := carSpeedKMH(rt, tags["maxspeed"], tags["tracktype"], tags["surface"]) / 3.6
	safety := bicycleSafetyFactor(tags, rt)

	startRef := ids[0].FeatureID().Ref()
	var shape []geo.Coord
	shape = append(shape, nodes[startRef].point)

	for i := 1; i < len(ids); i++ {
		ref := ids[i].FeatureID().Ref()
		tn, ok := nodes[ref]
		if !ok {
			continue
		}
		shape = append(shape, tn.point)
		if refCounts[ref] > 1 || i == len(ids)-1 {
			fromVID, okFrom := nodeIndex[startRef]
			toVID, okTo := nodeIndex[ref]
			if !okFrom || !okTo {
				startRef = ref
				shape = []geo.Coord{tn.point}
				continue
			}
			addEdge(network, fromVID, toVID, shape, perm, speed, safety, rt, tags)
			if !oneway {
				reversed := make([]geo.Coord, len(shape))
				for j, c := range shape {
					reversed[len(shape)-1-j] = c
				}
				addEdge(network, toVID, fromVID, reversed, perm, speed, safety, rt, tags)
			}
			startRef = ref
			shape = []geo.Coord{tn.point}
		}
	}
}

func addEdge(network *model.StreetNetwork, from, to int32, shape []geo.Coord, perm model.Permission, speed float64, safety float32, rt model.RoadType, tags map[string]string) {
	lengthMM := int32(geo.Length(geo.NewLineString(shape)) * 1000)
	carSpeed := float32(speed)
	if !perm.Allows(model.CAR) {
		carSpeed = model.DefaultCarSpeed
	}
	edge := model.NewStreetEdge(0, from, to, lengthMM, perm, carSpeed)
	edge.BicycleSafetyFactor = safety
	edge.StreetClass = rt
	edge.Name = tags["name"]
	edge.SetGeometry(geo.NewLineString(shape))
	tagAccessibility(edge, tags)
	network.AddEdge(edge)
}
