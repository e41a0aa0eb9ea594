package model

import "github.com/ttpr0/go-accessroute/geo"

// Vertex is a node in the street network. IsIntersection distinguishes
// real intersections from geometry-only or temporary vertices, which
// matters for turn-cost computation (spec.md §4.2 Step 8: "if the
// relevant vertex is not an intersection vertex... realTurnCost = 0").
type Vertex struct {
	ID             int32
	Loc            geo.Coord
	IsIntersection bool
}
