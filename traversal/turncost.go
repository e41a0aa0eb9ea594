package traversal

import (
	"github.com/ttpr0/go-accessroute/model"
)

// computeTurnCost is this module's IntersectionTraversalCostModel
// (spec.md §4.2 Step 8 names the collaborator but leaves its internals
// unspecified). It charges a cost in seconds proportional to how sharp
// the turn from "from" into "into" is, at a higher rate when driving
// than otherwise. The speed arguments do not affect the result. It is a
// stopped-at-the-corner cost, not a speed term, so it is added to both
// time and weight directly rather than divided by speed.
func computeTurnCost(into, from *model.StreetEdge, mode model.Mode, speed, backSpeed float64) float64 {
	turnDegrees := angleDelta(from.OutAngleDegrees(), into.InAngleDegrees())
	if mode.IsDriving() {
		// sharper turns cost more at an intersection; free right-hand bias
		// is not modeled since the graph's handedness is not specified.
		return float64(turnDegrees) / 180.0 * 10.0
	}
	return float64(turnDegrees) / 180.0 * 2.0
}

// angleDelta returns the absolute turn angle in [0, 180] degrees
// between an incoming heading and an outgoing heading.
func angleDelta(fromHeading, intoHeading int) int {
	d := intoHeading - fromHeading
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	if d < 0 {
		d = -d
	}
	return d
}
