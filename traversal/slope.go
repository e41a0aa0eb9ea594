package traversal

// walkCostForSlope is a simplified stand-in for the Java's
// ElevationUtils.getWalkCostsForSlope lookup table (elevation profiles
// are an external collaborator per spec.md §1 Non-goals — the core
// only needs *some* monotonic cost-for-slope function, not the real
// table). Cost grows quadratically with slope magnitude and linearly
// with distance, matching the Java table's shape: flat ground costs
// exactly distance, and costs increase symmetrically for up- and
// downhill beyond some grade.
func walkCostForSlope(distance, maxSlope float64) float64 {
	return distance * (1 + 4*maxSlope*maxSlope)
}

// elevationUtilsSpeed is the walking speed the slope-cost table above
// is calibrated against (4.8 km/h), per the Java comment in
// doTraverse: "the cost walkspeed is assumed to be for 4.8km/h".
const elevationUtilsSpeed = 4.0 / 3.0
