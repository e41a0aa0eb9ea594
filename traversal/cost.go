package traversal

import (
	"math"

	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/state"
	"github.com/ttpr0/go-accessroute/turn"
)

// Network is the minimal read interface Traverse needs from the
// street graph (spec.md §6, "Graph interface consumed") — just enough
// to resolve a vertex's intersection flag for turn-cost gating.
type Network interface {
	Vertex(id int32) *model.Vertex
}

// Traverse is the cost kernel (spec.md §4.2): it either returns a
// successor State or nil, and never an error — inadmissibility is
// absence of a result, not a failure path (spec.md §7).
func Traverse(network Network, turns *turn.Evaluator, edge *model.StreetEdge, s0 *state.State, req *request.RoutingRequest, traverseMode model.Mode) *state.State {
	walkingBike := req.Qualifiers.BikeRental && traverseMode == model.WALK
	backWalkingBike := s0.BackWalkingBike && s0.BackMode == model.WALK
	backEdge := s0.BackEdge

	// Step 1 — U-turn guard.
	if backEdge != nil && (edge.IsReverseOf(backEdge) || backEdge.IsReverseOf(edge)) {
		return nil
	}

	// Step 3 — admission, retry walking the bike on BICYCLE failure.
	if !Admit(edge, req, traverseMode) {
		if traverseMode == model.BICYCLE {
			return Traverse(network, turns, edge, s0, req.BikeWalkingOptions(), model.WALK)
		}
		return nil
	}

	// Step 4 — speed.
	speed := edge.CalculateSpeed(traverseMode, req.WalkSpeed, req.BikeSpeed)

	// Step 5 — base time.
	time := edge.Distance() / speed
	var weight float64

	// Step 6 — base weight.
	switch {
	case req.WheelchairAccessible:
		weight = edge.SlopeSpeedEffectiveLength() / speed
	case traverseMode == model.BICYCLE:
		time = edge.SlopeSpeedEffectiveLength() / speed
		weight = bikeWeight(edge, req, speed)
	default:
		if walkingBike {
			time = edge.SlopeSpeedEffectiveLength() / speed
		}
		weight = time
		if traverseMode == model.WALK {
			costs := walkCostForSlope(edge.Distance(), edge.MaxSlope())
			weight = costs * (elevationUtilsSpeed / speed)
			time = weight
			weight *= accessibilityMultiplier(edge, req)
		}
	}

	// Step 7 — reluctance.
	if edge.IsStairs() {
		weight *= req.StairsReluctance
	} else {
		weight *= req.WalkReluctance
	}

	editor := state.NewEditor(s0)
	editor.SetBackMode(traverseMode)
	editor.SetBackWalkingBike(walkingBike)

	// Step 8 — turn cost.
	if backEdge != nil {
		backOptions := req
		if backWalkingBike {
			backOptions = req.BikeWalkingOptions()
		}
		backSpeed := backEdge.CalculateSpeed(s0.BackMode, backOptions.WalkSpeed, backOptions.BikeSpeed)

		if req.ArriveBy {
			if !turns.CanTurn(backEdge, edge, s0.BackMode, s0.TimeSeconds) {
				return nil
			}
		} else {
			if !turns.CanTurn(backEdge, edge, traverseMode, s0.TimeSeconds) {
				return nil
			}
		}

		var realTurnCost float64
		toVertex := network.Vertex(edge.ToVertex)
		fromVertex := network.Vertex(edge.FromVertex)
		if req.ArriveBy && toVertex.IsIntersection {
			realTurnCost = computeTurnCost(edge, backEdge, s0.BackMode, speed, backSpeed)
		} else if !req.ArriveBy && fromVertex.IsIntersection {
			realTurnCost = computeTurnCost(backEdge, edge, traverseMode, backSpeed, speed)
		} else {
			slog.Debug("not computing turn cost for temporary edge", "edge", edge.ID)
			realTurnCost = 0
		}

		if !traverseMode.IsDriving() {
			editor.IncrWalkDistance(realTurnCost / 100)
		}
		time += math.Ceil(realTurnCost)
		weight += req.TurnReluctance * realTurnCost
	}

	// Step 9 — bike-switch.
	if walkingBike || traverseMode == model.BICYCLE {
		if !(backWalkingBike || s0.BackMode == model.BICYCLE) {
			editor.IncrTime(int(req.BikeSwitchTime))
			editor.IncrWeight(req.BikeSwitchCost)
		}
	}

	// Step 10 — walk distance.
	if !traverseMode.IsDriving() {
		editor.IncrWalkDistance(edge.Distance())
	}

	roundedTime := int(math.Ceil(time))

	// Step 11 — pre-transit accounting.
	if req.Qualifiers.KissAndRide || req.Qualifiers.ParkAndRide {
		if req.ArriveBy {
			if !s0.CarParked {
				editor.IncrPreTransitTime(float64(roundedTime))
			}
		} else {
			if !s0.EverBoarded {
				editor.IncrPreTransitTime(float64(roundedTime))
			}
		}
		if editor.PreTransitTime() > req.MaxPreTransitTime {
			if req.SoftPreTransitLimiting {
				weight += overageWeight(s0.PreTransitTime, editor.PreTransitTime(), req.MaxPreTransitTime, req.SoftPreTransit.Penalty, req.SoftPreTransit.OverageRate)
			} else {
				return nil
			}
		}
	}

	// Step 12 — walk-limit.
	if editor.WalkDistance() > req.MaxWalkDistance {
		if req.SoftWalkLimit {
			weight += overageWeight(s0.WalkDistance, editor.WalkDistance(), req.MaxWalkDistance, req.SoftWalk.Penalty, req.SoftWalk.OverageRate)
		} else {
			slog.Debug("too much walking, bailing", "edge", edge.ID)
			return nil
		}
	}

	editor.IncrTime(roundedTime)
	editor.IncrWeight(weight)
	editor.SetVertex(edge.ToVertex)

	s1, ok := editor.MakeState()
	if !ok {
		return nil
	}
	s1.BackEdge = edge
	return s1
}

// bikeWeight implements the five bicycle-optimization branches of
// spec.md §4.2 Step 6.
func bikeWeight(edge *model.StreetEdge, req *request.RoutingRequest, speed float64) float64 {
	safety := float64(edge.BicycleSafetyFactor) * edge.Distance()
	switch req.Optimize {
	case request.SAFE:
		return safety / speed
	case request.GREENWAYS:
		weight := safety / speed
		if edge.BicycleSafetyFactor <= model.GreenwaySafetyFactor {
			weight *= 0.66
		}
		return weight
	case request.FLAT:
		return edge.Distance()/speed + edge.SlopeWorkCostEffectiveLength()
	case request.TRIANGLE:
		quick := edge.SlopeSpeedEffectiveLength()
		slope := edge.SlopeWorkCostEffectiveLength()
		weight := quick*req.BikeTriangle.Time + slope*req.BikeTriangle.Slope + safety*req.BikeTriangle.Safety
		return weight / speed
	default: // QUICK, TRANSFERS (already rewritten to QUICK by assembly)
		return edge.SlopeSpeedEffectiveLength() / speed
	}
}

// accessibilityMultiplier composes the per-feature preference
// multipliers of spec.md §3/§4.2 Step 6: crossing gates its three
// traffic-light sub-features, bollard/turnstile/cycle-barrier apply
// independently.
func accessibilityMultiplier(edge *model.StreetEdge, req *request.RoutingRequest) float64 {
	m := 1.0
	if edge.IsCrossing() {
		m *= req.Accessibility.Crossing.Multiplier()
		if edge.ContainsTrafficLightSound() {
			m *= req.Accessibility.TrafficLightSound.Multiplier()
		}
		if edge.ContainsTrafficLightVibration() {
			m *= req.Accessibility.TrafficLightVibration.Multiplier()
		}
		if edge.ContainsTrafficLightVibrationFloor() {
			m *= req.Accessibility.TrafficLightVibrationFloor.Multiplier()
		}
	}
	if edge.ContainsBollard() {
		m *= req.Accessibility.Bollard.Multiplier()
	}
	if edge.ContainsTurnstile() {
		m *= req.Accessibility.Turnstile.Multiplier()
	}
	if edge.ContainsCycleBarrier() {
		m *= req.Accessibility.CycleBarrier.Multiplier()
	}
	return m
}

// overageWeight is the shared soft-limit formula of spec.md §4.2
// ("Overage formula"), used for both the walk-limit and pre-transit
// overage policies.
func overageWeight(prev, next, max, penalty, rate float64) float64 {
	if prev <= max && next > max {
		return (next-max)*rate + penalty
	}
	return (next - prev) * rate
}
