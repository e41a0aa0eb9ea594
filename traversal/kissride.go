package traversal

import (
	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/state"
	"github.com/ttpr0/go-accessroute/turn"
)

// ApplyKissAndRide runs Traverse and then applies the mode-switch
// policy of spec.md §4.4 on top of its result. Callers that enabled
// KissAndRide or ParkAndRide on the request should call this instead
// of Traverse directly; everyone else gets the same result Traverse
// would have returned.
func ApplyKissAndRide(network Network, turns *turn.Evaluator, edge *model.StreetEdge, s0 *state.State, req *request.RoutingRequest, currentMode model.Mode) *state.State {
	result := Traverse(network, turns, edge, s0, req, currentMode)
	qualifies := req.Qualifiers.KissAndRide || req.Qualifiers.ParkAndRide

	// Depart-after: the search is still driving but this edge forbids
	// CAR — switch to WALK and park, rather than dead-ending because
	// Traverse already rejected the CAR attempt on admission. The
	// permission check matters: on an ordinary drivable edge this
	// branch must not fire at all, or it would overwrite a successful
	// CAR traversal with a premature park-and-walk.
	if qualifies && !req.ArriveBy && currentMode == model.CAR && !s0.CarParked && !edge.Permission.Allows(model.CAR) {
		if walking := Traverse(network, turns, edge, s0, req, model.WALK); walking != nil {
			walking.CarParked = true
			return walking
		}
		// the forked branch failed too; silently revert to the unforked
		// result (spec.md §7, "partial failures ... silently revert").
		return result
	}

	if result == nil {
		return nil
	}
	if !qualifies {
		return result
	}

	if req.ArriveBy {
		if s0.CarParked && s0.EverBoarded && currentMode == model.WALK {
			if unparked := Traverse(network, turns, edge, s0, req, model.CAR); unparked != nil {
				unparked.CarParked = false
				result.Chain(unparked)
			}
		}
	}

	return result
}
