package traversal

import (
	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
)

// Admit implements spec.md §4.1's canTraverse: it never logs or errors,
// it only answers whether this edge may be entered in this mode under
// this request's accessibility preferences.
func Admit(edge *model.StreetEdge, req *request.RoutingRequest, mode model.Mode) bool {
	if req.WheelchairAccessible {
		if !edge.IsWheelchairAccessible() || edge.MaxSlope() > req.MaxSlope {
			return false
		}
	}
	if !req.PermitFootway && edge.IsFootway() {
		return false
	}
	if edge.IsCrossing() && req.Accessibility.Crossing == request.Forbid {
		return false
	}
	if edge.ContainsBollard() && req.Accessibility.Bollard == request.Forbid {
		return false
	}
	if edge.ContainsCycleBarrier() && req.Accessibility.CycleBarrier == request.Forbid {
		return false
	}
	if edge.ContainsTurnstile() && req.Accessibility.Turnstile == request.Forbid {
		return false
	}
	if edge.ContainsTrafficLightSound() && req.Accessibility.TrafficLightSound == request.Forbid {
		return false
	}
	if edge.ContainsTrafficLightVibration() && req.Accessibility.TrafficLightVibration == request.Forbid {
		return false
	}
	if edge.ContainsTrafficLightVibrationFloor() && req.Accessibility.TrafficLightVibrationFloor == request.Forbid {
		return false
	}
	return edge.Permission.Allows(mode)
}
