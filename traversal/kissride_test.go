package traversal

import (
	"testing"

	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/state"
	"github.com/ttpr0/go-accessroute/turn"
)

func TestApplyKissAndRideNoQualifiersPassesThrough(t *testing.T) {
	req := request.NewPrototypeRequest()
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := ApplyKissAndRide(nil, turns, edge, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("expected a successor state")
	}
	if s1.Next != nil {
		t.Fatal("did not expect a forked branch without kiss/park qualifiers")
	}
}

func TestApplyKissAndRideArriveByForksCarBranch(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Qualifiers.KissAndRide = true
	req.ArriveBy = true
	turns := turn.NewEvaluator()

	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitAll, 20)
	s0 := state.NewInitialState(0, 0, true, true)

	result := ApplyKissAndRide(nil, turns, edge, s0, req, model.WALK)
	if result == nil {
		t.Fatal("expected a primary result")
	}
	if result.Next == nil {
		t.Fatal("expected a chained CAR branch when arrive-by, car-parked and boarded")
	}
	if result.Next.CarParked {
		t.Fatal("expected the chained branch to represent the car being unparked")
	}
}

func TestApplyKissAndRideDepartAfterSwitchesToWalk(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Qualifiers.KissAndRide = true
	req.ArriveBy = false
	turns := turn.NewEvaluator()

	// walk-only edge: the CAR branch cannot continue, so the switch to
	// WALK should take over and mark the car as parked.
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)

	result := ApplyKissAndRide(nil, turns, edge, s0, req, model.CAR)
	if result == nil {
		t.Fatal("expected the walk fallback to succeed")
	}
	if !result.CarParked {
		t.Fatal("expected CarParked to be set true after switching to walk")
	}
}

func TestApplyKissAndRideDrivableEdgeKeepsDriving(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Qualifiers.KissAndRide = true
	req.ArriveBy = false
	turns := turn.NewEvaluator()

	// ordinary drivable edge: the depart-after switch must not fire here,
	// or it would overwrite a successful CAR traversal with a premature
	// park-and-walk on every drivable edge.
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitAll, 20)
	s0 := state.NewInitialState(0, 0, false, false)

	result := ApplyKissAndRide(nil, turns, edge, s0, req, model.CAR)
	if result == nil {
		t.Fatal("expected the car traversal to succeed")
	}
	if result.CarParked {
		t.Fatal("did not expect the car to be parked on a drivable edge")
	}
}
