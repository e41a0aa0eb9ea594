package request

import (
	"testing"

	"github.com/ttpr0/go-accessroute/model"
)

func TestNewPrototypeRequestDefaults(t *testing.T) {
	req := NewPrototypeRequest()
	if req.WalkReluctance != 2.0 || req.WaitReluctance != 1.0 || req.StairsReluctance != 2.0 {
		t.Fatalf("unexpected reluctance defaults: %+v", req)
	}
	if req.Optimize != QUICK {
		t.Errorf("Optimize default = %v, want QUICK", req.Optimize)
	}
	if !req.PermitFootway {
		t.Error("expected footway permitted by default")
	}
	if req.Accessibility != DefaultAccessibilityPrefs() {
		t.Error("expected all-neutral accessibility prefs by default")
	}
}

func TestRoutingRequestSpeedByMode(t *testing.T) {
	req := NewPrototypeRequest()
	if got := req.Speed(model.CAR); got != req.CarSpeed {
		t.Errorf("Speed(CAR) = %v, want %v", got, req.CarSpeed)
	}
	if got := req.Speed(model.BICYCLE); got != req.BikeSpeed {
		t.Errorf("Speed(BICYCLE) = %v, want %v", got, req.BikeSpeed)
	}
	if got := req.Speed(model.WALK); got != req.WalkSpeed {
		t.Errorf("Speed(WALK) = %v, want %v", got, req.WalkSpeed)
	}
}

func TestRoutingRequestCloneIsIndependent(t *testing.T) {
	req := NewPrototypeRequest()
	req.PreferredRoutes = []string{"route1"}
	req.BannedTrips = map[TripID]BannedStopSet{{Agency: "a", ID: "t"}: AllStops}

	clone := req.Clone()
	clone.PreferredRoutes[0] = "mutated"
	clone.BannedTrips[TripID{Agency: "a", ID: "t2"}] = AllStops

	if req.PreferredRoutes[0] != "route1" {
		t.Error("expected mutating the clone's slice to not affect the original")
	}
	if len(req.BannedTrips) != 1 {
		t.Error("expected mutating the clone's map to not affect the original")
	}
}

func TestBikeWalkingOptionsForcesWalkMode(t *testing.T) {
	req := NewPrototypeRequest()
	req.Modes = model.NewModeSet(model.BICYCLE)

	walking := req.BikeWalkingOptions()
	if !walking.Modes.Contains(model.WALK) {
		t.Fatal("expected BikeWalkingOptions to force WALK into the mode set")
	}
	if walking.Modes.Contains(model.BICYCLE) {
		t.Fatal("expected BikeWalkingOptions to drop BICYCLE")
	}
	if req.Modes.Contains(model.WALK) {
		t.Fatal("expected the original request to be unaffected")
	}
}
