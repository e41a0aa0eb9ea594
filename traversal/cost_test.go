package traversal

import (
	"math"
	"testing"

	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/state"
	"github.com/ttpr0/go-accessroute/turn"
)

type fakeNetwork map[int32]*model.Vertex

func (self fakeNetwork) Vertex(id int32) *model.Vertex {
	return self[id]
}

func TestTraverseBasicWalk(t *testing.T) {
	req := request.NewPrototypeRequest()
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := Traverse(nil, turns, edge, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("expected a successor state for an admissible walk edge")
	}
	if s1.Vertex != 1 {
		t.Errorf("Vertex = %d, want 1", s1.Vertex)
	}
	if s1.WalkDistance != edge.Distance() {
		t.Errorf("WalkDistance = %v, want %v", s1.WalkDistance, edge.Distance())
	}
	if s1.Weight <= 0 || s1.TimeSeconds <= s0.TimeSeconds {
		t.Fatalf("expected positive weight/time accrual, got %+v", s1)
	}
}

func TestTraverseRejectsUTurn(t *testing.T) {
	req := request.NewPrototypeRequest()
	forward := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	backward := model.NewStreetEdge(1, 1, 0, 100, model.PermitWalk, 0)
	turns := turn.NewEvaluator()

	s0 := state.NewInitialState(0, 0, false, false)
	s1 := Traverse(nil, turns, forward, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("setup failed: expected forward traversal to succeed")
	}

	s2 := Traverse(nil, turns, backward, s1, req, model.WALK)
	if s2 != nil {
		t.Fatal("expected immediate U-turn to be rejected")
	}
}

func TestTraverseSoftPreTransitLimitingAllowsZeroPenaltyOverage(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Qualifiers.KissAndRide = true
	req.ArriveBy = false
	req.MaxPreTransitTime = 1
	req.SoftPreTransitLimiting = true
	req.SoftPreTransit = request.SoftLimit{Penalty: 0, OverageRate: 0}

	edge := model.NewStreetEdge(0, 0, 1, 100000, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := Traverse(nil, turns, edge, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("expected soft pre-transit limiting with zero penalty/rate to still succeed")
	}
}

func TestTraverseHardPreTransitLimitingRejectsOverage(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Qualifiers.KissAndRide = true
	req.ArriveBy = false
	req.MaxPreTransitTime = 1
	req.SoftPreTransitLimiting = false

	edge := model.NewStreetEdge(0, 0, 1, 100000, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := Traverse(nil, turns, edge, s0, req, model.WALK)
	if s1 != nil {
		t.Fatal("expected hard pre-transit limiting to reject an edge exceeding MaxPreTransitTime")
	}
}

func TestTraverseBicycleFallsBackToWalk(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Modes = model.NewModeSet(model.BICYCLE)
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := Traverse(nil, turns, edge, s0, req, model.BICYCLE)
	if s1 == nil {
		t.Fatal("expected retry-as-walk to produce a successor")
	}
	if s1.BackMode != model.WALK {
		t.Errorf("BackMode = %v, want WALK after bicycle-admission failure", s1.BackMode)
	}
}

func TestTraverseHardWalkLimitRejects(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.SoftWalkLimit = false
	req.MaxWalkDistance = 10
	edge := model.NewStreetEdge(0, 0, 1, 100000, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	if s1 := Traverse(nil, turns, edge, s0, req, model.WALK); s1 != nil {
		t.Fatal("expected traversal exceeding a hard walk limit to be rejected")
	}
}

func TestTraverseSoftWalkLimitAddsOverageInsteadOfRejecting(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.SoftWalkLimit = true
	req.MaxWalkDistance = 10
	req.SoftWalk = request.SoftLimit{Penalty: 60, OverageRate: 5}
	edge := model.NewStreetEdge(0, 0, 1, 100000, model.PermitWalk, 0)
	s0 := state.NewInitialState(0, 0, false, false)
	turns := turn.NewEvaluator()

	s1 := Traverse(nil, turns, edge, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("expected soft walk limit to admit the edge with an overage penalty")
	}
}

func TestAccessibilityMultiplierComposesCrossingAndSubfeature(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Accessibility.Crossing = request.Dislike
	req.Accessibility.TrafficLightSound = request.Dislike

	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	edge.SetCrossing(true)
	edge.SetContainsTrafficLightSound(true)

	if got := accessibilityMultiplier(edge, req); got != 4.0 {
		t.Errorf("accessibilityMultiplier = %v, want 4.0 (2.0 crossing * 2.0 TL-sound)", got)
	}
}

func TestAccessibilityMultiplierSubfeatureOnlyAppliesUnderCrossing(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Accessibility.TrafficLightSound = request.Dislike

	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	edge.SetContainsTrafficLightSound(true) // no IsCrossing flag set

	if got := accessibilityMultiplier(edge, req); got != 1.0 {
		t.Errorf("accessibilityMultiplier = %v, want 1.0 since the edge isn't a crossing", got)
	}
}

func TestAccessibilityMultiplierIndependentFeaturesCompose(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Accessibility.Bollard = request.Prefer
	req.Accessibility.Turnstile = request.Dislike

	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	edge.SetContainsBollard(true)
	edge.SetContainsTurnstile(true)

	if got := accessibilityMultiplier(edge, req); got != 1.0 {
		t.Errorf("accessibilityMultiplier = %v, want 1.0 (0.5 prefer * 2.0 dislike)", got)
	}
}

func TestOverageWeightOnlyChargesBeyondThreshold(t *testing.T) {
	if got := overageWeight(5, 8, 20, 60, 5); got != 15 {
		t.Errorf("overageWeight below max = %v, want (next-prev)*rate = 15", got)
	}
	if got := overageWeight(18, 25, 20, 60, 5); got != 85 {
		t.Errorf("overageWeight crossing max = %v, want (next-max)*rate+penalty = 85", got)
	}
}

func TestBikeWeightTriangleUsesFactors(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Optimize = request.TRIANGLE
	req.BikeTriangle = request.BikeTriangle{Safety: 1.0 / 3, Slope: 1.0 / 3, Time: 1.0 / 3}
	edge := model.NewStreetEdge(0, 0, 1, 1000, model.PermitBicycle, 0)

	got := bikeWeight(edge, req, 5.0)
	if got <= 0 {
		t.Fatalf("expected positive triangle-weighted cost, got %v", got)
	}
}

func TestTraverseAppliesTurnCostAtIntersection(t *testing.T) {
	req := request.NewPrototypeRequest()
	turns := turn.NewEvaluator()
	network := fakeNetwork{
		0: {ID: 0, IsIntersection: false},
		1: {ID: 1, IsIntersection: true},
		2: {ID: 2, IsIntersection: false},
	}

	straight := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	sharpTurn := model.NewStreetEdge(1, 1, 2, 100, model.PermitWalk, 0)
	sharpTurn.OutAngle = 64 // ~90 degrees off straight's zero-valued InAngle

	s0 := state.NewInitialState(0, 0, false, false)
	s1 := Traverse(network, turns, straight, s0, req, model.WALK)
	if s1 == nil {
		t.Fatal("setup failed: straight segment should be admissible")
	}

	s2 := Traverse(network, turns, sharpTurn, s1, req, model.WALK)
	if s2 == nil {
		t.Fatal("expected the turning segment to remain admissible")
	}
	if s2.TimeSeconds <= s1.TimeSeconds+int(math.Ceil(sharpTurn.Distance()/req.WalkSpeed)) {
		t.Error("expected turn cost to add extra time beyond the flat travel time")
	}
}

func TestBikeWeightGreenwayDiscount(t *testing.T) {
	req := request.NewPrototypeRequest()
	req.Optimize = request.GREENWAYS
	edge := model.NewStreetEdge(0, 0, 1, 1000, model.PermitBicycle, 0)
	edge.BicycleSafetyFactor = 0.05 // below model.GreenwaySafetyFactor

	greenway := bikeWeight(edge, req, 5.0)

	edge.BicycleSafetyFactor = 1.0
	nonGreenway := bikeWeight(edge, req, 5.0)

	if greenway >= nonGreenway {
		t.Fatalf("expected greenway discount: greenway=%v should be less than non-greenway=%v", greenway, nonGreenway)
	}
}
