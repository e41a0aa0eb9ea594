package osmimport

import (
	"testing"

	"github.com/ttpr0/go-accessroute/model"
)

func TestIsValidHighway(t *testing.T) {
	if !IsValidHighway(map[string]string{"highway": "residential"}) {
		t.Error("expected residential to be a valid highway")
	}
	if !IsValidHighway(map[string]string{"highway": "footway"}) {
		t.Error("expected footway to be a valid highway")
	}
	if IsValidHighway(map[string]string{"highway": "fantasy_road"}) {
		t.Error("did not expect an unrecognized highway value to be valid")
	}
	if IsValidHighway(map[string]string{}) {
		t.Error("did not expect a way with no highway tag to be valid")
	}
}

func TestRoadTypeCrossingTakesPriority(t *testing.T) {
	if rt := roadType(map[string]string{"highway": "crossing"}); rt != model.CROSSING {
		t.Errorf("roadType(crossing) = %v, want CROSSING", rt)
	}
}

func TestRoadTypeFootwayFallback(t *testing.T) {
	if rt := roadType(map[string]string{"highway": "path"}); rt != model.FOOTWAY {
		t.Errorf("roadType(path) = %v, want FOOTWAY", rt)
	}
}

func TestIsOnewayImplicitForMotorway(t *testing.T) {
	if !isOneway(map[string]string{}, model.MOTORWAY) {
		t.Error("expected motorway to be implicitly oneway")
	}
	if isOneway(map[string]string{}, model.RESIDENTIAL) {
		t.Error("did not expect residential to be implicitly oneway")
	}
	if !isOneway(map[string]string{"oneway": "yes"}, model.RESIDENTIAL) {
		t.Error("expected explicit oneway=yes to be honored")
	}
}

func TestPermissionFootwayIsWalkOnly(t *testing.T) {
	perm := permission(map[string]string{"highway": "footway"}, model.FOOTWAY)
	if !perm.Allows(model.WALK) {
		t.Error("expected footway to permit walking")
	}
	if perm.Allows(model.BICYCLE) || perm.Allows(model.CAR) {
		t.Error("did not expect footway to permit bicycle or car")
	}
}

func TestPermissionResidentialAllowsAllModes(t *testing.T) {
	perm := permission(map[string]string{"highway": "residential"}, model.RESIDENTIAL)
	if !perm.Allows(model.WALK) || !perm.Allows(model.BICYCLE) || !perm.Allows(model.CAR) {
		t.Errorf("expected residential to permit all three modes, got %v", perm)
	}
}

func TestPermissionMotorwayForbidsWalkAndBicycle(t *testing.T) {
	perm := permission(map[string]string{"highway": "motorway"}, model.MOTORWAY)
	if perm.Allows(model.WALK) || perm.Allows(model.BICYCLE) {
		t.Error("did not expect motorway to permit walking or cycling")
	}
	if !perm.Allows(model.CAR) {
		t.Error("expected motorway to permit car")
	}
}

func TestPermissionExplicitAccessTagsOverride(t *testing.T) {
	perm := permission(map[string]string{"highway": "residential", "bicycle": "no", "access": "private"}, model.RESIDENTIAL)
	if perm.Allows(model.BICYCLE) {
		t.Error("expected bicycle=no to revoke bicycle permission")
	}
	if perm.Allows(model.CAR) {
		t.Error("expected access=private to revoke car permission")
	}
	if !perm.Allows(model.WALK) {
		t.Error("expected walk permission to remain")
	}
}

func TestCarSpeedKMHExplicitMaxspeed(t *testing.T) {
	got := carSpeedKMH(model.RESIDENTIAL, "50", "", "")
	if want := 45.0; got != want {
		t.Errorf("carSpeedKMH(maxspeed=50) = %v, want %v", got, want)
	}
}

func TestCarSpeedKMHFallsBackToRoadTypeTable(t *testing.T) {
	got := carSpeedKMH(model.MOTORWAY, "", "", "")
	if got != 100 {
		t.Errorf("carSpeedKMH(motorway) = %v, want 100", got)
	}
}

func TestCarSpeedKMHSurfaceCapsSpeed(t *testing.T) {
	got := carSpeedKMH(model.MOTORWAY, "", "", "mud")
	if got != 10 {
		t.Errorf("carSpeedKMH(motorway, mud) = %v, want capped to 10", got)
	}
}

func TestCarSpeedKMHNeverZero(t *testing.T) {
	got := carSpeedKMH(model.UNCLASSIFIED, "walk", "", "mud")
	if got <= 0 {
		t.Errorf("carSpeedKMH should never return 0 or negative, got %v", got)
	}
}

func TestBicycleSafetyFactorCycleway(t *testing.T) {
	if got := bicycleSafetyFactor(map[string]string{"highway": "cycleway"}, model.UNCLASSIFIED); got != 0.05 {
		t.Errorf("bicycleSafetyFactor(cycleway) = %v, want 0.05", got)
	}
}

func TestBicycleSafetyFactorMotorwayIsWorst(t *testing.T) {
	residential := bicycleSafetyFactor(map[string]string{}, model.RESIDENTIAL)
	motorway := bicycleSafetyFactor(map[string]string{}, model.MOTORWAY)
	if motorway <= residential {
		t.Errorf("expected motorway safety factor (%v) to be worse (higher) than residential (%v)", motorway, residential)
	}
}

func TestTagAccessibilitySetsFlagsFromTags(t *testing.T) {
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	tags := map[string]string{
		"barrier":                   "bollard",
		"highway":                   "crossing",
		"traffic_signals:sound":     "yes",
		"traffic_signals:vibration": "yes",
		"tactile_paving":            "yes",
		"wheelchair":                "yes",
		"incline":                   "8%",
	}
	tagAccessibility(edge, tags)

	if !edge.ContainsBollard() {
		t.Error("expected bollard flag set")
	}
	if !edge.IsCrossing() {
		t.Error("expected crossing flag set")
	}
	if !edge.ContainsTrafficLightSound() || !edge.ContainsTrafficLightVibration() {
		t.Error("expected both traffic-light sub-feature flags set")
	}
	if !edge.ContainsTrafficLightVibrationFloor() {
		t.Error("expected tactile-paving to map to the floor-vibration flag")
	}
	if !edge.IsWheelchairAccessible() {
		t.Error("expected wheelchair-accessible flag set")
	}
	if got := edge.MaxSlope(); got < 0.07 || got > 0.09 {
		t.Errorf("MaxSlope() = %v, want ~0.08 from incline=8%%", got)
	}
}

func TestTagAccessibilityStepsSetsStairsAndNotFootway(t *testing.T) {
	edge := model.NewStreetEdge(0, 0, 1, 100, model.PermitWalk, 0)
	tagAccessibility(edge, map[string]string{"highway": "steps"})
	if !edge.IsStairs() {
		t.Error("expected highway=steps to set the stairs flag")
	}
	if edge.IsFootway() {
		t.Error("did not expect highway=steps to set the footway flag")
	}
}

func TestParseIncline(t *testing.T) {
	cases := map[string]float32{
		"up":   0.05,
		"down": -0.05,
		"10%":  0.1,
		"":     0,
		"junk": 0,
	}
	for in, want := range cases {
		if got := parseIncline(in); got != want {
			t.Errorf("parseIncline(%q) = %v, want %v", in, got, want)
		}
	}
}
