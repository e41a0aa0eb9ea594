package model

import "testing"

func TestPermissionAllows(t *testing.T) {
	p := PermitWalk | PermitBicycle
	if !p.Allows(WALK) || !p.Allows(BICYCLE) {
		t.Fatal("expected walk and bicycle allowed")
	}
	if p.Allows(CAR) {
		t.Fatal("did not expect car allowed")
	}
}

func TestPermissionWithWithout(t *testing.T) {
	p := PermitNone.With(WALK).With(CAR)
	if !p.Allows(WALK) || !p.Allows(CAR) {
		t.Fatal("expected walk and car after With")
	}
	p = p.Without(CAR)
	if p.Allows(CAR) {
		t.Fatal("expected car removed after Without")
	}
	if !p.Allows(WALK) {
		t.Fatal("expected walk to remain")
	}
}

func TestPermissionAllowsAny(t *testing.T) {
	p := PermitBicycle
	if !p.AllowsAny(NewModeSet(WALK, BICYCLE)) {
		t.Fatal("expected AllowsAny true when bicycle is in the set")
	}
	if p.AllowsAny(NewModeSet(WALK, CAR)) {
		t.Fatal("expected AllowsAny false when bicycle is not in the set")
	}
}
