package model

import (
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-accessroute/geo"
)

// GreenwaySafetyFactor is the threshold below which a street is
// considered a greenway for GREENWAYS bike optimization (spec.md
// glossary: "Greenway").
const GreenwaySafetyFactor = 0.1

// DefaultCarSpeed is used when an edge's car speed has not been set
// and the edge is not actually drivable; it exists purely so
// CalculateSpeed never divides by zero.
const DefaultCarSpeed = 11.2

// StreetEdge is a single street segment, the unit the traversal core
// operates on (spec.md §3). Length is fixed-point millimeters; angles
// are signed-byte "brads" (geo.ToBrad/FromBrad). Flags, the geometry and
// the slope fields are set after construction, by the loader only.
type StreetEdge struct {
	ID                  int32
	FromVertex          int32
	ToVertex            int32
	LengthMillimeters   int32
	BicycleSafetyFactor float32
	Permission          Permission
	CarSpeed            float32
	InAngle             int8
	OutAngle            int8
	StreetClass         RoadType
	CompactGeometry     geo.CompactLineString
	Name                string
	Flags               Flags

	maxSlope                      float32
	slopeSpeedEffectiveLength     float64
	slopeWorkCostEffectiveLength  float64
}

// NewStreetEdge enforces the invariants of spec.md §3: length is
// non-negative, and a drivable edge has a positive car speed.
func NewStreetEdge(id, fromVertex, toVertex int32, lengthMillimeters int32, permission Permission, carSpeed float32) *StreetEdge {
	if lengthMillimeters < 0 {
		panic("street edge length must be non-negative")
	}
	if permission.Allows(CAR) && carSpeed <= 0 {
		panic("drivable street edge must have a positive car speed")
	}
	return &StreetEdge{
		ID:                id,
		FromVertex:        fromVertex,
		ToVertex:          toVertex,
		LengthMillimeters: lengthMillimeters,
		Permission:        permission,
		CarSpeed:          carSpeed,
		BicycleSafetyFactor: 1.0,
	}
}

// Distance returns the edge's length in meters, converting from the
// fixed-point millimeter representation (spec.md §3, §9).
func (self *StreetEdge) Distance() float64 {
	return float64(self.LengthMillimeters) / 1000.0
}

func (self *StreetEdge) MaxSlope() float64 {
	return float64(self.maxSlope)
}
func (self *StreetEdge) SetMaxSlope(slope float32) {
	self.maxSlope = slope
	self.Flags.Set(FlagSlopeOverride)
}

// SlopeSpeedEffectiveLength/SlopeWorkCostEffectiveLength default to the
// flat distance, as in the Java base StreetEdge (elevation profiles
// are an external collaborator per spec.md §1); SetSlope* lets a
// loader that does have elevation data override them.
func (self *StreetEdge) SlopeSpeedEffectiveLength() float64 {
	if self.slopeSpeedEffectiveLength > 0 {
		return self.slopeSpeedEffectiveLength
	}
	return self.Distance()
}
func (self *StreetEdge) SetSlopeSpeedEffectiveLength(length float64) {
	self.slopeSpeedEffectiveLength = length
}
func (self *StreetEdge) SlopeWorkCostEffectiveLength() float64 {
	if self.slopeWorkCostEffectiveLength > 0 {
		return self.slopeWorkCostEffectiveLength
	}
	return self.Distance()
}
func (self *StreetEdge) SetSlopeWorkCostEffectiveLength(length float64) {
	self.slopeWorkCostEffectiveLength = length
}

//*******************************************
// flag accessors
//*******************************************

func (self *StreetEdge) IsBack() bool                     { return self.Flags.Has(FlagBack) }
func (self *StreetEdge) IsRoundabout() bool                { return self.Flags.Has(FlagRoundabout) }
func (self *StreetEdge) HasBogusName() bool                { return self.Flags.Has(FlagBogusName) }
func (self *StreetEdge) IsNoThru() bool                    { return self.Flags.Has(FlagNoThru) }
func (self *StreetEdge) IsStairs() bool                     { return self.Flags.Has(FlagStairs) }
func (self *StreetEdge) IsSlopeOverride() bool              { return self.Flags.Has(FlagSlopeOverride) }
func (self *StreetEdge) IsWheelchairAccessible() bool        { return self.Flags.Has(FlagWheelchairAccessible) }
func (self *StreetEdge) IsFootway() bool                     { return self.Flags.Has(FlagFootway) }
func (self *StreetEdge) IsCrossing() bool                    { return self.Flags.Has(FlagCrossing) }
func (self *StreetEdge) ContainsBollard() bool               { return self.Flags.Has(FlagBollard) }
func (self *StreetEdge) ContainsTurnstile() bool             { return self.Flags.Has(FlagTurnstile) }
func (self *StreetEdge) ContainsCycleBarrier() bool          { return self.Flags.Has(FlagCycleBarrier) }
func (self *StreetEdge) ContainsTrafficLightSound() bool     { return self.Flags.Has(FlagTLSound) }
func (self *StreetEdge) ContainsTrafficLightVibration() bool { return self.Flags.Has(FlagTLVibration) }
func (self *StreetEdge) ContainsTrafficLightVibrationFloor() bool {
	return self.Flags.Has(FlagTLFloorVibration)
}

func (self *StreetEdge) SetBack(v bool)                     { self.setFlag(FlagBack, v) }
func (self *StreetEdge) SetRoundabout(v bool)                { self.setFlag(FlagRoundabout, v) }
func (self *StreetEdge) SetBogusName(v bool)                 { self.setFlag(FlagBogusName, v) }
func (self *StreetEdge) SetNoThru(v bool)                    { self.setFlag(FlagNoThru, v) }
func (self *StreetEdge) SetStairs(v bool)                     { self.setFlag(FlagStairs, v) }
func (self *StreetEdge) SetWheelchairAccessible(v bool)        { self.setFlag(FlagWheelchairAccessible, v) }
func (self *StreetEdge) SetFootway(v bool)                     { self.setFlag(FlagFootway, v) }
func (self *StreetEdge) SetCrossing(v bool)                    { self.setFlag(FlagCrossing, v) }
func (self *StreetEdge) SetContainsBollard(v bool)             { self.setFlag(FlagBollard, v) }
func (self *StreetEdge) SetContainsTurnstile(v bool)           { self.setFlag(FlagTurnstile, v) }
func (self *StreetEdge) SetContainsCycleBarrier(v bool)        { self.setFlag(FlagCycleBarrier, v) }
func (self *StreetEdge) SetContainsTrafficLightSound(v bool)   { self.setFlag(FlagTLSound, v) }
func (self *StreetEdge) SetContainsTrafficLightVibration(v bool) {
	self.setFlag(FlagTLVibration, v)
}
func (self *StreetEdge) SetContainsTrafficLightVibrationFloor(v bool) {
	self.setFlag(FlagTLFloorVibration, v)
}

func (self *StreetEdge) setFlag(bit Flags, v bool) {
	if v {
		self.Flags.Set(bit)
	} else {
		self.Flags.Clear(bit)
	}
}

//*******************************************
// geometry / angles
//*******************************************

// SetGeometry stores the compact geometry and (re)computes the entry
// and exit angles from it. A degenerate geometry (fewer than two
// points) logs and zeroes the angles rather than failing, matching the
// Java catch block around DirectionUtils (spec.md §7).
func (self *StreetEdge) SetGeometry(ls geo.LineString) {
	self.CompactGeometry = geo.EncodeCompact(ls)
	inRad, okIn := geo.FirstAngle(ls)
	outRad, okOut := geo.LastAngle(ls)
	if !okIn || !okOut {
		slog.Error("exception while determining street edge angles, setting to zero", "edge", self.ID)
		self.InAngle = 0
		self.OutAngle = 0
		return
	}
	self.InAngle = geo.ToBrad(inRad)
	self.OutAngle = geo.ToBrad(outRad)
}
func (self *StreetEdge) Geometry() geo.LineString {
	return geo.DecodeCompact(self.CompactGeometry)
}
func (self *StreetEdge) InAngleDegrees() int  { return geo.FromBrad(self.InAngle) }
func (self *StreetEdge) OutAngleDegrees() int { return geo.FromBrad(self.OutAngle) }

//*******************************************
// identity / equivalence
//*******************************************

// IsReverseOf reports whether other traverses the same two vertices in
// the opposite direction — used by the U-turn guard (spec.md §4.2 Step 1).
func (self *StreetEdge) IsReverseOf(other *StreetEdge) bool {
	if other == nil {
		return false
	}
	return self.FromVertex == other.ToVertex && self.ToVertex == other.FromVertex
}

// IsEquivalentTo reports whether other represents the same edge, even
// if it is a temporary copy created for a partial-edge search
// (spec.md §4.3, §9 — equivalence tolerates temporary-edge aliasing).
func (self *StreetEdge) IsEquivalentTo(other *StreetEdge) bool {
	if other == nil {
		return false
	}
	if self.ID == other.ID {
		return true
	}
	return self.FromVertex == other.FromVertex && self.ToVertex == other.ToVertex
}

//*******************************************
// speed / search-heuristic contract
//*******************************************

// CalculateSpeed returns the speed in m/s for traverseMode, mirroring
// the Java split between calculateCarSpeed (per-edge) and
// RoutingRequest.getSpeed (per-request) (original_source StreetEdge.java).
func (self *StreetEdge) CalculateSpeed(mode Mode, walkSpeed, bikeSpeed float64) float64 {
	if mode.IsDriving() {
		return float64(self.CarSpeed)
	}
	if mode == BICYCLE {
		return bikeSpeed
	}
	return walkSpeed
}

// TimeLowerBound/WeightLowerBound are part of the per-edge contract the
// out-of-scope search engine's A* heuristic invokes (spec.md §6).
func (self *StreetEdge) TimeLowerBound(streetSpeedUpperBound float64) float64 {
	return self.Distance() / streetSpeedUpperBound
}
func (self *StreetEdge) WeightLowerBound(walkReluctance, streetSpeedUpperBound float64) float64 {
	return self.TimeLowerBound(streetSpeedUpperBound) * walkReluctance
}
