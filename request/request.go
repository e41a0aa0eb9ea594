package request

import (
	"math"
	"time"

	"github.com/ttpr0/go-accessroute/model"
)

// ModeQualifiers captures the rent/park/kiss modifiers spec.md §3
// attaches to the allowed mode set. Transit itself is an external
// collaborator (model.Mode only spans WALK/BICYCLE/CAR), so it is kept
// here as a plain flag rather than folded into model.ModeSet.
type ModeQualifiers struct {
	Transit      bool
	BikeRental   bool
	ParkAndRide  bool
	KissAndRide  bool
}

// SoftLimit is a (penalty, overage-rate) pair shared by the soft-walk
// and pre-transit overage formulas (spec.md §4.2, "Overage formula").
type SoftLimit struct {
	Penalty     float64
	OverageRate float64
}

// TransferSlack is the (board, alight, transfer) slack triple of
// spec.md §3, with invariant board+alight <= transfer enforced at
// assembly time (spec.md §4.5, §8 invariant 6).
type TransferSlack struct {
	Board    int
	Alight   int
	Transfer int
}

// RoutingRequest is the immutable-once-built request the traversal
// core reads (spec.md §3). It is always produced by cloning a
// process-wide prototype (NewPrototypeRequest) and overlaying fields
// via Assemble; direct field mutation after assembly is a caller bug,
// not something this type prevents (the teacher's own RoutingOptions
// relies on the same discipline).
type RoutingRequest struct {
	// place expressions
	From string
	To   string

	DepartureTime    time.Time
	ArriveBy         bool
	ClampInitialWait time.Duration

	Modes      model.ModeSet
	Qualifiers ModeQualifiers

	WalkReluctance   float64
	WaitReluctance   float64
	WaitAtBeginningReluctance float64
	StairsReluctance float64
	TurnReluctance   float64

	WalkSpeed float64
	BikeSpeed float64
	CarSpeed  float64

	BikeSwitchTime float64
	BikeSwitchCost float64

	Optimize     OptimizeType
	BikeTriangle BikeTriangle

	WheelchairAccessible bool
	MaxSlope             float64

	MaxWalkDistance float64
	SoftWalkLimit   bool
	SoftWalk        SoftLimit

	MaxPreTransitTime      float64
	SoftPreTransitLimiting bool
	SoftPreTransit         SoftLimit

	Slack          TransferSlack
	TransferPenalty float64

	PreferredRoutes   []string
	UnpreferredRoutes []string
	BannedRoutes      []string
	PreferredAgencies []string
	UnpreferredAgencies []string
	BannedAgencies    []string

	BannedStopsSoft []string
	BannedStopsHard []string
	BannedTrips     map[TripID]BannedStopSet

	MaxTransfers int
	Batch        bool

	StartingTransitStopID string
	StartingTransitTripID string

	UseBikeRentalAvailabilityInformation bool

	Locale string

	PermitFootway bool
	Accessibility AccessibilityPrefs
}

// NewPrototypeRequest returns the process-wide default request every
// per-call request is cloned from (spec.md §5, "Shared resources").
// Defaults mirror the Java RoutingRequest field initializers referenced
// by original_source/RoutingResource.java.
func NewPrototypeRequest() *RoutingRequest {
	return &RoutingRequest{
		ArriveBy:                  false,
		Modes:                     model.NewModeSet(model.WALK),
		WalkReluctance:            2.0,
		WaitReluctance:            1.0,
		WaitAtBeginningReluctance: 0.4,
		StairsReluctance:          2.0,
		TurnReluctance:            1.0,
		WalkSpeed:                 1.33,
		BikeSpeed:                 5.0,
		CarSpeed:                  40.0,
		BikeSwitchTime:            0,
		BikeSwitchCost:            0,
		Optimize:                  QUICK,
		WheelchairAccessible:      false,
		MaxSlope:                  0.0833333333333,
		MaxWalkDistance:           math.MaxFloat64,
		SoftWalkLimit:             true,
		SoftWalk:                  SoftLimit{Penalty: 60, OverageRate: 5},
		MaxPreTransitTime:         30 * 60,
		SoftPreTransitLimiting:    true,
		SoftPreTransit:            SoftLimit{Penalty: 300, OverageRate: 10},
		Slack:                     TransferSlack{Board: 0, Alight: 0, Transfer: 0},
		MaxTransfers:              2,
		Locale:                    "en",
		PermitFootway:             true,
		Accessibility:             DefaultAccessibilityPrefs(),
	}
}

// Clone returns a value copy with its own slice/map backing for the
// fields assembly mutates per-request (spec.md §8, "cloning a
// prototype then assembling is semantically identical").
func (self *RoutingRequest) Clone() *RoutingRequest {
	clone := *self
	clone.PreferredRoutes = append([]string(nil), self.PreferredRoutes...)
	clone.UnpreferredRoutes = append([]string(nil), self.UnpreferredRoutes...)
	clone.BannedRoutes = append([]string(nil), self.BannedRoutes...)
	clone.PreferredAgencies = append([]string(nil), self.PreferredAgencies...)
	clone.UnpreferredAgencies = append([]string(nil), self.UnpreferredAgencies...)
	clone.BannedAgencies = append([]string(nil), self.BannedAgencies...)
	clone.BannedStopsSoft = append([]string(nil), self.BannedStopsSoft...)
	clone.BannedStopsHard = append([]string(nil), self.BannedStopsHard...)
	if self.BannedTrips != nil {
		clone.BannedTrips = make(map[TripID]BannedStopSet, len(self.BannedTrips))
		for k, v := range self.BannedTrips {
			clone.BannedTrips[k] = v
		}
	}
	return &clone
}

// Speed returns the configured speed in m/s for mode, the per-request
// half of the Java's calculateSpeed/getSpeed split (model.StreetEdge
// carries the per-edge half as CalculateSpeed).
func (self *RoutingRequest) Speed(mode model.Mode) float64 {
	switch mode {
	case model.CAR:
		return self.CarSpeed
	case model.BICYCLE:
		return self.BikeSpeed
	default:
		return self.WalkSpeed
	}
}

// BikeWalkingOptions returns the request variant used when a BICYCLE
// traversal is inadmissible and the caller retries walking the bike
// (spec.md §4.1, §4.2 Step 3): a clone whose mode set is WALK only.
// Speeds and reluctances are copied unchanged; the caller passes WALK
// as the traversal mode itself.
func (self *RoutingRequest) BikeWalkingOptions() *RoutingRequest {
	clone := self.Clone()
	clone.Modes = model.NewModeSet(model.WALK)
	return clone
}
