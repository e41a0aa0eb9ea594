package request

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Params is the repeated-parameter vector the HTTP layer hands the
// assembler: one slice per field, one element per occurrence of that
// query parameter (spec.md §4.5, mirroring RoutingResource's
// `@QueryParam List<T>` fields). Unsupplied fields are simply nil.
type Params struct {
	From []string
	To   []string

	Date []string
	Time []string
	Timezone []string
	ArriveBy []bool

	WalkReluctance   []float64
	WaitReluctance   []float64
	StairsReluctance []float64
	TurnReluctance   []float64

	WalkSpeed []float64
	BikeSpeed []float64

	BikeSwitchTime []float64
	BikeSwitchCost []float64

	Optimize          []string
	TriangleSafetyFactor []float64
	TriangleSlopeFactor  []float64
	TriangleTimeFactor   []float64

	WheelchairAccessible []bool
	MaxSlope             []float64
	PermitFootway        []bool

	MaxWalkDistance []float64

	BoardSlack    []int
	AlightSlack   []int
	TransferSlack []int

	PreferredRoutes   []string
	BannedRoutes      []string
	PreferredAgencies []string
	BannedAgencies    []string

	BannedTrips []string

	MaxTransfers []int
	Batch        []bool

	StartingTransitStopID []string
	StartingTransitTripID []string

	Locale []string

	PermitCrossing               []int
	PermitBollard                []int
	PermitCycleBarrier           []int
	PermitTurnstile              []int
	PermitTrafficLightSound      []int
	PermitTrafficLightVibration  []int
	PermitTrafficLightVibrationFloor []int
}

// sentinel values marking "unspecified" in a repeated-parameter slot
// (spec.md §4.5: "integer -1 or double -1.0 ... means unspecified").
const (
	intSentinel    = -1
	floatSentinel  = -1.0
)

// Pick selects the n-th (or last) element of list, or def if list is
// empty — the generic half of the Java's overloaded `get` helper
// (original_source/RoutingResource.java#get). Sentinel interpretation
// is type-specific and lives in PickInt/PickFloat below; Pick itself
// treats no value as a sentinel.
func Pick[T any](list []T, n int, def T) T {
	if len(list) == 0 {
		return def
	}
	if n > len(list)-1 {
		n = len(list) - 1
	}
	return list[n]
}

// PickInt is Pick specialized for the -1-means-unset sentinel.
func PickInt(list []int, n int, def int) int {
	v := Pick(list, n, def)
	if v == intSentinel {
		return def
	}
	return v
}

// PickFloat is Pick specialized for the -1.0-means-unset sentinel.
func PickFloat(list []float64, n int, def float64) float64 {
	v := Pick(list, n, def)
	if v == floatSentinel {
		return def
	}
	return v
}

// Assemble builds a RoutingRequest for occurrence n of each repeated
// parameter, cloning prototype and overlaying only supplied fields
// (spec.md §4.5). now is the instant the request is assembled, passed
// in rather than read from the clock so callers stay deterministic;
// homeZone is the graph's fallback timezone (spec.md §4.5, date/time
// resolution).
func Assemble(prototype *RoutingRequest, p *Params, n int, now time.Time, homeZone *time.Location) (*RoutingRequest, error) {
	req := prototype.Clone()

	req.From = Pick(p.From, n, req.From)
	req.To = Pick(p.To, n, req.To)
	req.ArriveBy = Pick(p.ArriveBy, n, req.ArriveBy)

	req.WalkReluctance = PickFloat(p.WalkReluctance, n, req.WalkReluctance)
	req.WaitReluctance = PickFloat(p.WaitReluctance, n, req.WaitReluctance)
	req.StairsReluctance = PickFloat(p.StairsReluctance, n, req.StairsReluctance)
	req.TurnReluctance = PickFloat(p.TurnReluctance, n, req.TurnReluctance)

	req.WalkSpeed = PickFloat(p.WalkSpeed, n, req.WalkSpeed)
	req.BikeSpeed = PickFloat(p.BikeSpeed, n, req.BikeSpeed)

	req.BikeSwitchTime = PickFloat(p.BikeSwitchTime, n, req.BikeSwitchTime)
	req.BikeSwitchCost = PickFloat(p.BikeSwitchCost, n, req.BikeSwitchCost)

	req.WheelchairAccessible = Pick(p.WheelchairAccessible, n, req.WheelchairAccessible)
	req.MaxSlope = PickFloat(p.MaxSlope, n, req.MaxSlope)
	req.PermitFootway = Pick(p.PermitFootway, n, req.PermitFootway)

	req.MaxWalkDistance = PickFloat(p.MaxWalkDistance, n, req.MaxWalkDistance)

	req.MaxTransfers = PickInt(p.MaxTransfers, n, req.MaxTransfers)
	req.Batch = Pick(p.Batch, n, req.Batch)

	req.StartingTransitStopID = Pick(p.StartingTransitStopID, n, req.StartingTransitStopID)
	req.StartingTransitTripID = Pick(p.StartingTransitTripID, n, req.StartingTransitTripID)

	req.Accessibility.Crossing = AccessPref(PickInt(p.PermitCrossing, n, int(req.Accessibility.Crossing)))
	req.Accessibility.Bollard = AccessPref(PickInt(p.PermitBollard, n, int(req.Accessibility.Bollard)))
	req.Accessibility.CycleBarrier = AccessPref(PickInt(p.PermitCycleBarrier, n, int(req.Accessibility.CycleBarrier)))
	req.Accessibility.Turnstile = AccessPref(PickInt(p.PermitTurnstile, n, int(req.Accessibility.Turnstile)))
	req.Accessibility.TrafficLightSound = AccessPref(PickInt(p.PermitTrafficLightSound, n, int(req.Accessibility.TrafficLightSound)))
	req.Accessibility.TrafficLightVibration = AccessPref(PickInt(p.PermitTrafficLightVibration, n, int(req.Accessibility.TrafficLightVibration)))
	req.Accessibility.TrafficLightVibrationFloor = AccessPref(PickInt(p.PermitTrafficLightVibrationFloor, n, int(req.Accessibility.TrafficLightVibrationFloor)))

	if routes := Pick(p.PreferredRoutes, n, ""); routes != "" {
		req.PreferredRoutes = strings.Split(routes, ",")
	}
	if routes := Pick(p.BannedRoutes, n, ""); routes != "" {
		req.BannedRoutes = strings.Split(routes, ",")
	}
	if agencies := Pick(p.PreferredAgencies, n, ""); agencies != "" {
		req.PreferredAgencies = strings.Split(agencies, ",")
	}
	if agencies := Pick(p.BannedAgencies, n, ""); agencies != "" {
		req.BannedAgencies = strings.Split(agencies, ",")
	}

	if banned := ParseBannedTrips(Pick(p.BannedTrips, n, "")); banned != nil {
		req.BannedTrips = banned
	}

	req.Locale = ResolveLocale(Pick(p.Locale, n, req.Locale))

	if err := assembleTriangle(req, p, n); err != nil {
		return nil, err
	}

	req.Slack.Board = PickInt(p.BoardSlack, n, req.Slack.Board)
	req.Slack.Alight = PickInt(p.AlightSlack, n, req.Slack.Alight)
	req.Slack.Transfer = PickInt(p.TransferSlack, n, req.Slack.Transfer)
	if req.Slack.Board+req.Slack.Alight > req.Slack.Transfer {
		return nil, newParameterError(SlackInvariantViolated, "boardSlack + alightSlack must not exceed transferSlack")
	}

	if req.Qualifiers.BikeRental && Pick(p.BikeSpeed, n, floatSentinel) == floatSentinel {
		req.BikeSpeed = 4.3
	}

	req.DepartureTime = resolveDateTime(Pick(p.Date, n, ""), Pick(p.Time, n, ""), Pick(p.Timezone, n, ""), now, homeZone)

	req.UseBikeRentalAvailabilityInformation = math.Abs(now.Sub(req.DepartureTime).Hours()) < 15

	return req, nil
}

// assembleTriangle implements the bike-triangle validation of spec.md
// §4.5/§8 invariant 5: either all three factors are unset, or all
// three are set, the optimize type is TRIANGLE (or defaults to it),
// and the three sum to 1 within 3*ulp(1).
func assembleTriangle(req *RoutingRequest, p *Params, n int) error {
	safety := Pick(p.TriangleSafetyFactor, n, floatSentinel)
	slope := Pick(p.TriangleSlopeFactor, n, floatSentinel)
	tfactor := Pick(p.TriangleTimeFactor, n, floatSentinel)

	anySet := safety != floatSentinel || slope != floatSentinel || tfactor != floatSentinel
	allSet := safety != floatSentinel && slope != floatSentinel && tfactor != floatSentinel

	optimizeSpec := Pick(p.Optimize, n, "")
	if optimizeSpec != "" {
		typ, err := OptimizeTypeFromString(optimizeSpec)
		if err != nil {
			return errors.Wrap(err, "assembling optimize parameter")
		}
		req.Optimize = typ
	}

	if !anySet {
		if req.Optimize == TRIANGLE {
			return newParameterError(TriangleValuesNotSet, "optimize=TRIANGLE requires triangleSafetyFactor/triangleSlopeFactor/triangleTimeFactor")
		}
		if req.Optimize == TRANSFERS {
			req.Optimize = QUICK
			req.TransferPenalty += 1800
		}
		return nil
	}
	if !allSet {
		return newParameterError(UnderspecifiedTriangle, "all three triangle factors must be supplied together")
	}
	if optimizeSpec == "" {
		req.Optimize = TRIANGLE
	} else if req.Optimize != TRIANGLE {
		return newParameterError(TriangleOptimizeTypeNotSet, "triangle factors supplied but optimize is not TRIANGLE")
	}

	sum := safety + slope + tfactor
	ulp := math.Nextafter(1.0, 2.0) - 1.0
	if math.Abs(sum-1.0) > 3*ulp {
		return newParameterError(TriangleNotAffine, "triangle factors must sum to 1")
	}
	req.BikeTriangle = BikeTriangle{Safety: safety, Slope: slope, Time: tfactor}
	return nil
}

// resolveDateTime implements spec.md §4.5's lenient date/time/timezone
// resolution: an explicit-offset time string wins outright; a bare ISO
// time is anchored to homeZone; anything else falls back to now.
func resolveDateTime(date, clock, tz string, now time.Time, homeZone *time.Location) time.Time {
	if clock != "" {
		if t, err := time.Parse(time.RFC3339, clock); err == nil {
			return t
		}
		loc := homeZone
		if tz != "" {
			if l, err := time.LoadLocation(tz); err == nil {
				loc = l
			}
		}
		layout := "2006-01-02T15:04:05"
		spec := clock
		if date != "" {
			spec = date + "T" + clock
		} else {
			spec = now.Format("2006-01-02") + "T" + clock
		}
		if t, err := time.ParseInLocation(layout, spec, loc); err == nil {
			return t
		}
	}
	return now
}
