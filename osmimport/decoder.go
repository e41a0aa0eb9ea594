package osmimport

import (
	"strconv"

	"github.com/ttpr0/go-accessroute/model"
)

// drivingHighways mirrors the teacher's parser.driving_types allow-list
// (parser/driving_decoder.go). footway/crossing, the two road types new
// to this domain (spec.md §3, model.FOOTWAY/model.CROSSING), are listed
// in walkableHighways instead.
var drivingHighways = map[string]bool{
	"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true,
	"service": true, "track": true, "unclassified": true, "road": true,
}
var walkableHighways = map[string]bool{
	"footway": true, "path": true, "pedestrian": true, "steps": true,
	"crossing": true, "living_street": true, "residential": true, "track": true,
}

// IsValidHighway reports whether a way is worth decoding at all — the
// union of drivable and walkable highway=* values (parser/driving_decoder.go's
// IsValidHighway, generalized from car-only to car+foot+bike).
func IsValidHighway(tags map[string]string) bool {
	highway, ok := tags["highway"]
	if !ok {
		return false
	}
	return drivingHighways[highway] || walkableHighways[highway]
}

func roadType(tags map[string]string) model.RoadType {
	if tags["highway"] == "crossing" {
		return model.CROSSING
	}
	if rt := model.RoadTypeFromString(tags["highway"]); rt != 0 {
		return rt
	}
	switch tags["highway"] {
	case "footway", "path", "pedestrian", "steps":
		return model.FOOTWAY
	default:
		return model.UNCLASSIFIED
	}
}

// isOneway mirrors parser/util.go's _IsOneway: motorway/trunk classes
// are implicitly oneway; otherwise only an explicit oneway=yes counts.
func isOneway(tags map[string]string, rt model.RoadType) bool {
	if rt == model.MOTORWAY || rt == model.TRUNK || rt == model.MOTORWAY_LINK || rt == model.TRUNK_LINK {
		return true
	}
	return tags["oneway"] == "yes"
}

// permission derives the TraversalPermission set for a way from its
// access tags, grounded on fbenz-osmrouting's AccessType/AccessTable
// hierarchy (other_examples/fbenz-osmrouting__access.go): an explicit
// access=no/private on a mode-specific tag revokes that mode, while the
// highway class's default table grants the usual set.
func permission(tags map[string]string, rt model.RoadType) model.Permission {
	perm := model.PermitNone
	if rt != model.MOTORWAY && rt != model.MOTORWAY_LINK {
		perm = perm.With(model.WALK)
	}
	if walkableHighways[tags["highway"]] && !drivingHighways[tags["highway"]] {
		// footway/path/pedestrian/steps/crossing: walk-only by default
	} else {
		if rt != model.MOTORWAY && rt != model.MOTORWAY_LINK {
			perm = perm.With(model.BICYCLE)
		}
		if drivingHighways[tags["highway"]] {
			perm = perm.With(model.CAR)
		}
	}
	if tags["foot"] == "no" {
		perm = perm.Without(model.WALK)
	}
	if tags["bicycle"] == "no" {
		perm = perm.Without(model.BICYCLE)
	}
	if tags["motor_vehicle"] == "no" || tags["access"] == "no" || tags["access"] == "private" {
		perm = perm.Without(model.CAR)
	}
	if tags["wheelchair"] == "no" {
		// leaves Permission untouched; wheelchair accessibility is a
		// flag, not a mode-permission bit (spec.md §3, FlagWheelchairAccessible).
	}
	return perm
}

// carSpeedKMH mirrors parser/util.go's _GetORSTravelSpeed, trimmed to
// the fields this domain needs (surface and tracktype still apply;
// GTFS-era "ORS" naming is dropped since transit is out of scope).
func carSpeedKMH(rt model.RoadType, maxspeed, tracktype, surface string) float64 {
	var speed float64
	if maxspeed != "" {
		switch maxspeed {
		case "walk":
			speed = 10
		case "none":
			speed = 110
		default:
			if v, err := strconv.Atoi(maxspeed); err == nil {
				speed = float64(v)
			} else {
				speed = 20
			}
		}
		speed *= 0.9
	} else {
		switch rt {
		case model.MOTORWAY:
			speed = 100
		case model.TRUNK:
			speed = 85
		case model.MOTORWAY_LINK, model.TRUNK_LINK:
			speed = 60
		case model.PRIMARY:
			speed = 65
		case model.SECONDARY:
			speed = 60
		case model.TERTIARY:
			speed = 50
		case model.PRIMARY_LINK, model.SECONDARY_LINK:
			speed = 50
		case model.TERTIARY_LINK:
			speed = 40
		case model.UNCLASSIFIED:
			speed = 30
		case model.RESIDENTIAL:
			speed = 30
		case model.LIVING_STREET:
			speed = 10
		case model.ROAD:
			speed = 20
		case model.TRACK:
			switch tracktype {
			case "grade1":
				speed = 40
			case "grade2":
				speed = 30
			case "grade3":
				speed = 20
			case "grade4", "grade5":
				speed = 15
			default:
				speed = 15
			}
		default:
			speed = 20
		}
	}
	switch surface {
	case "cement", "compacted":
		speed = minf(speed, 80)
	case "fine_gravel":
		speed = minf(speed, 60)
	case "paving_stones", "metal", "bricks":
		speed = minf(speed, 40)
	case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone", "tartan":
		speed = minf(speed, 30)
	case "cobblestone", "clay":
		speed = minf(speed, 20)
	case "earth", "stone", "rocky", "sand":
		speed = minf(speed, 15)
	case "mud":
		speed = minf(speed, 10)
	}
	if speed == 0 {
		speed = 10
	}
	return speed
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// bicycleSafetyFactor gives LTS-flavored ways (lanes, dedicated
// cycleways, traffic-calmed residential) a lower (safer) factor; the
// teacher has no equivalent, this is grounded on spec.md glossary's
// "Greenway" threshold (model.GreenwaySafetyFactor).
func bicycleSafetyFactor(tags map[string]string, rt model.RoadType) float32 {
	switch {
	case tags["highway"] == "cycleway":
		return 0.05
	case tags["cycleway"] != "" && tags["cycleway"] != "no":
		return 0.6
	case rt == model.RESIDENTIAL || rt == model.LIVING_STREET:
		return 0.8
	case rt == model.MOTORWAY || rt == model.TRUNK || rt == model.PRIMARY:
		return 3.0
	default:
		return 1.5
	}
}

// tagAccessibility sets the per-edge accessibility flags straight from
// OSM tags (SPEC_FULL.md §3, osmimport): barrier=bollard/turnstile/
// cycle_barrier, highway=crossing, traffic_signals:sound/vibration,
// tactile_paving, wheelchair, and a stairs/incline check for the
// footway-specific flags.
func tagAccessibility(edge *model.StreetEdge, tags map[string]string) {
	switch tags["barrier"] {
	case "bollard":
		edge.SetContainsBollard(true)
	case "turnstile", "gate":
		edge.SetContainsTurnstile(true)
	case "cycle_barrier":
		edge.SetContainsCycleBarrier(true)
	}
	if tags["highway"] == "crossing" || tags["footway"] == "crossing" {
		edge.SetCrossing(true)
	}
	if tags["traffic_signals:sound"] == "yes" {
		edge.SetContainsTrafficLightSound(true)
	}
	if tags["traffic_signals:vibration"] == "yes" {
		edge.SetContainsTrafficLightVibration(true)
	}
	if tags["tactile_paving"] == "yes" {
		edge.SetContainsTrafficLightVibrationFloor(true)
	}
	if tags["highway"] == "steps" {
		edge.SetStairs(true)
	}
	if tags["wheelchair"] == "yes" {
		edge.SetWheelchairAccessible(true)
	}
	if tags["highway"] == "footway" || tags["highway"] == "path" || tags["highway"] == "pedestrian" {
		edge.SetFootway(true)
	}
	if incline, ok := tags["incline"]; ok {
		if slope := parseIncline(incline); slope != 0 {
			edge.SetMaxSlope(slope)
		}
	}
}

func parseIncline(incline string) float32 {
	switch incline {
	case "up", "yes":
		return 0.05
	case "down":
		return -0.05
	}
	n := len(incline)
	if n > 1 && incline[n-1] == '%' {
		if v, err := strconv.ParseFloat(incline[:n-1], 32); err == nil {
			return float32(v / 100.0)
		}
	}
	return 0
}
