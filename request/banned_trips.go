package request

import (
	"strconv"
	"strings"
)

// BannedStopSet is the set of stop indices banned within one trip, or
// the ALL sentinel meaning the whole trip is banned (spec.md §3, C9).
type BannedStopSet struct {
	all   bool
	stops map[int]struct{}
}

var AllStops = BannedStopSet{all: true}

func (self BannedStopSet) Contains(stopIndex int) bool {
	if self.all {
		return true
	}
	_, ok := self.stops[stopIndex]
	return ok
}

// TripID is the agency-qualified identifier banned-trips are keyed by
// (original_source/RoutingResource.java's AgencyAndId).
type TripID struct {
	Agency string
	ID     string
}

// ParseBannedTrips parses the "agency:trip[:stopIndex...]" comma list of
// spec.md §3 (C9) into a map from trip to its banned-stop set. A trip
// token lacking both an agency and a trip id is silently dropped, as in
// the Java (original_source/RoutingResource.java#makeBannedTripMap —
// "parts.length < 2 -> continue, throw exception?").
func ParseBannedTrips(banned string) map[TripID]BannedStopSet {
	if banned == "" {
		return nil
	}
	result := make(map[TripID]BannedStopSet)
	for _, tripString := range strings.Split(banned, ",") {
		parts := strings.Split(tripString, ":")
		if len(parts) < 2 {
			continue
		}
		id := TripID{Agency: parts[0], ID: parts[1]}
		if len(parts) == 2 {
			result[id] = AllStops
			continue
		}
		stops := make(map[int]struct{}, len(parts)-2)
		for _, s := range parts[2:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			stops[n] = struct{}{}
		}
		result[id] = BannedStopSet{stops: stops}
	}
	return result
}
