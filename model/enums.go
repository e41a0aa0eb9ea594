package model

import (
	"encoding/json"
	"errors"
)

//*******************************************
// traverse mode
//*******************************************

// Mode is a non-transit traversal mode. Transit itself is handled by
// the out-of-scope search engine; the edge-level core only ever
// traverses WALK, BICYCLE or CAR (see spec.md §1).
type Mode byte

const (
	WALK    Mode = 0
	BICYCLE Mode = 1
	CAR     Mode = 2
)

func (self Mode) String() string {
	switch self {
	case WALK:
		return "walk"
	case BICYCLE:
		return "bicycle"
	case CAR:
		return "car"
	default:
		panic("unknown mode")
	}
}
func (self Mode) IsDriving() bool {
	return self == CAR
}
func (self Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	m, err := ModeFromString(s)
	*self = m
	return err
}
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "walk":
		return WALK, nil
	case "bicycle":
		return BICYCLE, nil
	case "car":
		return CAR, nil
	default:
		return WALK, errors.New("unknown mode")
	}
}

// ModeSet is a bitmask over Mode, used by turn restrictions ("applies
// to these modes") and by Permission.
type ModeSet byte

func ModeBit(m Mode) ModeSet {
	return 1 << ModeSet(m)
}
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s |= ModeBit(m)
	}
	return s
}
func (self ModeSet) Contains(m Mode) bool {
	return self&ModeBit(m) != 0
}

//*******************************************
// road type (street class)
//*******************************************

// RoadType mirrors the OSM highway=* classification, kept from the
// teacher's attr.RoadType (attr/enums.go) since StreetEdge.streetClass
// is exactly that enum (spec.md §3).
type RoadType int8

const (
	MOTORWAY       RoadType = 1
	MOTORWAY_LINK  RoadType = 2
	TRUNK          RoadType = 3
	TRUNK_LINK     RoadType = 4
	PRIMARY        RoadType = 5
	PRIMARY_LINK   RoadType = 6
	SECONDARY      RoadType = 7
	SECONDARY_LINK RoadType = 8
	TERTIARY       RoadType = 9
	TERTIARY_LINK  RoadType = 10
	RESIDENTIAL    RoadType = 11
	LIVING_STREET  RoadType = 12
	UNCLASSIFIED   RoadType = 13
	ROAD           RoadType = 14
	TRACK          RoadType = 15
	FOOTWAY        RoadType = 16
	CROSSING       RoadType = 17
)

func (self RoadType) String() string {
	switch self {
	case MOTORWAY:
		return "motorway"
	case MOTORWAY_LINK:
		return "motorway_link"
	case TRUNK:
		return "trunk"
	case TRUNK_LINK:
		return "trunk_link"
	case PRIMARY:
		return "primary"
	case PRIMARY_LINK:
		return "primary_link"
	case SECONDARY:
		return "secondary"
	case SECONDARY_LINK:
		return "secondary_link"
	case TERTIARY:
		return "tertiary"
	case TERTIARY_LINK:
		return "tertiary_link"
	case RESIDENTIAL:
		return "residential"
	case LIVING_STREET:
		return "living_street"
	case UNCLASSIFIED:
		return "unclassified"
	case ROAD:
		return "road"
	case TRACK:
		return "track"
	case FOOTWAY:
		return "footway"
	case CROSSING:
		return "crossing"
	}
	return ""
}

func RoadTypeFromString(typ string) RoadType {
	switch typ {
	case "motorway":
		return MOTORWAY
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk":
		return TRUNK
	case "trunk_link":
		return TRUNK_LINK
	case "primary":
		return PRIMARY
	case "primary_link":
		return PRIMARY_LINK
	case "secondary":
		return SECONDARY
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary":
		return TERTIARY
	case "tertiary_link":
		return TERTIARY_LINK
	case "residential":
		return RESIDENTIAL
	case "living_street":
		return LIVING_STREET
	case "unclassified":
		return UNCLASSIFIED
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "footway":
		return FOOTWAY
	case "crossing":
		return CROSSING
	}
	return 0
}

func (self RoadType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *RoadType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	rt := RoadTypeFromString(typ)
	if rt == 0 {
		return errors.New("invalid road type")
	}
	*self = rt
	return nil
}
