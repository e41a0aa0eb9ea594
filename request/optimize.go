package request

import (
	"encoding/json"
	"errors"
)

// OptimizeType selects which bicycle cost branch the cost kernel takes
// (spec.md §3, §4.2 Step 6). It follows the teacher's enum idiom
// (attr.RoadType / config.ProfileType): String/FromString plus
// JSON (de)serialization.
type OptimizeType byte

const (
	QUICK OptimizeType = iota
	SAFE
	GREENWAYS
	FLAT
	TRIANGLE
	TRANSFERS
)

func (self OptimizeType) String() string {
	switch self {
	case QUICK:
		return "QUICK"
	case SAFE:
		return "SAFE"
	case GREENWAYS:
		return "GREENWAYS"
	case FLAT:
		return "FLAT"
	case TRIANGLE:
		return "TRIANGLE"
	case TRANSFERS:
		return "TRANSFERS"
	default:
		panic("unknown optimize type")
	}
}

// OptimizeTypeFromString parses the case-sensitive query-param alphabet
// of spec.md §6.
func OptimizeTypeFromString(s string) (OptimizeType, error) {
	switch s {
	case "QUICK":
		return QUICK, nil
	case "SAFE":
		return SAFE, nil
	case "GREENWAYS":
		return GREENWAYS, nil
	case "FLAT":
		return FLAT, nil
	case "TRIANGLE":
		return TRIANGLE, nil
	case "TRANSFERS":
		return TRANSFERS, nil
	default:
		return QUICK, errors.New("unknown optimize type: " + s)
	}
}

func (self OptimizeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *OptimizeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	typ, err := OptimizeTypeFromString(s)
	*self = typ
	return err
}

// BikeTriangle is the convex combination over (safety, slope, time)
// that TRIANGLE optimization uses as a linear cost (spec.md glossary).
type BikeTriangle struct {
	Safety float64
	Slope  float64
	Time   float64
}
