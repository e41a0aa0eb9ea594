package request

// AccessPref is the tri-valued (quad-valued, counting forbid)
// preference a rider expresses for one accessibility feature
// (spec.md §3, "Accessibility Preference Vector").
type AccessPref int8

const (
	Forbid  AccessPref = -1
	Dislike AccessPref = 0
	Neutral AccessPref = 1
	Prefer  AccessPref = 2
)

func (self AccessPref) String() string {
	switch self {
	case Forbid:
		return "forbid"
	case Dislike:
		return "dislike"
	case Neutral:
		return "neutral"
	case Prefer:
		return "prefer"
	default:
		return "neutral"
	}
}

// Multiplier returns the weight multiplier for this preference,
// {0: 2.0, 1: 1.0, 2: 0.5, default: 1.0}. Forbid has no multiplier —
// it is handled as an admissibility rejection, never reached here.
func (self AccessPref) Multiplier() float64 {
	switch self {
	case Dislike:
		return 2.0
	case Neutral:
		return 1.0
	case Prefer:
		return 0.5
	default:
		return 1.0
	}
}

// AccessibilityPrefs is the seven-field preference vector of spec.md
// §3. Each field composes multiplicatively with the others when an
// edge bears more than one applicable feature (spec.md §4.2 Step 6).
type AccessibilityPrefs struct {
	Crossing                  AccessPref
	Bollard                   AccessPref
	CycleBarrier              AccessPref
	Turnstile                 AccessPref
	TrafficLightSound         AccessPref
	TrafficLightVibration     AccessPref
	TrafficLightVibrationFloor AccessPref
}

// DefaultAccessibilityPrefs returns the all-neutral vector, the
// prototype request's starting point.
func DefaultAccessibilityPrefs() AccessibilityPrefs {
	return AccessibilityPrefs{
		Crossing:                   Neutral,
		Bollard:                    Neutral,
		CycleBarrier:               Neutral,
		Turnstile:                  Neutral,
		TrafficLightSound:          Neutral,
		TrafficLightVibration:      Neutral,
		TrafficLightVibrationFloor: Neutral,
	}
}
