package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/request"
	. "github.com/ttpr0/go-accessroute/util"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("reading config file", "path", file)
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Source        SourceOptions                 `yaml:"source"`
	HomeZone      string                        `yaml:"home-zone"`
	Profiles      Dict[string, *ProfileOptions] `yaml:"profiles"`
	Accessibility AccessibilityOptions          `yaml:"accessibility"`
}

type SourceOptions struct {
	OSM string `yaml:"osm"`
}

//**********************************************************
// profile options
//**********************************************************

// ProfileOptions discriminates on a "type:" field the way the
// teacher's ProfileOptions discriminates driving/walking/transit, here
// over the three traversal modes the core actually supports.
type ProfileOptions struct {
	Value IProfileOptions
}

func (self *ProfileOptions) UnmarshalYAML(value *yaml.Node) error {
	m := map[string]interface{}{}
	if err := value.Decode(&m); err != nil {
		return err
	}
	typ, err := model.ModeFromString(m["type"].(string))
	if err != nil {
		return err
	}
	switch typ {
	case model.CAR:
		val := DrivingOptions{}
		if err := value.Decode(&val); err != nil {
			return err
		}
		self.Value = val
	case model.WALK:
		val := WalkingOptions{}
		if err := value.Decode(&val); err != nil {
			return err
		}
		self.Value = val
	case model.BICYCLE:
		val := CyclingOptions{}
		if err := value.Decode(&val); err != nil {
			return err
		}
		self.Value = val
	default:
		self.Value = nil
	}
	return nil
}

type IProfileOptions interface {
	Mode() model.Mode
}

type DrivingOptions struct {
	Speed float64 `yaml:"speed"`
}

func (self DrivingOptions) Mode() model.Mode { return model.CAR }

type WalkingOptions struct {
	Speed            float64 `yaml:"speed"`
	StairsReluctance float64 `yaml:"stairs-reluctance"`
}

func (self WalkingOptions) Mode() model.Mode { return model.WALK }

type CyclingOptions struct {
	Speed        float64 `yaml:"speed"`
	SafetyFactor float64 `yaml:"safety-factor"`
}

func (self CyclingOptions) Mode() model.Mode { return model.BICYCLE }

//**********************************************************
// accessibility options
//**********************************************************

// AccessibilityOptions carries the process-wide default accessibility
// preference vector (spec.md §3) read from config rather than per-
// request parameters, so a deployment can set a site-wide default
// (e.g. a senior-care facility defaulting every preference to "prefer").
type AccessibilityOptions struct {
	Crossing                   AccessPrefOption `yaml:"crossing"`
	Bollard                    AccessPrefOption `yaml:"bollard"`
	CycleBarrier               AccessPrefOption `yaml:"cycle-barrier"`
	Turnstile                  AccessPrefOption `yaml:"turnstile"`
	TrafficLightSound          AccessPrefOption `yaml:"traffic-light-sound"`
	TrafficLightVibration      AccessPrefOption `yaml:"traffic-light-vibration"`
	TrafficLightVibrationFloor AccessPrefOption `yaml:"traffic-light-vibration-floor"`
}

func (self AccessibilityOptions) ToPrefs() request.AccessibilityPrefs {
	return request.AccessibilityPrefs{
		Crossing:                   self.Crossing.Value,
		Bollard:                    self.Bollard.Value,
		CycleBarrier:               self.CycleBarrier.Value,
		Turnstile:                  self.Turnstile.Value,
		TrafficLightSound:          self.TrafficLightSound.Value,
		TrafficLightVibration:      self.TrafficLightVibration.Value,
		TrafficLightVibrationFloor: self.TrafficLightVibrationFloor.Value,
	}
}

// AccessPrefOption decodes the YAML alphabet {forbid, dislike, neutral,
// prefer} into a request.AccessPref, following the teacher's
// MetricType/VehicleType UnmarshalYAML pattern (string-keyed enum, not
// a discriminated union).
type AccessPrefOption struct {
	Value request.AccessPref
}

func (self AccessPrefOption) MarshalYAML() (any, error) {
	return self.Value.String(), nil
}
func (self *AccessPrefOption) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		self.Value = request.Neutral
		return nil
	}
	pref, err := accessPrefFromString(value.Value)
	if err != nil {
		return err
	}
	self.Value = pref
	return nil
}

func accessPrefFromString(s string) (request.AccessPref, error) {
	switch s {
	case "forbid":
		return request.Forbid, nil
	case "dislike":
		return request.Dislike, nil
	case "neutral":
		return request.Neutral, nil
	case "prefer":
		return request.Prefer, nil
	default:
		return request.Neutral, errUnknownAccessPref(s)
	}
}

type errUnknownAccessPref string

func (self errUnknownAccessPref) Error() string {
	return "unknown accessibility preference: " + string(self)
}
