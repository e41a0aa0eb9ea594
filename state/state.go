package state

import (
	"github.com/ttpr0/go-accessroute/model"
)

// State is a node in the search: the traversal core never expands a
// frontier itself (that's the external search engine's job, spec.md
// §1), it only produces States for the engine to enqueue (spec.md §3).
//
// Next chains an alternate successor onto a primary result so the
// kiss-and-ride mode-switch fork (spec.md §4.4) can hand back two
// states from one traversal without an exception or a side channel.
type State struct {
	Vertex int32

	TimeSeconds    int
	Weight         float64
	WalkDistance   float64
	PreTransitTime float64

	CarParked   bool
	EverBoarded bool

	BackEdge        *model.StreetEdge
	BackMode        model.Mode
	BackWalkingBike bool

	StartTime int

	Next *State
}

// NewInitialState is the search root: zero time/weight/walk distance,
// no back-edge, starting at startTime (spec.md §3, "State: ... startTime").
func NewInitialState(vertex int32, startTime int, carParked, everBoarded bool) *State {
	return &State{
		Vertex:      vertex,
		TimeSeconds: startTime,
		StartTime:   startTime,
		CarParked:   carParked,
		EverBoarded: everBoarded,
	}
}

// Chain appends alt as this state's alternate successor, returning self;
// ApplyKissAndRide uses it to build the two-state kiss-and-ride result
// (spec.md §4.4).
func (self *State) Chain(alt *State) *State {
	self.Next = alt
	return self
}

// Editor is the mutation scratch-space derived from a State (spec.md
// §3, "StateEditor"). It accumulates field writes during one Traverse
// call and either commits them into a new State (MakeState) or the
// caller discards the Editor and the traversal yields no successor.
type Editor struct {
	base *State

	vertex int32

	timeSeconds    int
	weight         float64
	walkDistance   float64
	preTransitTime float64

	carParked   bool
	everBoarded bool

	backEdge        *model.StreetEdge
	backMode        model.Mode
	backWalkingBike bool
}

// NewEditor seeds the editor from base; every field starts equal to
// base's so a Traverse implementation only has to touch what it
// changes.
func NewEditor(base *State) *Editor {
	return &Editor{
		base:            base,
		vertex:          base.Vertex,
		timeSeconds:     base.TimeSeconds,
		weight:          base.Weight,
		walkDistance:    base.WalkDistance,
		preTransitTime:  base.PreTransitTime,
		carParked:       base.CarParked,
		everBoarded:     base.EverBoarded,
		backEdge:        base.BackEdge,
		backMode:        base.BackMode,
		backWalkingBike: base.BackWalkingBike,
	}
}

func (self *Editor) SetVertex(v int32)            { self.vertex = v }
func (self *Editor) IncrTime(seconds int)         { self.timeSeconds += seconds }
func (self *Editor) IncrWeight(w float64)         { self.weight += w }
func (self *Editor) MultWeight(factor float64)    { self.weight *= factor }
func (self *Editor) IncrWalkDistance(d float64)   { self.walkDistance += d }
func (self *Editor) IncrPreTransitTime(t float64) { self.preTransitTime += t }
func (self *Editor) SetCarParked(v bool)          { self.carParked = v }
func (self *Editor) SetEverBoarded(v bool)        { self.everBoarded = v }
func (self *Editor) SetBackEdge(e *model.StreetEdge) { self.backEdge = e }
func (self *Editor) SetBackMode(m model.Mode)        { self.backMode = m }
func (self *Editor) SetBackWalkingBike(v bool)       { self.backWalkingBike = v }

func (self *Editor) Weight() float64       { return self.weight }
func (self *Editor) WalkDistance() float64 { return self.walkDistance }
func (self *Editor) TimeSeconds() int      { return self.timeSeconds }
func (self *Editor) PreTransitTime() float64 { return self.preTransitTime }
func (self *Editor) CarParked() bool       { return self.carParked }
func (self *Editor) EverBoarded() bool     { return self.everBoarded }

// MakeState commits the editor's accumulated writes into a new State,
// or reports false if the monotonicity invariant would be violated
// (spec.md §3, "A State's weight is monotonically non-decreasing along
// its back-chain") — the only invariant MakeState itself enforces;
// walk-limit and pre-transit overage are rejected earlier, by the cost
// kernel returning no Editor at all.
func (self *Editor) MakeState() (*State, bool) {
	if self.weight < self.base.Weight {
		return nil, false
	}
	return &State{
		Vertex:          self.vertex,
		TimeSeconds:     self.timeSeconds,
		Weight:          self.weight,
		WalkDistance:    self.walkDistance,
		PreTransitTime:  self.preTransitTime,
		CarParked:       self.carParked,
		EverBoarded:     self.everBoarded,
		BackEdge:        self.backEdge,
		BackMode:        self.backMode,
		BackWalkingBike: self.backWalkingBike,
		StartTime:       self.base.StartTime,
	}, true
}
