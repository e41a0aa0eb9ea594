package turn

import (
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-accessroute/model"
)

// RestrictionType distinguishes a mandatory turn from a forbidden one
// (spec.md §4.3). ONLY_TURN means the listed outgoing edge is the only
// legal continuation; the default (no-turn) type means that edge is
// specifically forbidden.
type RestrictionType byte

const (
	NoTurn   RestrictionType = 0
	OnlyTurn RestrictionType = 1
)

// TimeWindow is the optional time-of-day range a Restriction is active
// during, in seconds since local midnight. A zero-value window (From
// == To == 0) is treated as always-active.
type TimeWindow struct {
	From int
	To   int
}

func (self TimeWindow) active(timeSeconds int) bool {
	if self.From == 0 && self.To == 0 {
		return true
	}
	daySeconds := timeSeconds % (24 * 3600)
	if self.From <= self.To {
		return daySeconds >= self.From && daySeconds < self.To
	}
	return daySeconds >= self.From || daySeconds < self.To
}

// Restriction attaches to the incoming edge of a turn and forbids or
// mandates continuing onto a specific outgoing edge, for a given mode
// set and time window (spec.md §4.3).
type Restriction struct {
	From   *model.StreetEdge
	To     *model.StreetEdge
	Type   RestrictionType
	Modes  model.ModeSet
	Active TimeWindow
}

// Evaluator holds every restriction keyed by the incoming edge it
// attaches to. It is read-only after the graph loader populates it
// (spec.md §5, "Shared resources").
type Evaluator struct {
	byFromEdge map[int32][]Restriction
}

func NewEvaluator() *Evaluator {
	return &Evaluator{byFromEdge: make(map[int32][]Restriction)}
}

func (self *Evaluator) Add(r Restriction) {
	self.byFromEdge[r.From.ID] = append(self.byFromEdge[r.From.ID], r)
}

// CanTurn decides whether traversing from incoming into outgoing is
// permitted for mode at timeSeconds (spec.md §4.3). Equivalence to the
// restriction's `to` edge is delegated to model.StreetEdge.IsEquivalentTo
// since temporary edges may alias graph edges.
func (self *Evaluator) CanTurn(incoming, outgoing *model.StreetEdge, mode model.Mode, timeSeconds int) bool {
	restrictions := self.byFromEdge[incoming.ID]
	for _, r := range restrictions {
		if !r.Modes.Contains(mode) {
			continue
		}
		if !r.Active.active(timeSeconds) {
			continue
		}
		equivalent := outgoing.IsEquivalentTo(r.To)
		if r.Type == OnlyTurn {
			if !equivalent {
				slog.Debug("turn restriction violated", "type", "only_turn", "from", incoming.ID, "to", outgoing.ID)
				return false
			}
		} else {
			if equivalent {
				slog.Debug("turn restriction violated", "type", "no_turn", "from", incoming.ID, "to", outgoing.ID)
				return false
			}
		}
	}
	return true
}
