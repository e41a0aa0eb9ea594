package model

// Flags packs per-edge booleans into a single word, the way the teacher
// packs edge references and shortcut payloads into fixed-width scalars
// (graph/structs.go's EdgeRef/_Type). 15 bit positions are in use; a
// uint16 leaves room to grow without widening the StreetEdge struct.
type Flags uint16

const (
	FlagBack Flags = 1 << iota
	FlagRoundabout
	FlagBogusName
	FlagNoThru
	FlagStairs
	FlagSlopeOverride
	FlagWheelchairAccessible
	FlagFootway
	FlagCrossing
	FlagBollard
	FlagTurnstile
	FlagCycleBarrier
	FlagTLSound
	FlagTLVibration
	FlagTLFloorVibration
)

func (self Flags) Has(bit Flags) bool {
	return self&bit != 0
}

func (self *Flags) Set(bit Flags) {
	*self |= bit
}

func (self *Flags) Clear(bit Flags) {
	*self &^= bit
}
