// Package quality packs and unpacks the 32-bit quality word.
//
//	bits  0-7   state
//	bits  8-15  structure type
//	bits 16-23  visibility (bitmask)
//	bits 24-31  mode (reserved)
//
// The raw value -1 carries no quality information. The lane tuple
// (0xFF, 0xFF, 0xFF, 0xFF) encodes to the same word and therefore decodes
// as Unspecified.
package quality

import "fmt"

// Raw is the sentinel word for "no quality information".
const Raw int32 = -1

const laneMask = 0xff

// State lane values.
const (
	StateOff     uint8 = 0
	StateOn      uint8 = 1
	StateWarning uint8 = 2
	StateError   uint8 = 3
	StateFatal   uint8 = 4
)

// Structure type lane values.
const (
	StructureUnknown   uint8 = 0
	StructureMeter     uint8 = 1
	StructureState     uint8 = 2
	StructureInfo      uint8 = 3
	StructureHistogram uint8 = 4
)

// Visibility flags. Several may be set at once.
const (
	VisibleMonitorable uint8 = 1 << 0
	VisibleImportant   uint8 = 1 << 1
	VisibleHidden      uint8 = 1 << 2
	VisibleCommandable uint8 = 1 << 3
)

// Quality is a decoded quality word. The zero value is Unspecified.
type Quality struct {
	State         uint8
	StructureType uint8
	Visibility    uint8
	Mode          uint8

	specified bool
}

// Unspecified means no lane should be updated.
var Unspecified = Quality{}

// New returns a specified quality with the given lanes.
func New(state, structureType, visibility, mode uint8) Quality {
	return Quality{
		State:         state,
		StructureType: structureType,
		Visibility:    visibility,
		Mode:          mode,
		specified:     true,
	}
}

// Decode splits raw into its four lanes.
func Decode(raw int32) Quality {
	if raw == Raw {
		return Unspecified
	}
	u := uint32(raw)
	return New(uint8(u), uint8(u>>8), uint8(u>>16), uint8(u>>24))
}

// Encode packs four lanes, each masked to 8 bits.
func Encode(state, structureType, visibility, mode int) int32 {
	u := uint32(state&laneMask) |
		uint32(structureType&laneMask)<<8 |
		uint32(visibility&laneMask)<<16 |
		uint32(mode&laneMask)<<24
	return int32(u)
}

// Encode packs q; Unspecified encodes as Raw.
func (q Quality) Encode() int32 {
	if !q.specified {
		return Raw
	}
	return Encode(int(q.State), int(q.StructureType), int(q.Visibility), int(q.Mode))
}

// Specified reports whether q carries lane values.
func (q Quality) Specified() bool {
	return q.specified
}

// Merge returns next unless it is unspecified, in which case q is kept.
func (q Quality) Merge(next Quality) Quality {
	if !next.specified {
		return q
	}
	return next
}

func (q Quality) String() string {
	if !q.specified {
		return "unspecified"
	}
	return fmt.Sprintf("state=%d type=%d visibility=0x%02x mode=%d", q.State, q.StructureType, q.Visibility, q.Mode)
}

func (q Quality) stateIs(v uint8) bool     { return q.specified && q.State == v }
func (q Quality) structureIs(v uint8) bool { return q.specified && q.StructureType == v }
func (q Quality) visible(flag uint8) bool  { return q.specified && q.Visibility&flag != 0 }

func (q Quality) IsOff() bool     { return q.stateIs(StateOff) }
func (q Quality) IsOn() bool      { return q.stateIs(StateOn) }
func (q Quality) IsWarning() bool { return q.stateIs(StateWarning) }
func (q Quality) IsError() bool   { return q.stateIs(StateError) }
func (q Quality) IsFatal() bool   { return q.stateIs(StateFatal) }

func (q Quality) IsMeter() bool     { return q.structureIs(StructureMeter) }
func (q Quality) IsState() bool     { return q.structureIs(StructureState) }
func (q Quality) IsInfo() bool      { return q.structureIs(StructureInfo) }
func (q Quality) IsHistogram() bool { return q.structureIs(StructureHistogram) }

func (q Quality) IsMonitorable() bool { return q.visible(VisibleMonitorable) }
func (q Quality) IsImportant() bool   { return q.visible(VisibleImportant) }
func (q Quality) IsHidden() bool      { return q.visible(VisibleHidden) }
func (q Quality) IsCommandable() bool { return q.visible(VisibleCommandable) }
