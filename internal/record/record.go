// Package record joins a parsed name, its format descriptor and its
// quality into the row shape shown by monitor panels.
package record

import (
	"fmt"

	"github.com/danmuck/monctl/internal/protocol/format"
	"github.com/danmuck/monctl/internal/protocol/naming"
	"github.com/danmuck/monctl/internal/protocol/quality"
)

// Kind tags the record variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindMeter
	KindState
	KindInfo
	KindHistogram
)

func (k Kind) String() string {
	switch k {
	case KindMeter:
		return "meter"
	case KindState:
		return "state"
	case KindInfo:
		return "info"
	case KindHistogram:
		return "histogram"
	default:
		return "unknown"
	}
}

// KindFromQuality derives the variant from the structure type lane.
func KindFromQuality(q quality.Quality) Kind {
	switch {
	case q.IsMeter():
		return KindMeter
	case q.IsState():
		return KindState
	case q.IsInfo():
		return KindInfo
	case q.IsHistogram():
		return KindHistogram
	default:
		return KindUnknown
	}
}

// Record is the common shape of every row kind.
type Record struct {
	Kind    Kind
	Mode    naming.Mode
	Name    naming.Name
	Format  format.Descriptor
	Quality quality.Quality
}

// New parses rawName in mode and, when non-empty, rawFormat.
func New(rawName, rawFormat string, mode naming.Mode, opts ...naming.ParseOption) (Record, error) {
	name, err := naming.Parse(rawName, mode, opts...)
	if err != nil {
		return Record{}, fmt.Errorf("record %q: %w", rawName, err)
	}
	r := Record{Mode: mode, Name: name}
	if rawFormat != "" {
		desc, err := format.Parse(rawFormat)
		if err != nil {
			return Record{}, fmt.Errorf("record %q: %w", rawName, err)
		}
		r.Format = desc
	}
	return r, nil
}

// ApplyQuality decodes raw and returns a copy with the merged quality.
// The sentinel word leaves every lane and the kind unchanged.
func (r Record) ApplyQuality(raw int32) Record {
	r.Quality = r.Quality.Merge(quality.Decode(raw))
	r.Kind = KindFromQuality(r.Quality)
	return r
}

// Row returns the text shown for r at a tree depth.
func (r Record) Row(level int) (string, bool) {
	return r.Name.Field(level, r.Mode)
}

// Key returns the serialization used to address or sort r.
func (r Record) Key() string {
	if r.Mode == naming.ModeCommand {
		return r.Name.CommandForm()
	}
	return r.Name.StandardForm()
}
