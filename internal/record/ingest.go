package record

import (
	"sort"

	"github.com/danmuck/monctl/internal/protocol/naming"
	"github.com/danmuck/monctl/internal/protocol/quality"
	"github.com/rs/zerolog"
)

// RawItem is one item as delivered by the transport. Quality is
// quality.Raw when no status word came with the item.
type RawItem struct {
	Name    string
	Format  string
	Quality int32
}

// Skipped is an item dropped from a batch.
type Skipped struct {
	Item RawItem
	Err  error
}

// Batch is the result of Ingest.
type Batch struct {
	Records []Record
	Skipped []Skipped
}

// Ingest builds records from items. Items that fail to parse are logged
// and skipped; the rest are returned ordered by Record.Key.
func Ingest(logger zerolog.Logger, mode naming.Mode, items []RawItem, opts ...naming.ParseOption) Batch {
	var b Batch
	for _, item := range items {
		r, err := New(item.Name, item.Format, mode, opts...)
		if err != nil {
			logger.Warn().Err(err).Str("mode", mode.String()).Str("name", item.Name).Msg("skip item")
			b.Skipped = append(b.Skipped, Skipped{Item: item, Err: err})
			continue
		}
		if item.Quality != quality.Raw {
			r = r.ApplyQuality(item.Quality)
		}
		logger.Debug().Str("key", r.Key()).Str("kind", r.Kind.String()).Msg("ingest item")
		b.Records = append(b.Records, r)
	}
	sort.SliceStable(b.Records, func(i, j int) bool {
		return naming.Compare(b.Records[i].Name, b.Records[j].Name, mode) < 0
	})
	return b
}
