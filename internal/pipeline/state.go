package pipeline

import (
	"fmt"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/associate"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// Stats counts what happened during a run. They are logged, never written to the manifest.
type Stats struct {
	Documents        int
	SkippedDocuments int // no survey marker found
	Anchors          int
	InventoryRows    int
	Dropped          map[constants.DropReason]int
	ImagesWritten    int
}

// LogAttrs flattens the stats for slog.
func (s Stats) LogAttrs() []any {
	attrs := []any{
		"documents", s.Documents,
		"skipped_documents", s.SkippedDocuments,
		"anchors", s.Anchors,
		"inventory_rows", s.InventoryRows,
		"images_written", s.ImagesWritten,
	}
	for _, r := range constants.AllDropReasons {
		attrs = append(attrs, "dropped_"+string(r), s.Dropped[r])
	}
	return attrs
}

// RunState is the run-scoped accumulator threaded through every document. It owns
// the per-record sequence counter, the caption pairing and the images produced so far.
type RunState struct {
	Sequencer *associate.Sequencer
	Pairing   *associate.Pairing
	Images    []entity.OutputImage
	Stats     Stats

	extractDirs map[string]struct{}
}

func NewRunState() *RunState {
	return &RunState{
		Sequencer: associate.NewSequencer(),
		Pairing:   associate.NewPairing(),
		Stats:     Stats{Dropped: make(map[constants.DropReason]int)},

		extractDirs: make(map[string]struct{}),
	}
}

func (s *RunState) drop(reason constants.DropReason, n int) {
	if n > 0 {
		s.Stats.Dropped[reason] += n
	}
}

// extractDirName returns imgs_<base> for the first document with that base name and
// imgs_<base>_<n> for later ones, so documents such as a.pdf and a.PDF never read
// each other's rasters.
func (s *RunState) extractDirName(base string) string {
	name := "imgs_" + base
	for n := 2; ; n++ {
		if _, taken := s.extractDirs[name]; !taken {
			break
		}
		name = fmt.Sprintf("imgs_%s_%d", base, n)
	}
	s.extractDirs[name] = struct{}{}
	return name
}
