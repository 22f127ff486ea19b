package associate

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// Plan is the association result for one document.
type Plan struct {
	Images  []entity.OutputImage
	Missing []entity.SelectedImage // no raw file could be located
}

// Associate pairs each selected image of doc with its caption and raw file and assigns
// it the next sequence number of its record. Images without a raw file are reported
// in Missing and do not consume a sequence number. Nothing is written to disk.
func Associate(doc string, selected []entity.SelectedImage, pairing *Pairing, raw RawFileResolver, seq *Sequencer) (Plan, error) {
	var plan Plan
	for _, sel := range selected {
		src, ok, err := raw.Resolve(sel.Row.Index)
		if err != nil {
			return plan, fmt.Errorf("resolve raw file for image %d: %w", sel.Row.Index, err)
		}
		if !ok {
			plan.Missing = append(plan.Missing, sel)
			continue
		}
		n := seq.Next(sel.Code)
		plan.Images = append(plan.Images, entity.OutputImage{
			Code:       sel.Code,
			Seq:        n,
			Document:   doc,
			SourcePath: src,
			DestPath:   OutputName(sel.Code, n, src),
			Page:       sel.Row.Page,
			Index:      sel.Row.Index,
			Width:      sel.Row.Width,
			Height:     sel.Row.Height,
			Caption:    pairing.CaptionFor(doc, sel.Row.Page, sel.Rank).String(),
		})
	}
	return plan, nil
}

// OutputName returns <code>/<code>_<seq:03d><ext>, slash separated. The extension is
// the lowercased source extension, or constants.DefaultRasterExt when there is none.
func OutputName(code string, seq int, src string) string {
	ext := strings.ToLower(filepath.Ext(src))
	if ext == "" || ext == "." {
		ext = constants.DefaultRasterExt
	}
	return path.Join(code, fmt.Sprintf("%s_%03d%s", code, seq, ext))
}
