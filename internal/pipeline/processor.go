package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/associate"
	"github.com/joseph-ayodele/heritage-figures/internal/captions"
	"github.com/joseph-ayodele/heritage-figures/internal/common"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
	"github.com/joseph-ayodele/heritage-figures/internal/selection"
	"github.com/joseph-ayodele/heritage-figures/internal/survey"
	"github.com/joseph-ayodele/heritage-figures/internal/tools"
)

// Tools is the external extraction surface the processor depends on.
type Tools interface {
	PageTexts(ctx context.Context, path string) ([]string, error)
	ImageInventory(ctx context.Context, path string) (tools.Inventory, error)
	MaterializeImages(ctx context.Context, path, prefix string) error
}

// Processor turns one document into output images.
type Processor struct {
	logger       *slog.Logger
	tools        Tools
	resolver     survey.Resolver
	window       survey.Window
	captions     *captions.Extractor
	selector     *selection.Selector
	materializer *associate.Materializer
	workDir      string
}

func NewProcessor(
	logger *slog.Logger,
	t Tools,
	resolver survey.Resolver,
	window survey.Window,
	capx *captions.Extractor,
	selector *selection.Selector,
	materializer *associate.Materializer,
	workDir string,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:       logger,
		tools:        t,
		resolver:     resolver,
		window:       window,
		captions:     capx,
		selector:     selector,
		materializer: materializer,
		workDir:      workDir,
	}
}

// ProcessDocument runs every stage for the document at path and appends its images
// to state. Tool and filesystem failures are returned; skipped rows are not errors.
func (p *Processor) ProcessDocument(ctx context.Context, path string, state *RunState) error {
	doc := entity.NewDocument(path)
	log := common.LoggerFromContext(ctx, p.logger).With("document", doc.Name)
	ctx = common.WithDocument(ctx, doc.Name)
	state.Stats.Documents++

	// 1) page text → anchors
	pages, err := p.tools.PageTexts(ctx, path)
	if err != nil {
		log.Error("processor.text.failed", "error", err)
		return err
	}
	doc.Pages = pages

	anchors := survey.LocateAnchors(doc.Pages)
	if len(anchors) == 0 {
		log.Info("processor.skip.no_anchors", "pages", len(doc.Pages))
		state.Stats.SkippedDocuments++
		return nil
	}
	state.Stats.Anchors += len(anchors)
	log.Debug("processor.anchors", "pages", len(doc.Pages), "anchors", len(anchors))

	// 2) raster inventory and raw files
	inv, err := p.tools.ImageInventory(ctx, path)
	if err != nil {
		log.Error("processor.inventory.failed", "error", err)
		return err
	}
	state.Stats.InventoryRows += len(inv.Rows)
	state.drop(constants.DropMalformed, inv.Malformed)

	extractDir := filepath.Join(p.workDir, state.extractDirName(doc.Base))
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return common.IOError("mkdir", extractDir, err)
	}
	if err := p.tools.MaterializeImages(ctx, path, filepath.Join(extractDir, doc.Base)); err != nil {
		log.Error("processor.materialize.failed", "error", err)
		return err
	}

	// 3) captions for pages inside the window
	state.Pairing.AddDocument(doc.Name, p.captions.ForDocument(doc, anchors, p.resolver, p.window))

	// 4) selection
	sel := p.selector.Select(inv.Rows, anchors)
	for _, d := range sel.Dropped {
		state.drop(d.Reason, 1)
	}

	// 5) association and copy
	probe := associate.PaddingProbe{Dir: extractDir, Prefix: doc.Base}
	plan, err := associate.Associate(doc.Name, sel.Selected, state.Pairing, probe, state.Sequencer)
	if err != nil {
		return common.NewAppError(common.CodeOutput, "associate "+doc.Name, err)
	}
	state.drop(constants.DropNoRawFile, len(plan.Missing))
	for _, m := range plan.Missing {
		log.Debug("image row dropped", "page", m.Row.Page, "index", m.Row.Index, "reason", constants.DropNoRawFile)
	}

	if err := p.materializer.Write(ctx, plan.Images); err != nil {
		log.Error("processor.copy.failed", "error", err)
		return err
	}
	state.Images = append(state.Images, plan.Images...)
	state.Stats.ImagesWritten += len(plan.Images)

	log.Info("processor.document.ok",
		"pages", len(doc.Pages),
		"anchors", len(anchors),
		"inventory_rows", len(inv.Rows),
		"selected", len(sel.Selected),
		"written", len(plan.Images),
	)
	return nil
}
