package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"setlister/internal/agenda"
	"setlister/internal/config"
	"setlister/internal/keyword"
	"setlister/internal/logging"
	"setlister/internal/organizer"
	"setlister/internal/services"
	"setlister/internal/services/drive"
)

// Options adjusts a single pipeline run.
type Options struct {
	// TableNumber overrides agenda.table_number when non-nil. Zero means
	// whole-document extraction.
	TableNumber *int
	// Replace deletes existing same-named output folders before creating
	// the new one.
	Replace bool
}

// Summary reports what a run did.
type Summary struct {
	RunID              string
	LinkCount          int
	FoldersWithMatches int
	OutputFolderID     string
	Copies             []organizer.Copy
	Duration           time.Duration
}

// Runner executes the agenda pipeline once: extract links, filter files,
// materialize the output folder. Stages run sequentially with no feedback
// loops; any stage error aborts the run.
type Runner struct {
	cfg    *config.Config
	api    drive.API
	logger *slog.Logger
}

// NewRunner constructs a Runner over the given Drive API.
func NewRunner(cfg *config.Config, api drive.API, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		api:    api,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// Run executes the pipeline and returns a summary of the copies made. An
// agenda without qualifying links completes successfully without touching
// the output parent.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)

	tableNumber := r.cfg.Agenda.TableNumber
	if opts.TableNumber != nil {
		tableNumber = *opts.TableNumber
	}

	matcher := keyword.NewMatcher(r.cfg.Keywords.Keywords)

	logger := logging.WithContext(ctx, r.logger)
	logger.Info("starting run",
		logging.String("agenda_id", r.cfg.Agenda.ID),
		logging.Any("keywords", matcher.Keywords()),
		logging.Int("table_number", tableNumber),
		logging.Bool("replace", opts.Replace))

	summary := &Summary{RunID: runID}

	extractCtx := services.WithStage(ctx, "extract-links")
	extractor := agenda.NewExtractor(r.api, r.logger, r.cfg.Agenda.ID, tableNumber)
	links, err := extractor.LinkedFolders(extractCtx)
	if err != nil {
		return nil, err
	}
	summary.LinkCount = len(links)
	if len(links) == 0 {
		logger.Info("agenda contains no folder links, nothing to do")
		summary.Duration = time.Since(started)
		return summary, nil
	}

	filterCtx := services.WithStage(ctx, "filter-files")
	searcher := keyword.NewSearcher(r.api, matcher, r.logger, r.cfg.Filter.MimeType)
	var entries []organizer.Entry
	for _, link := range links {
		files, err := searcher.MatchingFiles(filterCtx, link.FolderID)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logging.WithContext(filterCtx, r.logger).Warn("no matching files found in folder",
				logging.String("folder_id", link.FolderID),
				logging.String("folder_title", link.Title))
			continue
		}
		summary.FoldersWithMatches++
		for _, file := range files {
			entries = append(entries, organizer.Entry{LinkOrder: link.Order, File: file})
		}
	}

	materializeCtx := services.WithStage(ctx, "materialize")
	org := organizer.NewOrganizer(r.cfg, r.api, r.logger)
	folderID, copies, err := org.Materialize(materializeCtx, entries, opts.Replace)
	if err != nil {
		return nil, err
	}
	summary.OutputFolderID = folderID
	summary.Copies = copies
	summary.Duration = time.Since(started)

	logger.Info("run complete",
		logging.Int("links", summary.LinkCount),
		logging.Int("copies", len(summary.Copies)),
		logging.String("output_folder_id", folderID),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}
