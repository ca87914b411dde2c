package organizer

import (
	"context"
	"log/slog"
	"sort"

	"setlister/internal/config"
	"setlister/internal/logging"
	"setlister/internal/services"
	"setlister/internal/services/drive"
)

// Entry pairs a matched file with the order index of the agenda link it came
// from. Entries from the same link keep their within-folder listing order.
type Entry struct {
	LinkOrder int
	File      drive.File
}

// Copy describes one completed copy operation.
type Copy struct {
	SourceID   string
	SourceName string
	CopiedID   string
	CopiedName string
	LinkOrder  int
}

// Organizer materializes the output folder: it creates the destination once
// and copies every entry into it under a sequential letter-prefix name.
type Organizer struct {
	api    drive.API
	cfg    *config.Config
	logger *slog.Logger
}

// NewOrganizer constructs the materialization stage handler.
func NewOrganizer(cfg *config.Config, api drive.API, logger *slog.Logger) *Organizer {
	return &Organizer{
		api:    api,
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
}

// Materialize creates the output folder under the configured parent and
// copies the entries into it in combined (link order, listing order). When
// replace is set, existing non-trashed folders with the output name are
// deleted first; by default prior output folders are left alone and a second
// run simply produces a second folder.
func (o *Organizer) Materialize(ctx context.Context, entries []Entry, replace bool) (string, []Copy, error) {
	logger := logging.WithContext(ctx, o.logger)

	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LinkOrder < ordered[j].LinkOrder
	})

	if replace {
		if err := o.removeExisting(ctx, logger); err != nil {
			return "", nil, err
		}
	}

	folderID, err := o.api.CreateFolder(ctx, o.cfg.Output.ParentID, o.cfg.Output.FolderName)
	if err != nil {
		return "", nil, services.Wrap(services.ErrExternal, "materialize", "create output folder", o.cfg.Output.FolderName, err)
	}
	logger.Info("created output folder",
		logging.String("folder_id", folderID),
		logging.String("name", o.cfg.Output.FolderName))

	copies := make([]Copy, 0, len(ordered))
	for i, entry := range ordered {
		name := letterPrefix(i) + "." + entry.File.Name
		copiedID, err := o.api.CopyFile(ctx, entry.File.ID, folderID, name)
		if err != nil {
			return folderID, copies, services.Wrap(services.ErrExternal, "materialize", "copy file", entry.File.Name, err)
		}
		logger.Debug("copied file into output folder",
			logging.String("source", entry.File.Name),
			logging.String("copied", name))
		copies = append(copies, Copy{
			SourceID:   entry.File.ID,
			SourceName: entry.File.Name,
			CopiedID:   copiedID,
			CopiedName: name,
			LinkOrder:  entry.LinkOrder,
		})
	}

	logger.Info("copied files into output folder",
		logging.Int("count", len(copies)),
		logging.String("folder_id", folderID))
	return folderID, copies, nil
}

func (o *Organizer) removeExisting(ctx context.Context, logger *slog.Logger) error {
	existing, err := o.api.FindFolders(ctx, o.cfg.Output.ParentID, o.cfg.Output.FolderName)
	if err != nil {
		return services.Wrap(services.ErrExternal, "materialize", "find existing output folders", o.cfg.Output.FolderName, err)
	}
	for _, folder := range existing {
		logger.Info("deleting existing output folder",
			logging.String("folder_id", folder.ID),
			logging.String("name", folder.Name))
		if err := o.api.Delete(ctx, folder.ID); err != nil {
			return services.Wrap(services.ErrExternal, "materialize", "delete existing output folder", folder.ID, err)
		}
	}
	return nil
}
