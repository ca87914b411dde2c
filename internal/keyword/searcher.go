package keyword

import (
	"context"
	"log/slog"

	"setlister/internal/logging"
	"setlister/internal/services"
	"setlister/internal/services/drive"
)

// Searcher lists linked folders and retains the files matching the keyword
// set, preserving within-folder listing order.
type Searcher struct {
	api      drive.API
	matcher  *Matcher
	logger   *slog.Logger
	mimeType string
}

// NewSearcher builds a Searcher. mimeType optionally restricts candidates to
// a single Drive MIME type; empty considers every file.
func NewSearcher(api drive.API, matcher *Matcher, logger *slog.Logger, mimeType string) *Searcher {
	return &Searcher{
		api:      api,
		matcher:  matcher,
		logger:   logging.NewComponentLogger(logger, "search"),
		mimeType: mimeType,
	}
}

// MatchingFiles returns the folder's matching files in listing order. When a
// folder holds no candidate files but does hold subfolders, the search
// descends into the alphabetically-last subfolder, treating subfolder names
// as version names.
func (s *Searcher) MatchingFiles(ctx context.Context, folderID string) ([]drive.File, error) {
	files, err := s.api.ListFolder(ctx, folderID)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "filter-files", "list folder", folderID, err)
	}

	candidates := make([]drive.File, 0, len(files))
	var subfolders []drive.File
	for _, file := range files {
		switch {
		case file.IsFolder():
			subfolders = append(subfolders, file)
		case s.mimeType == "" || file.MimeType == s.mimeType:
			candidates = append(candidates, file)
		}
	}

	if len(candidates) == 0 && len(subfolders) > 0 {
		latest := latestByName(subfolders)
		logging.WithContext(ctx, s.logger).Debug("no direct files, descending into latest subfolder",
			logging.String("folder_id", folderID),
			logging.String("subfolder", latest.Name))
		return s.MatchingFiles(ctx, latest.ID)
	}

	matched := make([]drive.File, 0, len(candidates))
	for _, file := range candidates {
		if s.matcher.Matches(file.Name) {
			matched = append(matched, file)
		}
	}
	return matched, nil
}

// latestByName picks the alphabetically-last folder, assuming folder names
// are version names.
func latestByName(folders []drive.File) drive.File {
	latest := folders[0]
	for _, folder := range folders[1:] {
		if folder.Name > latest.Name {
			latest = folder
		}
	}
	return latest
}
