package testsupport

import (
	"path/filepath"
	"testing"

	"setlister/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with test identifiers and per-test temp
// paths for the auth files. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Agenda.ID = "agenda-doc"
	cfg.Keywords.Keywords = []string{"rehearsal", "setlist"}
	cfg.Output.ParentID = "output-parent"
	cfg.Output.FolderName = "setlist"
	cfg.Auth.CredentialsFile = filepath.Join(base, "credentials.json")
	cfg.Auth.TokenFile = filepath.Join(base, "token.json")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithKeywords overrides the keyword list on the test config.
func WithKeywords(keywords ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Keywords.Keywords = keywords
	}
}

// WithTableNumber selects table-scan extraction on the test config.
func WithTableNumber(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Agenda.TableNumber = n
	}
}

// WithMimeType restricts candidate files to a MIME type on the test config.
func WithMimeType(mimeType string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Filter.MimeType = mimeType
	}
}
