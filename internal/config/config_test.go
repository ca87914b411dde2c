package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlister/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
[agenda]
id = "agenda-doc-1"

[keywords]
keywords = ["rehearsal", "setlist"]

[output]
parent_id = "parent-1"
folder_name = "gig"
`

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}
	if cfg.Agenda.ID != "agenda-doc-1" {
		t.Fatalf("unexpected agenda id: %q", cfg.Agenda.ID)
	}
	if cfg.Agenda.TableNumber != 0 {
		t.Fatalf("expected whole-document mode by default, got table %d", cfg.Agenda.TableNumber)
	}
	if got := cfg.Keywords.Keywords; len(got) != 2 || got[0] != "rehearsal" || got[1] != "setlist" {
		t.Fatalf("unexpected keywords: %v", got)
	}
	if !filepath.IsAbs(cfg.Auth.TokenFile) {
		t.Fatalf("expected token file expanded to absolute path, got %q", cfg.Auth.TokenFile)
	}
	if filepath.Base(cfg.Auth.CredentialsFile) != "credentials.json" {
		t.Fatalf("unexpected credentials file default: %q", cfg.Auth.CredentialsFile)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level: %q", cfg.Logging.Level)
	}
}

func TestLoadFailsWhenExplicitPathMissing(t *testing.T) {
	t.Setenv(config.AgendaIDEnvVar, "")
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, _, _, err := config.Load(missing)
	if err == nil {
		t.Fatal("expected load to fail for missing explicit path")
	}
	if !strings.Contains(err.Error(), "config file not found at "+missing) {
		t.Fatalf("error %q does not report the missing path", err)
	}
}

func TestLoadFailsWhenRequiredKeysMissing(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name: "missing agenda id",
			contents: `
[keywords]
keywords = ["a"]
[output]
parent_id = "p"
folder_name = "n"
`,
			wantErr: "agenda.id",
		},
		{
			name: "missing keywords",
			contents: `
[agenda]
id = "doc"
[output]
parent_id = "p"
folder_name = "n"
`,
			wantErr: "keywords.keywords",
		},
		{
			name: "blank keywords",
			contents: `
[agenda]
id = "doc"
[keywords]
keywords = ["  ", ""]
[output]
parent_id = "p"
folder_name = "n"
`,
			wantErr: "keywords.keywords",
		},
		{
			name: "missing output parent",
			contents: `
[agenda]
id = "doc"
[keywords]
keywords = ["a"]
[output]
folder_name = "n"
`,
			wantErr: "output.parent_id",
		},
		{
			name: "missing output folder name",
			contents: `
[agenda]
id = "doc"
[keywords]
keywords = ["a"]
[output]
parent_id = "p"
`,
			wantErr: "output.folder_name",
		},
		{
			name: "negative table number",
			contents: `
[agenda]
id = "doc"
table_number = -1
[keywords]
keywords = ["a"]
[output]
parent_id = "p"
folder_name = "n"
`,
			wantErr: "agenda.table_number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected load to fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadAgendaIDEnvFallback(t *testing.T) {
	t.Setenv(config.AgendaIDEnvVar, "env-doc-id")
	path := writeConfig(t, `
[keywords]
keywords = ["a"]

[output]
parent_id = "p"
folder_name = "n"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Agenda.ID != "env-doc-id" {
		t.Fatalf("expected agenda id from env, got %q", cfg.Agenda.ID)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := writeConfig(t, validConfig+`
[logging]
format = "xml"
`)

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[agenda]") {
		t.Fatal("sample config missing [agenda] section")
	}
	if !strings.Contains(string(data), "[keywords]") {
		t.Fatal("sample config missing [keywords] section")
	}
}

func TestExpandPathResolvesTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	expanded, err := config.ExpandPath("~/token.json")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(tempHome, "token.json") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
