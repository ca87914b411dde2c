package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	credentials := filepath.Join(dir, "credentials.json")
	secret := `{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`
	if err := os.WriteFile(credentials, []byte(secret), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	path := filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf(`
[agenda]
id = "agenda-doc"

[keywords]
keywords = ["rehearsal"]

[output]
parent_id = "parent-1"
folder_name = "setlist"

[auth]
credentials_file = %q
token_file = %q
`, credentials, filepath.Join(dir, "token.json"))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	want := map[string]bool{"run": false, "auth": false, "config": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunFailsWhenConfigFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := executeCommand(t, "run", missing)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunFailsBeforeNetworkWhenRequiredKeyMissing(t *testing.T) {
	t.Setenv("SETLISTER_AGENDA_ID", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[keywords]
keywords = ["rehearsal"]

[output]
parent_id = "p"
folder_name = "n"
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := executeCommand(t, "run", path)
	if err == nil || !strings.Contains(err.Error(), "agenda.id") {
		t.Fatalf("expected agenda.id validation error, got %v", err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := executeCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output does not mention target: %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[agenda]") {
		t.Fatal("sample missing [agenda] section")
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	_, err := executeCommand(t, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}

	if _, err := executeCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite should succeed: %v", err)
	}
}

func TestConfigValidateAcceptsValidFile(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "config", "validate", path)
	if err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	if !strings.Contains(out, "Configuration OK") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAuthStatusWithoutToken(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "auth", "status", "--config", path)
	if err != nil {
		t.Fatalf("auth status returned error: %v", err)
	}
	if !strings.Contains(out, "No cached authorization") {
		t.Fatalf("unexpected output: %q", out)
	}
}
