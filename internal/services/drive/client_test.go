package drive_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"setlister/internal/services/drive"
)

func newTestClient(t *testing.T, handler http.Handler) *drive.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := drive.NewClient(context.Background(), nil,
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestExportHTMLDownloadsDocument(t *testing.T) {
	const body = "<html><body><a href=\"x\">link</a></body></html>"

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files/doc-1/export") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("mimeType"); got != "text/html" {
			t.Fatalf("unexpected mimeType: %q", got)
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))

	data, err := client.ExportHTML(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("ExportHTML returned error: %v", err)
	}
	if string(data) != body {
		t.Fatalf("unexpected export body: %q", data)
	}
}

func TestListFolderPaginatesAndPreservesOrder(t *testing.T) {
	pages := []map[string]any{
		{
			"files": []map[string]string{
				{"id": "f1", "name": "first.mp3", "mimeType": "audio/mpeg"},
				{"id": "f2", "name": "second.mp3", "mimeType": "audio/mpeg"},
			},
			"nextPageToken": "page-2",
		},
		{
			"files": []map[string]string{
				{"id": "f3", "name": "third.mp3", "mimeType": "audio/mpeg"},
			},
		},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if !strings.Contains(query, "'folder-1' in parents") {
			t.Fatalf("unexpected query: %q", query)
		}
		if !strings.Contains(query, "trashed = false") {
			t.Fatalf("query does not exclude trashed files: %q", query)
		}
		page := pages[0]
		if r.URL.Query().Get("pageToken") == "page-2" {
			page = pages[1]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))

	files, err := client.ListFolder(context.Background(), "folder-1")
	if err != nil {
		t.Fatalf("ListFolder returned error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	for i, want := range []string{"first.mp3", "second.mp3", "third.mp3"} {
		if files[i].Name != want {
			t.Fatalf("file %d: got %q want %q", i, files[i].Name, want)
		}
	}
}

func TestCreateFolderSendsFolderMimeType(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		var body struct {
			Name     string   `json:"name"`
			MimeType string   `json:"mimeType"`
			Parents  []string `json:"parents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Name != "setlist" {
			t.Fatalf("unexpected name: %q", body.Name)
		}
		if body.MimeType != drive.FolderMimeType {
			t.Fatalf("unexpected mime type: %q", body.MimeType)
		}
		if len(body.Parents) != 1 || body.Parents[0] != "parent-1" {
			t.Fatalf("unexpected parents: %v", body.Parents)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "created-1"}`))
	}))

	id, err := client.CreateFolder(context.Background(), "parent-1", "setlist")
	if err != nil {
		t.Fatalf("CreateFolder returned error: %v", err)
	}
	if id != "created-1" {
		t.Fatalf("unexpected folder id: %q", id)
	}
}

func TestCopyFileRenamesIntoParent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files/src-1/copy") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var body struct {
			Name    string   `json:"name"`
			Parents []string `json:"parents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Name != "a.song.mp3" {
			t.Fatalf("unexpected copy name: %q", body.Name)
		}
		if len(body.Parents) != 1 || body.Parents[0] != "dest-1" {
			t.Fatalf("unexpected parents: %v", body.Parents)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "copy-1"}`))
	}))

	id, err := client.CopyFile(context.Background(), "src-1", "dest-1", "a.song.mp3")
	if err != nil {
		t.Fatalf("CopyFile returned error: %v", err)
	}
	if id != "copy-1" {
		t.Fatalf("unexpected copy id: %q", id)
	}
}

func TestFindFoldersEscapesName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if !strings.Contains(query, `name = 'rock \'n roll'`) {
			t.Fatalf("name not escaped in query: %q", query)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files": [{"id": "old-1", "name": "rock 'n roll", "mimeType": "application/vnd.google-apps.folder"}]}`))
	}))

	folders, err := client.FindFolders(context.Background(), "parent-1", "rock 'n roll")
	if err != nil {
		t.Fatalf("FindFolders returned error: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != "old-1" {
		t.Fatalf("unexpected folders: %+v", folders)
	}
	if !folders[0].IsFolder() {
		t.Fatal("expected folder mime type")
	}
}
