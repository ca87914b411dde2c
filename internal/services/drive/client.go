package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// FolderMimeType identifies Drive folders in listings and queries.
const FolderMimeType = "application/vnd.google-apps.folder"

// Scope is the OAuth scope the pipeline requests. Delete the cached token
// file after changing it.
const Scope = drivev3.DriveScope

// File is the subset of Drive file metadata the pipeline works with.
type File struct {
	ID       string
	Name     string
	MimeType string
}

// IsFolder reports whether the file is a Drive folder.
func (f File) IsFolder() bool {
	return f.MimeType == FolderMimeType
}

// API captures the Drive operations the pipeline needs. The production
// implementation is Client; tests substitute fakes.
type API interface {
	// ExportHTML downloads a Drive document rendered as HTML.
	ExportHTML(ctx context.Context, fileID string) ([]byte, error)
	// ListFolder returns the direct children of a folder in listing order,
	// excluding trashed files.
	ListFolder(ctx context.Context, folderID string) ([]File, error)
	// FindFolders returns non-trashed folders under parentID with the given name.
	FindFolders(ctx context.Context, parentID, name string) ([]File, error)
	// CreateFolder creates a folder under parentID and returns its id.
	CreateFolder(ctx context.Context, parentID, name string) (string, error)
	// CopyFile copies fileID into parentID under a new name and returns the copy's id.
	CopyFile(ctx context.Context, fileID, parentID, name string) (string, error)
	// Delete removes a file or folder.
	Delete(ctx context.Context, fileID string) error
}

// Client wraps the Drive v3 service.
type Client struct {
	svc *drivev3.Service
}

// NewClient builds a Drive client authenticated by the supplied token source.
// Extra options are appended after the token source so tests can redirect the
// endpoint.
func NewClient(ctx context.Context, source oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	if source == nil && len(opts) == 0 {
		return nil, errors.New("token source is nil")
	}
	clientOpts := make([]option.ClientOption, 0, len(opts)+1)
	if source != nil {
		clientOpts = append(clientOpts, option.WithTokenSource(source))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := drivev3.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("build drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

func (c *Client) ExportHTML(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Export(fileID, "text/html").Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("export document %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exported document %s: %w", fileID, err)
	}
	return data, nil
}

func (c *Client) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", escapeQueryValue(folderID))

	var files []File
	pageToken := ""
	for {
		call := c.svc.Files.List().
			Q(query).
			Fields(googleapi.Field("nextPageToken, files(id, name, mimeType)")).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list folder %s: %w", folderID, err)
		}
		for _, f := range list.Files {
			files = append(files, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
		}
		if list.NextPageToken == "" {
			return files, nil
		}
		pageToken = list.NextPageToken
	}
}

func (c *Client) FindFolders(ctx context.Context, parentID, name string) ([]File, error) {
	query := fmt.Sprintf(
		"'%s' in parents and name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryValue(parentID), escapeQueryValue(name), FolderMimeType,
	)

	list, err := c.svc.Files.List().
		Q(query).
		Fields(googleapi.Field("files(id, name, mimeType)")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("find folders named %q under %s: %w", name, parentID, err)
	}

	folders := make([]File, 0, len(list.Files))
	for _, f := range list.Files {
		folders = append(folders, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, parentID, name string) (string, error) {
	created, err := c.svc.Files.Create(&drivev3.File{
		Name:     name,
		Parents:  []string{parentID},
		MimeType: FolderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create folder %q under %s: %w", name, parentID, err)
	}
	return created.Id, nil
}

func (c *Client) CopyFile(ctx context.Context, fileID, parentID, name string) (string, error) {
	copied, err := c.svc.Files.Copy(fileID, &drivev3.File{
		Name:    name,
		Parents: []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("copy file %s: %w", fileID, err)
	}
	return copied.Id, nil
}

func (c *Client) Delete(ctx context.Context, fileID string) error {
	if err := c.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete file %s: %w", fileID, err)
	}
	return nil
}

// escapeQueryValue escapes a value for interpolation into a Drive search query.
func escapeQueryValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}
