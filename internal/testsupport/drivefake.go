package testsupport

import (
	"context"
	"fmt"

	"setlister/internal/services/drive"
)

// CreatedFolder records a FakeDrive folder creation.
type CreatedFolder struct {
	ID       string
	ParentID string
	Name     string
}

// CopiedFile records a FakeDrive copy operation.
type CopiedFile struct {
	ID       string
	SourceID string
	ParentID string
	Name     string
}

// FakeDrive is an in-memory drive.API for tests. Folder contents preserve
// insertion order, matching the listing-order guarantees stage code relies
// on.
type FakeDrive struct {
	HTMLExports map[string]string
	Folders     map[string][]drive.File

	CreatedFolders []CreatedFolder
	Copies         []CopiedFile
	Deleted        []string

	ExportErr error
	ListErr   error
	FindErr   error
	CreateErr error
	CopyErr   error
	DeleteErr error

	nextID int
}

var _ drive.API = (*FakeDrive)(nil)

// NewFakeDrive returns an empty fake.
func NewFakeDrive() *FakeDrive {
	return &FakeDrive{
		HTMLExports: map[string]string{},
		Folders:     map[string][]drive.File{},
	}
}

// AddFile appends a file to a folder's listing.
func (f *FakeDrive) AddFile(folderID, fileID, name, mimeType string) {
	f.Folders[folderID] = append(f.Folders[folderID], drive.File{ID: fileID, Name: name, MimeType: mimeType})
}

// AddSubfolder appends a subfolder to a folder's listing.
func (f *FakeDrive) AddSubfolder(folderID, subfolderID, name string) {
	f.AddFile(folderID, subfolderID, name, drive.FolderMimeType)
}

func (f *FakeDrive) ExportHTML(ctx context.Context, fileID string) ([]byte, error) {
	if f.ExportErr != nil {
		return nil, f.ExportErr
	}
	html, ok := f.HTMLExports[fileID]
	if !ok {
		return nil, fmt.Errorf("document %s not found", fileID)
	}
	return []byte(html), nil
}

func (f *FakeDrive) ListFolder(ctx context.Context, folderID string) ([]drive.File, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	files := f.Folders[folderID]
	out := make([]drive.File, len(files))
	copy(out, files)
	return out, nil
}

func (f *FakeDrive) FindFolders(ctx context.Context, parentID, name string) ([]drive.File, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	var found []drive.File
	for _, file := range f.Folders[parentID] {
		if file.IsFolder() && file.Name == name {
			found = append(found, file)
		}
	}
	return found, nil
}

func (f *FakeDrive) CreateFolder(ctx context.Context, parentID, name string) (string, error) {
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	f.nextID++
	id := fmt.Sprintf("fake-folder-%d", f.nextID)
	f.AddSubfolder(parentID, id, name)
	f.CreatedFolders = append(f.CreatedFolders, CreatedFolder{ID: id, ParentID: parentID, Name: name})
	return id, nil
}

func (f *FakeDrive) CopyFile(ctx context.Context, fileID, parentID, name string) (string, error) {
	if f.CopyErr != nil {
		return "", f.CopyErr
	}
	f.nextID++
	id := fmt.Sprintf("fake-copy-%d", f.nextID)
	f.AddFile(parentID, id, name, "")
	f.Copies = append(f.Copies, CopiedFile{ID: id, SourceID: fileID, ParentID: parentID, Name: name})
	return id, nil
}

func (f *FakeDrive) Delete(ctx context.Context, fileID string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for parentID, files := range f.Folders {
		kept := files[:0]
		for _, file := range files {
			if file.ID != fileID {
				kept = append(kept, file)
			}
		}
		f.Folders[parentID] = kept
	}
	delete(f.Folders, fileID)
	f.Deleted = append(f.Deleted, fileID)
	return nil
}
