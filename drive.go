// Package main (drive.go) :
// Thin wrapper around the Drive v3 API exposing only the calls the
// resolver and exporter need.
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	drive "google.golang.org/api/drive/v3"
)

// Google Workspace MIME types.
const (
	mimeTypeDocument     = "application/vnd.google-apps.document"
	mimeTypeSpreadsheet  = "application/vnd.google-apps.spreadsheet"
	mimeTypePresentation = "application/vnd.google-apps.presentation"
	mimeTypeFolder       = "application/vnd.google-apps.folder"
	mimeTypeShortcut     = "application/vnd.google-apps.shortcut"
)

const (
	driveFileFields  = "id,name,mimeType,shortcutDetails"
	driveFilesFields = "nextPageToken,files(id,name,mimeType,shortcutDetails)"
)

// driveItem : The subset of Drive file metadata used here.
type driveItem struct {
	ID             string
	Name           string
	MimeType       string
	ShortcutTarget string
}

// driveService : The Drive API calls used by the resolver and exporter.
// Implemented by driveClient; faked in tests.
type driveService interface {
	// ListChildren returns the non-trashed children of parentID whose
	// name equals name and whose MIME type equals mimeType. Passing the
	// folder MIME type also matches shortcut items, whose target may be
	// a folder.
	ListChildren(ctx context.Context, parentID, name, mimeType string) ([]driveItem, error)
	// GetFile returns the metadata of a single file.
	GetFile(ctx context.Context, fileID string) (driveItem, error)
	// Export requests the file content converted to mimeType. The caller
	// must close the returned reader.
	Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error)
}

type driveClient struct {
	service *drive.Service
}

var _ driveService = (*driveClient)(nil)

func newDriveClient(service *drive.Service) *driveClient {
	return &driveClient{service: service}
}

func (c *driveClient) ListChildren(ctx context.Context, parentID, name, mimeType string) ([]driveItem, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), parentID)
	if mimeType == mimeTypeFolder {
		q += fmt.Sprintf(" and (mimeType = '%s' or mimeType = '%s')", mimeTypeFolder, mimeTypeShortcut)
	} else if mimeType != "" {
		q += fmt.Sprintf(" and mimeType = '%s'", mimeType)
	}
	var items []driveItem
	err := c.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(q).
		Fields(driveFilesFields).
		Pages(ctx, func(list *drive.FileList) error {
			for _, f := range list.Files {
				items = append(items, newDriveItem(f))
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list children of '%s': %w", parentID, err)
	}
	return items, nil
}

func (c *driveClient) GetFile(ctx context.Context, fileID string) (driveItem, error) {
	f, err := c.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		return driveItem{}, fmt.Errorf("failed to get file '%s': %w", fileID, err)
	}
	return newDriveItem(f), nil
}

func (c *driveClient) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	res, err := c.service.Files.Export(fileID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file '%s': %w", fileID, err)
	}
	return res.Body, nil
}

func newDriveItem(f *drive.File) driveItem {
	item := driveItem{ID: f.Id, Name: f.Name, MimeType: f.MimeType}
	if f.ShortcutDetails != nil {
		item.ShortcutTarget = f.ShortcutDetails.TargetId
	}
	return item
}

// escapeQuery : Escape a string literal for a Drive query expression.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
