// Package main (export.go) :
// These methods export a Google Workspace document to the equivalent
// Microsoft Office format and save it as a local file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// Office MIME types that Google Workspace documents export to.
const (
	mimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeTypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// exportFormat : Target MIME type and file extension for one Workspace type.
type exportFormat struct {
	MimeType string
	Ext      string
}

// exportFormats : Closed mapping from Workspace MIME type to Office
// format. Types outside this map cannot be exported.
var exportFormats = map[string]exportFormat{
	mimeTypeDocument:     {MimeType: mimeTypeDocx, Ext: "docx"},
	mimeTypeSpreadsheet:  {MimeType: mimeTypeXlsx, Ext: "xlsx"},
	mimeTypePresentation: {MimeType: mimeTypePptx, Ext: "pptx"},
}

var illegalFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// sanitizeFilename : Strip characters that are illegal in Windows filenames.
func sanitizeFilename(name string) string {
	return illegalFilenameChars.ReplaceAllString(name, "")
}

// chunks : For io.Reader. Prints download progress while copying.
type chunks struct {
	io.Reader
	cChunk int64
}

// Read : For io.Reader
func (c *chunks) Read(dat []byte) (int, error) {
	n, err := c.Reader.Read(dat)
	c.cChunk += int64(n)
	if err == nil {
		fmt.Printf("\rDownloading (bytes)... %d", c.cChunk)
	}
	return n, err
}

// exporter : Converts a Drive file ID into a saved Office file.
type exporter struct {
	svc     driveService
	workDir string
	noProg  bool
}

func newExporter(svc driveService, workDir string, noProg bool) *exporter {
	return &exporter{svc: svc, workDir: workDir, noProg: noProg}
}

// export : Fetch metadata, pick the Office format, and stream the
// exported content to "<sanitized title>.<ext>" in the work directory.
// An existing file at that path is overwritten.
func (e *exporter) export(ctx context.Context, fileID string) (string, error) {
	item, err := e.svc.GetFile(ctx, fileID)
	if err != nil {
		return "", err
	}
	format, ok := exportFormats[item.MimeType]
	if !ok {
		return "", fmt.Errorf("file '%s' has type '%s': %w", item.Name, item.MimeType, ErrUnsupportedType)
	}
	filename := sanitizeFilename(item.Name) + "." + format.Ext
	body, err := e.svc.Export(ctx, fileID, format.MimeType)
	if err != nil {
		return "", err
	}
	defer body.Close()
	file, err := os.Create(filepath.Join(e.workDir, filename))
	if err != nil {
		return "", err
	}
	defer file.Close()
	if e.noProg {
		_, err = io.Copy(file, body)
	} else {
		_, err = io.Copy(file, &chunks{Reader: body})
	}
	if err != nil {
		return "", err
	}
	fileInfo, err := file.Stat()
	if err != nil {
		return "", err
	}
	if !e.noProg {
		fmt.Printf("\n")
	}
	fmt.Printf("{\"Filename\": \"%s\", \"MimeType\": \"%s\", \"FileSize\": %d}\n", filename, format.MimeType, fileInfo.Size())
	return filename, nil
}
