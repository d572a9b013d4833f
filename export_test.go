package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionAndExportTablesCompose(t *testing.T) {
	tests := []struct {
		ext       string
		officeExt string
	}{
		{".gdoc", "docx"},
		{".gsheet", "xlsx"},
		{".gslides", "pptx"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			mime, ok := extMimeTypes[tt.ext]
			require.True(t, ok)
			format, ok := exportFormats[mime]
			require.True(t, ok)
			assert.Equal(t, tt.officeExt, format.Ext)
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no illegal characters", "Quarterly Report", "Quarterly Report"},
		{"all illegal characters", `a\b/c*d?e:f"g<h>i|j`, "abcdefghij"},
		{"colon in title", `Q1: "Draft"`, "Q1 Draft"},
		{"only illegal characters", `\/*?:"<>|`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, sanitizeFilename(got), "sanitize must be idempotent")
		})
	}
}

func TestExportUnsupportedTypeFailsBeforeDownload(t *testing.T) {
	fake := &fakeDrive{
		metas: map[string]driveItem{
			"form-id": {ID: "form-id", Name: "Survey", MimeType: "application/vnd.google-apps.form"},
		},
	}
	e := newExporter(fake, t.TempDir(), true)

	_, err := e.export(context.Background(), "form-id")
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Zero(t, fake.exportCalls, "no export call may happen for an unsupported type")
}

func TestExportWritesOfficeFile(t *testing.T) {
	fake := &fakeDrive{
		metas: map[string]driveItem{
			"q1": {ID: "q1", Name: "Q1", MimeType: mimeTypeSpreadsheet},
		},
		exports: map[string]string{"q1": "spreadsheet bytes"},
	}
	dir := t.TempDir()
	e := newExporter(fake, dir, true)

	filename, err := e.export(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, "Q1.xlsx", filename)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "spreadsheet bytes", string(data))
}

func TestExportSanitizesTitle(t *testing.T) {
	fake := &fakeDrive{
		metas: map[string]driveItem{
			"doc": {ID: "doc", Name: `Plan: "Final"?`, MimeType: mimeTypeDocument},
		},
		exports: map[string]string{"doc": "doc bytes"},
	}
	dir := t.TempDir()
	e := newExporter(fake, dir, true)

	filename, err := e.export(context.Background(), "doc")
	require.NoError(t, err)
	assert.Equal(t, "Plan Final.docx", filename)
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestExportOverwritesExistingFile(t *testing.T) {
	fake := &fakeDrive{
		metas: map[string]driveItem{
			"q1": {ID: "q1", Name: "Q1", MimeType: mimeTypeSpreadsheet},
		},
		exports: map[string]string{"q1": "new"},
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Q1.xlsx"), []byte("old"), 0644))
	e := newExporter(fake, dir, true)

	filename, err := e.export(context.Background(), "q1")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
