// Package main (extract.go) :
// These methods turn the three supported inputs (placeholder file,
// share URL, shortcut path under the Drive mount) into a Drive file ID.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"
)

// extMimeTypes : Placeholder extension to Workspace MIME type.
var extMimeTypes = map[string]string{
	".gdoc":    mimeTypeDocument,
	".gsheet":  mimeTypeSpreadsheet,
	".gslides": mimeTypePresentation,
}

// urlFileID : Matches the ID segment of a share URL, e.g.
// https://docs.google.com/document/d/<id>/edit
var urlFileID = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// placeholder : The JSON body of a .gdoc/.gsheet/.gslides file written
// by Google Drive for desktop.
type placeholder struct {
	URL   string `json:"url"`
	DocID string `json:"doc_id"`
}

// extractIDFromPlaceholder : Read the embedded document ID from a local
// placeholder file.
func extractIDFromPlaceholder(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("'%s': %w", filePath, ErrInputNotFound)
		}
		return "", err
	}
	var p placeholder
	if err := json.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("'%s': %v: %w", filePath, err, ErrMalformedPlaceholder)
	}
	if p.DocID == "" {
		return "", fmt.Errorf("'%s' has no doc_id field: %w", filePath, ErrMalformedPlaceholder)
	}
	return p.DocID, nil
}

// extractIDFromURL : Pull the file ID out of a share URL.
func extractIDFromURL(rawURL string) (string, error) {
	m := urlFileID.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("'%s': %w", rawURL, ErrUnrecognizedURL)
	}
	return m[1], nil
}

// splitShortcutPath : Split a local path under the Drive mount root
// into folder segments, the leaf name without extension, and the
// Workspace MIME type the extension implies. Both slash styles are
// accepted and the root prefix is matched case-insensitively.
func splitShortcutPath(filePath, mountRoot string) (segments []string, leafName, mimeType string, err error) {
	norm := strings.ReplaceAll(filePath, `\`, "/")
	root := strings.TrimRight(strings.ReplaceAll(mountRoot, `\`, "/"), "/")
	ext := strings.ToLower(path.Ext(norm))
	mimeType, ok := extMimeTypes[ext]
	if !ok {
		return nil, "", "", fmt.Errorf("'%s': %w", ext, ErrUnsupportedExtension)
	}
	// The root must end exactly at a separator: "H:/My DriveX" is a
	// sibling of "H:/My Drive", not inside it.
	if root == "" || len(norm) <= len(root) ||
		!strings.EqualFold(norm[:len(root)], root) || norm[len(root)] != '/' {
		return nil, "", "", fmt.Errorf("'%s' is not under the Drive mount root '%s': %w", filePath, mountRoot, ErrInputNotFound)
	}
	rel := strings.Trim(norm[len(root):], "/")
	parts := []string{}
	for _, p := range strings.Split(rel, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, "", "", fmt.Errorf("'%s' has no filename: %w", filePath, ErrInputNotFound)
	}
	leaf := parts[len(parts)-1]
	leafName = leaf[:len(leaf)-len(ext)]
	return parts[:len(parts)-1], leafName, mimeType, nil
}
