/*
Package main (doc.go) :
This is a CLI tool to download Google Docs, Sheets, and Slides from Google Drive and save them as the equivalent Microsoft Office files (docx, xlsx, pptx).

Google Drive for desktop represents cloud documents as small placeholder files (.gdoc, .gsheet, .gslides). Double-clicking one opens the browser. This tool takes such a placeholder, a share URL, or a path under the Drive mount, finds the document on Drive, and exports it locally in the matching Office format. This tool has the following features.

- Reads the document ID embedded in a placeholder file.

- Extracts the document ID from a share URL.

- Resolves a local path under the Drive mount by walking the Drive folder tree, including filesystem-level shortcut segments.

- Registers a Windows Explorer right-click action for the three placeholder extensions by generating .reg files ('setup' command).

---------------------------------------------------------------

# How to Install

$ go install github.com/ecochran76/google-doc-backup@latest

Put the OAuth client secret JSON at ~/.google-doc-backup/client_secret.json. The first run opens the browser for consent and saves the token to ~/.google-doc-backup/credentials.json.

# Usage

$ google-doc-backup "C:\path\to\Report.gdoc"

$ google-doc-backup -u "https://docs.google.com/document/d/###/edit"

$ google-doc-backup -p -r "H:\My Drive" "H:\My Drive\Reports\Q1.gsheet"

$ google-doc-backup setup

---------------------------------------------------------------
*/
package main
