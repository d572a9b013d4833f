// Package main (auth.go) :
// OAuth credential lifecycle: load the saved token, refresh it when
// expired, or run the interactive consent flow, then save it back.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// newDriveService : Build an authenticated Drive service. The token is
// persisted at credPath across runs; refreshed tokens are written back.
func newDriveService(ctx context.Context, secretPath, credPath string) (*drive.Service, error) {
	b, err := os.ReadFile(secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret '%s': %w", secretPath, err)
	}
	conf, err := google.ConfigFromJSON(b, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret '%s': %w", secretPath, err)
	}
	tok, err := tokenFromFile(credPath)
	if err != nil {
		tok, err = tokenFromWeb(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := saveToken(credPath, tok); err != nil {
			return nil, err
		}
	}
	ts := conf.TokenSource(ctx, tok)
	fresh, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if fresh.AccessToken != tok.AccessToken {
		if err := saveToken(credPath, fresh); err != nil {
			return nil, err
		}
	}
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return svc, nil
}

// tokenFromWeb : Interactive consent flow. Opens the consent URL in the
// browser and reads the pasted authorization code.
func tokenFromWeb(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no saved credentials and no terminal for the authorization flow")
	}
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	if err := browser.OpenURL(authURL); err != nil {
		fmt.Printf("Go to the following link in your browser:\n%v\n", authURL)
	}
	fmt.Print("Type the authorization code: ")
	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}
	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to save credentials '%s': %w", path, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to save credentials '%s': %w", path, err)
	}
	return nil
}
