// Package main (config.go) :
// TOML configuration. Flags override file values; a missing file just
// means defaults.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configDirName = ".google-doc-backup"

// config : Settings read from config.toml.
type config struct {
	// MountRoot is the local path where Google Drive is mounted,
	// e.g. `H:\My Drive`. Required for --by-path resolution.
	MountRoot string `toml:"mount_root"`
	// RootFolderID is the Drive folder the mount root corresponds to.
	// Defaults to the special alias "root".
	RootFolderID string `toml:"root_folder_id"`
	// ClientSecret is the path of the OAuth client secret JSON.
	ClientSecret string `toml:"client_secret"`
	// Credentials is the path of the persisted OAuth token.
	Credentials string `toml:"credentials"`
	// Directory is where exported files are written. Defaults to the
	// current working directory.
	Directory string `toml:"directory"`
}

func defaultConfig() *config {
	dir, err := configDir()
	if err != nil {
		dir = "."
	}
	return &config{
		RootFolderID: "root",
		ClientSecret: filepath.Join(dir, "client_secret.json"),
		Credentials:  filepath.Join(dir, "credentials.json"),
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

// loadConfig : Read the TOML file at path, or the default location when
// path is empty. A missing default file is not an error.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	return cfg, nil
}
