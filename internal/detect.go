package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// StoreKind identifies which installation layout a store came from.
type StoreKind string

const (
	StoreGlobal           StoreKind = "global"
	StoreWorkspace        StoreKind = "workspace"
	StoreVersionedInstall StoreKind = "versioned"
)

// StoreHandle identifies one physical key-value database. Handles are created
// at discovery time, read-only, and discarded after one read pass.
type StoreHandle struct {
	Kind          StoreKind
	Path          string
	DisplayName   string
	WorkspaceHash string
}

// DBFileName is the state database file name used by the editor.
const DBFileName = "state.vscdb"

// DetectBasePath returns the editor's User directory for the current OS.
func DetectBasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library/Application Support/Cursor/User"), nil
	case "linux":
		return filepath.Join(home, ".config/Cursor/User"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}
}

// GetBasePath resolves the discovery root, honoring a custom --storage
// override. The override may point at a User directory or its parent.
func GetBasePath(custom string) (string, error) {
	if custom == "" {
		return DetectBasePath()
	}

	info, err := os.Stat(custom)
	if err != nil {
		return "", fmt.Errorf("custom storage path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("custom storage path is not a directory: %s", custom)
	}

	// Accept a parent directory containing User/ for convenience.
	userDir := filepath.Join(custom, "User")
	if fi, err := os.Stat(userDir); err == nil && fi.IsDir() {
		return userDir, nil
	}
	return custom, nil
}

// ListStores enumerates every candidate store database reachable from base.
// It never fails: a missing or unreadable candidate is excluded, not an
// error. Discovery order is global store, then workspace stores, then the
// same pass repeated under each versioned sibling install.
func ListStores(base string) []StoreHandle {
	stores := discoverUnder(base, StoreGlobal, StoreWorkspace, "")

	for _, install := range findVersionedInstalls(base) {
		name := filepath.Base(filepath.Dir(install))
		stores = append(stores,
			discoverUnder(install, StoreVersionedInstall, StoreVersionedInstall, name+"/")...)
	}

	return stores
}

// discoverUnder runs the global+workspace discovery rooted at one User dir.
func discoverUnder(base string, globalKind, workspaceKind StoreKind, displayPrefix string) []StoreHandle {
	var stores []StoreHandle

	globalDB := filepath.Join(base, "globalStorage", DBFileName)
	if fileExists(globalDB) {
		stores = append(stores, StoreHandle{
			Kind:        globalKind,
			Path:        globalDB,
			DisplayName: displayPrefix + "globalStorage",
		})
	}

	pattern := filepath.Join(base, "workspaceStorage", "*", DBFileName)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		LogDebug("workspace glob failed for %s: %v", pattern, err)
		return stores
	}
	for _, match := range matches {
		if !fileExists(match) {
			continue
		}
		hash := filepath.Base(filepath.Dir(match))
		stores = append(stores, StoreHandle{
			Kind:          workspaceKind,
			Path:          match,
			DisplayName:   displayPrefix + "workspaceStorage/" + hash,
			WorkspaceHash: hash,
		})
	}

	return stores
}

// findVersionedInstalls returns the User directories of sibling installs
// whose directory name carries a version suffix, e.g. cursor-1.42.3. The
// suffix must parse as a semantic version.
func findVersionedInstalls(base string) []string {
	productDir := filepath.Dir(base) // .../Cursor
	parent := filepath.Dir(productDir)

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil
	}

	var installs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Join(parent, name) == productDir {
			continue
		}
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, "cursor-") {
			continue
		}
		if _, err := semver.NewVersion(strings.TrimPrefix(lower, "cursor-")); err != nil {
			continue
		}
		userDir := filepath.Join(parent, name, "User")
		if fi, err := os.Stat(userDir); err == nil && fi.IsDir() {
			installs = append(installs, userDir)
		}
	}

	return installs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
