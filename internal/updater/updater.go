// Package updater checks GitHub releases for newer pagecraft builds and
// replaces the running binary.
package updater

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/phravins/pagecraft/internal/config"
)

// GitHub repository for updates
const githubRepo = "phravins/pagecraft"

// UpdateInfo contains information about available updates
type UpdateInfo struct {
	CurrentVersion    string
	LatestVersion     string
	IsUpdateAvailable bool
	ReleaseURL        string
	ReleaseNotes      string
}

// IsNewer reports whether latest is a higher semantic version than current.
func IsNewer(current, latest string) (bool, error) {
	currentVer, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version: %w", err)
	}
	latestVer, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("invalid latest version: %w", err)
	}
	return latestVer.GreaterThan(currentVer), nil
}

func detectLatest(ctx context.Context) (*selfupdate.Release, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepo))
	if err != nil {
		return nil, fmt.Errorf("error checking for updates: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no releases found")
	}
	return latest, nil
}

// CheckForUpdates checks if a new version is available on GitHub
func CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	latest, err := detectLatest(ctx)
	if err != nil {
		return nil, err
	}
	newer, err := IsNewer(config.Version, latest.Version())
	if err != nil {
		return nil, err
	}

	return &UpdateInfo{
		CurrentVersion:    config.Version,
		LatestVersion:     latest.Version(),
		IsUpdateAvailable: newer,
		ReleaseURL:        latest.URL,
		ReleaseNotes:      latest.ReleaseNotes,
	}, nil
}

// PerformUpdate downloads and installs the latest version
func PerformUpdate(ctx context.Context) (string, error) {
	latest, err := detectLatest(ctx)
	if err != nil {
		return "", err
	}
	newer, err := IsNewer(config.Version, latest.Version())
	if err != nil {
		return "", err
	}
	if !newer {
		return "", fmt.Errorf("already running the latest version (%s)", config.Version)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: AssetName(runtime.GOOS, runtime.GOARCH)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create updater: %w", err)
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return "", fmt.Errorf("update failed: %w", err)
	}
	return latest.Version(), nil
}

// AssetName is the release asset expected for a platform.
func AssetName(goos, goarch string) string {
	if goos == "windows" {
		return fmt.Sprintf("pagecraft-windows-%s.exe", goarch)
	}
	return fmt.Sprintf("pagecraft-%s-%s", goos, goarch)
}
