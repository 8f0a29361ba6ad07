/*
installer fetches a Slang SDK release archive for the host platform and unpacks it into an install directory
*/
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ichi-raven/slang-fetch/pkg/platform"
	"github.com/ichi-raven/slang-fetch/pkg/utils"
)

const (
	// LatestVersion may be passed as a Request's Version to install the newest published release
	LatestVersion = "latest"

	// downloadDirName is the scratch directory created under the install directory
	downloadDirName = "download"
)

// Request describes a single install
type Request struct {
	// InstallDir is the directory the SDK is extracted into
	InstallDir string
	// Version is the release to install, without the tag's 'v' prefix. It is not validated.
	Version string
	// RemoveArchive deletes the downloaded zip after a successful extraction
	RemoveArchive bool
}

// ReleaseSource locates published release assets
type ReleaseSource interface {
	ReleaseAssetURL(version, asset string) string
	LatestVersion(ctx context.Context) (string, error)
}

// ObjectSource fetches a named archive directly into a local file
type ObjectSource interface {
	DownloadObject(ctx context.Context, name, dest string) error
}

// Installer runs the download, extract and cleanup pipeline
type Installer struct {
	// Target is the platform to install for
	Target platform.Target
	// Releases builds download URLs and resolves the latest version
	Releases ReleaseSource
	// Mirror, if set, replaces the external download tool
	Mirror ObjectSource
	// Runner executes the platform's download and extraction tools
	Runner Runner
	// Out receives progress messages
	Out io.Writer
}

// New returns an Installer for the host platform which shells out to the platform's tools
func New(releases ReleaseSource) *Installer {
	return &Installer{
		Target:   platform.Host(),
		Releases: releases,
		Runner:   NewExecRunner(),
		Out:      os.Stdout,
	}
}

// ArchivePath returns where the release archive for version is written
func ArchivePath(installDir, version string) string {
	return filepath.Join(installDir, fmt.Sprintf("slang-%s.zip", version))
}

// Install downloads the requested release into req.InstallDir, extracts it there and
// removes the temporary download directory. Every failure aborts the install; nothing
// already written is rolled back.
func (i *Installer) Install(ctx context.Context, req Request) error {
	downloadDir := filepath.Join(req.InstallDir, downloadDirName)
	err := os.MkdirAll(downloadDir, os.FileMode(0o755))
	if err != nil {
		return fmt.Errorf("failed to create download directory '%s': %w", downloadDir, err)
	}

	strategy, err := i.Target.Strategy()
	if err != nil {
		return err
	}

	version := req.Version
	if version == LatestVersion {
		version, err = i.Releases.LatestVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve latest version: %w", err)
		}
		i.printf("Resolved latest version: %s\n", version)
	}

	asset := strategy.AssetName(version)
	archivePath := ArchivePath(req.InstallDir, version)
	if i.Mirror != nil {
		i.printf("Downloading %s from mirror...\n", asset)
		err = i.Mirror.DownloadObject(ctx, asset, archivePath)
		if err != nil {
			return fmt.Errorf("failed to download '%s' from mirror: %w", asset, err)
		}
	} else {
		url := i.Releases.ReleaseAssetURL(version, asset)
		i.printf("Downloading from %s...\n", url)
		err = i.Runner.Run(ctx, strategy.DownloadCommand(url, archivePath))
		if err != nil {
			return fmt.Errorf("failed to download '%s': %w", url, err)
		}
	}
	i.printf("Downloaded: %s\n", archivePath)

	err = os.MkdirAll(req.InstallDir, os.FileMode(0o755))
	if err != nil {
		return fmt.Errorf("failed to create install directory '%s': %w", req.InstallDir, err)
	}

	i.printf("Extracting to %s...\n", req.InstallDir)
	err = i.Runner.Run(ctx, strategy.ExtractCommand(archivePath, req.InstallDir))
	if err != nil {
		return fmt.Errorf("failed to extract '%s': %w", archivePath, err)
	}
	i.printf("Extracted to: %s\n", req.InstallDir)

	if req.RemoveArchive {
		err = os.Remove(archivePath)
		if err != nil {
			return fmt.Errorf("failed to remove archive '%s': %w", archivePath, err)
		}
		i.printf("Removed archive: %s\n", archivePath)
	}

	err = utils.RemoveDirectory(downloadDir)
	if err != nil {
		return fmt.Errorf("failed to remove download directory: %w", err)
	}
	i.printf("Removed download directory: %s\n", downloadDir)
	return nil
}

func (i *Installer) printf(format string, a ...any) {
	if i.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(i.Out, format, a...)
}
