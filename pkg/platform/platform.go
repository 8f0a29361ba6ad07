/*
platform selects the external tools used to fetch and unpack release archives on the host OS
*/
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupportedPlatform is returned when the host OS has no Strategy
var ErrUnsupportedPlatform = errors.New("unsupported OS")

// Target identifies the operating systems the installer recognizes
type Target int

const (
	Unsupported Target = iota
	Windows
	Linux
)

func (t Target) String() string {
	switch t {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unsupported"
	}
}

// Detect maps a GOOS value onto a Target
func Detect(goos string) Target {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Unsupported
	}
}

// Host returns the Target of the running system
func Host() Target {
	return Detect(runtime.GOOS)
}

// Command describes an external program invocation
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %v", c.Name, c.Args)
}

// Strategy provides the platform-specific pieces of an install
type Strategy interface {
	// Target returns the platform this Strategy serves
	Target() Target

	// AssetName returns the release asset's file name for the given version
	AssetName(version string) string

	// DownloadCommand fetches url into the file at dest
	DownloadCommand(url, dest string) Command

	// ExtractCommand unpacks the zip archive into the dest directory
	ExtractCommand(archive, dest string) Command
}

// Strategy returns the Strategy for t. Unsupported targets return ErrUnsupportedPlatform.
func (t Target) Strategy() (Strategy, error) {
	switch t {
	case Windows:
		return windows{}, nil
	case Linux:
		return linux{}, nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// Supported reports whether t has a Strategy
func (t Target) Supported() bool {
	return t == Windows || t == Linux
}

func assetName(version string, t Target) string {
	return fmt.Sprintf("slang-%s-%s-x86_64.zip", version, t)
}

type windows struct{}

func (windows) Target() Target {
	return Windows
}

func (windows) AssetName(version string) string {
	return assetName(version, Windows)
}

func (windows) DownloadCommand(url, dest string) Command {
	return Command{Name: "curl", Args: []string{"-L", url, "-o", dest}}
}

func (windows) ExtractCommand(archive, dest string) Command {
	script := fmt.Sprintf("Expand-Archive -Path '%s' -DestinationPath '%s' -Force", archive, dest)
	return Command{Name: "powershell", Args: []string{"-Command", script}}
}

type linux struct{}

func (linux) Target() Target {
	return Linux
}

func (linux) AssetName(version string) string {
	return assetName(version, Linux)
}

func (linux) DownloadCommand(url, dest string) Command {
	return Command{Name: "wget", Args: []string{url, "-O", dest}}
}

func (linux) ExtractCommand(archive, dest string) Command {
	return Command{Name: "unzip", Args: []string{archive, "-d", dest}}
}
