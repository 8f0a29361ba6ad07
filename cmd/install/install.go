package install

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ichi-raven/slang-fetch/pkg/installer"
	"github.com/ichi-raven/slang-fetch/pkg/sources/cloud.google.com/storage"
	"github.com/ichi-raven/slang-fetch/pkg/sources/github"
)

const (
	// releaseOwner and releaseRepo identify where Slang SDK releases are published
	releaseOwner = "shader-slang"
	releaseRepo  = "slang"

	usage = "slang-fetch <install_dir> <version>"
)

// UsageError is returned when the command is invoked with too few arguments
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 arguments, got %d\nUsage: %s", e.Got, usage)
}

// Options holds the flags accepted by the install command
type Options struct {
	// RemoveArchive deletes the downloaded zip after extraction
	RemoveArchive bool
	// MirrorBucket names a Google Cloud Storage bucket to fetch the archive from instead of GitHub
	MirrorBucket string
}

// Cmd returns the Command used to invoke the installation logic
func Cmd() *cobra.Command {
	opts := Options{}
	installCmd := &cobra.Command{
		Use:   usage,
		Args:  validateArgs,
		Short: "Install a Slang SDK release",
		Long:  "Downloads the Slang SDK release archive matching the given version and the host OS, extracts it into install_dir and removes the temporary download directory. Pass 'latest' as the version to install the newest published release.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Install(cmd.Context(), args[0], args[1], opts)
		},
		SilenceUsage: true,
	}
	installCmd.Flags().BoolVar(&opts.RemoveArchive, "remove-archive", false, "delete the downloaded zip once it has been extracted")
	installCmd.Flags().StringVar(&opts.MirrorBucket, "mirror-bucket", "", "fetch the release archive from this public Google Cloud Storage bucket instead of GitHub")
	return installCmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

// Install fetches the requested version into installDir
func Install(ctx context.Context, installDir, version string, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	inst := installer.New(github.NewSource(releaseOwner, releaseRepo))
	if opts.MirrorBucket != "" {
		mirror, err := storage.NewSource(ctx, opts.MirrorBucket)
		if err != nil {
			return fmt.Errorf("failed to initialize mirror bucket '%s': %w", opts.MirrorBucket, err)
		}
		defer func() {
			closeErr := mirror.Close()
			if closeErr != nil {
				fmt.Printf("WARNING: failed to close mirror client: %v\n", closeErr)
			}
		}()
		inst.Mirror = mirror
	}

	req := installer.Request{
		InstallDir:    installDir,
		Version:       version,
		RemoveArchive: opts.RemoveArchive,
	}
	err := inst.Install(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to install slang %s: %w", version, err)
	}
	return nil
}
