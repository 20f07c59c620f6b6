package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/ytsearch"

var checkLatest bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&checkLatest, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ytsearch %s (built %s)\n", appVersion, buildTime)

	if !checkLatest {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		fmt.Fprintln(out, "No release found for this platform")
		return nil
	}

	newer, err := isNewer(appVersion, latest.Version())
	if err != nil {
		fmt.Fprintf(out, "Latest release: %s (%s)\n", latest.Version(), latest.URL)
		return nil
	}
	if newer {
		fmt.Fprintf(out, "A newer version is available: %s\n%s\n", latest.Version(), latest.URL)
		return nil
	}

	fmt.Fprintln(out, "You are running the latest version")
	return nil
}

// isNewer reports whether latest is a higher version than current.
// Development builds do not parse as semver and return an error.
func isNewer(current, latest string) (bool, error) {
	currentVersion, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	latestVersion, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	return latestVersion.GT(currentVersion), nil
}
