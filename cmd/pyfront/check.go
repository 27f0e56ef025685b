package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pyfront/internal/config"
	"pyfront/internal/diagfmt"
	"pyfront/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <dump.json|directory>",
	Short: "Convert raw tree dumps and report diagnostics",
	Long:  `Convert one raw syntax tree dump, or every *.json dump within a directory, and report every conversion diagnostic`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json), overrides pyfront.toml")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("disk-cache", false, "enable the persistent diagnostic cache")
	checkCmd.Flags().Bool("timings", false, "show per-file phase timings")
}

// effectiveMaxDiagnostics merges the persistent flag with the
// configured cap. The flag default must not shadow pyfront.toml, so an
// unset flag keeps the configured value.
func effectiveMaxDiagnostics(flagSet bool, flagValue, configured int) int {
	if flagSet && flagValue > 0 {
		return flagValue
	}
	return configured
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	enableCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", path, err)
	}

	startDir := path
	if !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	cfg, err := config.LoadFromDir(startDir)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format %q, expected pretty or json", format)
	}
	cfg.Output.MaxDiagnostics = effectiveMaxDiagnostics(
		cmd.Root().PersistentFlags().Changed("max-diagnostics"),
		maxDiagnostics,
		cfg.Output.MaxDiagnostics,
	)

	var cache *driver.DiskCache
	if enableCache {
		cache, err = driver.OpenDiskCache(cfg.Output.CacheDir)
		if err != nil {
			return fmt.Errorf("cannot open disk cache: %w", err)
		}
	}

	var results []driver.FileCheck
	if info.IsDir() {
		results, err = driver.CheckDir(cmd.Context(), path, cfg, cache, jobs)
		if err != nil {
			return err
		}
	} else {
		fc, err := driver.CheckFile(path, cfg, cache)
		if err != nil {
			return err
		}
		results = []driver.FileCheck{fc}
	}

	colored, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	failed := false
	for i := range results {
		fc := &results[i]
		if fc.Failed() {
			failed = true
		}
		if fc.Bag.Len() == 0 {
			continue
		}
		switch format {
		case "json":
			err = diagfmt.WriteJSON(os.Stdout, fc.Bag, fc.SourcePath, diagfmt.JSONOpts{
				IncludeNotes: withNotes,
				Indent:       true,
			})
		default:
			err = diagfmt.Pretty(os.Stdout, fc.Bag, fc.SourcePath, diagfmt.PrettyOpts{
				Color:     colored,
				ShowNotes: withNotes,
			})
		}
		if err != nil {
			return err
		}
	}

	if showTimings {
		for i := range results {
			fc := &results[i]
			fmt.Fprintf(os.Stderr, "%s: %.2f ms", fc.SourcePath, fc.Timing.TotalMS)
			for _, p := range fc.Timing.Phases {
				fmt.Fprintf(os.Stderr, "  %s=%.2f", p.Name, p.DurationMS)
			}
			fmt.Fprintln(os.Stderr)
		}
	}

	if failed {
		// Diagnostics already printed; suppress cobra's error echo.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return fmt.Errorf("conversion reported errors")
	}
	return nil
}
