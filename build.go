package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/render"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as static files",
	Long:  `Writes index.html and the client script into the output directory, ready for any static host.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("out", "dist", "output directory")
	buildCmd.Flags().String("theme", "light", "initial theme: light or dark")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	name, _ := cmd.Flags().GetString("theme")
	mode, err := theme.ParseMode(name)
	if err != nil {
		return err
	}

	n, err := exportSite(out, content.Default(), mode, cfg.ObserverConfig())
	if err != nil {
		return err
	}
	logger.Info().Str("out", out).Int("files", n).Stringer("theme", mode).Msg("static site written")
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d files)\n", out, n)
	return nil
}

// exportSite writes the page and its assets under dir and returns the number
// of files written.
func exportSite(dir string, p content.Profile, mode theme.Mode, obs theme.ObserverConfig) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	tmpl, err := render.Templates()
	if err != nil {
		return 0, err
	}
	doc, err := render.NewDocument(p, mode, obs)
	if err != nil {
		return 0, err
	}
	f, err := os.Create(filepath.Join(dir, render.IndexTemplate))
	if err != nil {
		return 0, fmt.Errorf("creating index: %w", err)
	}
	if err := render.WriteDocument(f, tmpl, doc); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing index: %w", err)
	}
	written := 1

	static := render.Static()
	err = fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		b, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copying assets: %w", err)
	}
	return written, nil
}
