package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"astrict/internal/glsl"
	"astrict/internal/pack"
)

var glslCmd = &cobra.Command{
	Use:   "glsl [flags] <pack> [pack...]",
	Short: "Regenerate GLSL source from pack files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGlsl,
}

func init() {
	glslCmd.Flags().String("out", "", "directory for generated .glsl files (default: next to each input)")
	glslCmd.Flags().Bool("stdout", false, "print generated code to stdout instead of writing files")
	glslCmd.Flags().Int("jobs", 4, "number of pack files regenerated in parallel")
}

type glslResult struct {
	Path   string
	Source []byte
	Err    error
}

func runGlsl(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if writeToStdout && outDir != "" {
		return fmt.Errorf("glsl: --stdout cannot be used with --out")
	}
	if jobs < 1 {
		jobs = 1
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	// Regenerations share nothing, so pack files fan out freely; results are
	// reported back in input order.
	results := make([]glslResult, len(args))
	grp, _ := errgroup.WithContext(cmd.Context())
	grp.SetLimit(jobs)
	for i, path := range args {
		grp.Go(func() error {
			results[i] = regenerateOne(path)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	var failed bool
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			continue
		}
		if writeToStdout {
			fmt.Fprint(cmd.OutOrStdout(), string(res.Source))
			continue
		}
		target := glslOutputPath(res.Path, outDir)
		if err := os.WriteFile(target, res.Source, 0o644); err != nil {
			failed = true
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Path, target)
		}
	}
	if failed {
		return fmt.Errorf("glsl: failed to regenerate some packs")
	}
	return nil
}

func regenerateOne(path string) glslResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return glslResult{Path: path, Err: err}
	}
	p, err := pack.DecodePack(data)
	if err != nil {
		return glslResult{Path: path, Err: err}
	}
	src, err := glsl.ToGLSL(p)
	if err != nil {
		return glslResult{Path: path, Err: err}
	}
	return glslResult{Path: path, Source: src}
}

func glslOutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".glsl"
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outDir, base)
}
