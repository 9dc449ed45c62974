package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/pipeline"
)

// layoutCommand creates the layout command for computing room layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [plan.toml]",
		Short: "Compute a room layout from a plan file",
		Long: `Compute a room layout from a TOML plan file.

The layout command resolves the room's wall chain, assigns sections to
walls, places them around obstacle clearance zones, and adapts them to
sloped ceilings, skylight voids, and outside corners. The output is a
layout.json document with every placed section and its 3D transform.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PlanPath = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().Float64Var(&opts.DividerThickness, "divider", 0, "divider thickness between sections (overrides the plan)")
	cmd.Flags().StringVar(&opts.CornerTreatment, "corner", "", "outside corner treatment: angled_face (default)")

	return cmd
}

// runLayout executes the pipeline and writes the layout document.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.PlanPath, filepath.Ext(opts.PlanPath))
		outputPath = base + ".layout.json"
	}

	if err := os.WriteFile(outputPath, result.Document, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(result.Layout.Sections), result.Stats.WarningCount, result.CacheInfo.LayoutHit)
	for _, fe := range result.Layout.FitErrors {
		printWarning("%s", fe.Error())
	}
	printNewline()
	printNextStep("Inspect", appName+" inspect "+outputPath)

	return nil
}
