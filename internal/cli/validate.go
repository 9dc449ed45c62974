package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/pipeline"
)

// validateCommand creates the validate command for checking plan files.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [plan.toml]",
		Short: "Check a plan for geometry and fit problems",
		Long: `Check a plan file without writing any output.

The plan is decoded, its wall chain resolved, and a full layout run
performed. Fit errors (fixed widths exceeding a wall) make the plan
invalid. Geometry diagnostics, minimum-height violations, and placement
warnings are advisory unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat advisory problems as failures")

	return cmd
}

// runValidate executes the pipeline and reports problems.
func (c *CLI) runValidate(ctx context.Context, path string, strict bool) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{PlanPath: path, Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d sections", len(result.Layout.Sections)))

	res := result.Layout
	advisories := 0

	for _, d := range res.Diagnostics {
		printWarning("%s", d.Message)
		advisories++
	}
	for _, v := range res.MinHeightViolations {
		printWarning("section %d height %.1f falls below minimum %.1f", v.SectionIndex, v.Height, v.MinHeight)
		advisories++
	}
	for _, s := range res.Sections {
		for _, w := range s.Warnings {
			printWarning("%s", w)
			advisories++
		}
	}
	for _, fe := range res.FitErrors {
		printError("%s", fe.Error())
	}

	switch {
	case len(res.FitErrors) > 0:
		return fmt.Errorf("plan is invalid: %d wall(s) over-committed", len(res.FitErrors))
	case strict && advisories > 0:
		return fmt.Errorf("plan has %d advisory problem(s)", advisories)
	default:
		printSuccess("Plan is valid")
		printStats(len(res.Sections), result.Stats.WarningCount, false)
		return nil
	}
}
