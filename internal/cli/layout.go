package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  chartFlags
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout [chart.toml|chart.json]",
		Short: "Compute the layout geometry of a chart",
		Long: `Compute the layout geometry of a chart.

The layout command negotiates the Y axis, X axis, legend and plot area of a
chart file and prints the resulting rectangles. With --json the full layout
(the same document as 'render -f json') is written to stdout; -o writes it
to a file instead.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write layout JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print layout JSON to stdout")

	return cmd
}

// runLayout loads the chart, computes the layout, and reports it.
func (c *CLI) runLayout(ctx context.Context, input string, flags chartFlags, output string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	opts, err := loadChart(ctx, input, flags)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done("Computed layout")

	if asJSON || output != "" {
		data, err := pipeline.MarshalLayout(l)
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		if asJSON {
			_, err := os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout complete")
		printFile(output)
		return nil
	}

	printSuccess("Layout complete")
	printLayoutTable(l)
	printStats(len(opts.Series), len(l.X.Ticks)+len(l.Y.Ticks), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+input)
	return nil
}
