package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// renderCommand creates the render command for generating chart images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   chartFlags
		output  string
		formats string
	)

	cmd := &cobra.Command{
		Use:   "render [chart.toml|chart.json]",
		Short: "Render a chart to PNG and/or layout JSON",
		Long: `Render a chart to PNG and/or layout JSON.

With a single format, -o names the output file. With several formats, -o is
a base path and each output gets the format's extension. Without -o the
outputs are written next to the chart file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := pipeline.ParseFormats(formats)
			if len(f) == 0 {
				f = []string{pipeline.FormatPNG}
			}
			if err := pipeline.ValidateFormats(f); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], flags, output, f)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): png (default), json (comma-separated)")

	return cmd
}

// runRender loads the chart, runs the pipeline, and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, flags chartFlags, output string, formats []string) error {
	logger := loggerFromContext(ctx)

	opts, err := loadChart(ctx, input, flags)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}
	opts.Formats = formats

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered chart")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(input, output, formats)
	printSuccess("Render complete")
	for _, format := range formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.SeriesCount, result.Stats.TickCount, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths picks the file name for every format.
//
//	render chart.toml             -> chart.png
//	render chart.toml -o a.png    -> a.png
//	render chart.toml -o out -f png,json -> out.png, out.json
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		ext := "." + f
		if f == pipeline.FormatJSON {
			ext = ".layout.json"
		}
		paths[f] = base + ext
	}
	return paths
}
