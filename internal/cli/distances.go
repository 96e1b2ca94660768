package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
	"github.com/katalvlaran/hopdist/graphio"
	"github.com/katalvlaran/hopdist/report"
)

const (
	distancesUse              = "distances [file]"
	distancesAlias            = "d"
	distancesShortDescription = "print hop distances from the start vertex (" + distancesAlias + ")"
	distancesLongDescription  = `Read a graph file ("N M", M edge pairs, start vertex) and print the
distance from the start vertex to every other vertex.
When no file is given the configured input (default graph.txt) is used.
Repeat --start to compute several starts concurrently.`
	distancesUsageExample = `  # Distances from the start vertex stored in the file
  hopdist distances graph.txt

  # Override the start and show the route to vertex 7 as JSON
  hopdist distances graph.txt --start 2 --path-to 7 --format json`

	formatFlagName          = "format"
	formatFlagDescription   = "output format: text, json or yaml"
	startFlagName           = "start"
	startFlagDescription    = "start vertex; overrides the file, may be repeated"
	maxDepthFlagName        = "max-depth"
	maxDepthFlagDescription = "ignore vertices farther than this many edges (0 = no limit)"
	pathToFlagName          = "path-to"
	pathToFlagDescription   = "also print a shortest path to this vertex"
	parallelFlagName        = "parallel"
	parallelFlagDescription = "concurrent searches when several starts are given (0 = CPUs)"
)

type distancesOptions struct {
	format   string
	starts   []int
	maxDepth int
	pathTo   int
	parallel int
}

// createDistancesCommand returns the distances subcommand.
func createDistancesCommand(app *application) *cobra.Command {
	var options distancesOptions

	distancesCommand := &cobra.Command{
		Use:     distancesUse,
		Aliases: []string{distancesAlias},
		Short:   distancesShortDescription,
		Long:    distancesLongDescription,
		Example: distancesUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			input := app.configuration.Input
			if len(arguments) == 1 {
				input = arguments[0]
			}
			flags := command.Flags()
			if !flags.Changed(formatFlagName) {
				options.format = app.configuration.Format
			}
			if !flags.Changed(maxDepthFlagName) {
				options.maxDepth = app.configuration.MaxDepth
			}
			if !flags.Changed(parallelFlagName) {
				options.parallel = app.configuration.Parallelism
			}
			hasPath := flags.Changed(pathToFlagName)
			return app.runDistances(command.Context(), command.OutOrStdout(), input, options, hasPath)
		},
	}

	distancesCommand.Flags().StringVar(&options.format, formatFlagName, "text", formatFlagDescription)
	distancesCommand.Flags().IntSliceVar(&options.starts, startFlagName, nil, startFlagDescription)
	distancesCommand.Flags().IntVar(&options.maxDepth, maxDepthFlagName, 0, maxDepthFlagDescription)
	distancesCommand.Flags().IntVar(&options.pathTo, pathToFlagName, 0, pathToFlagDescription)
	distancesCommand.Flags().IntVar(&options.parallel, parallelFlagName, 0, parallelFlagDescription)
	return distancesCommand
}

func (app *application) runDistances(ctx context.Context, output io.Writer, input string, options distancesOptions, hasPath bool) error {
	format, err := report.ParseFormat(options.format)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	graph, fileStart, err := graphio.ReadFile(input)
	if err != nil {
		return err
	}
	app.logger.Debug("graph loaded",
		zap.String("path", input),
		zap.Int("vertices", graph.VertexCount()),
		zap.Int("edges", graph.EdgeCount()),
		zap.Int("start", fileStart),
	)

	starts := options.starts
	if len(starts) == 0 {
		starts = []int{fileStart}
	}
	if hasPath && len(starts) > 1 {
		return fmt.Errorf("--%s needs a single --%s", pathToFlagName, startFlagName)
	}
	searchOptions := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxDepth(options.maxDepth)}

	began := time.Now()
	if len(starts) == 1 {
		rep, err := singleReport(graph, starts[0], options, hasPath, searchOptions)
		if err != nil {
			return err
		}
		app.logger.Debug("search finished", zap.Int("start", starts[0]), zap.Duration("elapsed", time.Since(began)))
		return report.Render(output, format, rep)
	}

	distances, err := bfs.DistancesFrom(ctx, graph, starts, options.parallel, searchOptions...)
	if err != nil {
		return err
	}
	app.logger.Debug("searches finished", zap.Ints("starts", starts), zap.Duration("elapsed", time.Since(began)))
	for i, start := range starts {
		if err = report.Render(output, format, report.New(start, distances[i])); err != nil {
			return err
		}
	}
	return nil
}

func singleReport(graph *core.Graph, start int, options distancesOptions, hasPath bool, searchOptions []bfs.Option) (report.Report, error) {
	result, err := bfs.BFS(graph, start, searchOptions...)
	if err != nil {
		return report.Report{}, err
	}
	rep := report.New(start, result.Dist)
	if !hasPath {
		return rep, nil
	}
	path, err := result.PathTo(options.pathTo)
	if err != nil {
		return report.Report{}, err
	}
	return rep.WithPath(options.pathTo, path), nil
}
