package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/internal/server"
	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

const defaultAddr = ":8080"

type serveOpts struct {
	addr        string
	redisURL    string
	cachePrefix string
	maxBody     int64
}

// serveCommand creates the serve command that runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, maxBody: server.DefaultMaxBodyBytes}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:
  GET  /healthz     liveness
  POST /v1/layout   chart definition in, layout JSON out
  POST /v1/render   chart definition in, PNG out (?format=json for layout)

With --redis, layouts and renders are cached in Redis and shared between
instances. Otherwise the local file cache is used unless --no-cache is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for a shared cache (redis://host:6379/0)")
	cmd.Flags().StringVar(&opts.cachePrefix, "cache-prefix", "", "prefix for cache keys, e.g. chartframe:staging:")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body size in bytes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newServeRunner(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(runner, logger, server.WithMaxBodyBytes(opts.maxBody))
	printInfo("Serving on %s", StyleHighlight.Render(opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}

// newServeRunner picks Redis over the local cache when a URL is given.
func (c *CLI) newServeRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	var keyer cache.Keyer
	if opts.cachePrefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.cachePrefix)
	}

	if opts.redisURL == "" {
		r, err := c.newRunner()
		if err != nil {
			return nil, err
		}
		if keyer != nil {
			r.Keyer = keyer
		}
		return r, nil
	}

	rc, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Debug("using redis cache", "prefix", opts.cachePrefix)
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}
