package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		maxDepth int
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ladder queries over HTTP",
		Long: `Serve the dictionary over a JSON HTTP API:

  GET /healthz
  GET /v1/neighbors/{word}?all=true
  GET /v1/distance?from=A&to=B&path=true
  GET /v1/paths?start=A&depth=N
  GET /v1/components
  GET /v1/graph?format=json|dot|svg
  GET /v1/stats

Whole-dictionary results share the configured result cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg().Server.Addr
			}

			ix, err := c.loadIndex()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(ix, runner, c.Logger, server.Options{
				MaxDepth:       maxDepth,
				RequestTimeout: timeout,
			})
			c.ui.info("Serving word ladders")
			c.ui.keyValue("Address", addr)
			c.ui.keyValue("Words", strconv.Itoa(ix.Dictionary().Len()))
			c.ui.keyValue("Max depth", strconv.Itoa(maxDepth))
			c.ui.nextStep("Try", "curl "+baseURL(addr)+"/v1/stats")
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().IntVar(&maxDepth, "max-depth", server.DefaultMaxDepth, "largest depth accepted by /v1/paths")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout (0 disables)")
	return cmd
}

// baseURL turns a listen address into a URL a local client can reach.
func baseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
