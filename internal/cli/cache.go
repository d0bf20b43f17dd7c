package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached components, matrices, graphs and renderings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cc := c.cfg().Cache
			if cc.Backend == config.BackendNone {
				c.ui.info("Cache is disabled")
				return nil
			}

			store, err := c.newCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				c.ui.info("Cache is empty")
				return nil
			}
			c.ui.inline("Clearing %s cache... ", cc.Backend)
			count, err := clearer.Clear(ctx, cc.Prefix)
			c.ui.newline()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			c.ui.success("Cleared %d cached entries", count)
			switch store := store.(type) {
			case *cache.FileCache:
				c.ui.detail("Directory: %s", store.Dir())
			case *cache.RedisCache:
				c.ui.detail("Redis: %s", config.RedactURL(cc.RedisURL))
			case *cache.MongoCache:
				c.ui.detail("MongoDB: %s/%s", config.RedactURL(cc.MongoURI), cc.MongoDatabase)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
