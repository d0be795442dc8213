package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/heatgrid/pkg/cache"
	"github.com/matzehuels/heatgrid/pkg/errors"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or empty the rendered chart cache",
	}
	cmd.AddCommand(c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	var redisURL string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached charts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var run cacheClearer = clearFileCache
			where := "Directory"
			if redisURL != "" {
				run, where = clearRedisCache(redisURL), "Redis"
			}
			n, loc, err := run(cmd.Context())
			if err != nil {
				return err
			}
			if n < 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", n)
			printDetail("%s: %s", where, loc)
			return nil
		},
	}
	cmd.Flags().StringVar(&redisURL, "redis", os.Getenv(redisURLEnv), "clear a shared Redis cache instead (env "+redisURLEnv+")")
	return cmd
}

// A cacheClearer empties one backend and reports how many entries went and
// where they lived. It returns -1 when there was never a cache to clear.
type cacheClearer func(ctx context.Context) (int, string, error)

func clearFileCache(context.Context) (int, string, error) {
	dir, err := cacheDir()
	if err != nil {
		return 0, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve cache directory")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return -1, dir, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, dir, err
	}
	n, err := fc.Clear()
	return n, fc.Dir(), err
}

func clearRedisCache(url string) cacheClearer {
	return func(ctx context.Context) (int, string, error) {
		rc, err := cache.NewRedisCache(ctx, url, "")
		if err != nil {
			return 0, url, err
		}
		defer rc.Close()
		n, err := rc.Clear(ctx)
		return n, url, err
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cacheDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve cache directory")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	}
}
