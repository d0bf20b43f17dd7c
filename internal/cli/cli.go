// Package cli implements the wordladder command-line interface.
//
// Commands answer ladder queries against a dictionary (neighbors, distance,
// paths, components), compute whole-dictionary artifacts through the cached
// pipeline (matrix, render), serve the HTTP API and manage the result cache.
//
// # Dictionaries
//
// The dictionary comes from --dict FILE, --sample, or the [dictionary]
// section of the config file, in that order. With none of them the built-in
// sample word list is used.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/buildinfo"
	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/config"
	"github.com/matzehuels/wordladder/pkg/errors"
	wio "github.com/matzehuels/wordladder/pkg/io"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/observability"
	"github.com/matzehuels/wordladder/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	ui     *ui
	flags  globalFlags
	config *config.Config
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose       bool
	configPath    string
	dictPath      string
	sample        bool
	noPossessives bool
	alphabet      string
	noCache       bool
}

// New creates a CLI that logs and prints status lines to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), ui: &ui{w: w}}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Explore word ladders over a dictionary",
		Long:         `wordladder finds one-edit neighbors, shortest transformation distances, all shortest ladders and connected components of a dictionary.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordladder/config.toml)")
	pf.StringVarP(&c.flags.dictPath, "dict", "d", "", "dictionary file (.txt, .json or .toml)")
	pf.BoolVar(&c.flags.sample, "sample", false, "use the built-in sample word list")
	pf.BoolVar(&c.flags.noPossessives, "no-possessives", false, "do not treat 's as a single transformation")
	pf.StringVar(&c.flags.alphabet, "alphabet", "", "letters used for insertions and substitutions")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.distanceCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and applies flag overrides. The default
// config path is optional; an explicit --config must exist.
func (c *CLI) loadConfig() error {
	path, optional := c.flags.configPath, false
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.config = config.Default()
			return nil
		}
		path, optional = p, true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	if c.flags.dictPath != "" {
		cfg.Dictionary.Path = c.flags.dictPath
		cfg.Dictionary.Sample = false
	}
	if c.flags.sample {
		cfg.Dictionary.Sample = true
	}
	if c.flags.alphabet != "" {
		cfg.Transform.Alphabet = c.flags.alphabet
	}
	if c.flags.noPossessives {
		off := false
		cfg.Transform.Possessives = &off
	}
	if c.flags.noCache {
		cfg.Cache.Backend = config.BackendNone
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.config = cfg
	c.Logger.Debug("loaded config", "path", path, "backend", cfg.Cache.Backend)
	return nil
}

// cfg returns the loaded config, or defaults before PersistentPreRunE ran.
func (c *CLI) cfg() *config.Config {
	if c.config == nil {
		c.config = config.Default()
	}
	return c.config
}

// =============================================================================
// Dictionary & Index
// =============================================================================

// loadDictionary reads the configured dictionary.
func (c *CLI) loadDictionary() (*ladder.Dictionary, error) {
	d := c.cfg().Dictionary
	if d.Sample || d.Path == "" {
		c.Logger.Debug("using sample dictionary", "words", len(ladder.SampleWords()))
		return ladder.NewDictionary(ladder.SampleWords()...), nil
	}

	prog := newProgress(c.Logger)
	dict, err := wio.ImportWords(d.Path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded dictionary", "path", d.Path, "words", dict.Len())
	return dict, nil
}

// loadIndex builds the transformer and index over the configured dictionary
// and validates the query words against it.
func (c *CLI) loadIndex(words ...string) (*ladder.Index, error) {
	dict, err := c.loadDictionary()
	if err != nil {
		return nil, err
	}
	if err := c.validateWords(dict, words...); err != nil {
		return nil, err
	}
	return ladder.NewIndex(dict, ladder.NewTransformer(c.cfg().TransformerOptions())), nil
}

// validateWords checks query words against the configured alphabet.
// Dictionary words are always accepted.
func (c *CLI) validateWords(dict *ladder.Dictionary, words ...string) error {
	alphabet := c.cfg().TransformerOptions().Alphabet
	for _, w := range words {
		if dict.Contains(w) {
			continue
		}
		if err := errors.ValidateWord(w, alphabet); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer = cache.NewDefaultKeyer()
	if prefix := c.cfg().Cache.Prefix; prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, prefix)
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	runner.TTL = c.cfg().Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cc := c.cfg().Cache
	switch cc.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cc.RedisURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "redis cache at %s", config.RedactURL(cc.RedisURL))
		}
		return rc, nil
	case config.BackendMongo:
		mc, err := cache.NewMongoCache(ctx, cc.MongoURI, cc.MongoDatabase)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "mongo cache at %s", config.RedactURL(cc.MongoURI))
		}
		return mc, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wordladder/).
func cacheDir() (string, error) {
	return config.CacheDir()
}

// outputFile opens path for writing, or returns stdout for "" and "-".
func outputFile(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
