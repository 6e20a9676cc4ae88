package cli

import (
	"context"
	"errors"
	"fmt"

	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/config"
	"github.com/alnah/go-textclean/internal/fileutil"
	"github.com/alnah/go-textclean/internal/hints"
)

// Run executes cmd with args (without the program name) and returns the
// process exit code. Errors are reported on env.Stderr.
func Run(ctx context.Context, cmd Command, args []string, env *Environment) int {
	err := run(ctx, cmd, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v%s\n", cmd.Name, err, hintFor(err))
	}
	return exitCodeFor(err)
}

// run orchestrates one invocation.
func run(ctx context.Context, cmd Command, args []string, env *Environment) error {
	flags, positional, err := parseFlags(cmd, args, env.Stderr)
	if err != nil {
		return err
	}

	if flags.help {
		printUsage(env.Stdout, cmd)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "%s %s\n", cmd.Name, env.Version)
		return nil
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath, env)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.assets.printFilters {
		return printFilters(cfg, env)
	}

	inputPath, outputFile, err := resolvePaths(positional, cfg)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			printUsage(env.Stderr, cmd)
		}
		return err
	}

	proc, err := cmd.NewProcessor(cfg)
	if err != nil {
		return err
	}

	params := batchParams{proc: proc}
	if cfg.HTML.Enabled {
		params.renderer, err = textclean.NewHTMLRenderer(
			textclean.WithStyle(cfg.HTML.Style),
			textclean.WithAssetPath(cfg.Assets.BasePath),
		)
		if err != nil {
			return err
		}
	}

	files, err := discoverFiles(cmd, proc, inputPath, outputFile, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no %s files in %s", ErrNoFiles, cmd.InputKind, inputPath)
	}

	workers := resolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d, files: %d\n", workers, len(files))
	}

	results := processBatch(ctx, files, params, workers)

	// A lone file reports its own error so the exit code reflects it
	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(results))
	}
	return nil
}

// loadConfig loads the config named by the flag, else by the environment,
// else copies env.Config.
func loadConfig(flagName, envName string, env *Environment) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		base := config.DefaultConfig()
		if env.Config != nil {
			c := *env.Config
			base = &c
		}
		return base, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.html {
		cfg.HTML.Enabled = true
	}
	if flags.assets.style != "" {
		cfg.HTML.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.profile != "" {
		cfg.Filters.Profile = flags.assets.profile
	}
}

// resolvePaths returns the input path and the explicit output path, if any.
// Without a positional input, the config's default input directory is used.
func resolvePaths(positional []string, cfg *config.Config) (input, output string, err error) {
	switch len(positional) {
	case 0:
		dir := cfg.Input.DefaultDir
		if dir == "" {
			return "", "", ErrNoInput
		}
		if !fileutil.DirExists(dir) {
			return "", "", fmt.Errorf("%w: input.defaultDir %s is not a directory", textclean.ErrNotFound, dir)
		}
		return dir, "", nil
	case 1:
		return positional[0], "", nil
	case 2:
		return positional[0], positional[1], nil
	default:
		return "", "", fmt.Errorf("%w: expected <input> [output], got %d", ErrTooManyArgs, len(positional))
	}
}

// printFilters writes the effective filters as YAML.
func printFilters(cfg *config.Config, env *Environment) error {
	filters, err := filtersFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := filters.Validate(); err != nil {
		return err
	}
	data, err := filters.MarshalYAML()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
