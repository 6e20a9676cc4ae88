package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by both commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds filter profile and style selection flags.
type assetFlags struct {
	profile      string
	assetPath    string
	style        string
	printFilters bool
}

// cliFlags holds all flags of one invocation.
type cliFlags struct {
	common  commonFlags
	assets  assetFlags
	workers int
	html    bool
	version bool
	help    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags, filters bool) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.style, "style", "", "HTML preview style name or CSS file path")
	if filters {
		fs.StringVarP(&f.profile, "profile", "p", "", "filter profile name")
		fs.BoolVar(&f.printFilters, "print-filters", false, "print the effective filters as YAML and exit")
	}
}

// parseFlags parses the flags of cmd and returns the positional args.
func parseFlags(cmd Command, args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directories (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview of each output")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets, cmd.UsesFilters)

	fs.Usage = func() { printUsage(stderr, cmd) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}
