package cli

import (
	"fmt"
	"io"
	"strings"
)

// printUsage prints usage for cmd.
func printUsage(w io.Writer, cmd Command) {
	fmt.Fprintf(w, "Usage: %s <input> [output] [flags]\n", cmd.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, cmd.Summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  input     %s, or a directory of %s files\n", cmd.InputKind, strings.Join(cmd.Extensions, ", "))
	fmt.Fprintln(w, "            (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output    output file, or output directory when input is a directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	if cmd.UsesFilters {
		fmt.Fprintln(w, "Filters:")
		fmt.Fprintln(w, "  -p, --profile <name>      Filter profile (default: nl-podwalk, or none)")
		fmt.Fprintln(w, "      --print-filters       Print the effective filters as YAML and exit")
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --html                Also write <output>.html")
	fmt.Fprintln(w, "      --style <name|path>   Preview style (default, plain, or a CSS file)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom profiles/ and styles/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
