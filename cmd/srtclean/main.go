// Command srtclean converts colored subtitle tracks into paragraphed prose.
package main

import (
	"os"

	"github.com/alnah/go-textclean/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.Main(cli.Subtitles, Version))
}
